// Package params implements the versioned tuning-parameter store for the
// ringside simulation.
//
// A Store is immutable after construction. Lookups resolve against a
// flattened dot-path index built once at load time, so per-tick callers never
// touch the YAML layer. Overrides are expressed as a derived Store layering an
// overlay that wins over the base; the base is shared and never mutated, which
// keeps parallel batch simulations safe without locking.
package params

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Store resolves dot-path parameter lookups with caller-supplied defaults.
//
// Invariant: values and overlay are never mutated after construction.
type Store struct {
	version string
	values  map[string]any
	overlay map[string]any
	logger  *zap.Logger
	// warned rate-limits missing-path warnings to once per path per Store
	// lineage. Shared across derived stores.
	warned *sync.Map
}

// New builds a Store for version from a nested key→value tree.
// The tree is flattened once; nested maps become dot-separated paths.
//
// Precondition: tree must not be nil.
// Postcondition: Returns a non-nil Store; logger defaults to zap.NewNop().
func New(version string, tree map[string]any, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	flat := make(map[string]any)
	flatten("", tree, flat)
	return &Store{
		version: version,
		values:  flat,
		logger:  logger,
		warned:  &sync.Map{},
	}
}

// NewDefault builds a Store backed entirely by the built-in default tree.
//
// Postcondition: every path present in Defaults() resolves without warning.
func NewDefault(logger *zap.Logger) *Store {
	return New("builtin", Defaults(), logger)
}

// Version returns the parameter set version this Store was loaded from.
func (s *Store) Version() string { return s.version }

// WithOverride returns a derived Store in which path resolves to value,
// taking strict precedence over loaded data. The receiver is not modified.
//
// Precondition: path must be non-empty.
// Postcondition: the returned Store shares the receiver's base values.
func (s *Store) WithOverride(path string, value any) *Store {
	overlay := make(map[string]any, len(s.overlay)+1)
	for k, v := range s.overlay {
		overlay[k] = v
	}
	overlay[path] = value
	return &Store{
		version: s.version,
		values:  s.values,
		overlay: overlay,
		logger:  s.logger,
		warned:  s.warned,
	}
}

// lookup resolves path against the overlay then the base. Missing paths are
// reported once at warn level and return ok=false.
func (s *Store) lookup(path string) (any, bool) {
	if s.overlay != nil {
		if v, ok := s.overlay[path]; ok {
			return v, true
		}
	}
	if v, ok := s.values[path]; ok {
		return v, true
	}
	if _, dup := s.warned.LoadOrStore(path, struct{}{}); !dup {
		s.logger.Warn("parameter path not found, using caller default",
			zap.String("path", path),
			zap.String("version", s.version),
		)
	}
	return nil, false
}

// GetFloat returns the float64 at path, or def when the path is unset or
// holds a non-numeric value. Integer-typed values are widened.
//
// Postcondition: never returns an error; missing paths resolve to def.
func (s *Store) GetFloat(path string, def float64) float64 {
	v, ok := s.lookup(path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		s.logger.Warn("parameter has non-numeric type, using caller default",
			zap.String("path", path),
			zap.String("type", fmt.Sprintf("%T", v)),
		)
		return def
	}
}

// GetInt returns the int at path, or def when unset or non-integral.
func (s *Store) GetInt(path string, def int) int {
	v, ok := s.lookup(path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// GetString returns the string at path, or def when unset or non-string.
func (s *Store) GetString(path string, def string) string {
	v, ok := s.lookup(path)
	if !ok {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return def
}

// GetBool returns the bool at path, or def when unset or non-bool.
func (s *Store) GetBool(path string, def bool) bool {
	v, ok := s.lookup(path)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// Has reports whether path resolves without falling back to a default.
func (s *Store) Has(path string) bool {
	if s.overlay != nil {
		if _, ok := s.overlay[path]; ok {
			return true
		}
	}
	_, ok := s.values[path]
	return ok
}

// flatten walks tree depth-first, writing leaf values into out keyed by
// dot-joined paths. Map keys of type any (as produced by YAML) are
// stringified.
func flatten(prefix string, tree map[string]any, out map[string]any) {
	for k, v := range tree {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch sub := v.(type) {
		case map[string]any:
			flatten(path, sub, out)
		case map[any]any:
			converted := make(map[string]any, len(sub))
			for sk, sv := range sub {
				converted[fmt.Sprint(sk)] = sv
			}
			flatten(path, converted, out)
		default:
			out[path] = v
		}
	}
}

// Categories returns the sorted-unique top-level category names present in
// the store's base values. Used by loaders and diagnostics.
func (s *Store) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for path := range s.values {
		cat, _, _ := strings.Cut(path, ".")
		if _, dup := seen[cat]; !dup {
			seen[cat] = struct{}{}
			out = append(out, cat)
		}
	}
	sort.Strings(out)
	return out
}
