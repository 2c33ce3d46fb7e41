package params

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadVersion builds a Store from the version subdirectory of dir. Each
// top-level category in the default tree may be overridden by a
// `<category>.yaml` document; loaded values are deep-merged over the defaults
// so a document only needs to name the keys it changes.
//
// A missing or malformed category document is isolated: it is logged and that
// category reverts to its built-in defaults. Only a missing version directory
// is an error.
//
// Precondition: dir and version must be non-empty.
// Postcondition: Returns a non-nil Store covering every default category.
func LoadVersion(dir, version string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	versionDir := filepath.Join(dir, version)
	if _, err := os.Stat(versionDir); err != nil {
		return nil, fmt.Errorf("parameter version %q: %w", version, err)
	}

	tree := Defaults()
	for category := range tree {
		path := filepath.Join(versionDir, category+".yaml")
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Error("reading parameter category, keeping defaults",
					zap.String("category", category),
					zap.Error(err),
				)
			}
			continue
		}
		var loaded map[string]any
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			logger.Error("parsing parameter category, keeping defaults",
				zap.String("category", category),
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		base, _ := tree[category].(map[string]any)
		tree[category] = merge(base, loaded)
	}

	return New(version, tree, logger), nil
}

// merge deep-merges overlay into a copy of base. Scalar overlay values
// replace base values; nested maps merge recursively.
func merge(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		ov, isMap := v.(map[string]any)
		if !isMap {
			if anyMap, ok := v.(map[any]any); ok {
				ov = make(map[string]any, len(anyMap))
				for sk, sv := range anyMap {
					ov[fmt.Sprint(sk)] = sv
				}
				isMap = true
			}
		}
		if isMap {
			if bv, ok := out[k].(map[string]any); ok {
				out[k] = merge(bv, ov)
				continue
			}
			out[k] = ov
			continue
		}
		out[k] = v
	}
	return out
}
