package fighter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pugilist/ringside/internal/game/style"
)

// Template is the static YAML definition a Fighter is instantiated from.
type Template struct {
	Name      string     `yaml:"name"`
	Style     string     `yaml:"style"`
	Stance    string     `yaml:"stance"`
	Offense   string     `yaml:"offense"`
	HeightIn  float64    `yaml:"height_in"`
	ReachIn   float64    `yaml:"reach_in"`
	WeightLbs float64    `yaml:"weight_lbs"`
	Attr      Attributes `yaml:"attributes"`
}

// Validate checks required fields and rating bounds.
//
// Postcondition: nil return guarantees the template parses into a Profile.
func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("fighter template: name must not be empty")
	}
	if _, err := style.Parse(t.Style); err != nil {
		return fmt.Errorf("fighter template %q: %w", t.Name, err)
	}
	if _, err := style.ParseStance(t.Stance); err != nil {
		return fmt.Errorf("fighter template %q: %w", t.Name, err)
	}
	if _, err := style.ParseOffense(t.Offense); err != nil {
		return fmt.Errorf("fighter template %q: %w", t.Name, err)
	}
	if t.WeightLbs <= 0 {
		return fmt.Errorf("fighter template %q: weight_lbs must be positive, got %v", t.Name, t.WeightLbs)
	}
	if t.ReachIn <= 0 {
		return fmt.Errorf("fighter template %q: reach_in must be positive, got %v", t.Name, t.ReachIn)
	}
	for name, v := range map[string]float64{
		"power": t.Attr.Power, "knockout_power": t.Attr.KnockoutPower,
		"chin": t.Attr.Chin, "heart": t.Attr.Heart, "composure": t.Attr.Composure,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("fighter template %q: %s must be 0-100, got %v", t.Name, name, v)
		}
	}
	return nil
}

// Profile converts a validated Template into an immutable Profile.
//
// Precondition: Validate must have returned nil.
func (t *Template) Profile() *Profile {
	st, _ := style.Parse(t.Style)
	stance, _ := style.ParseStance(t.Stance)
	off, _ := style.ParseOffense(t.Offense)
	return &Profile{
		Name:      t.Name,
		Attr:      t.Attr,
		HeightIn:  t.HeightIn,
		ReachIn:   t.ReachIn,
		WeightLbs: t.WeightLbs,
		Style:     st,
		Stance:    stance,
		Offense:   off,
	}
}

// Registry holds all known fighter Templates keyed by name.
type Registry struct {
	templates map[string]*Template
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]*Template)}
}

// Register adds t to the registry, overwriting any existing entry with the
// same name.
//
// Precondition: t must not be nil and t.Name must not be empty.
func (r *Registry) Register(t *Template) {
	r.templates[t.Name] = t
}

// Get returns the Template for name, or (nil, false) if not found.
func (r *Registry) Get(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok
}

// All returns a snapshot slice of all registered Templates.
func (r *Registry) All() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Template,
// validates it, and returns a populated Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails
// to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading fighter dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var tmpl Template
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tmpl); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := tmpl.Validate(); err != nil {
			return nil, err
		}
		reg.Register(&tmpl)
	}
	return reg, nil
}
