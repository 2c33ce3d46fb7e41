package params_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pugilist/ringside/internal/game/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStore_GetFloat_ResolvesNestedPath(t *testing.T) {
	s := params.NewDefault(nil)
	assert.Equal(t, 0.62, s.GetFloat("combat.accuracy.base.jab", 0.5))
	assert.Equal(t, 100.0, s.GetFloat("stamina.max", 1.0))
}

// TestStore_GetFloat_MissingPathUsesDefault verifies the error-handling
// policy: an unset path is never an error, it resolves to the caller default.
func TestStore_GetFloat_MissingPathUsesDefault(t *testing.T) {
	s := params.NewDefault(nil)
	assert.Equal(t, 0.42, s.GetFloat("combat.no.such.path", 0.42))
}

func TestStore_GetFloat_WidensIntegers(t *testing.T) {
	s := params.New("test", map[string]any{"a": map[string]any{"b": 3}}, nil)
	assert.Equal(t, 3.0, s.GetFloat("a.b", 0))
}

// TestStore_WithOverride_WinsOverBase verifies the override layer takes
// strict precedence and the base store is untouched.
func TestStore_WithOverride_WinsOverBase(t *testing.T) {
	base := params.NewDefault(nil)
	derived := base.WithOverride("stamina.max", 150.0)

	assert.Equal(t, 150.0, derived.GetFloat("stamina.max", 0))
	assert.Equal(t, 100.0, base.GetFloat("stamina.max", 0), "base store must not be mutated")
}

func TestStore_WithOverride_Chains(t *testing.T) {
	s := params.NewDefault(nil).
		WithOverride("stamina.max", 150.0).
		WithOverride("ring.size", 24.0)
	assert.Equal(t, 150.0, s.GetFloat("stamina.max", 0))
	assert.Equal(t, 24.0, s.GetFloat("ring.size", 0))
}

func TestStore_GetInt_And_GetString(t *testing.T) {
	s := params.NewDefault(nil)
	assert.Equal(t, 3, s.GetInt("weight_class.heavyweight.max_combo", 1))
	assert.Equal(t, "fallback", s.GetString("no.such.string", "fallback"))
}

// TestStore_MissingPath_Property: for arbitrary unset paths and defaults, the
// default always comes back unchanged.
func TestStore_MissingPath_Property(t *testing.T) {
	s := params.NewDefault(nil)
	rapid.Check(t, func(rt *rapid.T) {
		path := "zz." + rapid.StringMatching(`[a-z]{1,12}`).Draw(rt, "path")
		def := rapid.Float64Range(-1e6, 1e6).Draw(rt, "def")
		assert.Equal(rt, def, s.GetFloat(path, def))
	})
}

func TestLoadVersion_MergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "v2"), 0o755))
	doc := []byte("max: 120\ncost:\n  jab: 2.0\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v2", "stamina.yaml"), doc, 0o644))

	s, err := params.LoadVersion(dir, "v2", nil)
	require.NoError(t, err)

	assert.Equal(t, "v2", s.Version())
	assert.Equal(t, 120.0, s.GetFloat("stamina.max", 0), "loaded value wins")
	assert.Equal(t, 2.0, s.GetFloat("stamina.cost.jab", 0), "nested loaded value wins")
	assert.Equal(t, 3.0, s.GetFloat("stamina.cost.hook", 0), "unnamed sibling keeps default")
	assert.Equal(t, 20.0, s.GetFloat("ring.size", 0), "untouched category keeps defaults")
}

// TestLoadVersion_MalformedCategoryIsIsolated verifies that one broken
// document reverts only its own category to defaults.
func TestLoadVersion_MalformedCategoryIsIsolated(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "v3"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v3", "combat.yaml"),
		[]byte(":\n  - not valid yaml: ["), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v3", "ring.yaml"),
		[]byte("size: 18\n"), 0o644))

	s, err := params.LoadVersion(dir, "v3", nil)
	require.NoError(t, err)

	assert.Equal(t, 0.62, s.GetFloat("combat.accuracy.base.jab", 0), "broken category reverts to defaults")
	assert.Equal(t, 18.0, s.GetFloat("ring.size", 0), "healthy category still loads")
}

func TestLoadVersion_MissingVersionDirIsError(t *testing.T) {
	_, err := params.LoadVersion(t.TempDir(), "v9", nil)
	require.Error(t, err)
}

// TestCategories_SortedUnique: each top-level category appears once, in
// lexical order.
func TestCategories_SortedUnique(t *testing.T) {
	cats := params.NewDefault(nil).Categories()
	require.NotEmpty(t, cats)
	assert.True(t, sort.StringsAreSorted(cats), "categories must be sorted: %v", cats)
	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %q", c)
		seen[c] = true
	}
	assert.Contains(t, cats, "combat")
	assert.Contains(t, cats, "fight")
}
