package decision_test

import (
	"testing"

	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/rng"
	"github.com/stretchr/testify/assert"
)

// TestPick_StatisticallyUnbiased samples a fixed weight map 100,000 times and
// checks every option's share lands within tolerance of its weight share.
func TestPick_StatisticallyUnbiased(t *testing.T) {
	choices := []decision.Choice[string]{
		{Value: "a", Weight: 1.0},
		{Value: "b", Weight: 2.0},
		{Value: "c", Weight: 3.0},
		{Value: "d", Weight: 4.0},
	}
	src := rng.NewSeeded(12345)

	const n = 100000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		counts[decision.Pick(src, choices)]++
	}

	total := 10.0
	for _, c := range choices {
		expected := c.Weight / total
		got := float64(counts[c.Value]) / n
		assert.InDelta(t, expected, got, 0.01,
			"option %s: expected share %.2f, got %.4f", c.Value, expected, got)
	}
}

func TestPick_ZeroWeightNeverSelected(t *testing.T) {
	choices := []decision.Choice[string]{
		{Value: "never", Weight: 0},
		{Value: "always", Weight: 1},
	}
	src := rng.NewSeeded(7)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, "always", decision.Pick(src, choices))
	}
}

func TestPick_AllZeroWeightsReturnsFirst(t *testing.T) {
	choices := []decision.Choice[int]{
		{Value: 10, Weight: 0},
		{Value: 20, Weight: 0},
	}
	assert.Equal(t, 10, decision.Pick(rng.NewSeeded(1), choices))
}

func TestPick_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { decision.Pick[int](rng.NewSeeded(1), nil) })
}

// TestPick_Deterministic: identical sources yield identical pick sequences.
func TestPick_Deterministic(t *testing.T) {
	choices := []decision.Choice[int]{
		{Value: 1, Weight: 0.5},
		{Value: 2, Weight: 1.5},
		{Value: 3, Weight: 0.7},
	}
	a := rng.NewSeeded(99)
	b := rng.NewSeeded(99)
	for i := 0; i < 500; i++ {
		assert.Equal(t, decision.Pick(a, choices), decision.Pick(b, choices))
	}
}
