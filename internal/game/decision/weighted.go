package decision

import "github.com/pugilist/ringside/internal/game/rng"

// Choice pairs a candidate with its selection weight.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Pick draws one choice by weighted random selection: a single uniform draw
// against the cumulative weights. Non-positive weights are treated as zero.
// Iteration order is the slice order, so identical inputs and draws produce
// identical picks.
//
// Precondition: choices must be non-empty.
// Postcondition: Returns the value of exactly one choice; if all weights are
// zero the first choice wins.
func Pick[T any](src rng.Source, choices []Choice[T]) T {
	if len(choices) == 0 {
		panic("decision: Pick called with no choices")
	}
	total := 0.0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return choices[0].Value
	}
	target := src.Float64() * total
	acc := 0.0
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		acc += c.Weight
		if target < acc {
			return c.Value
		}
	}
	return choices[len(choices)-1].Value
}
