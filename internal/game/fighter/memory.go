package fighter

import "github.com/pugilist/ringside/internal/game/action"

// Memory is a fighter's within-fight decision memory: the only state
// coupling successive decisions. It is created lazily on first use and
// discarded with the fight, so concurrent simulations cannot interfere.
type Memory struct {
	// OpponentActions is a histogram of observed opponent action types.
	OpponentActions map[action.Type]int
	// LastHurtTick is the most recent tick this fighter was hurt; -1 if never.
	LastHurtTick int
	// LastKnockdownTick is the most recent tick this fighter was dropped; -1 if never.
	LastKnockdownTick int
	// RoundStrategy holds the per-round pseudo-random strategy modifier,
	// generated once per round on first access.
	RoundStrategy map[int]float64
	// RestRounds lists rounds this fighter has decided to coast.
	RestRounds []int
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{
		OpponentActions:   make(map[action.Type]int),
		LastHurtTick:      -1,
		LastKnockdownTick: -1,
		RoundStrategy:     make(map[int]float64),
	}
}

// ObserveOpponent records one observed opponent action type.
func (m *Memory) ObserveOpponent(t action.Type) {
	m.OpponentActions[t]++
}

// OpponentShare returns the fraction of observed opponent actions of type t.
//
// Postcondition: Returns a value in [0, 1]; 0 before any observation.
func (m *Memory) OpponentShare(t action.Type) float64 {
	total := 0
	for _, n := range m.OpponentActions {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(m.OpponentActions[t]) / float64(total)
}

// IsResting reports whether round was previously marked as a rest round.
func (m *Memory) IsResting(round int) bool {
	for _, r := range m.RestRounds {
		if r == round {
			return true
		}
	}
	return false
}

// MarkRest records round as a rest round if not already present.
func (m *Memory) MarkRest(round int) {
	if !m.IsResting(round) {
		m.RestRounds = append(m.RestRounds, round)
	}
}
