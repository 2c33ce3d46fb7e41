// Package resolve implements the combat resolver: it turns the two fighters'
// chosen actions into accuracy, defense, damage, and knockdown outcomes for
// one tick.
package resolve

import "github.com/pugilist/ringside/internal/game/action"

// PunchResult is the 4-way outcome of one punch attempt. Exactly one applies.
type PunchResult int

const (
	Landed PunchResult = iota
	Blocked
	Evaded
	Missed
)

// String returns the human-readable result label.
func (r PunchResult) String() string {
	switch r {
	case Landed:
		return "landed"
	case Blocked:
		return "blocked"
	case Evaded:
		return "evaded"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Miss reasons reported on Event.Reason.
const (
	ReasonOutOfRange    = "out_of_range"
	ReasonUnknownAction = "unknown_action"
	ReasonAccuracy      = "accuracy"
)

// Event records the outcome of one punch attempt.
type Event struct {
	// AttackerID identifies who threw the punch.
	AttackerID string
	Punch      action.Punch
	Result     PunchResult
	// Partial marks a landed punch caught by passive partial reduction.
	Partial bool
	// Damage is the damage dealt; zero for evaded and missed punches.
	Damage int
	// Reason explains a miss; empty otherwise.
	Reason string
	// ComboIndex and ComboLen annotate combination punches (1-based index).
	// Both are zero for single punches.
	ComboIndex int
	ComboLen   int
	// Counter marks a punch thrown off the TIMING state.
	Counter bool
}

// Knockdown is the at-most-one knockdown event of a tick.
type Knockdown struct {
	// FighterID identifies who went down.
	FighterID string
	// Flash distinguishes a flash knockdown from a threshold-driven one.
	Flash bool
	// Damage is the damage of the punch that scored it.
	Damage int
}

// Result is the full resolution output of one tick.
type Result struct {
	Events    []Event
	Knockdown *Knockdown
}

// CountFor tallies events by attacker and result.
func (r Result) CountFor(attackerID string, res PunchResult) int {
	n := 0
	for _, ev := range r.Events {
		if ev.AttackerID == attackerID && ev.Result == res {
			n++
		}
	}
	return n
}

// DamageBy sums all damage dealt by attackerID this tick.
func (r Result) DamageBy(attackerID string) int {
	total := 0
	for _, ev := range r.Events {
		if ev.AttackerID == attackerID {
			total += ev.Damage
		}
	}
	return total
}
