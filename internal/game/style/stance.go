package style

import "fmt"

// Stance is a fighter's default defensive guard.
type Stance int

const (
	HighGuard Stance = iota // strong overall, weak to the body
	PhillyShell             // strong vs straights, weak vs hooks
	CrossArmed              // strong vs hooks, average elsewhere
	numStances
)

// String returns the template-facing name of the Stance. The name doubles as
// the parameter-store key under combat.defense.block.
func (s Stance) String() string {
	switch s {
	case HighGuard:
		return "high_guard"
	case PhillyShell:
		return "philly_shell"
	case CrossArmed:
		return "cross_armed"
	default:
		return "unknown"
	}
}

// ParseStance maps a template string to a Stance.
func ParseStance(name string) (Stance, error) {
	for s := HighGuard; s < numStances; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stance %q", name)
}

// Offense is a fighter's offensive leaning, used when choosing an offensive
// sub-state and punch types.
type Offense int

const (
	Balanced Offense = iota
	Volume           // work rate over power
	PowerFirst       // hunts the finishing shot
	BodySnatcher     // targets the body
	numOffenses
)

// String returns the template-facing name of the Offense.
func (o Offense) String() string {
	switch o {
	case Balanced:
		return "balanced"
	case Volume:
		return "volume"
	case PowerFirst:
		return "power_first"
	case BodySnatcher:
		return "body_snatcher"
	default:
		return "unknown"
	}
}

// ParseOffense maps a template string to an Offense.
func ParseOffense(name string) (Offense, error) {
	for o := Balanced; o < numOffenses; o++ {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown offense %q", name)
}
