// Package action defines the per-tick action vocabulary shared by the
// decision engine, the stamina economy, and the combat resolver.
//
// An Action is an ephemeral value: produced by one Decide call, consumed by
// one Resolve call, never stored.
package action

// Type identifies what a fighter intends to do this tick.
// The zero value (TypeUnknown) is intentionally invalid; the resolver treats
// it as an automatic miss.
type Type int

const (
	TypeUnknown Type = iota // zero value; intentionally invalid
	TypePunch
	TypeCombination
	TypeBlock
	TypeEvade
	TypeClinch
	TypeMove
	TypeWait
	TypeFeint
)

// String returns the human-readable name of the Type.
func (t Type) String() string {
	switch t {
	case TypePunch:
		return "punch"
	case TypeCombination:
		return "combination"
	case TypeBlock:
		return "block"
	case TypeEvade:
		return "evade"
	case TypeClinch:
		return "clinch"
	case TypeMove:
		return "move"
	case TypeWait:
		return "wait"
	case TypeFeint:
		return "feint"
	default:
		return "unknown"
	}
}

// PunchType is the punch sub-type. Its String doubles as the parameter-store
// key under combat.accuracy.base, combat.range.optimal, combat.damage.base,
// and stamina.cost.
type PunchType int

const (
	Jab PunchType = iota
	Cross
	Hook
	Uppercut
	numPunchTypes
)

// String returns the parameter-store key for the PunchType.
func (p PunchType) String() string {
	switch p {
	case Jab:
		return "jab"
	case Cross:
		return "cross"
	case Hook:
		return "hook"
	case Uppercut:
		return "uppercut"
	default:
		return "unknown"
	}
}

// IsPower reports whether the punch counts as a power punch.
func (p PunchType) IsPower() bool { return p != Jab && p >= 0 && p < numPunchTypes }

// IsStraight reports whether the punch travels on a straight line (jab or
// cross), which matters to stance-specific blocking.
func (p PunchType) IsStraight() bool { return p == Jab || p == Cross }

// AllPunchTypes returns every defined PunchType in declaration order.
func AllPunchTypes() []PunchType {
	return []PunchType{Jab, Cross, Hook, Uppercut}
}

// Target is where a punch is aimed.
type Target int

const (
	Head Target = iota
	Body
)

// String returns "head" or "body".
func (t Target) String() string {
	if t == Body {
		return "body"
	}
	return "head"
}

// MoveDirection describes a movement action's intent relative to the
// opponent.
type MoveDirection int

const (
	Advance MoveDirection = iota
	Retreat
	CircleLeft
	CircleRight
)

// String returns the human-readable direction name.
func (d MoveDirection) String() string {
	switch d {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	case CircleLeft:
		return "circle_left"
	case CircleRight:
		return "circle_right"
	default:
		return "unknown"
	}
}

// Punch is one thrown punch: a sub-type aimed at a target.
type Punch struct {
	Type   PunchType
	Target Target
}

// Action is the full per-tick intent of one fighter.
// Punch is valid only for TypePunch; Sequence only for TypeCombination;
// Direction only for TypeMove.
type Action struct {
	Type      Type
	Punch     Punch
	Sequence  []Punch
	Direction MoveDirection
	// Counter marks a punch thrown as a counter off the TIMING state.
	Counter bool
}

// NewPunch builds a single-punch Action.
func NewPunch(pt PunchType, target Target) Action {
	return Action{Type: TypePunch, Punch: Punch{Type: pt, Target: target}}
}

// NewCombination builds a combination Action from punches in throw order.
//
// Precondition: punches must be non-empty.
func NewCombination(punches ...Punch) Action {
	if len(punches) == 0 {
		panic("action: NewCombination called with no punches")
	}
	return Action{Type: TypeCombination, Sequence: punches}
}

// Block, Evade, Clinch, Wait, and Feint build the non-punching actions.
func Block() Action  { return Action{Type: TypeBlock} }
func Evade() Action  { return Action{Type: TypeEvade} }
func Clinch() Action { return Action{Type: TypeClinch} }
func Wait() Action   { return Action{Type: TypeWait} }
func Feint() Action  { return Action{Type: TypeFeint} }

// Move builds a movement Action in the given direction.
func Move(d MoveDirection) Action {
	return Action{Type: TypeMove, Direction: d}
}

// IsPunch reports whether the action throws at least one punch.
func (a Action) IsPunch() bool {
	return a.Type == TypePunch || a.Type == TypeCombination
}

// Punches returns the punch sequence this action throws: one entry for
// TypePunch, the full sequence for TypeCombination, nil otherwise.
func (a Action) Punches() []Punch {
	switch a.Type {
	case TypePunch:
		return []Punch{a.Punch}
	case TypeCombination:
		return a.Sequence
	default:
		return nil
	}
}
