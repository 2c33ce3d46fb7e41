package fighter

import (
	"github.com/pugilist/ringside/internal/game/ring"
)

// TacticalState is the decision state machine's primary state.
type TacticalState int

const (
	Neutral TacticalState = iota
	Offensive
	Defensive
	Timing
	Moving
	Clinching
	KnockedDown
	Recovered
)

// String returns the human-readable state name.
func (s TacticalState) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case Offensive:
		return "offensive"
	case Defensive:
		return "defensive"
	case Timing:
		return "timing"
	case Moving:
		return "moving"
	case Clinching:
		return "clinch"
	case KnockedDown:
		return "knocked_down"
	case Recovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Selectable reports whether the decision engine may choose this state.
// KnockedDown and Recovered are forced externally by the fight orchestrator.
func (s TacticalState) Selectable() bool {
	return s != KnockedDown && s != Recovered
}

// SubState refines a TacticalState. Each SubState is valid only under its
// parent state.
type SubState int

const (
	SubNone SubState = iota

	// Offensive
	SubJabbing
	SubPowerShot
	SubCombination
	SubBodyWork

	// Defensive
	SubBlocking
	SubEvading
	SubCovering

	// Moving
	SubAdvancing
	SubRetreating
	SubCircling
	SubEscaping

	// Timing
	SubCounterWaiting
	SubFeinting

	// Neutral
	SubProbing

	// Clinching
	SubHolding
	SubLeaning
)

// String returns the human-readable sub-state name.
func (s SubState) String() string {
	switch s {
	case SubJabbing:
		return "jabbing"
	case SubPowerShot:
		return "power_shot"
	case SubCombination:
		return "combination"
	case SubBodyWork:
		return "body_work"
	case SubBlocking:
		return "blocking"
	case SubEvading:
		return "evading"
	case SubCovering:
		return "covering"
	case SubAdvancing:
		return "advancing"
	case SubRetreating:
		return "retreating"
	case SubCircling:
		return "circling"
	case SubEscaping:
		return "escaping"
	case SubCounterWaiting:
		return "counter_waiting"
	case SubFeinting:
		return "feinting"
	case SubProbing:
		return "probing"
	case SubHolding:
		return "holding"
	case SubLeaning:
		return "leaning"
	default:
		return "none"
	}
}

// parentOf maps each SubState to its required parent TacticalState.
var parentOf = map[SubState]TacticalState{
	SubJabbing:        Offensive,
	SubPowerShot:      Offensive,
	SubCombination:    Offensive,
	SubBodyWork:       Offensive,
	SubBlocking:       Defensive,
	SubEvading:        Defensive,
	SubCovering:       Defensive,
	SubAdvancing:      Moving,
	SubRetreating:     Moving,
	SubCircling:       Moving,
	SubEscaping:       Moving,
	SubCounterWaiting: Timing,
	SubFeinting:       Timing,
	SubProbing:        Neutral,
	SubHolding:        Clinching,
	SubLeaning:        Clinching,
}

// ValidFor reports whether s may appear under parent. SubNone is valid
// everywhere.
func (s SubState) ValidFor(parent TacticalState) bool {
	if s == SubNone {
		return true
	}
	p, ok := parentOf[s]
	return ok && p == parent
}

// DamageSeverity tiers a fighter's accumulated damage for defensive
// capability scaling.
type DamageSeverity int

const (
	SeverityLight DamageSeverity = iota
	SeverityModerate
	SeverityHeavy
)

// Injury is an active cut or swelling generated by the damage model.
type Injury struct {
	// Location is the weighted-random facial location key.
	Location string
	// Severity grows as the injury is aggravated; 1 is minor.
	Severity int
	// Swelling distinguishes swelling from an open cut.
	Swelling bool
}

// State is a fighter's mutable per-fight combat state. It is reset at fight
// start, mutated every tick, and discarded at fight end.
type State struct {
	Stamina    float64
	MaxStamina float64

	HeadDamage float64
	BodyDamage float64

	Hurt      bool
	HurtTicks int
	StunTicks int

	KnockdownsTotal     int
	KnockdownsThisRound int

	Tactical TacticalState
	Sub      SubState

	Pos ring.Position

	// LastPunchTick is the tick this fighter last threw; -1 before the first.
	LastPunchTick int
	// CooldownUntil gates the activity check until this tick.
	CooldownUntil int

	Injuries []Injury

	Mods StatusModifiers
}

// NewState returns a fight-start State at the given position with a full
// stamina pool.
//
// Precondition: maxStamina > 0.
func NewState(maxStamina float64, pos ring.Position) *State {
	return &State{
		Stamina:       maxStamina,
		MaxStamina:    maxStamina,
		Tactical:      Neutral,
		Sub:           SubProbing,
		Pos:           pos,
		LastPunchTick: -1,
	}
}

// TotalDamage returns accumulated head plus body damage.
func (s *State) TotalDamage() float64 {
	return s.HeadDamage + s.BodyDamage
}

// StaminaFrac returns remaining stamina as a fraction of the pool.
//
// Postcondition: Returns a value in [0, 1].
func (s *State) StaminaFrac() float64 {
	if s.MaxStamina <= 0 {
		return 0
	}
	f := s.Stamina / s.MaxStamina
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Severity tiers accumulated damage for defensive capability scaling.
func (s *State) Severity() DamageSeverity {
	switch d := s.TotalDamage(); {
	case d >= 60:
		return SeverityHeavy
	case d >= 30:
		return SeverityModerate
	default:
		return SeverityLight
	}
}

// SetTactical sets the state pair, clearing the sub-state when it is not
// valid under the new state (clamp-and-continue rather than error).
func (s *State) SetTactical(t TacticalState, sub SubState) {
	s.Tactical = t
	if !sub.ValidFor(t) {
		sub = SubNone
	}
	s.Sub = sub
}
