package fighter

import (
	"github.com/google/uuid"

	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/ring"
)

// Fighter is a live fight participant: an immutable profile plus the mutable
// per-fight state and decision memory.
type Fighter struct {
	// ID uniquely identifies this runtime instance.
	ID      string
	Profile *Profile
	State   *State

	mem *Memory
}

// New creates a fight-ready Fighter from a profile, positioned at pos with a
// full stamina pool sized by the parameter store.
//
// Precondition: profile must be non-nil.
// Postcondition: State.Stamina equals the configured maximum; Memory is nil
// until first use.
func New(profile *Profile, p *params.Store, pos ring.Position) *Fighter {
	max := p.GetFloat("stamina.max", 100)
	return &Fighter{
		ID:      uuid.NewString(),
		Profile: profile,
		State:   NewState(max, pos),
	}
}

// Memory returns this fighter's decision memory, creating it lazily.
//
// Postcondition: Returns a non-nil Memory.
func (f *Fighter) Memory() *Memory {
	if f.mem == nil {
		f.mem = NewMemory()
	}
	return f.mem
}

// ResetForFight discards all per-fight state, repositioning the fighter at
// pos with a full pool. The profile is untouched.
func (f *Fighter) ResetForFight(p *params.Store, pos ring.Position) {
	max := p.GetFloat("stamina.max", 100)
	f.State = NewState(max, pos)
	f.mem = nil
}

// ReachAdvantage returns this fighter's reach differential over opp in
// inches. Negative when opp has the longer reach.
func (f *Fighter) ReachAdvantage(opp *Fighter) float64 {
	return f.Profile.ReachIn - opp.Profile.ReachIn
}
