// Package stamina implements the energy economy: per-action costs, passive
// recovery, and action gating. A fighter may only attempt what the remaining
// pool affords; unaffordable actions are substituted via GatedAlternative.
package stamina

import (
	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
)

// ReasonInsufficientStamina is the gate-failure reason for an unaffordable
// action.
const ReasonInsufficientStamina = "insufficient_stamina"

// Economy computes costs and recovery from the parameter store. It holds no
// fighter state and is safe to share across simulations.
type Economy struct {
	p *params.Store
}

// New returns an Economy bound to the given parameter store.
//
// Precondition: p must be non-nil.
func New(p *params.Store) *Economy {
	return &Economy{p: p}
}

// punchCost returns the stamina cost of one punch: the sub-type cost plus a
// surcharge for body targeting.
func (e *Economy) punchCost(pn action.Punch) float64 {
	cost := e.p.GetFloat("stamina.cost."+pn.Type.String(), 2.0)
	if pn.Target == action.Body {
		cost += e.p.GetFloat("stamina.cost.body_surcharge", 0.5)
	}
	return cost
}

// Cost returns the full stamina cost of an action. Combination cost is the
// sum over its sequence. Unknown action types cost nothing.
//
// Postcondition: Returns >= 0.
func (e *Economy) Cost(a action.Action) float64 {
	switch a.Type {
	case action.TypePunch, action.TypeCombination:
		total := 0.0
		for _, pn := range a.Punches() {
			total += e.punchCost(pn)
		}
		return total
	case action.TypeMove:
		return e.p.GetFloat("stamina.cost.move", 0.8)
	case action.TypeBlock:
		return e.p.GetFloat("stamina.cost.block", 0.4)
	case action.TypeEvade:
		return e.p.GetFloat("stamina.cost.evade", 0.7)
	case action.TypeClinch:
		return e.p.GetFloat("stamina.cost.clinch", 0.6)
	case action.TypeWait:
		return e.p.GetFloat("stamina.cost.wait", 0.1)
	case action.TypeFeint:
		return e.p.GetFloat("stamina.cost.feint", 0.3)
	default:
		return 0
	}
}

// CanPerform reports whether f can afford a without the pool going negative.
// Waiting is always permitted; Spend floors the pool at zero, so an empty
// tank cannot lock a fighter out of every action.
//
// Postcondition: ok=false implies reason is non-empty.
func (e *Economy) CanPerform(f *fighter.Fighter, a action.Action) (ok bool, reason string) {
	if a.Type == action.TypeWait {
		return true, ""
	}
	if f.State.Stamina-e.Cost(a) < 0 {
		return false, ReasonInsufficientStamina
	}
	return true, ""
}

// GatedAlternative returns the substitute for an unaffordable action: block,
// then clinch, then wait. Clinch is preferred over block at close range.
//
// Postcondition: the returned action is affordable for f, and its type is
// one of {block, clinch, wait}.
func (e *Economy) GatedAlternative(f *fighter.Fighter, distance float64) action.Action {
	clinchRange := e.p.GetFloat("stamina.clinch_range", 2.5)

	clinch := action.Clinch()
	block := action.Block()

	if distance <= clinchRange {
		if ok, _ := e.CanPerform(f, clinch); ok {
			return clinch
		}
	}
	if ok, _ := e.CanPerform(f, block); ok {
		return block
	}
	if ok, _ := e.CanPerform(f, clinch); ok {
		return clinch
	}
	return action.Wait()
}

// Spend deducts the cost of a from f's pool, flooring at zero.
//
// Postcondition: f.State.Stamina stays in [0, MaxStamina].
func (e *Economy) Spend(f *fighter.Fighter, a action.Action) {
	s := f.State
	s.Stamina -= e.Cost(a)
	if s.Stamina < 0 {
		s.Stamina = 0
	}
}

// Recover applies one tick of passive recovery: the base rate scaled by the
// recovery attribute, penalized while hurt, bonused while clinching.
//
// Postcondition: f.State.Stamina stays in [0, MaxStamina].
func (e *Economy) Recover(f *fighter.Fighter, clinching bool) {
	s := f.State
	rate := e.p.GetFloat("stamina.recovery.base", 0.7) *
		(0.5 + f.Profile.Attr.Recovery/100)
	if s.Hurt {
		rate *= e.p.GetFloat("stamina.recovery.hurt_penalty", 0.5)
	}
	if clinching {
		rate *= e.p.GetFloat("stamina.recovery.clinch_bonus", 1.6)
	}
	s.Stamina += rate
	if s.Stamina > s.MaxStamina {
		s.Stamina = s.MaxStamina
	}
	if s.Stamina < 0 {
		s.Stamina = 0
	}
}
