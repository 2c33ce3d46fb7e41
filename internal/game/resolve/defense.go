package resolve

import (
	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/fighter"
)

// defenseOutcome is the resolver's internal verdict on a punch that passed
// the hit roll.
type defenseOutcome struct {
	result PunchResult
	// partial marks a landed punch reduced by passive defense.
	partial bool
	// damageMult scales the damage chain: 1 for clean, (1-reduction) for
	// blocked, the partial multiplier for partial. Unused for evaded.
	damageMult float64
}

// defend resolves the defender's response to a punch that would otherwise
// land. Exactly one of blocked, evaded, partial, or clean results.
func (r *Resolver) defend(def *fighter.Fighter, defDecision decision.Decision, pn action.Punch) defenseOutcome {
	clean := defenseOutcome{result: Landed, damageMult: 1}

	// A hurt fighter's defense may fail outright.
	if def.State.Hurt {
		gate := r.p.GetFloat("combat.defense.hurt_gate", 0.35) +
			def.Profile.Attr.Composure/400
		if r.src.Float64() > gate {
			return clean
		}
	}

	// Position and damage severity shrink all defensive chances.
	capability := 1.0
	switch {
	case r.ring.IsCornered(def.State.Pos):
		capability *= r.p.GetFloat("combat.defense.corner_mult", 0.75)
	case r.ring.OnRopes(def.State.Pos):
		capability *= r.p.GetFloat("combat.defense.ropes_mult", 0.85)
	}
	switch def.State.Severity() {
	case fighter.SeverityModerate:
		capability *= r.p.GetFloat("combat.defense.moderate_mult", 0.85)
	case fighter.SeverityHeavy:
		capability *= r.p.GetFloat("combat.defense.heavy_mult", 0.70)
	}
	capability *= 1 + def.State.Mods.Defense

	switch defDecision.Action.Type {
	case action.TypeEvade:
		if r.src.Float64() < r.evadeChance(def, pn)*capability {
			return defenseOutcome{result: Evaded}
		}
	case action.TypeBlock:
		chance, reduction := r.blockChance(def, pn)
		if r.src.Float64() < chance*capability {
			return defenseOutcome{result: Blocked, damageMult: 1 - reduction}
		}
	default:
		// Passive partial reduction from ring awareness and experience.
		attr := def.Profile.Attr
		chance := (attr.RingAwareness*0.5 + attr.Experience*0.5) / 100 *
			r.p.GetFloat("combat.defense.passive.scale", 0.20)
		if r.src.Float64() < chance*capability {
			return defenseOutcome{
				result:     Landed,
				partial:    true,
				damageMult: r.p.GetFloat("combat.defense.passive.reduction", 0.50),
			}
		}
	}
	return clean
}

// evadeChance computes the head-movement/reflex evasion probability for one
// punch, capped at the configured maximum.
//
// Postcondition: Returns a value in [0, combat.defense.evade.cap].
func (r *Resolver) evadeChance(def *fighter.Fighter, pn action.Punch) float64 {
	attr := def.Profile.Attr
	chance := (attr.HeadMovement*0.6 + attr.Reflexes*0.4) / 100 *
		r.p.GetFloat("combat.defense.evade.scale", 0.55)

	// Body shots and looping punches are harder to slip.
	if pn.Target == action.Body {
		chance *= r.p.GetFloat("combat.defense.evade.body_penalty", 0.75)
	}
	if pn.Type == action.Hook || pn.Type == action.Uppercut {
		chance *= r.p.GetFloat("combat.defense.evade.hook_penalty", 0.85)
	}

	floor := r.p.GetFloat("combat.defense.evade.fatigue_floor", 0.60)
	chance *= floor + (1-floor)*def.State.StaminaFrac()

	expScale := r.p.GetFloat("combat.defense.evade.experience_scale", 0.002)
	chance *= 1 + (attr.Experience+attr.Adaptability)/2*expScale

	cap := r.p.GetFloat("combat.defense.evade.cap", 0.45)
	if chance > cap {
		chance = cap
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

// blockChance returns the stance-specific block probability and damage
// reduction for one punch.
func (r *Resolver) blockChance(def *fighter.Fighter, pn action.Punch) (chance, reduction float64) {
	stanceKey := "combat.defense.block." + def.Profile.Stance.String()
	chance = r.p.GetFloat(stanceKey+".base", 0.50)
	reduction = r.p.GetFloat(stanceKey+".reduction", 0.60)

	switch {
	case pn.Target == action.Body:
		chance *= r.p.GetFloat(stanceKey+".body_mult", 0.80)
	case pn.Type.IsStraight():
		chance *= r.p.GetFloat(stanceKey+".straight_mult", 1.0)
	default:
		chance *= r.p.GetFloat(stanceKey+".hook_mult", 1.0)
	}

	attr := def.Profile.Attr
	chance += attr.Blocking * r.p.GetFloat("combat.defense.block.skill_scale", 0.003)
	chance += attr.Parry * r.p.GetFloat("combat.defense.block.parry_bonus", 0.002)
	return chance, reduction
}
