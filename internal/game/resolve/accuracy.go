package resolve

import (
	"math"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/style"
)

// accuracy composes the full hit-chance multiplier chain for one punch and
// clamps the result to the documented range.
//
// Postcondition: Returns a value in [combat.accuracy.min, combat.accuracy.max].
func (r *Resolver) accuracy(att, def *fighter.Fighter, pn action.Punch, counter bool, defDecision decision.Decision, dist float64, round int) float64 {
	attr := att.Profile.Attr

	acc := r.p.GetFloat("combat.accuracy.base."+pn.Type.String(), 0.5)

	// Attacker skill and hand speed.
	acc *= 0.5 + (attr.Technique*0.5+attr.Accuracy*0.5)/100
	acc *= 0.85 + attr.HandSpeed/100*0.3
	acc *= 1 + att.State.Mods.Accuracy
	acc *= 1 + att.State.Mods.Speed*0.5

	// Distance deviation from the punch's optimal range.
	optimal := r.p.GetFloat("combat.range.optimal."+pn.Type.String(), 3.0)
	dev := math.Abs(dist - optimal)
	devPenalty := 1 - dev*r.p.GetFloat("combat.accuracy.distance_penalty", 0.12)
	if devPenalty < 0.4 {
		devPenalty = 0.4
	}
	acc *= devPenalty

	// Reach differential: rewarded at range, punished when the long fighter
	// is trapped close.
	adv := att.ReachAdvantage(def)
	if dist >= r.p.GetFloat("combat.accuracy.reach_range", 3.5) {
		acc *= 1 + adv*r.p.GetFloat("combat.accuracy.reach_per_inch", 0.015)
	} else if adv > 0 && dist < 2.0 {
		acc *= r.p.GetFloat("combat.accuracy.trapped_penalty", 0.90)
	}

	// Defender movement and style.
	if defDecision.Action.Type == action.TypeMove {
		acc *= r.p.GetFloat("combat.accuracy.movement_penalty", 0.88)
	}
	if def.Profile.Style == style.OutBoxer {
		acc *= 0.96
	}

	if counter {
		acc *= r.p.GetFloat("combat.accuracy.counter_bonus", 1.25)
	}

	// Inside/outside fighting bonuses by distance.
	switch att.Profile.Style {
	case style.Swarmer, style.Slugger:
		if dist <= 2.5 {
			acc *= r.p.GetFloat("combat.accuracy.inside_bonus", 1.15)
		}
	case style.OutBoxer, style.Counterpuncher:
		if dist >= 3.5 {
			acc *= r.p.GetFloat("combat.accuracy.outside_bonus", 1.15)
		}
	}

	acc *= style.Matchup(att.Profile.Style, def.Profile.Style)

	// First-step speed advantage matters in close quarters.
	if dist <= 2.5 && attr.FirstStep-def.Profile.Attr.FirstStep >= 10 {
		acc *= r.p.GetFloat("combat.accuracy.first_step_close", 1.10)
	}

	if def.State.Hurt {
		acc *= r.p.GetFloat("combat.accuracy.hurt_target_bonus", 1.20)
	}

	// Attacker fatigue.
	floor := r.p.GetFloat("combat.accuracy.fatigue_floor", 0.70)
	acc *= floor + (1-floor)*att.State.StaminaFrac()

	// Adaptability scales with rounds of data; experience is flat.
	acc *= 1 + attr.Adaptability/100*r.p.GetFloat("combat.accuracy.adaptability_scale", 0.008)*float64(round-1)
	acc *= 1 + (attr.Experience-50)/1000

	return r.clampAccuracy(acc)
}

// clampAccuracy bounds a hit chance to the documented range.
func (r *Resolver) clampAccuracy(acc float64) float64 {
	min := r.p.GetFloat("combat.accuracy.min", 0.10)
	max := r.p.GetFloat("combat.accuracy.max", 0.95)
	if acc < min {
		return min
	}
	if acc > max {
		return max
	}
	return acc
}
