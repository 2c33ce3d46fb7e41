package resolve

import (
	"math"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/fighter"
)

// damage composes the multiplicative damage chain for one landed punch.
// defenseMult carries the block/partial scaling from defense resolution.
//
// Postcondition: Returns >= 1.
func (r *Resolver) damage(att, def *fighter.Fighter, pn action.Punch, counter bool, dist float64, defenseMult float64) int {
	attr := att.Profile.Attr

	dmg := r.p.GetFloat("combat.damage.base."+pn.Type.String(), 4.0)

	// Weight class output profile.
	class := att.Profile.WeightClass(r.p)
	dmg *= r.p.GetFloat("weight_class."+class.String()+".damage_mult", 1.0)

	// Weight differential: heavier attacker bonus capped, lighter attacker
	// penalty floored.
	if def.Profile.WeightLbs > 0 {
		diff := 1 + (att.Profile.WeightLbs-def.Profile.WeightLbs)/def.Profile.WeightLbs*1.2
		cap := r.p.GetFloat("combat.damage.weight_diff_cap", 2.5)
		floor := r.p.GetFloat("combat.damage.weight_diff_floor", 0.3)
		dmg *= math.Min(math.Max(diff, floor), cap)
	}

	// Power attribute, with an elite knockout-power premium on power punches.
	dmg *= 0.5 + attr.Power/100
	if pn.Type.IsPower() && attr.KnockoutPower >= r.p.GetFloat("combat.damage.elite_power_floor", 90) {
		dmg *= r.p.GetFloat("combat.damage.elite_power_bonus", 1.15)
	}
	dmg *= 1 + att.State.Mods.Power

	// Distance deviation, shared shape with the accuracy chain.
	optimal := r.p.GetFloat("combat.range.optimal."+pn.Type.String(), 3.0)
	devPenalty := 1 - math.Abs(dist-optimal)*r.p.GetFloat("combat.accuracy.distance_penalty", 0.12)
	if devPenalty < 0.4 {
		devPenalty = 0.4
	}
	dmg *= devPenalty

	if counter {
		dmg *= r.p.GetFloat("combat.accuracy.counter_bonus", 1.25)
	}

	// Block reduction or partial halving from defense resolution.
	dmg *= defenseMult

	if pn.Target == action.Body {
		dmg *= 1 + attr.BodyPunching*r.p.GetFloat("combat.damage.body_skill_scale", 0.002)
	}

	floor := r.p.GetFloat("combat.damage.fatigue_floor", 0.6)
	dmg *= floor + (1-floor)*att.State.StaminaFrac()

	// ±variance band.
	v := r.p.GetFloat("combat.damage.variance", 0.15)
	dmg *= 1 - v + r.src.Float64()*2*v

	// A stunned defender takes extra.
	if def.State.StunTicks > 0 {
		dmg *= r.p.GetFloat("combat.damage.stun_vulnerability", 1.25)
	}

	out := int(math.Round(dmg))
	if out < 1 {
		out = 1
	}
	return out
}

// checkDirectKnockdown runs the threshold-and-resistance direct knockdown
// mechanism for one landed punch.
//
// Postcondition: Returns true iff the defender goes down.
func (r *Resolver) checkDirectKnockdown(def *fighter.Fighter, dmg int) bool {
	attr := def.Profile.Attr
	threshold := r.p.GetFloat("combat.knockdown.threshold_base", 18) * (0.5 + attr.Chin/100)

	// Accumulated damage and an empty tank soften the threshold.
	accum := def.State.TotalDamage()
	accumScale := r.p.GetFloat("combat.knockdown.accumulated_scale", 0.35)
	threshold *= 1 - math.Min(accum/200, accumScale)
	frac := def.State.StaminaFrac()
	threshold *= 1 - (1-frac)*r.p.GetFloat("combat.knockdown.low_stamina_scale", 0.25)

	// Fresh defenders require a significantly bigger shot.
	if accum < 10 {
		threshold *= r.p.GetFloat("combat.knockdown.fresh_mult", 1.3)
	}

	if float64(dmg) < threshold {
		return false
	}

	// Chin-resistance roll with steep non-linear bonuses for elite chins.
	survive := attr.Chin / r.p.GetFloat("combat.knockdown.resist_scale", 130)
	if attr.Chin >= 80 {
		survive += r.p.GetFloat("combat.knockdown.chin_80_bonus", 0.06)
	}
	if attr.Chin >= 85 {
		survive += r.p.GetFloat("combat.knockdown.chin_85_bonus", 0.05)
	}
	if attr.Chin >= 90 {
		survive += r.p.GetFloat("combat.knockdown.chin_90_bonus", 0.05)
	}
	exhaustion := (1 - frac) * (1 - frac) * r.p.GetFloat("combat.knockdown.exhaustion_penalty", 0.20)
	survive -= exhaustion

	return r.src.Float64() >= survive
}

// checkFlashKnockdown runs the rarer single-shot mechanism: it requires a
// clean power punch and either prior damage or an exceptional shot, and is
// hard-capped per chin tier regardless of the other bonuses.
//
// Postcondition: Returns true iff the defender goes down.
func (r *Resolver) checkFlashKnockdown(att, def *fighter.Fighter, pn action.Punch, dmg int, partial bool, round int) bool {
	if !pn.Type.IsPower() || partial {
		return false
	}

	accum := def.State.TotalDamage()
	directThreshold := r.p.GetFloat("combat.knockdown.threshold_base", 18) *
		(0.5 + def.Profile.Attr.Chin/100)
	exceptional := float64(dmg) >= directThreshold*0.9
	if accum < 15 && !exceptional {
		return false
	}

	ko := att.Profile.Attr.KnockoutPower
	chin := def.Profile.Attr.Chin
	scale := r.p.GetFloat("combat.knockdown.flash.power_chin_scale", 400)
	prob := 0.004 + math.Max(0, ko-chin)/scale

	if ko < r.p.GetFloat("combat.knockdown.flash.min_power", 60) {
		prob *= r.p.GetFloat("combat.knockdown.flash.weak_power_damp", 0.5)
	}
	if ko >= r.p.GetFloat("combat.knockdown.flash.elite_power_floor", 92) {
		prob *= r.p.GetFloat("combat.knockdown.flash.elite_power_amp", 1.4)
		// The early-round bonus belongs to elite finishers only.
		if round <= r.p.GetInt("combat.knockdown.flash.early_round_limit", 3) {
			prob *= r.p.GetFloat("combat.knockdown.flash.early_round_bonus", 1.3)
		}
	}
	if chin >= 85 {
		prob *= 0.6
	}

	switch {
	case accum > 40:
		prob *= r.p.GetFloat("combat.knockdown.flash.accumulated_amp", 1.5)
	case accum < 10:
		prob *= r.p.GetFloat("combat.knockdown.flash.fresh_damp", 0.45)
	}
	if def.State.StaminaFrac() < 0.25 {
		prob *= r.p.GetFloat("combat.knockdown.flash.low_stamina_amp", 1.35)
	}

	// Per-chin-tier hard cap, applied last so no bonus stack escapes it.
	var cap float64
	switch {
	case chin >= 90:
		cap = r.p.GetFloat("combat.knockdown.flash.cap_iron", 0.008)
	case chin >= 85:
		cap = r.p.GetFloat("combat.knockdown.flash.cap_great", 0.015)
	case chin >= 75:
		cap = r.p.GetFloat("combat.knockdown.flash.cap_good", 0.03)
	default:
		cap = r.p.GetFloat("combat.knockdown.flash.cap_default", 0.06)
	}
	if prob > cap {
		prob = cap
	}

	return r.src.Float64() < prob
}
