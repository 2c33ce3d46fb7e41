package decision

import (
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/style"
)

// subStateFor draws the sub-state conditioned on the chosen primary state.
func (e *Engine) subStateFor(st fighter.TacticalState, f, opp *fighter.Fighter, dist float64) fighter.SubState {
	switch st {
	case fighter.Offensive:
		return e.offensiveSub(f, opp, dist)
	case fighter.Defensive:
		return e.defensiveSub(f)
	case fighter.Moving:
		return e.movingSub(f, dist)
	case fighter.Timing:
		return Pick(e.src, []Choice[fighter.SubState]{
			{Value: fighter.SubCounterWaiting, Weight: 1.0 + f.Profile.Attr.Reflexes/100},
			{Value: fighter.SubFeinting, Weight: 0.6 + f.Profile.Attr.Technique/200},
		})
	case fighter.Neutral:
		return fighter.SubProbing
	case fighter.Clinching:
		return Pick(e.src, []Choice[fighter.SubState]{
			{Value: fighter.SubHolding, Weight: 1.2},
			{Value: fighter.SubLeaning, Weight: 0.8},
		})
	default:
		return fighter.SubNone
	}
}

// offensiveSub selects among JABBING, POWER_SHOT, COMBINATION, and BODY_WORK
// by offensive leaning, distance, stamina band, and the opponent-hurt flag.
func (e *Engine) offensiveSub(f, opp *fighter.Fighter, dist float64) fighter.SubState {
	jab, power, combo, body := 1.0, 0.8, 0.8, 0.6

	switch f.Profile.Offense {
	case style.Volume:
		jab *= 1.3
		combo *= 1.5
	case style.PowerFirst:
		power *= 1.7
	case style.BodySnatcher:
		body *= 2.0
	}

	// Distance: jabs work at range, body work and power inside.
	if dist >= e.p.GetFloat("combat.accuracy.reach_range", 3.5) {
		jab *= 1.6
		body *= 0.5
	} else if dist <= 2.5 {
		jab *= 0.7
		power *= 1.2
		body *= 1.4
	}

	// Stamina: fresh fighters open up, tired fighters paw the jab.
	frac := f.State.StaminaFrac()
	if frac >= e.p.GetFloat("decision.stamina.high", 0.80) {
		power *= 1.2
		combo *= 1.3
	} else if frac < e.p.GetFloat("decision.stamina.critical", 0.20) {
		jab *= 1.8
		power *= 0.5
		combo *= 0.4
	}

	// A hurt opponent invites the finisher.
	if opp.State.Hurt {
		power *= 1.6 + f.Profile.Attr.KillerInstinct/200
		combo *= 1.3
	}

	return Pick(e.src, []Choice[fighter.SubState]{
		{Value: fighter.SubJabbing, Weight: jab},
		{Value: fighter.SubPowerShot, Weight: power},
		{Value: fighter.SubCombination, Weight: combo},
		{Value: fighter.SubBodyWork, Weight: body},
	})
}

// defensiveSub selects the defensive posture from the defensive attributes.
// Hurt fighters favor covering up.
func (e *Engine) defensiveSub(f *fighter.Fighter) fighter.SubState {
	attr := f.Profile.Attr
	block := 0.8 + attr.Blocking/100
	evade := 0.6 + (attr.HeadMovement+attr.Reflexes)/200
	cover := 0.3
	if f.State.Hurt {
		cover *= 3.0
		evade *= 0.6
	}
	if f.Profile.Stance == style.PhillyShell {
		evade *= 1.3
	}
	return Pick(e.src, []Choice[fighter.SubState]{
		{Value: fighter.SubBlocking, Weight: block},
		{Value: fighter.SubEvading, Weight: evade},
		{Value: fighter.SubCovering, Weight: cover},
	})
}

// movingSub selects movement intent: close when far, escape when trapped,
// otherwise circle or give ground.
func (e *Engine) movingSub(f *fighter.Fighter, dist float64) fighter.SubState {
	if e.ring.IsCornered(f.State.Pos) || e.ring.OnRopes(f.State.Pos) {
		return fighter.SubEscaping
	}
	advance, retreat, circle := 0.8, 0.5, 1.0
	if dist > e.p.GetFloat("decision.spatial.too_far", 5.0) {
		advance *= 3.0
		retreat *= 0.2
	}
	if f.Profile.Style == style.Swarmer || f.Profile.Style == style.Slugger {
		advance *= 1.5
	}
	if f.Profile.Style == style.OutBoxer {
		circle *= 1.5
		retreat *= 1.3
	}
	return Pick(e.src, []Choice[fighter.SubState]{
		{Value: fighter.SubAdvancing, Weight: advance},
		{Value: fighter.SubRetreating, Weight: retreat},
		{Value: fighter.SubCircling, Weight: circle},
	})
}
