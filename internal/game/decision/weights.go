package decision

import (
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/style"
)

// selectableStates is the fixed iteration order for state weights.
// KnockedDown and Recovered are never selected; they are forced by the fight
// orchestrator.
var selectableStates = []fighter.TacticalState{
	fighter.Neutral,
	fighter.Offensive,
	fighter.Defensive,
	fighter.Timing,
	fighter.Moving,
	fighter.Clinching,
}

// stateWeights holds one weight per selectable state.
type stateWeights map[fighter.TacticalState]float64

// baseStateWeights is the per-primary-style starting weight table. Every
// situational modifier multiplies onto these.
var baseStateWeights = map[style.Style]stateWeights{
	style.OutBoxer: {
		fighter.Neutral: 1.0, fighter.Offensive: 1.0, fighter.Defensive: 0.8,
		fighter.Timing: 0.9, fighter.Moving: 1.4, fighter.Clinching: 0.3,
	},
	style.Swarmer: {
		fighter.Neutral: 0.7, fighter.Offensive: 1.6, fighter.Defensive: 0.5,
		fighter.Timing: 0.5, fighter.Moving: 0.8, fighter.Clinching: 0.6,
	},
	style.Slugger: {
		fighter.Neutral: 0.9, fighter.Offensive: 1.4, fighter.Defensive: 0.5,
		fighter.Timing: 0.7, fighter.Moving: 0.5, fighter.Clinching: 0.4,
	},
	style.BoxerPuncher: {
		fighter.Neutral: 1.0, fighter.Offensive: 1.2, fighter.Defensive: 0.8,
		fighter.Timing: 1.0, fighter.Moving: 0.9, fighter.Clinching: 0.3,
	},
	style.Counterpuncher: {
		fighter.Neutral: 1.1, fighter.Offensive: 0.7, fighter.Defensive: 1.1,
		fighter.Timing: 1.6, fighter.Moving: 0.9, fighter.Clinching: 0.3,
	},
}

// baseWeightsFor returns a fresh copy of the style's base table.
func baseWeightsFor(s style.Style) stateWeights {
	base, ok := baseStateWeights[s]
	if !ok {
		base = baseStateWeights[style.BoxerPuncher]
	}
	out := make(stateWeights, len(base))
	for k, v := range base {
		out[k] = v
	}
	return out
}

// mul multiplies the weight of state st by factor, flooring at a small
// positive epsilon so no selectable state ever fully vanishes.
func (w stateWeights) mul(st fighter.TacticalState, factor float64) {
	v := w[st] * factor
	if v < 0.001 {
		v = 0.001
	}
	w[st] = v
}

// --- situational modifiers ------------------------------------------------
// Each modifier applies an independent multiplicative adjustment to the
// weight table. They run in a fixed order from Engine.stateFor.

// applyStaminaBand shifts weights by remaining stamina: below the critical
// band a fighter conserves unless heart and killer instinct push desperation;
// a fresh fighter leans into aggression.
func (e *Engine) applyStaminaBand(w stateWeights, f *fighter.Fighter) {
	frac := f.State.StaminaFrac()
	critical := e.p.GetFloat("decision.stamina.critical", 0.20)
	high := e.p.GetFloat("decision.stamina.high", 0.80)

	switch {
	case frac < critical:
		conserve := e.p.GetFloat("decision.stamina.conserve_mult", 2.2)
		w.mul(fighter.Defensive, conserve)
		w.mul(fighter.Clinching, conserve)

		attr := f.Profile.Attr
		floor := e.p.GetFloat("decision.stamina.desperation_floor", 85)
		if (attr.Heart+attr.KillerInstinct)/2 >= floor {
			w.mul(fighter.Offensive, e.p.GetFloat("decision.stamina.desperation_mult", 1.5))
		} else {
			w.mul(fighter.Offensive, e.p.GetFloat("decision.stamina.aggression_cut", 0.35))
		}
	case frac >= high:
		w.mul(fighter.Offensive, e.p.GetFloat("decision.stamina.fresh_aggression", 1.3))
	}
}

// applyScorecard protects a lead or chases a deficit, shaped by rounds
// remaining and fight IQ. A smart fighter ahead late shuts the fight down; a
// fighter behind late opens up.
func (e *Engine) applyScorecard(w stateWeights, f *fighter.Fighter, ctx Context) {
	if ctx.ScoreDiff == 0 || ctx.TotalRounds == 0 {
		return
	}
	remaining := float64(ctx.TotalRounds-ctx.Round) / float64(ctx.TotalRounds)
	urgency := (1 - remaining) * (0.5 + f.Profile.Attr.FightIQ/200)

	if ctx.ScoreDiff > 0 {
		protect := 1 + (e.p.GetFloat("decision.scorecard.protect_mult", 1.35)-1)*urgency
		w.mul(fighter.Defensive, protect)
		w.mul(fighter.Moving, protect)
	} else {
		chase := 1 + (e.p.GetFloat("decision.scorecard.chase_mult", 1.5)-1)*urgency
		w.mul(fighter.Offensive, chase)
		w.mul(fighter.Timing, 1/chase)
	}
}

// riskScore derives a 0–1 appetite for risk from the mental attributes,
// further modulated by hurt/behind/fresh status.
func (e *Engine) riskScore(f *fighter.Fighter, ctx Context) float64 {
	attr := f.Profile.Attr
	score := (attr.Heart*0.3 + attr.KillerInstinct*0.3 +
		attr.Confidence*0.2 + (100-attr.Composure)*0.2) / 100

	if f.State.Hurt {
		score *= e.p.GetFloat("decision.risk.hurt_damp", 0.6)
	}
	if ctx.ScoreDiff < 0 {
		score *= e.p.GetFloat("decision.risk.behind_boost", 1.3)
	}
	if f.State.StaminaFrac() >= e.p.GetFloat("decision.stamina.high", 0.80) {
		score *= e.p.GetFloat("decision.risk.fresh_boost", 1.1)
	}
	return clamp01(score)
}

// applyRisk converts the risk score into an aggression tilt around neutral.
func (e *Engine) applyRisk(w stateWeights, f *fighter.Fighter, ctx Context) {
	risk := e.riskScore(f, ctx)
	w.mul(fighter.Offensive, 0.7+0.6*risk)
	w.mul(fighter.Defensive, 1.3-0.6*risk)
}

// applySpatial reacts to raw geometry: out of range forces movement; a
// cornered or roped fighter looks to move and punch his way out.
func (e *Engine) applySpatial(w stateWeights, f *fighter.Fighter, dist float64) {
	if dist > e.p.GetFloat("decision.spatial.too_far", 5.0) {
		w.mul(fighter.Moving, e.p.GetFloat("decision.spatial.far_move_mult", 2.5))
		w.mul(fighter.Offensive, 0.4)
		w.mul(fighter.Clinching, 0.001)
		return
	}
	if e.ring.IsCornered(f.State.Pos) || e.ring.OnRopes(f.State.Pos) {
		w.mul(fighter.Moving, e.p.GetFloat("decision.spatial.cornered_move_mult", 2.0))
		w.mul(fighter.Offensive, e.p.GetFloat("decision.spatial.cornered_offense_mult", 1.4))
	}
}

// applyMatchup applies the pairwise style advantage to the proactive states.
func (e *Engine) applyMatchup(w stateWeights, f, opp *fighter.Fighter) {
	m := style.Matchup(f.Profile.Style, opp.Profile.Style)
	w.mul(fighter.Offensive, m)
	w.mul(fighter.Timing, m)
}

// applyReach rewards a long fighter working at range and pushes a short
// fighter to close.
func (e *Engine) applyReach(w stateWeights, f, opp *fighter.Fighter, dist float64) {
	adv := f.ReachAdvantage(opp)
	threshold := e.p.GetFloat("decision.reach.advantage_threshold", 3.0)
	switch {
	case adv >= threshold && dist >= e.p.GetFloat("combat.accuracy.reach_range", 3.5):
		w.mul(fighter.Offensive, e.p.GetFloat("decision.reach.outside_mult", 1.2))
	case adv <= -threshold:
		w.mul(fighter.Moving, 1.25)
	}
}

// applyMemory suppresses offense inside the recent-hurt and recent-knockdown
// windows. Composure and heart shrink the suppression.
func (e *Engine) applyMemory(w stateWeights, f *fighter.Fighter, ctx Context) {
	mem := f.Memory()
	attr := f.Profile.Attr
	damp := e.p.GetFloat("decision.memory.offense_damp", 0.55)
	// High composure and heart shrink the suppression toward 1.
	relief := clamp01((attr.Composure + attr.Heart) / 250)
	damp = damp + (1-damp)*relief

	hurtWindow := e.p.GetInt("decision.memory.hurt_window", 30)
	if mem.LastHurtTick >= 0 && ctx.Tick-mem.LastHurtTick < hurtWindow {
		w.mul(fighter.Offensive, damp)
		w.mul(fighter.Defensive, 1.3)
	}
	kdWindow := e.p.GetInt("decision.memory.knockdown_window", 60)
	if mem.LastKnockdownTick >= 0 && ctx.Tick-mem.LastKnockdownTick < kdWindow {
		w.mul(fighter.Offensive, damp*damp)
		w.mul(fighter.Defensive, 1.5)
		w.mul(fighter.Clinching, 1.5)
	}
}

// applyStrategy applies this round's pseudo-random strategy term, generated
// once per round with variance inversely tied to composure.
func (e *Engine) applyStrategy(w stateWeights, f *fighter.Fighter, ctx Context) {
	mem := f.Memory()
	noise, ok := mem.RoundStrategy[ctx.Round]
	if !ok {
		variance := e.p.GetFloat("decision.strategy.variance", 0.25) *
			(1 - f.Profile.Attr.Composure/150)
		noise = (e.src.Float64()*2 - 1) * variance
		mem.RoundStrategy[ctx.Round] = noise

		// A gassed fighter holding the cards may write the round off.
		if noise < -0.1 && f.State.StaminaFrac() < 0.5 && ctx.ScoreDiff > 0 {
			mem.MarkRest(ctx.Round)
		}
	}
	w.mul(fighter.Offensive, 1+noise)
	w.mul(fighter.Defensive, 1-noise)
	if mem.IsResting(ctx.Round) {
		w.mul(fighter.Offensive, 0.6)
		w.mul(fighter.Neutral, 1.4)
	}
}

// applyStatus folds in the externally injected buff/debuff scalars.
func (e *Engine) applyStatus(w stateWeights, f *fighter.Fighter) {
	mods := f.State.Mods
	if mods.Aggression != 0 {
		w.mul(fighter.Offensive, 1+mods.Aggression)
	}
	if mods.Defense != 0 {
		w.mul(fighter.Defensive, 1+mods.Defense)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
