package decision

import (
	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/style"
)

// punchWeights holds one selection weight per punch type, in
// action.AllPunchTypes order.
type punchWeights [4]float64

// basePunchWeights is the per-style punch-type starting table, indexed
// jab/cross/hook/uppercut.
var basePunchWeights = map[style.Style]punchWeights{
	style.OutBoxer:       {2.0, 1.0, 0.6, 0.3},
	style.Swarmer:        {0.9, 1.0, 1.5, 1.0},
	style.Slugger:        {0.7, 1.3, 1.5, 1.1},
	style.BoxerPuncher:   {1.3, 1.2, 1.0, 0.7},
	style.Counterpuncher: {1.2, 1.4, 0.8, 0.6},
}

// punchTableFor builds the adjusted punch-type weights for one selection:
// style base, then sub-state, stamina band, and distance band adjustments.
func (e *Engine) punchTableFor(f *fighter.Fighter, sub fighter.SubState, dist float64) punchWeights {
	w, ok := basePunchWeights[f.Profile.Style]
	if !ok {
		w = basePunchWeights[style.BoxerPuncher]
	}

	switch sub {
	case fighter.SubJabbing:
		w[action.Jab] *= 3.0
		w[action.Uppercut] *= 0.3
	case fighter.SubPowerShot:
		w[action.Jab] *= 0.1
		w[action.Cross] *= 1.5
		w[action.Hook] *= 1.5
		w[action.Uppercut] *= 1.4
	case fighter.SubBodyWork:
		w[action.Hook] *= 1.5
		w[action.Cross] *= 1.2
		w[action.Jab] *= 0.8
	}

	// Stamina band: fresh favors power, tired favors the jab.
	frac := f.State.StaminaFrac()
	if frac >= e.p.GetFloat("decision.stamina.high", 0.80) {
		w[action.Cross] *= 1.2
		w[action.Hook] *= 1.2
		w[action.Uppercut] *= 1.2
	} else if frac < e.p.GetFloat("decision.stamina.critical", 0.20) {
		w[action.Jab] *= 2.0
		w[action.Cross] *= 0.6
		w[action.Hook] *= 0.5
		w[action.Uppercut] *= 0.4
	}

	// Distance band: hooks and uppercuts live inside, jabs at range.
	if dist <= 2.5 {
		w[action.Hook] *= 1.6
		w[action.Uppercut] *= 1.8
		w[action.Jab] *= 0.6
		w[action.Cross] *= 0.8
	} else if dist >= 3.5 {
		w[action.Jab] *= 1.8
		w[action.Cross] *= 1.1
		w[action.Hook] *= 0.5
		w[action.Uppercut] *= 0.3
	}

	return w
}

// drawPunch draws one punch from the adjusted table, picking the target from
// the sub-state and body-punching skill.
func (e *Engine) drawPunch(f *fighter.Fighter, sub fighter.SubState, dist float64) action.Punch {
	w := e.punchTableFor(f, sub, dist)
	choices := make([]Choice[action.PunchType], 0, 4)
	for _, pt := range action.AllPunchTypes() {
		choices = append(choices, Choice[action.PunchType]{Value: pt, Weight: w[pt]})
	}
	pt := Pick(e.src, choices)

	target := action.Head
	if sub == fighter.SubBodyWork {
		target = action.Body
	} else if pt != action.Uppercut {
		bodyChance := 0.1 + f.Profile.Attr.BodyPunching/500
		if f.Profile.Offense == style.BodySnatcher {
			bodyChance *= 2
		}
		if e.src.Float64() < bodyChance {
			target = action.Body
		}
	}
	return action.Punch{Type: pt, Target: target}
}

// comboLength draws a combination length within the weight class's cap,
// shortened when tired and stretched when fresh.
//
// Postcondition: Returns at least 2.
func (e *Engine) comboLength(f *fighter.Fighter) int {
	class := f.Profile.WeightClass(e.p)
	max := e.p.GetInt("weight_class."+class.String()+".max_combo", 3)

	frac := f.State.StaminaFrac()
	if frac < e.p.GetFloat("decision.stamina.critical", 0.20) {
		max = 2
	} else if frac < 0.5 && max > 2 {
		max--
	}
	if max < 2 {
		max = 2
	}
	return 2 + e.src.Intn(max-1)
}

// actionFor constructs the concrete action for the chosen state pair.
// wasTiming marks punches thrown off the TIMING state as counters.
func (e *Engine) actionFor(st fighter.TacticalState, sub fighter.SubState, f, opp *fighter.Fighter, dist float64, wasTiming bool) action.Action {
	switch st {
	case fighter.Offensive:
		var a action.Action
		if sub == fighter.SubCombination {
			n := e.comboLength(f)
			seq := make([]action.Punch, 0, n)
			// Combinations open behind the jab more often than not.
			if e.src.Float64() < 0.7 {
				seq = append(seq, action.Punch{Type: action.Jab, Target: action.Head})
			}
			for len(seq) < n {
				seq = append(seq, e.drawPunch(f, sub, dist))
			}
			a = action.NewCombination(seq...)
		} else {
			p := e.drawPunch(f, sub, dist)
			a = action.NewPunch(p.Type, p.Target)
		}
		a.Counter = wasTiming
		return a

	case fighter.Defensive:
		if sub == fighter.SubEvading {
			return action.Evade()
		}
		return action.Block()

	case fighter.Moving:
		switch sub {
		case fighter.SubAdvancing:
			return action.Move(action.Advance)
		case fighter.SubRetreating:
			return action.Move(action.Retreat)
		default:
			if e.src.Float64() < 0.5 {
				return action.Move(action.CircleLeft)
			}
			return action.Move(action.CircleRight)
		}

	case fighter.Timing:
		if sub == fighter.SubFeinting {
			return action.Feint()
		}
		return action.Wait()

	case fighter.Clinching:
		return action.Clinch()

	case fighter.Neutral:
		// Probing: paw a jab or stay patient.
		if e.src.Float64() < 0.4 {
			a := action.NewPunch(action.Jab, action.Head)
			a.Counter = wasTiming
			return a
		}
		return action.Wait()

	default:
		return action.Wait()
	}
}
