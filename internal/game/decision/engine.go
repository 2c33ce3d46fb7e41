// Package decision implements the per-tick decision state machine: it turns
// a fighter's situation, style, psychology, and memory into a
// (state, sub-state, action) tuple via weighted random selection.
package decision

import (
	"go.uber.org/zap"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/ring"
	"github.com/pugilist/ringside/internal/game/rng"
	"github.com/pugilist/ringside/internal/game/stamina"
)

// Context carries the tick-level facts a decision depends on.
type Context struct {
	// Tick is the absolute tick index within the fight.
	Tick int
	// Round is the current round, starting at 1.
	Round int
	// TotalRounds is the scheduled fight length.
	TotalRounds int
	// ScoreDiff is this fighter's scorecard differential: positive when ahead.
	ScoreDiff int
	// OppLastAction is the opponent's previous-tick action type, TypeUnknown
	// on the first tick.
	OppLastAction action.Type
}

// Decision is the engine's per-tick output for one fighter.
type Decision struct {
	State  fighter.TacticalState
	Sub    fighter.SubState
	Action action.Action
	// Substituted is true when the intended action was unaffordable and the
	// stamina-gated alternative was taken instead.
	Substituted bool
	// GateReason is the gate failure reason when Substituted is true.
	GateReason string
}

// Engine produces decisions. It owns no per-fight state: decision memory
// lives on the Fighter, so one Engine may serve many concurrent fights as
// long as each fight has its own rng.Source or the source is locked.
type Engine struct {
	p      *params.Store
	econ   *stamina.Economy
	src    rng.Source
	ring   ring.Ring
	logger *zap.Logger
}

// NewEngine builds a decision Engine.
//
// Precondition: p, econ, and src must be non-nil.
// Postcondition: logger defaults to zap.NewNop().
func NewEngine(p *params.Store, econ *stamina.Economy, src rng.Source, r ring.Ring, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{p: p, econ: econ, src: src, ring: r, logger: logger}
}

// Decide produces one fighter's (state, sub-state, action) tuple for this
// tick. It reads the opponent's public state, writes only the fighter's own
// memory, and never returns an action the fighter cannot afford.
//
// Precondition: f and opp must be non-nil with live State.
// Postcondition: the returned action passes the stamina gate; the sub-state
// is valid for the returned state.
func (e *Engine) Decide(f, opp *fighter.Fighter, ctx Context) Decision {
	mem := f.Memory()
	if ctx.OppLastAction != action.TypeUnknown {
		mem.ObserveOpponent(ctx.OppLastAction)
	}

	// Knocked-down fighters have no agency; the orchestrator owns the count.
	if f.State.Tactical == fighter.KnockedDown {
		return Decision{State: fighter.KnockedDown, Sub: fighter.SubNone, Action: action.Wait()}
	}

	dist := f.State.Pos.Distance(opp.State.Pos)
	wasTiming := f.State.Tactical == fighter.Timing

	st := e.stateFor(f, opp, ctx, dist)
	sub := e.subStateFor(st, f, opp, dist)
	act := e.actionFor(st, sub, f, opp, dist, wasTiming)

	d := Decision{State: st, Sub: sub, Action: act}
	if ok, reason := e.econ.CanPerform(f, act); !ok {
		alt := e.econ.GatedAlternative(f, dist)
		d = Decision{
			Action:      alt,
			Substituted: true,
			GateReason:  reason,
		}
		// Recompute the state pair to match the substitute.
		switch alt.Type {
		case action.TypeBlock:
			d.State, d.Sub = fighter.Defensive, fighter.SubBlocking
		case action.TypeClinch:
			d.State, d.Sub = fighter.Clinching, fighter.SubHolding
		default:
			d.State, d.Sub = fighter.Neutral, fighter.SubProbing
		}
	}

	e.logger.Debug("decision",
		zap.String("fighter", f.Profile.Name),
		zap.String("state", d.State.String()),
		zap.String("sub", d.Sub.String()),
		zap.String("action", d.Action.Type.String()),
		zap.Bool("substituted", d.Substituted),
		zap.Float64("distance", dist),
	)
	return d
}

// stateFor runs the weight pipeline and draws the primary state.
func (e *Engine) stateFor(f, opp *fighter.Fighter, ctx Context, dist float64) fighter.TacticalState {
	w := baseWeightsFor(f.Profile.Style)

	e.applyStaminaBand(w, f)
	e.applyScorecard(w, f, ctx)
	e.applyRisk(w, f, ctx)
	e.applySpatial(w, f, dist)
	e.applyMatchup(w, f, opp)
	e.applyReach(w, f, opp, dist)
	e.applyMemory(w, f, ctx)
	e.applyStrategy(w, f, ctx)
	e.applyStatus(w, f)

	choices := make([]Choice[fighter.TacticalState], 0, len(selectableStates))
	for _, st := range selectableStates {
		choices = append(choices, Choice[fighter.TacticalState]{Value: st, Weight: w[st]})
	}
	return Pick(e.src, choices)
}
