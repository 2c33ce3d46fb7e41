// Package engine runs complete fights: it drives the per-tick
// decide/resolve/apply loop, owns knockdown counts and stoppages, judges
// rounds, and produces the final outcome.
package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/damage"
	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/resolve"
	"github.com/pugilist/ringside/internal/game/ring"
	"github.com/pugilist/ringside/internal/game/rng"
	"github.com/pugilist/ringside/internal/game/stamina"
)

// Method is how a fight ended.
type Method int

const (
	MethodDecision Method = iota
	MethodDraw
	MethodKO
	MethodTKO
)

// String returns the human-readable method label.
func (m Method) String() string {
	switch m {
	case MethodDecision:
		return "decision"
	case MethodDraw:
		return "draw"
	case MethodKO:
		return "ko"
	case MethodTKO:
		return "tko"
	default:
		return "unknown"
	}
}

// Outcome is the final result of a fight.
type Outcome struct {
	FightID string
	// WinnerID and WinnerName are empty for a draw.
	WinnerID   string
	WinnerName string
	Method     Method
	// Round and Tick locate a stoppage; Round is the final round for
	// decisions.
	Round int
	Tick  int
	// Scores are the judged rounds, complete through the last round fought.
	Scores  []RoundScore
	PointsA int
	PointsB int
	// KnockdownsA and KnockdownsB count times each fighter was dropped.
	KnockdownsA int
	KnockdownsB int
}

// downState tracks one fighter's active knockdown count.
type downState struct {
	down  bool
	count int
	flash bool
}

// Fight runs one bout between two fighters. It owns all per-fight state and
// must not be shared across goroutines; run parallel fights by constructing
// independent Fights over a shared immutable parameter store.
type Fight struct {
	id     string
	p      *params.Store
	ring   ring.Ring
	a, b   *fighter.Fighter
	dec    *decision.Engine
	res    *resolve.Resolver
	dmg    *damage.Model
	econ   *stamina.Economy
	src    rng.Source
	logger *zap.Logger
	card   *Scorecard

	rounds, ticksPerRound int
	lastA, lastB          action.Type
	downA, downB          downState
	recoveredUntilA       int
	recoveredUntilB       int
}

// New builds a fight between a and b over the given parameter version. Both
// fighters are reset to fight-start state and placed in opposite halves of
// the ring.
//
// Precondition: p, a, b, and src must be non-nil.
// Postcondition: logger defaults to zap.NewNop().
func New(p *params.Store, a, b *fighter.Fighter, src rng.Source, logger *zap.Logger) *Fight {
	if logger == nil {
		logger = zap.NewNop()
	}
	size := p.GetFloat("ring.size", 20)
	rg := ring.New(size,
		p.GetFloat("ring.corner_margin", 3),
		p.GetFloat("ring.ropes_margin", 2),
		p.GetFloat("ring.step", 1.2))

	a.ResetForFight(p, ring.Position{X: size/2 - 2, Y: size / 2})
	b.ResetForFight(p, ring.Position{X: size/2 + 2, Y: size / 2})

	econ := stamina.New(p)
	return &Fight{
		id:            uuid.NewString(),
		p:             p,
		ring:          rg,
		a:             a,
		b:             b,
		dec:           decision.NewEngine(p, econ, src, rg, logger),
		res:           resolve.NewResolver(p, src, rg, logger),
		dmg:           damage.New(p, src, logger),
		econ:          econ,
		src:           src,
		logger:        logger,
		card:          NewScorecard(p, a.ID, b.ID),
		rounds:        p.GetInt("fight.rounds", 12),
		ticksPerRound: p.GetInt("fight.ticks_per_round", 60),
	}
}

// ID returns the fight's unique id.
func (f *Fight) ID() string { return f.id }

// Run fights the full bout. Cancellation is honored between ticks only; a
// started tick always completes.
//
// Postcondition: returns a non-nil Outcome or ctx's error, never both.
func (f *Fight) Run(ctx context.Context) (*Outcome, error) {
	f.logger.Info("fight start",
		zap.String("fight", f.id),
		zap.String("a", f.a.Profile.Name),
		zap.String("b", f.b.Profile.Name),
		zap.String("params", f.p.Version()),
		zap.Int("rounds", f.rounds))

	tick := 0
	for round := 1; round <= f.rounds; round++ {
		f.a.State.KnockdownsThisRound = 0
		f.b.State.KnockdownsThisRound = 0

		for rt := 0; rt < f.ticksPerRound; rt++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tick++
			if out := f.step(round, tick); out != nil {
				out.Scores = f.card.Rounds()
				out.PointsA, out.PointsB = f.card.Totals()
				f.logFinish(out)
				return out, nil
			}
		}

		rs := f.card.EndRound(round)
		f.logger.Debug("round scored",
			zap.String("fight", f.id),
			zap.Int("round", round),
			zap.Int("a", rs.PointsA),
			zap.Int("b", rs.PointsB))

		if round < f.rounds {
			quality := f.p.GetFloat("fight.corner_quality", 70)
			f.dmg.RecoverBetweenRounds(f.a, quality)
			f.dmg.RecoverBetweenRounds(f.b, quality)
		}
	}

	out := f.decisionOutcome(tick)
	f.logFinish(out)
	return out, nil
}

// step runs one tick and returns a non-nil Outcome on a stoppage.
func (f *Fight) step(round, tick int) *Outcome {
	// A live knockdown count suspends combat.
	if f.downA.down {
		return f.advanceCount(f.a, f.b, &f.downA, &f.recoveredUntilA, round, tick)
	}
	if f.downB.down {
		return f.advanceCount(f.b, f.a, &f.downB, &f.recoveredUntilB, round, tick)
	}

	f.clearTransients(f.a, f.recoveredUntilA, tick)
	f.clearTransients(f.b, f.recoveredUntilB, tick)

	da := f.decideFor(f.a, f.b, round, tick, f.lastB, f.recoveredUntilA)
	db := f.decideFor(f.b, f.a, round, tick, f.lastA, f.recoveredUntilB)
	f.a.State.Tactical, f.a.State.Sub = da.State, da.Sub
	f.b.State.Tactical, f.b.State.Sub = db.State, db.Sub
	f.econ.Spend(f.a, da.Action)
	f.econ.Spend(f.b, db.Action)

	res := f.res.Resolve(f.a, f.b, da, db, resolve.Context{Tick: tick, Round: round})
	f.card.Record(res)
	f.lastA, f.lastB = da.Action.Type, db.Action.Type

	hurtA := f.applyHits(f.b, f.a, res, tick)
	hurtB := f.applyHits(f.a, f.b, res, tick)

	if res.Knockdown != nil {
		f.applyKnockdown(res.Knockdown, round, tick)
		kd, _ := f.sideFor(res.Knockdown.FighterID)
		if f.p.GetBool("fight.three_knockdown_rule", false) && kd.State.KnockdownsThisRound >= 3 {
			return f.stoppage(kd, MethodTKO, round, tick)
		}
	}

	// Referee and corner intervention on a freshly hurt fighter.
	if hurtA && f.dmg.CheckTKO(f.a) {
		return f.stoppage(f.a, MethodTKO, round, tick)
	}
	if hurtB && f.dmg.CheckTKO(f.b) {
		return f.stoppage(f.b, MethodTKO, round, tick)
	}

	f.econ.Recover(f.a, da.Action.Type == action.TypeClinch)
	f.econ.Recover(f.b, db.Action.Type == action.TypeClinch)
	f.tickHurt(f.a)
	f.tickHurt(f.b)

	// Eye damage feeds back into accuracy until the cut closes.
	f.a.State.Mods.Accuracy = -f.dmg.VisionImpairment(f.a)
	f.b.State.Mods.Accuracy = -f.dmg.VisionImpairment(f.b)
	return nil
}

// applyHits runs the secondary damage effects for every punch att landed on
// def this tick and reports whether def entered the hurt state.
func (f *Fight) applyHits(att, def *fighter.Fighter, res resolve.Result, tick int) bool {
	hurt := false
	for _, ev := range res.Events {
		if ev.AttackerID != att.ID || ev.Result != resolve.Landed {
			continue
		}
		effective := f.dmg.Scale(def, ev.Damage)
		if f.dmg.CheckHurt(def, effective) {
			hurt = true
			def.State.StunTicks = f.p.GetInt("fight.stun_ticks", 4)
			def.Memory().LastHurtTick = tick
		}
		if ev.Punch.Target == action.Head && !ev.Partial {
			f.dmg.CheckCut(def, ev.Damage)
		}
	}
	return hurt
}

// applyKnockdown transitions the downed fighter and opens the count.
func (f *Fight) applyKnockdown(kd *resolve.Knockdown, round, tick int) {
	downed, ds := f.sideFor(kd.FighterID)
	downed.State.SetTactical(fighter.KnockedDown, fighter.SubNone)
	downed.State.KnockdownsTotal++
	downed.State.KnockdownsThisRound++
	downed.Memory().LastKnockdownTick = tick
	ds.down = true
	ds.count = 0
	ds.flash = kd.Flash

	f.logger.Info("knockdown",
		zap.String("fight", f.id),
		zap.String("fighter", downed.Profile.Name),
		zap.Bool("flash", kd.Flash),
		zap.Int("round", round))
}

// advanceCount runs one tick of the referee's count over the downed fighter.
// Rising is a heart/recovery roll from the earliest legal count; reaching
// the full count is a knockout.
func (f *Fight) advanceCount(downed, standing *fighter.Fighter, ds *downState, recoveredUntil *int, round, tick int) *Outcome {
	ds.count++
	outAt := f.p.GetInt("fight.count.out_at", 10)
	if ds.count >= outAt {
		ds.down = false
		return f.stoppage(downed, MethodKO, round, tick)
	}
	if ds.count < f.p.GetInt("fight.count.rise_earliest", 4) {
		return nil
	}

	attr := downed.Profile.Attr
	rise := (attr.Heart*0.4 + attr.Recovery*0.3 + attr.Conditioning*0.3) / 100
	rise -= downed.State.TotalDamage() * f.p.GetFloat("fight.count.damage_scale", 0.003)
	if ds.flash {
		rise += f.p.GetFloat("fight.count.flash_bonus", 0.25)
	}
	if f.src.Float64() >= rise {
		return nil
	}

	ds.down = false
	downed.State.SetTactical(fighter.Recovered, fighter.SubNone)
	downed.State.StunTicks = f.p.GetInt("fight.stun_ticks", 4)
	*recoveredUntil = tick + f.p.GetInt("fight.recovered_ticks", 3)
	f.logger.Info("fighter beats the count",
		zap.String("fight", f.id),
		zap.String("fighter", downed.Profile.Name),
		zap.Int("count", ds.count))

	// The referee may wave it off anyway on a badly damaged fighter.
	if f.dmg.CheckTKO(downed) {
		return f.stoppage(downed, MethodTKO, round, tick)
	}
	return nil
}

// clearTransients releases the RECOVERED hold and decays stun.
func (f *Fight) clearTransients(fi *fighter.Fighter, recoveredUntil, tick int) {
	if fi.State.Tactical == fighter.Recovered && tick >= recoveredUntil {
		fi.State.SetTactical(fighter.Neutral, fighter.SubProbing)
	}
	if fi.State.StunTicks > 0 {
		fi.State.StunTicks--
	}
}

// tickHurt decays the hurt window.
func (f *Fight) tickHurt(fi *fighter.Fighter) {
	if !fi.State.Hurt {
		return
	}
	fi.State.HurtTicks--
	if fi.State.HurtTicks <= 0 {
		fi.State.Hurt = false
		fi.State.HurtTicks = 0
	}
}

// decideFor runs the decision engine for one fighter, holding a freshly
// risen fighter in RECOVERED until the hold expires.
func (f *Fight) decideFor(fi, opp *fighter.Fighter, round, tick int, oppLast action.Type, recoveredUntil int) decision.Decision {
	if fi.State.Tactical == fighter.Recovered && tick < recoveredUntil {
		return decision.Decision{State: fighter.Recovered, Sub: fighter.SubNone, Action: action.Block()}
	}
	return f.dec.Decide(fi, opp, f.decisionContext(fi, round, tick, oppLast))
}

func (f *Fight) decisionContext(fi *fighter.Fighter, round, tick int, oppLast action.Type) decision.Context {
	return decision.Context{
		Tick:          tick,
		Round:         round,
		TotalRounds:   f.rounds,
		ScoreDiff:     f.card.DiffFor(fi.ID),
		OppLastAction: oppLast,
	}
}

// sideFor maps a fighter id to the fighter and its down state.
func (f *Fight) sideFor(id string) (*fighter.Fighter, *downState) {
	if id == f.a.ID {
		return f.a, &f.downA
	}
	return f.b, &f.downB
}

// stoppage builds the outcome for a fight ended on loser's condition.
func (f *Fight) stoppage(loser *fighter.Fighter, m Method, round, tick int) *Outcome {
	winner := f.a
	if loser.ID == f.a.ID {
		winner = f.b
	}
	return &Outcome{
		FightID:     f.id,
		WinnerID:    winner.ID,
		WinnerName:  winner.Profile.Name,
		Method:      m,
		Round:       round,
		Tick:        tick,
		KnockdownsA: f.a.State.KnockdownsTotal,
		KnockdownsB: f.b.State.KnockdownsTotal,
	}
}

// decisionOutcome judges the completed fight on the cards.
func (f *Fight) decisionOutcome(tick int) *Outcome {
	a, b := f.card.Totals()
	out := &Outcome{
		FightID:     f.id,
		Method:      MethodDecision,
		Round:       f.rounds,
		Tick:        tick,
		Scores:      f.card.Rounds(),
		PointsA:     a,
		PointsB:     b,
		KnockdownsA: f.a.State.KnockdownsTotal,
		KnockdownsB: f.b.State.KnockdownsTotal,
	}
	switch {
	case a > b:
		out.WinnerID, out.WinnerName = f.a.ID, f.a.Profile.Name
	case b > a:
		out.WinnerID, out.WinnerName = f.b.ID, f.b.Profile.Name
	default:
		out.Method = MethodDraw
	}
	return out
}

func (f *Fight) logFinish(out *Outcome) {
	f.logger.Info("fight over",
		zap.String("fight", f.id),
		zap.String("method", out.Method.String()),
		zap.String("winner", out.WinnerName),
		zap.Int("round", out.Round),
		zap.Int("points_a", out.PointsA),
		zap.Int("points_b", out.PointsB))
}
