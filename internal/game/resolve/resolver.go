package resolve

import (
	"sort"

	"go.uber.org/zap"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/ring"
	"github.com/pugilist/ringside/internal/game/rng"
)

// Context carries the tick coordinates resolution needs.
type Context struct {
	// Tick is the absolute tick index within the fight.
	Tick int
	// Round is the current round, starting at 1.
	Round int
}

// Resolver resolves both fighters' actions for one tick. It owns no
// per-fight state and may serve many fights as long as each fight's calls
// are serialized.
type Resolver struct {
	p      *params.Store
	src    rng.Source
	ring   ring.Ring
	logger *zap.Logger
}

// NewResolver builds a resolver over the given parameter version.
//
// Precondition: p and src must be non-nil.
// Postcondition: logger defaults to zap.NewNop().
func NewResolver(p *params.Store, src rng.Source, r ring.Ring, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{p: p, src: src, ring: r, logger: logger}
}

// kdCandidate is a landed hit eligible for the once-per-tick knockdown check.
type kdCandidate struct {
	att, def *fighter.Fighter
	punch    action.Punch
	damage   int
	partial  bool
}

// Resolve applies both actions for one tick: movement first, then punch
// resolution for each side, then a single knockdown check over all landed
// hits. Damage is written to the fighters' states; knockdown state
// transitions are left to the caller.
//
// Postcondition: Result.Knockdown is nil or names exactly one fighter.
func (r *Resolver) Resolve(a, b *fighter.Fighter, da, db decision.Decision, ctx Context) Result {
	r.applyMovement(a, b, da)
	r.applyMovement(b, a, db)
	dist := a.State.Pos.Distance(b.State.Pos)

	var res Result
	candidates := r.resolveSide(a, b, da, db, dist, ctx, &res)
	candidates = append(candidates, r.resolveSide(b, a, db, da, dist, ctx, &res)...)
	r.checkKnockdowns(candidates, ctx.Round, &res)

	if res.Knockdown != nil {
		r.logger.Debug("knockdown scored",
			zap.String("fighter", res.Knockdown.FighterID),
			zap.Bool("flash", res.Knockdown.Flash),
			zap.Int("damage", res.Knockdown.Damage),
			zap.Int("tick", ctx.Tick))
	}
	return res
}

// applyMovement repositions the mover for a movement action. The step is
// scaled by footwork and first-step speed, then damped by fatigue.
func (r *Resolver) applyMovement(f, opp *fighter.Fighter, d decision.Decision) {
	if d.Action.Type != action.TypeMove {
		return
	}
	attr := f.Profile.Attr
	scale := 0.7 + (attr.Footwork*0.6+attr.FirstStep*0.4)/100*0.6
	scale *= 0.6 + 0.4*f.State.StaminaFrac()

	from, target := f.State.Pos, opp.State.Pos
	switch d.Action.Direction {
	case action.Advance:
		f.State.Pos = r.ring.MoveToward(from, target, scale)
	case action.Retreat:
		f.State.Pos = r.ring.MoveAway(from, target, scale)
	case action.CircleLeft:
		f.State.Pos = r.ring.Circle(from, target, scale, false)
	case action.CircleRight:
		f.State.Pos = r.ring.Circle(from, target, scale, true)
	}
}

// resolveSide resolves the attacker's punches, appending one Event per
// attempt and returning the landed hits as knockdown candidates.
//
// A combination terminates early on the first missed or evaded punch;
// blocked and partial punches keep it alive.
func (r *Resolver) resolveSide(att, def *fighter.Fighter, attD, defD decision.Decision, dist float64, ctx Context, res *Result) []kdCandidate {
	if !attD.Action.IsPunch() {
		return nil
	}
	st := att.State

	// A stunned fighter may freeze and lose the tick.
	if st.StunTicks > 0 && r.src.Float64() < r.p.GetFloat("combat.stun.freeze_chance", 0.25) {
		return nil
	}

	// Weight-class activity gate: heavier divisions throw less often and
	// need longer between exchanges.
	if ctx.Tick < st.CooldownUntil {
		return nil
	}
	class := att.Profile.WeightClass(r.p)
	activity := r.p.GetFloat("weight_class."+class.String()+".activity", 0.5)
	// A fighter who has not let his hands go for a while opens up: every
	// idle tick since the last punch raises the throw chance toward a cap.
	if st.LastPunchTick >= 0 {
		bonus := float64(ctx.Tick-st.LastPunchTick) * r.p.GetFloat("combat.activity.idle_bonus", 0.03)
		if limit := r.p.GetFloat("combat.activity.idle_cap", 0.24); bonus > limit {
			bonus = limit
		}
		activity += bonus
	}
	if r.src.Float64() >= activity {
		return nil
	}

	punches := attD.Action.Punches()
	st.LastPunchTick = ctx.Tick
	st.CooldownUntil = ctx.Tick + r.p.GetInt("weight_class."+class.String()+".recovery_ticks", 2) + (len(punches) - 1)

	var candidates []kdCandidate
	decay := 1.0
	comboDecay := r.p.GetFloat("combat.accuracy.combo_decay", 0.85)
	counter := attD.Action.Counter

	for i, pn := range punches {
		ev := Event{
			AttackerID: att.ID,
			Punch:      pn,
			Counter:    counter,
		}
		if len(punches) > 1 {
			ev.ComboIndex = i + 1
			ev.ComboLen = len(punches)
		}

		if pn.Type < action.Jab || pn.Type > action.Uppercut {
			ev.Result = Missed
			ev.Reason = ReasonUnknownAction
			res.Events = append(res.Events, ev)
			break
		}

		// Absolute range gate before any probability work.
		optimal := r.p.GetFloat("combat.range.optimal."+pn.Type.String(), 3.0)
		if dist > optimal+r.p.GetFloat("combat.range.margin", 1.0) {
			ev.Result = Missed
			ev.Reason = ReasonOutOfRange
			res.Events = append(res.Events, ev)
			break
		}

		acc := r.accuracy(att, def, pn, counter, defD, dist, ctx.Round)
		// Being tied up smothers punch output.
		if defD.Action.Type == action.TypeClinch && dist <= r.p.GetFloat("stamina.clinch_range", 2.5) {
			acc *= r.p.GetFloat("combat.accuracy.clinch_smother", 0.75)
		}
		acc = r.clampAccuracy(acc * decay)
		decay *= comboDecay

		if r.src.Float64() >= acc {
			ev.Result = Missed
			ev.Reason = ReasonAccuracy
			res.Events = append(res.Events, ev)
			break
		}

		out := r.defend(def, defD, pn)
		ev.Result = out.result
		ev.Partial = out.partial
		if out.result == Evaded {
			res.Events = append(res.Events, ev)
			break
		}

		dmg := r.damage(att, def, pn, counter, dist, out.damageMult)
		ev.Damage = dmg
		if pn.Target == action.Body {
			def.State.BodyDamage += float64(dmg)
		} else {
			def.State.HeadDamage += float64(dmg)
		}
		res.Events = append(res.Events, ev)

		if out.result == Landed {
			candidates = append(candidates, kdCandidate{
				att: att, def: def, punch: pn, damage: dmg, partial: out.partial,
			})
		}
	}
	return candidates
}

// checkKnockdowns evaluates landed hits in damage-descending order and
// records at most one knockdown: the direct mechanism first, then flash.
func (r *Resolver) checkKnockdowns(candidates []kdCandidate, round int, res *Result) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].damage > candidates[j].damage
	})
	for _, c := range candidates {
		if r.checkDirectKnockdown(c.def, c.damage) {
			res.Knockdown = &Knockdown{FighterID: c.def.ID, Damage: c.damage}
			return
		}
		if r.checkFlashKnockdown(c.att, c.def, c.punch, c.damage, c.partial, round) {
			res.Knockdown = &Knockdown{FighterID: c.def.ID, Flash: true, Damage: c.damage}
			return
		}
	}
}
