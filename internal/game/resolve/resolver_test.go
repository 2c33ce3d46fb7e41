package resolve_test

import (
	"testing"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/resolve"
	"github.com/pugilist/ringside/internal/game/ring"
	"github.com/pugilist/ringside/internal/game/rng"
	"github.com/pugilist/ringside/internal/game/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testRing() ring.Ring { return ring.New(20, 3, 2, 1.2) }

func profileWith(name string, weight, rating float64) *fighter.Profile {
	attr := fighter.Attributes{
		Power: rating, KnockoutPower: rating, HandSpeed: rating, Accuracy: rating,
		BodyPunching: rating, FirstStep: rating, HeadMovement: rating, Reflexes: rating,
		Blocking: rating, Parry: rating, RingAwareness: rating, Technique: rating,
		Footwork: rating, Experience: rating, Adaptability: rating, FightIQ: rating,
		Heart: rating, KillerInstinct: rating, Composure: rating, Confidence: rating,
		Chin: rating, Recovery: rating, Conditioning: rating,
	}
	return &fighter.Profile{
		Name: name, Attr: attr,
		HeightIn: 71, ReachIn: 72, WeightLbs: weight,
		Style: style.BoxerPuncher, Stance: style.HighGuard, Offense: style.Balanced,
	}
}

// pairAt places two all-70 middleweights dist apart along the x axis.
func pairAt(p *params.Store, dist float64) (*fighter.Fighter, *fighter.Fighter) {
	a := fighter.New(profileWith("A", 158, 70), p, ring.Position{X: 5, Y: 10})
	b := fighter.New(profileWith("B", 158, 70), p, ring.Position{X: 5 + dist, Y: 10})
	return a, b
}

func punchDecision(a action.Action) decision.Decision {
	return decision.Decision{State: fighter.Offensive, Sub: fighter.SubJabbing, Action: a}
}

func waitDecision() decision.Decision {
	return decision.Decision{State: fighter.Neutral, Sub: fighter.SubProbing, Action: action.Wait()}
}

func TestResolve_OutOfRangeMissesWithReason(t *testing.T) {
	p := params.NewDefault(nil)
	// One 0.0 draw passes the activity gate; the range gate needs no roll.
	r := resolve.NewResolver(p, rng.NewSequence(0.0), testRing(), nil)
	a, b := pairAt(p, 10)

	res := r.Resolve(a, b,
		punchDecision(action.NewPunch(action.Jab, action.Head)),
		waitDecision(),
		resolve.Context{Tick: 1, Round: 1})

	require.Len(t, res.Events, 1)
	assert.Equal(t, resolve.Missed, res.Events[0].Result)
	assert.Equal(t, resolve.ReasonOutOfRange, res.Events[0].Reason)
	assert.Zero(t, res.Events[0].Damage)
	assert.Zero(t, b.State.HeadDamage)
}

func TestResolve_UnknownPunchTypeMisses(t *testing.T) {
	p := params.NewDefault(nil)
	r := resolve.NewResolver(p, rng.NewSequence(0.0), testRing(), nil)
	a, b := pairAt(p, 3)

	bogus := action.Action{Type: action.TypePunch, Punch: action.Punch{Type: action.PunchType(42)}}
	res := r.Resolve(a, b, punchDecision(bogus), waitDecision(), resolve.Context{Tick: 1, Round: 1})

	require.Len(t, res.Events, 1)
	assert.Equal(t, resolve.Missed, res.Events[0].Result)
	assert.Equal(t, resolve.ReasonUnknownAction, res.Events[0].Reason)
}

func TestResolve_ActivityGateSuppressesPunch(t *testing.T) {
	p := params.NewDefault(nil)
	// 0.99 fails every weight class's activity probability.
	r := resolve.NewResolver(p, rng.NewSequence(0.99), testRing(), nil)
	a, b := pairAt(p, 3)

	res := r.Resolve(a, b,
		punchDecision(action.NewPunch(action.Jab, action.Head)),
		waitDecision(),
		resolve.Context{Tick: 1, Round: 1})

	assert.Empty(t, res.Events)
	assert.Equal(t, -1, a.State.LastPunchTick)
}

func TestResolve_CooldownSuppressesPunch(t *testing.T) {
	p := params.NewDefault(nil)
	r := resolve.NewResolver(p, rng.NewSequence(0.0, 0.0, 0.99, 0.5), testRing(), nil)
	a, b := pairAt(p, 4)
	a.State.CooldownUntil = 10

	jab := punchDecision(action.NewPunch(action.Jab, action.Head))
	res := r.Resolve(a, b, jab, waitDecision(), resolve.Context{Tick: 5, Round: 1})
	assert.Empty(t, res.Events)

	res = r.Resolve(a, b, jab, waitDecision(), resolve.Context{Tick: 10, Round: 1})
	require.Len(t, res.Events, 1)
	assert.Equal(t, 10, a.State.LastPunchTick)
	assert.Greater(t, a.State.CooldownUntil, 10)
}

func TestResolve_LandedJabAppliesHeadDamage(t *testing.T) {
	p := params.NewDefault(nil)
	// activity pass, hit roll pass, passive defense fail, mid variance.
	r := resolve.NewResolver(p, rng.NewSequence(0.0, 0.0, 0.99, 0.5), testRing(), nil)
	a, b := pairAt(p, 4)

	res := r.Resolve(a, b,
		punchDecision(action.NewPunch(action.Jab, action.Head)),
		waitDecision(),
		resolve.Context{Tick: 1, Round: 1})

	require.Len(t, res.Events, 1)
	ev := res.Events[0]
	assert.Equal(t, resolve.Landed, ev.Result)
	assert.False(t, ev.Partial)
	assert.GreaterOrEqual(t, ev.Damage, 1)
	assert.Equal(t, float64(ev.Damage), b.State.HeadDamage)
	assert.Zero(t, b.State.BodyDamage)
	assert.Nil(t, res.Knockdown, "a fresh jab must not score a knockdown")
}

func TestResolve_BodyPunchAppliesBodyDamage(t *testing.T) {
	p := params.NewDefault(nil)
	r := resolve.NewResolver(p, rng.NewSequence(0.0, 0.0, 0.99, 0.5), testRing(), nil)
	a, b := pairAt(p, 2)

	res := r.Resolve(a, b,
		punchDecision(action.NewPunch(action.Hook, action.Body)),
		waitDecision(),
		resolve.Context{Tick: 1, Round: 1})

	require.Len(t, res.Events, 1)
	assert.Equal(t, resolve.Landed, res.Events[0].Result)
	assert.Greater(t, b.State.BodyDamage, 0.0)
	assert.Zero(t, b.State.HeadDamage)
}

func TestResolve_ComboTerminatesOnMiss(t *testing.T) {
	p := params.NewDefault(nil)
	// activity, p1 hit, p1 passive fail, p1 variance, p2 hit roll fails.
	r := resolve.NewResolver(p, rng.NewSequence(0.0, 0.0, 0.99, 0.5, 0.99), testRing(), nil)
	a, b := pairAt(p, 4)

	combo := action.NewCombination(
		action.Punch{Type: action.Jab, Target: action.Head},
		action.Punch{Type: action.Jab, Target: action.Head},
		action.Punch{Type: action.Jab, Target: action.Head},
	)
	res := r.Resolve(a, b, punchDecision(combo), waitDecision(), resolve.Context{Tick: 1, Round: 1})

	require.Len(t, res.Events, 2, "combo must stop at the first miss")
	assert.Equal(t, resolve.Landed, res.Events[0].Result)
	assert.Equal(t, 1, res.Events[0].ComboIndex)
	assert.Equal(t, 3, res.Events[0].ComboLen)
	assert.Equal(t, resolve.Missed, res.Events[1].Result)
	assert.Equal(t, resolve.ReasonAccuracy, res.Events[1].Reason)
	assert.Equal(t, 2, res.Events[1].ComboIndex)
	assert.Greater(t, b.State.HeadDamage, 0.0)
}

func TestResolve_EvadeStopsComboAndDealsNoDamage(t *testing.T) {
	p := params.NewDefault(nil)
	// activity, hit roll, evade roll succeeds.
	r := resolve.NewResolver(p, rng.NewSequence(0.0, 0.0, 0.0), testRing(), nil)
	a, b := pairAt(p, 4)

	combo := action.NewCombination(
		action.Punch{Type: action.Jab, Target: action.Head},
		action.Punch{Type: action.Cross, Target: action.Head},
	)
	evading := decision.Decision{State: fighter.Defensive, Sub: fighter.SubEvading, Action: action.Evade()}
	res := r.Resolve(a, b, punchDecision(combo), evading, resolve.Context{Tick: 1, Round: 1})

	require.Len(t, res.Events, 1)
	assert.Equal(t, resolve.Evaded, res.Events[0].Result)
	assert.Zero(t, res.Events[0].Damage)
	assert.Zero(t, b.State.HeadDamage)
}

func TestResolve_MovementChangesDistance(t *testing.T) {
	p := params.NewDefault(nil)
	r := resolve.NewResolver(p, rng.NewSeeded(1), testRing(), nil)
	a, b := pairAt(p, 6)
	before := a.State.Pos.Distance(b.State.Pos)

	advance := decision.Decision{State: fighter.Moving, Sub: fighter.SubAdvancing, Action: action.Move(action.Advance)}
	r.Resolve(a, b, advance, waitDecision(), resolve.Context{Tick: 1, Round: 1})
	closed := a.State.Pos.Distance(b.State.Pos)
	assert.Less(t, closed, before)

	retreat := decision.Decision{State: fighter.Moving, Sub: fighter.SubRetreating, Action: action.Move(action.Retreat)}
	r.Resolve(a, b, retreat, waitDecision(), resolve.Context{Tick: 2, Round: 1})
	assert.Greater(t, a.State.Pos.Distance(b.State.Pos), closed)
}

// Positions stay inside the ring no matter the movement sequence.
func TestResolve_PositionsStayInRing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		p := params.NewDefault(nil)
		rg := testRing()
		r := resolve.NewResolver(p, rng.NewSeeded(rapid.Int64().Draw(rt, "seed")), rg, nil)
		a, b := pairAt(p, 3)

		dirs := []action.MoveDirection{action.Advance, action.Retreat, action.CircleLeft, action.CircleRight}
		for tick := 1; tick <= 40; tick++ {
			da := decision.Decision{State: fighter.Moving, Action: action.Move(dirs[rapid.IntRange(0, 3).Draw(rt, "da")])}
			db := decision.Decision{State: fighter.Moving, Action: action.Move(dirs[rapid.IntRange(0, 3).Draw(rt, "db")])}
			r.Resolve(a, b, da, db, resolve.Context{Tick: tick, Round: 1})
			for _, f := range []*fighter.Fighter{a, b} {
				require.GreaterOrEqual(rt, f.State.Pos.X, 0.0)
				require.GreaterOrEqual(rt, f.State.Pos.Y, 0.0)
				require.LessOrEqual(rt, f.State.Pos.X, rg.Size)
				require.LessOrEqual(rt, f.State.Pos.Y, rg.Size)
			}
		}
	})
}

// Two fresh, evenly matched fighters must not produce knockdowns off single
// clean punches.
func TestResolve_NoKnockdownsBetweenFreshEqualFighters(t *testing.T) {
	p := params.NewDefault(nil)
	src := rng.NewSeeded(11)

	for trial := 0; trial < 500; trial++ {
		r := resolve.NewResolver(p, src, testRing(), nil)
		a, b := pairAt(p, 3.5)
		res := r.Resolve(a, b,
			punchDecision(action.NewPunch(action.Cross, action.Head)),
			waitDecision(),
			resolve.Context{Tick: 1, Round: 1})
		require.Nil(t, res.Knockdown, "trial %d", trial)
	}
}

// A puncher with elite knockout power drops a weak chin far more often than
// an iron one, and the iron chin stays under its hard cap.
func TestResolve_KnockdownRateTracksChin(t *testing.T) {
	p := params.NewDefault(nil)
	src := rng.NewSeeded(29)

	downs := func(chin float64) int {
		count := 0
		for trial := 0; trial < 3000; trial++ {
			r := resolve.NewResolver(p, src, testRing(), nil)
			att := fighter.New(profileWith("KO", 158, 70), p, ring.Position{X: 9, Y: 10})
			att.Profile.Attr.KnockoutPower = 99
			att.Profile.Attr.Power = 90
			def := fighter.New(profileWith("Chin", 158, 70), p, ring.Position{X: 10.5, Y: 10})
			def.Profile.Attr.Chin = chin
			def.State.HeadDamage = 50 // a worn-down defender is flash-eligible

			res := r.Resolve(att, def,
				punchDecision(action.NewPunch(action.Uppercut, action.Head)),
				waitDecision(),
				resolve.Context{Tick: 1, Round: 2})
			if res.Knockdown != nil {
				count++
			}
		}
		return count
	}

	weak := downs(40)
	iron := downs(95)
	assert.Greater(t, weak, iron*2, "weak chin %d vs iron chin %d", weak, iron)
	assert.Less(t, iron, 90, "iron chin knockdowns must stay rare: %d", iron)
}

// The heavier fighter's landed punches average more damage than the lighter
// fighter's against the same opposition.
func TestResolve_WeightMismatchDamageAsymmetry(t *testing.T) {
	p := params.NewDefault(nil)
	src := rng.NewSeeded(5)

	avgDamage := func(attWeight, defWeight float64) float64 {
		total, landed := 0, 0
		for trial := 0; trial < 1500; trial++ {
			r := resolve.NewResolver(p, src, testRing(), nil)
			att := fighter.New(profileWith("Att", attWeight, 70), p, ring.Position{X: 8, Y: 10})
			def := fighter.New(profileWith("Def", defWeight, 70), p, ring.Position{X: 11.5, Y: 10})
			res := r.Resolve(att, def,
				punchDecision(action.NewPunch(action.Cross, action.Head)),
				waitDecision(),
				resolve.Context{Tick: 1, Round: 1})
			for _, ev := range res.Events {
				if ev.Result == resolve.Landed || ev.Result == resolve.Blocked {
					total += ev.Damage
					landed++
				}
			}
		}
		require.Greater(t, landed, 100, "need enough landed samples")
		return float64(total) / float64(landed)
	}

	heavyOnLight := avgDamage(205, 130)
	lightOnHeavy := avgDamage(130, 205)
	assert.Greater(t, heavyOnLight, lightOnHeavy*1.5)
}

func TestResolve_DeterministicForSeed(t *testing.T) {
	p := params.NewDefault(nil)

	run := func(seed int64) []resolve.Event {
		r := resolve.NewResolver(p, rng.NewSeeded(seed), testRing(), nil)
		a, b := pairAt(p, 3.5)
		var events []resolve.Event
		for tick := 1; tick <= 30; tick++ {
			res := r.Resolve(a, b,
				punchDecision(action.NewPunch(action.Cross, action.Head)),
				decision.Decision{State: fighter.Defensive, Sub: fighter.SubBlocking, Action: action.Block()},
				resolve.Context{Tick: tick, Round: 1})
			for i := range res.Events {
				res.Events[i].AttackerID = "" // ids differ per run
			}
			events = append(events, res.Events...)
		}
		return events
	}

	assert.Equal(t, run(99), run(99))
	assert.NotEqual(t, run(99), run(100))
}

func TestResult_CountAndDamageHelpers(t *testing.T) {
	res := resolve.Result{Events: []resolve.Event{
		{AttackerID: "x", Result: resolve.Landed, Damage: 4},
		{AttackerID: "x", Result: resolve.Missed},
		{AttackerID: "y", Result: resolve.Landed, Damage: 7},
	}}
	assert.Equal(t, 1, res.CountFor("x", resolve.Landed))
	assert.Equal(t, 1, res.CountFor("x", resolve.Missed))
	assert.Equal(t, 4, res.DamageBy("x"))
	assert.Equal(t, 7, res.DamageBy("y"))
}

// TestAccuracy_AlwaysWithinClamp: the composed hit-chance chain never leaves
// the configured [min, max] band, whatever the matchup or condition.
func TestAccuracy_AlwaysWithinClamp(t *testing.T) {
	p := params.NewDefault(nil)
	r := resolve.NewResolver(p, rng.NewSeeded(1), testRing(), nil)
	lo := p.GetFloat("combat.accuracy.min", 0)
	hi := p.GetFloat("combat.accuracy.max", 1)

	styles := []style.Style{
		style.OutBoxer, style.Swarmer, style.Slugger,
		style.BoxerPuncher, style.Counterpuncher,
	}
	punchTypes := []action.PunchType{action.Jab, action.Cross, action.Hook, action.Uppercut}
	defenses := []decision.Decision{
		waitDecision(),
		{State: fighter.Defensive, Sub: fighter.SubBlocking, Action: action.Block()},
		{State: fighter.Neutral, Sub: fighter.SubProbing, Action: action.Move(action.Retreat)},
		{State: fighter.Clinching, Sub: fighter.SubHolding, Action: action.Clinch()},
	}

	rapid.Check(t, func(rt *rapid.T) {
		att := fighter.New(profileWith("att",
			rapid.Float64Range(110, 250).Draw(rt, "att_weight"),
			rapid.Float64Range(0, 100).Draw(rt, "att_rating")), p, ring.Position{X: 5, Y: 10})
		def := fighter.New(profileWith("def",
			rapid.Float64Range(110, 250).Draw(rt, "def_weight"),
			rapid.Float64Range(0, 100).Draw(rt, "def_rating")), p, ring.Position{X: 9, Y: 10})
		att.Profile.Style = rapid.SampledFrom(styles).Draw(rt, "att_style")
		def.Profile.Style = rapid.SampledFrom(styles).Draw(rt, "def_style")
		att.Profile.ReachIn = rapid.Float64Range(60, 86).Draw(rt, "att_reach")
		def.Profile.ReachIn = rapid.Float64Range(60, 86).Draw(rt, "def_reach")
		att.State.Stamina = rapid.Float64Range(0, att.State.MaxStamina).Draw(rt, "pool")
		att.State.Mods.Accuracy = rapid.Float64Range(-0.5, 0.5).Draw(rt, "acc_mod")
		att.State.Mods.Speed = rapid.Float64Range(-0.5, 0.5).Draw(rt, "speed_mod")
		def.State.Hurt = rapid.Bool().Draw(rt, "hurt")

		pn := action.Punch{
			Type:   rapid.SampledFrom(punchTypes).Draw(rt, "punch"),
			Target: rapid.SampledFrom([]action.Target{action.Head, action.Body}).Draw(rt, "target"),
		}
		dist := rapid.Float64Range(0, 20).Draw(rt, "dist")
		round := rapid.IntRange(1, 12).Draw(rt, "round")
		counter := rapid.Bool().Draw(rt, "counter")
		defD := rapid.SampledFrom(defenses).Draw(rt, "defense")

		acc := r.Accuracy(att, def, pn, counter, defD, dist, round)
		assert.GreaterOrEqual(rt, acc, lo)
		assert.LessOrEqual(rt, acc, hi)
	})
}

// TestResolve_IdleFighterOpensUp: a stretch without punching raises the
// activity chance, so a draw that suppresses a fresh fighter lets an idle
// one throw.
func TestResolve_IdleFighterOpensUp(t *testing.T) {
	p := params.NewDefault(nil)
	jab := punchDecision(action.NewPunch(action.Jab, action.Head))

	// Middleweight base activity is 0.48: a 0.6 draw suppresses the punch
	// when there is no punch history.
	r := resolve.NewResolver(p, rng.NewSequence(0.6), testRing(), nil)
	a, b := pairAt(p, 4)
	res := r.Resolve(a, b, jab, waitDecision(), resolve.Context{Tick: 20, Round: 1})
	assert.Empty(t, res.Events)

	// Twenty idle ticks add the capped bonus on top, so the same draw now
	// clears the gate and the jab plays out.
	r = resolve.NewResolver(p, rng.NewSequence(0.6, 0.0, 0.99, 0.5), testRing(), nil)
	a, b = pairAt(p, 4)
	a.State.LastPunchTick = 0
	res = r.Resolve(a, b, jab, waitDecision(), resolve.Context{Tick: 20, Round: 1})
	require.Len(t, res.Events, 1)
	assert.Equal(t, resolve.Landed, res.Events[0].Result)
	assert.Equal(t, 20, a.State.LastPunchTick)
}
