package engine

import (
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/resolve"
)

// RoundScore is one judged round on the 10-point-must system.
type RoundScore struct {
	Round   int
	PointsA int
	PointsB int
}

// roundTally accumulates the raw material a round is judged on.
type roundTally struct {
	damageA, damageB int
	landedA, landedB int
	downsA, downsB   int
}

// Scorecard judges a fight on the 10-point-must system: the round winner
// takes 10, the loser 9, close rounds score even, and each knockdown costs
// the downed fighter a point.
type Scorecard struct {
	p        *params.Store
	aID, bID string
	rounds   []RoundScore
	cur      roundTally
}

// NewScorecard builds a card for the two fighter ids.
func NewScorecard(p *params.Store, aID, bID string) *Scorecard {
	return &Scorecard{p: p, aID: aID, bID: bID}
}

// Record folds one tick's resolution into the open round.
func (c *Scorecard) Record(res resolve.Result) {
	c.cur.damageA += res.DamageBy(c.aID)
	c.cur.damageB += res.DamageBy(c.bID)
	c.cur.landedA += res.CountFor(c.aID, resolve.Landed)
	c.cur.landedB += res.CountFor(c.bID, resolve.Landed)
	if res.Knockdown != nil {
		if res.Knockdown.FighterID == c.aID {
			c.cur.downsA++
		} else {
			c.cur.downsB++
		}
	}
}

// EndRound judges the open round and starts the next.
//
// Postcondition: the appended scores are each in [6, 10].
func (c *Scorecard) EndRound(round int) RoundScore {
	dw := c.p.GetFloat("fight.score.damage_weight", 1.0)
	lw := c.p.GetFloat("fight.score.landed_weight", 2.0)
	scoreA := float64(c.cur.damageA)*dw + float64(c.cur.landedA)*lw
	scoreB := float64(c.cur.damageB)*dw + float64(c.cur.landedB)*lw

	a, b := 10, 10
	margin := c.p.GetFloat("fight.score.even_margin", 3.0)
	switch {
	case scoreA-scoreB > margin:
		b = 9
	case scoreB-scoreA > margin:
		a = 9
	}
	a -= c.cur.downsA
	b -= c.cur.downsB
	if a < 6 {
		a = 6
	}
	if b < 6 {
		b = 6
	}

	rs := RoundScore{Round: round, PointsA: a, PointsB: b}
	c.rounds = append(c.rounds, rs)
	c.cur = roundTally{}
	return rs
}

// Totals returns the summed points over all judged rounds.
func (c *Scorecard) Totals() (a, b int) {
	for _, r := range c.rounds {
		a += r.PointsA
		b += r.PointsB
	}
	return a, b
}

// Rounds returns the judged rounds in order.
func (c *Scorecard) Rounds() []RoundScore { return c.rounds }

// DiffFor returns the fighter's current points differential over judged
// rounds, positive when ahead.
func (c *Scorecard) DiffFor(id string) int {
	a, b := c.Totals()
	if id == c.aID {
		return a - b
	}
	return b - a
}
