package resolve

import (
	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/decision"
	"github.com/pugilist/ringside/internal/game/fighter"
)

// Accuracy exposes the hit-chance chain so property tests can sweep it
// across matchups without driving a full resolve.
func (r *Resolver) Accuracy(att, def *fighter.Fighter, pn action.Punch, counter bool, defD decision.Decision, dist float64, round int) float64 {
	return r.accuracy(att, def, pn, counter, defD, dist, round)
}
