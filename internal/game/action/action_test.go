package action_test

import (
	"testing"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/stretchr/testify/assert"
)

func TestPunchType_IsPower(t *testing.T) {
	assert.False(t, action.Jab.IsPower())
	assert.True(t, action.Cross.IsPower())
	assert.True(t, action.Hook.IsPower())
	assert.True(t, action.Uppercut.IsPower())
	assert.False(t, action.PunchType(99).IsPower())
}

func TestPunchType_IsStraight(t *testing.T) {
	assert.True(t, action.Jab.IsStraight())
	assert.True(t, action.Cross.IsStraight())
	assert.False(t, action.Hook.IsStraight())
	assert.False(t, action.Uppercut.IsStraight())
}

func TestAction_Punches(t *testing.T) {
	single := action.NewPunch(action.Jab, action.Head)
	assert.Len(t, single.Punches(), 1)
	assert.True(t, single.IsPunch())

	combo := action.NewCombination(
		action.Punch{Type: action.Jab, Target: action.Head},
		action.Punch{Type: action.Cross, Target: action.Head},
		action.Punch{Type: action.Hook, Target: action.Body},
	)
	assert.Len(t, combo.Punches(), 3)
	assert.True(t, combo.IsPunch())

	assert.Nil(t, action.Block().Punches())
	assert.False(t, action.Wait().IsPunch())
}

func TestNewCombination_RequiresPunches(t *testing.T) {
	assert.Panics(t, func() { action.NewCombination() })
}

// TestType_String covers the zero value: unknown actions must stringify as
// "unknown" because the resolver reports them as automatic misses.
func TestType_String(t *testing.T) {
	assert.Equal(t, "unknown", action.TypeUnknown.String())
	assert.Equal(t, "combination", action.TypeCombination.String())
	assert.Equal(t, "clinch", action.TypeClinch.String())
}
