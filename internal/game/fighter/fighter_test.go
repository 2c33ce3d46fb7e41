package fighter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pugilist/ringside/internal/game/action"
	"github.com/pugilist/ringside/internal/game/fighter"
	"github.com/pugilist/ringside/internal/game/params"
	"github.com/pugilist/ringside/internal/game/ring"
	"github.com/pugilist/ringside/internal/game/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func averageProfile(name string) *fighter.Profile {
	attr := fighter.Attributes{}
	// All-70 baseline fighter.
	for _, f := range []*float64{
		&attr.Power, &attr.KnockoutPower, &attr.HandSpeed, &attr.Accuracy,
		&attr.BodyPunching, &attr.FirstStep, &attr.HeadMovement, &attr.Reflexes,
		&attr.Blocking, &attr.Parry, &attr.RingAwareness, &attr.Technique,
		&attr.Footwork, &attr.Experience, &attr.Adaptability, &attr.FightIQ,
		&attr.Heart, &attr.KillerInstinct, &attr.Composure, &attr.Confidence,
		&attr.Chin, &attr.Recovery, &attr.Conditioning,
	} {
		*f = 70
	}
	return &fighter.Profile{
		Name:      name,
		Attr:      attr,
		HeightIn:  71,
		ReachIn:   73,
		WeightLbs: 147,
		Style:     style.BoxerPuncher,
		Stance:    style.HighGuard,
		Offense:   style.Balanced,
	}
}

func TestNew_FullPoolAndUniqueIDs(t *testing.T) {
	p := params.NewDefault(nil)
	a := fighter.New(averageProfile("A"), p, ring.Position{X: 5, Y: 10})
	b := fighter.New(averageProfile("B"), p, ring.Position{X: 15, Y: 10})

	assert.Equal(t, 100.0, a.State.Stamina)
	assert.Equal(t, fighter.Neutral, a.State.Tactical)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMemory_LazyAndResetWithFight(t *testing.T) {
	p := params.NewDefault(nil)
	f := fighter.New(averageProfile("A"), p, ring.Position{})

	m := f.Memory()
	require.NotNil(t, m)
	m.ObserveOpponent(action.TypePunch)
	assert.Same(t, m, f.Memory(), "memory is created once")

	f.ResetForFight(p, ring.Position{X: 1, Y: 1})
	assert.NotSame(t, m, f.Memory(), "reset discards memory")
	assert.Equal(t, 100.0, f.State.Stamina)
}

func TestMemory_OpponentShare(t *testing.T) {
	m := fighter.NewMemory()
	assert.Equal(t, 0.0, m.OpponentShare(action.TypePunch))

	m.ObserveOpponent(action.TypePunch)
	m.ObserveOpponent(action.TypePunch)
	m.ObserveOpponent(action.TypeBlock)
	assert.InDelta(t, 2.0/3.0, m.OpponentShare(action.TypePunch), 1e-9)
}

func TestClassFor_SelectsByMinWeight(t *testing.T) {
	p := params.NewDefault(nil)
	assert.Equal(t, fighter.Heavyweight, fighter.ClassFor(230, p))
	assert.Equal(t, fighter.Welterweight, fighter.ClassFor(147, p))
	assert.Equal(t, fighter.Featherweight, fighter.ClassFor(120, p))
}

func TestSubState_ValidFor(t *testing.T) {
	assert.True(t, fighter.SubPowerShot.ValidFor(fighter.Offensive))
	assert.False(t, fighter.SubPowerShot.ValidFor(fighter.Defensive))
	assert.True(t, fighter.SubNone.ValidFor(fighter.Timing))
}

// TestSetTactical_ClampsMismatchedSubState: a mismatched sub-state is
// clamped to SubNone rather than raising.
func TestSetTactical_ClampsMismatchedSubState(t *testing.T) {
	s := fighter.NewState(100, ring.Position{})
	s.SetTactical(fighter.Defensive, fighter.SubJabbing)
	assert.Equal(t, fighter.Defensive, s.Tactical)
	assert.Equal(t, fighter.SubNone, s.Sub)
}

func TestState_Severity(t *testing.T) {
	s := fighter.NewState(100, ring.Position{})
	assert.Equal(t, fighter.SeverityLight, s.Severity())
	s.HeadDamage = 35
	assert.Equal(t, fighter.SeverityModerate, s.Severity())
	s.BodyDamage = 30
	assert.Equal(t, fighter.SeverityHeavy, s.Severity())
}

func TestTacticalState_Selectable(t *testing.T) {
	assert.False(t, fighter.KnockedDown.Selectable())
	assert.False(t, fighter.Recovered.Selectable())
	assert.True(t, fighter.Offensive.Selectable())
}

func TestLoadDirectory_ValidTemplate(t *testing.T) {
	dir := t.TempDir()
	doc := `name: Test Fighter
style: out_boxer
stance: high_guard
offense: balanced
height_in: 71
reach_in: 74
weight_lbs: 147
attributes:
  power: 70
  knockout_power: 65
  chin: 80
  heart: 75
  composure: 70
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(doc), 0o644))

	reg, err := fighter.LoadDirectory(dir)
	require.NoError(t, err)

	tmpl, ok := reg.Get("Test Fighter")
	require.True(t, ok)
	prof := tmpl.Profile()
	assert.Equal(t, style.OutBoxer, prof.Style)
	assert.Equal(t, 80.0, prof.Attr.Chin)
}

func TestLoadDirectory_RejectsBadStyle(t *testing.T) {
	dir := t.TempDir()
	doc := "name: Bad\nstyle: windmill\nstance: high_guard\noffense: balanced\nreach_in: 70\nweight_lbs: 150\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(doc), 0o644))

	_, err := fighter.LoadDirectory(dir)
	require.Error(t, err)
}

func TestTemplate_Validate_RatingBounds(t *testing.T) {
	tmpl := &fighter.Template{
		Name: "X", Style: "slugger", Stance: "high_guard", Offense: "power_first",
		ReachIn: 70, WeightLbs: 200,
	}
	tmpl.Attr.Chin = 140
	require.Error(t, tmpl.Validate())
}
