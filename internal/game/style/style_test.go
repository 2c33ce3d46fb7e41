package style_test

import (
	"testing"

	"github.com/pugilist/ringside/internal/game/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrips(t *testing.T) {
	for _, s := range style.All() {
		parsed, err := style.Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestParse_RejectsUnknown(t *testing.T) {
	_, err := style.Parse("windmill")
	require.Error(t, err)
}

// TestMatchup_EncodesTheTriangle verifies the classic style triangle:
// swarmer > out-boxer > slugger > swarmer.
func TestMatchup_EncodesTheTriangle(t *testing.T) {
	assert.Greater(t, style.Matchup(style.Swarmer, style.OutBoxer), 1.0)
	assert.Greater(t, style.Matchup(style.OutBoxer, style.Slugger), 1.0)
	assert.Greater(t, style.Matchup(style.Slugger, style.Swarmer), 1.0)
}

// TestMatchup_Bounds verifies every pair stays inside the documented range
// and mirror matchups are self-consistent (A advantaged implies B not).
func TestMatchup_Bounds(t *testing.T) {
	for _, a := range style.All() {
		for _, b := range style.All() {
			m := style.Matchup(a, b)
			assert.GreaterOrEqual(t, m, 0.85, "%s vs %s", a, b)
			assert.LessOrEqual(t, m, 1.20, "%s vs %s", a, b)
			if m > 1.0 {
				assert.LessOrEqual(t, style.Matchup(b, a), 1.0,
					"%s and %s cannot both hold the advantage", a, b)
			}
		}
	}
}

func TestMatchup_UnknownStyleIsNeutral(t *testing.T) {
	assert.Equal(t, 1.0, style.Matchup(style.Style(99), style.OutBoxer))
}

func TestParseStance_And_ParseOffense(t *testing.T) {
	st, err := style.ParseStance("philly_shell")
	require.NoError(t, err)
	assert.Equal(t, style.PhillyShell, st)

	_, err = style.ParseStance("no_guard")
	require.Error(t, err)

	off, err := style.ParseOffense("body_snatcher")
	require.NoError(t, err)
	assert.Equal(t, style.BodySnatcher, off)
}
