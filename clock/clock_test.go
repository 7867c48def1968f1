package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func stoppedMatch(remainingMs int64) models.Match {
	return models.Match{
		ID:          "m1",
		LeftTeamID:  "t1",
		RightTeamID: "t2",
		Phase:       models.PhaseGroup,
		Half:        1,
		RemainingMs: remainingMs,
		Events:      map[string]models.PlayerStats{},
		CategoryID:  "cat-1",
	}
}

func TestToggleStartsStoppedClock(t *testing.T) {
	now := time.Now()
	m := stoppedMatch(60000)

	out := Toggle(m, now)

	require.NotNil(t, out.StartedAt)
	assert.True(t, out.StartedAt.Equal(now))
	assert.Equal(t, int64(60000), out.RemainingMs)
	// Input untouched.
	assert.Nil(t, m.StartedAt)
}

func TestToggleStopsRunningClockAndFoldsElapsed(t *testing.T) {
	now := time.Now()
	m := stoppedMatch(60000)
	started := now.Add(-10 * time.Second)
	m.StartedAt = &started

	out := Toggle(m, now)

	assert.Nil(t, out.StartedAt)
	assert.Equal(t, int64(50000), out.RemainingMs)
}

func TestTickResyncsReference(t *testing.T) {
	now := time.Now()
	m := stoppedMatch(60000)
	started := now.Add(-10 * time.Second)
	m.StartedAt = &started

	out := Tick(m, now)

	assert.Equal(t, int64(50000), out.RemainingMs)
	require.NotNil(t, out.StartedAt)
	assert.True(t, out.StartedAt.Equal(now))
}

func TestTickClampsToZeroAndStops(t *testing.T) {
	now := time.Now()
	m := stoppedMatch(5000)
	started := now.Add(-10 * time.Second)
	m.StartedAt = &started

	out := Tick(m, now)

	assert.Equal(t, int64(0), out.RemainingMs)
	assert.Nil(t, out.StartedAt)
}

func TestTickIgnoresStoppedMatch(t *testing.T) {
	m := stoppedMatch(60000)

	out := Tick(m, time.Now())

	assert.Equal(t, int64(60000), out.RemainingMs)
	assert.Nil(t, out.StartedAt)
}

func TestResetRestoresPeriod(t *testing.T) {
	now := time.Now()
	m := stoppedMatch(1234)
	m.StartedAt = &now

	out := Reset(m, 60000)

	assert.Nil(t, out.StartedAt)
	assert.Equal(t, int64(60000), out.RemainingMs)
}

func TestNextHalfTogglesAndResets(t *testing.T) {
	now := time.Now()
	m := stoppedMatch(1234)
	m.StartedAt = &now

	out := NextHalf(m, 60000)
	assert.Equal(t, 2, out.Half)
	assert.Nil(t, out.StartedAt)
	assert.Equal(t, int64(60000), out.RemainingMs)

	back := NextHalf(out, 60000)
	assert.Equal(t, 1, back.Half)
}
