package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/config"
	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/state"
)

func matchFixture() state.State {
	s := state.Empty()
	s.Categories = []models.Category{{ID: "cat-1", Name: "Veteranos"}}
	s.Teams = []models.Team{
		{ID: "t1", Name: "Leões", CategoryID: "cat-1"},
		{ID: "t2", Name: "Tigres", CategoryID: "cat-1"},
		{ID: "t3", Name: "Águias", CategoryID: "cat-1"},
	}
	s.Matches = []models.Match{{
		ID:          "m1",
		LeftTeamID:  "t1",
		RightTeamID: "t2",
		Phase:       models.PhaseGroup,
		Half:        1,
		RemainingMs: 60000,
		Events:      map[string]models.PlayerStats{},
		CategoryID:  "cat-1",
	}}
	return s
}

func newMatchService(t *testing.T) (*MatchService, *Dispatcher) {
	t.Helper()
	store := state.NewStore(matchFixture())
	d := NewDispatcher(store, nil, nil, testLogger())
	cfg := &config.Config{MatchPeriod: time.Minute}
	return NewMatchService(d, cfg), d
}

func TestToggleClockStartsAndStops(t *testing.T) {
	svc, d := newMatchService(t)
	ctx := context.Background()

	started, err := svc.ToggleClock(ctx, "", "m1")
	require.NoError(t, err)
	require.NotNil(t, started.StartedAt)

	stopped, err := svc.ToggleClock(ctx, "", "m1")
	require.NoError(t, err)
	assert.Nil(t, stopped.StartedAt)

	d.Wait()
	current, ok := d.Store().State().MatchByID("m1")
	require.True(t, ok)
	assert.Nil(t, current.StartedAt)
}

func TestUnknownMatch(t *testing.T) {
	svc, _ := newMatchService(t)

	_, err := svc.ToggleClock(context.Background(), "", "nope")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	err = svc.DeleteMatch(context.Background(), "", "nope")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestAddGoalFloorsAtZero(t *testing.T) {
	svc, _ := newMatchService(t)
	ctx := context.Background()

	m, err := svc.AddGoal(ctx, "", "m1", "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Events["p1"].Goals)

	m, err = svc.AddGoal(ctx, "", "m1", "p1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Events["p1"].Goals)
}

func TestAddYellowClampedToTwo(t *testing.T) {
	svc, _ := newMatchService(t)
	ctx := context.Background()

	m, err := svc.AddYellow(ctx, "", "m1", "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Events["p1"].Yellow)

	m, err = svc.AddYellow(ctx, "", "m1", "p1", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Events["p1"].Yellow)
}

func TestToggleDestaqueIsExclusive(t *testing.T) {
	svc, _ := newMatchService(t)
	ctx := context.Background()

	m, err := svc.ToggleDestaque(ctx, "", "m1", "p1")
	require.NoError(t, err)
	assert.True(t, m.Events["p1"].Destaque)

	m, err = svc.ToggleDestaque(ctx, "", "m1", "p2")
	require.NoError(t, err)
	assert.True(t, m.Events["p2"].Destaque)
	assert.False(t, m.Events["p1"].Destaque)

	// Second toggle on the holder clears the award entirely.
	m, err = svc.ToggleDestaque(ctx, "", "m1", "p2")
	require.NoError(t, err)
	assert.False(t, m.Events["p2"].Destaque)
}

func TestEditTeamsValidation(t *testing.T) {
	svc, _ := newMatchService(t)
	ctx := context.Background()

	_, err := svc.EditTeams(ctx, "", "m1", "t1", "t1")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.EditTeams(ctx, "", "m1", "t1", "")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.EditTeams(ctx, "", "m1", "t1", "ghost")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestEditTeamsResetsMatch(t *testing.T) {
	svc, d := newMatchService(t)
	ctx := context.Background()

	_, err := svc.AddGoal(ctx, "", "m1", "p1", 3)
	require.NoError(t, err)

	m, err := svc.EditTeams(ctx, "", "m1", "t3", "t2")
	require.NoError(t, err)
	assert.Equal(t, "t3", m.LeftTeamID)
	assert.Equal(t, "t2", m.RightTeamID)
	assert.Equal(t, 1, m.Half)
	assert.Equal(t, int64(60000), m.RemainingMs)
	assert.Empty(t, m.Events)

	d.Wait()
}

func TestNextHalfRestoresPeriod(t *testing.T) {
	svc, _ := newMatchService(t)
	ctx := context.Background()

	_, err := svc.ToggleClock(ctx, "", "m1")
	require.NoError(t, err)

	m, err := svc.NextHalf(ctx, "", "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Half)
	assert.Nil(t, m.StartedAt)
	assert.Equal(t, int64(60000), m.RemainingMs)
}

func TestClearMatches(t *testing.T) {
	svc, d := newMatchService(t)

	require.NoError(t, svc.ClearMatches(context.Background(), "", "cat-1"))
	d.Wait()
	assert.Empty(t, d.Store().State().Matches)
}
