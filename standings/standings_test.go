package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func match(id, left, right string, phase models.Phase, events map[string]models.PlayerStats) models.Match {
	return models.Match{
		ID:          id,
		LeftTeamID:  left,
		RightTeamID: right,
		Phase:       phase,
		Half:        1,
		Events:      events,
		CategoryID:  "cat-1",
	}
}

func fixtures() ([]models.Team, models.Assignments) {
	teams := []models.Team{
		{ID: "t1", Name: "Leões", CategoryID: "cat-1"},
		{ID: "t2", Name: "Tigres", CategoryID: "cat-1"},
		{ID: "t3", Name: "Águias", CategoryID: "cat-1"},
	}
	assignments := models.Assignments{
		"t1": {"p1", "p2"},
		"t2": {"p3", "p4"},
		"t3": {"p5"},
	}
	return teams, assignments
}

func TestComputePointsAndGoals(t *testing.T) {
	teams, assignments := fixtures()
	matches := []models.Match{
		// t1 beats t2 by 2:1.
		match("m1", "t1", "t2", models.PhaseGroup, map[string]models.PlayerStats{
			"p1": {Goals: 2},
			"p3": {Goals: 1},
		}),
		// t2 and t3 draw 0:0.
		match("m2", "t2", "t3", models.PhaseGroup, nil),
	}

	rows := Compute(teams, matches, assignments, Options{})
	require.Len(t, rows, 3)

	assert.Equal(t, "t1", rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 1, rows[0].Wins)
	assert.Equal(t, 2, rows[0].GoalsFor)
	assert.Equal(t, 1, rows[0].GoalsAgainst)
	assert.Equal(t, 1, rows[0].GoalDiff)

	// t2 and t3 both hold one point; t2 ranks higher on goals for.
	assert.Equal(t, "t2", rows[1].TeamID)
	assert.Equal(t, 1, rows[1].Points)
	assert.Equal(t, 2, rows[1].Played)
	assert.Equal(t, "t3", rows[2].TeamID)
	assert.Equal(t, 1, rows[2].Points)
}

func TestComputeNameTiebreak(t *testing.T) {
	teams, assignments := fixtures()

	rows := Compute(teams, nil, assignments, Options{})
	require.Len(t, rows, 3)

	// No matches: everything zero, alphabetical order decides.
	assert.Equal(t, "Águias", rows[0].Name)
	assert.Equal(t, "Leões", rows[1].Name)
	assert.Equal(t, "Tigres", rows[2].Name)
}

func TestComputePhaseFilter(t *testing.T) {
	teams, assignments := fixtures()
	matches := []models.Match{
		match("m1", "t1", "t2", models.PhaseGroup, map[string]models.PlayerStats{"p1": {Goals: 1}}),
		match("m2", "t1", "t3", models.PhaseSemifinal, map[string]models.PlayerStats{"p5": {Goals: 3}}),
	}

	rows := Compute(teams, matches, assignments, Options{Phase: models.PhaseGroup})

	assert.Equal(t, "t1", rows[0].TeamID)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 1, rows[0].Played)
	// The semifinal thrashing never counted.
	assert.Equal(t, 0, rows[0].GoalsAgainst)
}

func TestComputeIgnoresForeignTeams(t *testing.T) {
	teams, assignments := fixtures()
	matches := []models.Match{
		match("m1", "t1", "other", models.PhaseGroup, map[string]models.PlayerStats{"p1": {Goals: 5}}),
	}

	rows := Compute(teams, matches, assignments, Options{})
	for _, row := range rows {
		assert.Zero(t, row.Played)
	}
}

func TestGoalsForOnlyCountsAssignedPlayers(t *testing.T) {
	_, assignments := fixtures()
	m := match("m1", "t1", "t2", models.PhaseGroup, map[string]models.PlayerStats{
		"p1": {Goals: 2},
		"p3": {Goals: 4},
	})

	assert.Equal(t, 2, GoalsFor("t1", m, assignments))
	assert.Equal(t, 4, GoalsFor("t2", m, assignments))
	assert.Equal(t, 0, GoalsFor("t3", m, assignments))
}

func TestTopScorers(t *testing.T) {
	teams, assignments := fixtures()
	players := []models.Player{
		{ID: "p1", Name: "Carlos", CategoryID: "cat-1"},
		{ID: "p3", Name: "Bruno", CategoryID: "cat-1"},
		{ID: "p5", Name: "André", CategoryID: "cat-1"},
	}
	matches := []models.Match{
		match("m1", "t1", "t2", models.PhaseGroup, map[string]models.PlayerStats{
			"p1": {Goals: 2},
			"p3": {Goals: 2},
		}),
		match("m2", "t2", "t3", models.PhaseGroup, map[string]models.PlayerStats{
			"p3": {Goals: 1},
			"p5": {Goals: 1},
		}),
	}

	scorers := TopScorers(players, teams, matches, assignments, 0)
	require.Len(t, scorers, 3)

	assert.Equal(t, "p3", scorers[0].PlayerID)
	assert.Equal(t, 3, scorers[0].Goals)
	assert.Equal(t, "Tigres", scorers[0].TeamName)
	assert.Equal(t, "p1", scorers[1].PlayerID)
	assert.Equal(t, "p5", scorers[2].PlayerID)

	limited := TopScorers(players, teams, matches, assignments, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, "p3", limited[0].PlayerID)
}
