package state

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func TestSnapshotJSONRoundTrip(t *testing.T) {
	started := time.Date(2026, time.March, 14, 19, 30, 0, 500_000_000, time.UTC)
	original := State{
		Workspaces: []models.Workspace{{
			ID:        "ws-1",
			Name:      "Meu campeonato",
			OwnerID:   "u1",
			CreatedAt: time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC),
		}},
		ActiveWorkspaceID: "ws-1",
		Categories:        []models.Category{{ID: "cat-1", Name: "Veteranos", WorkspaceID: "ws-1"}},
		ActiveCategoryID:  "cat-1",
		Players: []models.Player{
			{ID: "p1", JerseyNumber: 1, Name: "Carlos", Position: models.PositionGoalkeeper, Paid: true, CategoryID: "cat-1"},
			{ID: "p2", JerseyNumber: 9, Name: "Bruno", Position: models.PositionForward, CategoryID: "cat-1"},
		},
		Teams: []models.Team{
			{ID: "t1", Name: "Leões", Color: "#3b82f6", Capacity: 8, CategoryID: "cat-1"},
			{ID: "t2", Name: "Tigres", Color: "#ef4444", Capacity: 8, CategoryID: "cat-1"},
		},
		Assignments: models.Assignments{
			"t1": {"p1"},
			"t2": {"p2"},
		},
		Groups: map[string]string{"t1": "A", "t2": "A"},
		Matches: []models.Match{{
			ID:          "m1",
			LeftTeamID:  "t1",
			RightTeamID: "t2",
			Phase:       models.PhaseGroup,
			Half:        2,
			StartedAt:   &started,
			RemainingMs: 43210,
			Events: map[string]models.PlayerStats{
				"p1": {Goals: 1, Yellow: 2, Red: true},
				"p2": {Goals: 3, Destaque: true},
			},
			CategoryID: "cat-1",
		}},
		Loading: true,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)
}

func TestSnapshotRoundTripPreservesRunningClock(t *testing.T) {
	started := time.Date(2026, time.March, 14, 19, 30, 0, 0, time.UTC)
	s := Empty()
	s.Matches = []models.Match{{
		ID:          "m1",
		LeftTeamID:  "t1",
		RightTeamID: "t2",
		Phase:       models.PhaseFinal,
		Half:        1,
		StartedAt:   &started,
		RemainingMs: 60000,
		Events:      map[string]models.PlayerStats{},
		CategoryID:  "cat-1",
	}}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(data, &decoded))

	m, ok := decoded.MatchByID("m1")
	require.True(t, ok)
	require.NotNil(t, m.StartedAt)
	assert.True(t, m.StartedAt.Equal(started))
	assert.True(t, m.Running())
}
