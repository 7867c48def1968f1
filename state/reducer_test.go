package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func seedState() State {
	s := Empty()
	s.ActiveCategoryID = "cat-1"
	s.Categories = []models.Category{
		{ID: "cat-1", Name: "Veteranos"},
		{ID: "cat-2", Name: "Sub-20"},
	}
	s.Players = []models.Player{
		{ID: "p1", Name: "Carlos", Position: models.PositionGoalkeeper, CategoryID: "cat-1"},
		{ID: "p2", Name: "Bruno", Position: models.PositionFixed, CategoryID: "cat-1"},
		{ID: "p3", Name: "André", Position: models.PositionForward, CategoryID: "cat-2"},
	}
	s.Teams = []models.Team{
		{ID: "t1", Name: "Leões", Capacity: 8, CategoryID: "cat-1"},
		{ID: "t2", Name: "Tigres", Capacity: 8, CategoryID: "cat-1"},
		{ID: "t3", Name: "Águias", Capacity: 8, CategoryID: "cat-2"},
	}
	s.Assignments = models.Assignments{
		"t1": {"p1"},
		"t2": {"p2"},
		"t3": {"p3"},
	}
	s.Groups = map[string]string{"t1": "A", "t2": "A"}
	s.Matches = []models.Match{
		{ID: "m1", LeftTeamID: "t1", RightTeamID: "t2", Phase: models.PhaseGroup, Half: 1, RemainingMs: 60000, Events: map[string]models.PlayerStats{}, CategoryID: "cat-1"},
		{ID: "m2", LeftTeamID: "t3", RightTeamID: "t3", Phase: models.PhaseGroup, Half: 1, RemainingMs: 60000, Events: map[string]models.PlayerStats{}, CategoryID: "cat-2"},
		{ID: "m3", LeftTeamID: "t1", RightTeamID: "t2", Phase: models.PhaseFinal, Half: 1, RemainingMs: 60000, Events: map[string]models.PlayerStats{}, CategoryID: "cat-1"},
	}
	return s
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := seedState()
	before := s.Clone()

	Apply(s, DeleteCategory{ID: "cat-1"})
	Apply(s, DeletePlayer{ID: "p1"})
	Apply(s, ResetAll{})

	assert.Equal(t, before, s)
}

func TestDeleteCategoryCascades(t *testing.T) {
	next := Apply(seedState(), DeleteCategory{ID: "cat-1"})

	require.Len(t, next.Categories, 1)
	assert.Equal(t, "cat-2", next.Categories[0].ID)

	for _, p := range next.Players {
		assert.NotEqual(t, "cat-1", p.CategoryID)
	}
	for _, team := range next.Teams {
		assert.NotEqual(t, "cat-1", team.CategoryID)
	}
	_, hasT1 := next.Assignments["t1"]
	assert.False(t, hasT1)
	_, hasLabel := next.Groups["t1"]
	assert.False(t, hasLabel)
	for _, m := range next.Matches {
		assert.NotEqual(t, "cat-1", m.CategoryID)
	}
	// The deleted category was active.
	assert.Empty(t, next.ActiveCategoryID)
}

func TestDeletePlayerPurgesAssignments(t *testing.T) {
	next := Apply(seedState(), DeletePlayer{ID: "p1"})

	require.Len(t, next.Players, 2)
	assert.Empty(t, next.Assignments["t1"])
	assert.Equal(t, []string{"p2"}, next.Assignments["t2"])
}

func TestDeleteTeamDropsBucketAndLabel(t *testing.T) {
	next := Apply(seedState(), DeleteTeam{ID: "t1"})

	require.Len(t, next.Teams, 2)
	_, ok := next.Assignments["t1"]
	assert.False(t, ok)
	_, ok = next.Groups["t1"]
	assert.False(t, ok)
}

func TestAddTeamCreatesEmptyBucket(t *testing.T) {
	next := Apply(seedState(), AddTeam{Team: models.Team{ID: "t4", Name: "Falcões", CategoryID: "cat-1"}})

	bucket, ok := next.Assignments["t4"]
	require.True(t, ok)
	assert.Empty(t, bucket)
}

func TestEditMatchTeamsResetsClockAndEvents(t *testing.T) {
	s := seedState()
	started := time.Now()
	s.Matches[0].Half = 2
	s.Matches[0].StartedAt = &started
	s.Matches[0].RemainingMs = 1234
	s.Matches[0].Events = map[string]models.PlayerStats{"p1": {Goals: 2}}

	next := Apply(s, EditMatchTeams{ID: "m1", LeftTeamID: "t2", RightTeamID: "t1", RemainingMs: 60000})

	m, ok := next.MatchByID("m1")
	require.True(t, ok)
	assert.Equal(t, "t2", m.LeftTeamID)
	assert.Equal(t, "t1", m.RightTeamID)
	assert.Equal(t, 1, m.Half)
	assert.Nil(t, m.StartedAt)
	assert.Equal(t, int64(60000), m.RemainingMs)
	assert.Empty(t, m.Events)
}

func TestClearMatchesScopesByCategory(t *testing.T) {
	next := Apply(seedState(), ClearMatches{CategoryID: "cat-1"})

	require.Len(t, next.Matches, 1)
	assert.Equal(t, "m2", next.Matches[0].ID)

	all := Apply(seedState(), ClearMatches{})
	assert.Empty(t, all.Matches)
}

func TestClearPhaseLeavesOtherPhasesAlone(t *testing.T) {
	next := Apply(seedState(), ClearPhase{CategoryID: "cat-1", Phase: models.PhaseGroup})

	ids := make([]string, 0, len(next.Matches))
	for _, m := range next.Matches {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"m2", "m3"}, ids)
}

func TestResetPhasesForCategory(t *testing.T) {
	next := Apply(seedState(), ResetPhases{CategoryID: "cat-1"})

	assert.Empty(t, next.Assignments["t1"])
	assert.Empty(t, next.Assignments["t2"])
	// Other category untouched.
	assert.Equal(t, []string{"p3"}, next.Assignments["t3"])
	assert.Empty(t, next.Groups)
	require.Len(t, next.Matches, 1)
	assert.Equal(t, "cat-2", next.Matches[0].CategoryID)
	// Rosters survive a phase reset.
	assert.Len(t, next.Players, 3)
	assert.Len(t, next.Teams, 3)
}

func TestResetPhasesAllCategories(t *testing.T) {
	next := Apply(seedState(), ResetPhases{})

	assert.Empty(t, next.Matches)
	assert.Empty(t, next.Groups)
	for _, team := range next.Teams {
		assert.Empty(t, next.Assignments[team.ID])
	}
}

func TestResetAll(t *testing.T) {
	next := Apply(seedState(), ResetAll{})
	assert.Equal(t, Empty(), next)
}

func TestHydrateReplacesEverything(t *testing.T) {
	incoming := seedState()
	next := Apply(Empty(), Hydrate{State: incoming})

	assert.Equal(t, incoming, next)

	// Hydrate clones: mutating the source must not leak in.
	incoming.Categories[0].Name = "changed"
	assert.Equal(t, "Veteranos", next.Categories[0].Name)
}

func TestUpdateMatchClonesPayload(t *testing.T) {
	s := seedState()
	updated := s.Matches[0].Clone()
	updated.Events["p1"] = models.PlayerStats{Goals: 1}

	next := Apply(s, UpdateMatch{Match: updated})

	updated.Events["p1"] = models.PlayerStats{Goals: 99}
	m, ok := next.MatchByID("m1")
	require.True(t, ok)
	assert.Equal(t, 1, m.Events["p1"].Goals)
}

func TestUnknownSelectionActions(t *testing.T) {
	next := Apply(seedState(), SetActiveCategory{ID: "cat-2"})
	assert.Equal(t, "cat-2", next.ActiveCategoryID)

	next = Apply(next, SetActiveWorkspace{ID: "ws-1"})
	assert.Equal(t, "ws-1", next.ActiveWorkspaceID)

	next = Apply(next, SetLoading{Loading: true})
	assert.True(t, next.Loading)
}

func TestStoreRevisionAndListeners(t *testing.T) {
	store := NewStore(Empty())

	var got []string
	store.Subscribe(func(_ State, action Action) {
		got = append(got, action.Kind())
	})

	store.Dispatch(AddCategory{Category: models.Category{ID: "cat-1", Name: "Veteranos"}})
	snapshot := store.Dispatch(SetActiveCategory{ID: "cat-1"})

	assert.Equal(t, uint64(2), store.Revision())
	assert.Equal(t, []string{"ADD_CATEGORY", "SET_ACTIVE_CATEGORY"}, got)
	assert.Equal(t, "cat-1", snapshot.ActiveCategoryID)

	// Snapshots are copies.
	snapshot.Categories[0].Name = "changed"
	assert.Equal(t, "Veteranos", store.State().Categories[0].Name)
}
