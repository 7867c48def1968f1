package brackets

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func testTeams(n int) []models.Team {
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{
			ID:         fmt.Sprintf("team-%d", i),
			Name:       fmt.Sprintf("Team %d", i),
			CategoryID: "cat-1",
		}
	}
	return teams
}

func TestRoundRobinRejectsTooFewTeams(t *testing.T) {
	gen := NewRoundRobinGenerator(rand.New(rand.NewSource(1)), 4)

	_, err := gen.Generate(Params{CategoryID: "cat-1", Teams: testTeams(1), PeriodMs: 60000})
	assert.Error(t, err)

	_, err = gen.Generate(Params{CategoryID: "cat-1", PeriodMs: 60000})
	assert.Error(t, err)
}

func TestRoundRobinEveryPairOnce(t *testing.T) {
	gen := NewRoundRobinGenerator(rand.New(rand.NewSource(2)), 4)
	result, err := gen.Generate(Params{CategoryID: "cat-1", Teams: testTeams(8), PeriodMs: 60000})
	require.NoError(t, err)

	// 8 teams in pools of 4: two pools, C(4,2)=6 matches each.
	assert.Len(t, result.Matches, 12)

	seen := map[string]bool{}
	for _, m := range result.Matches {
		key := pairKey(m.LeftTeamID, m.RightTeamID)
		assert.False(t, seen[key], "pair %s scheduled twice", key)
		seen[key] = true

		// Pairings never cross pool boundaries.
		assert.Equal(t, result.Groups[m.LeftTeamID], result.Groups[m.RightTeamID])
		assert.Equal(t, models.PhaseGroup, m.Phase)
		assert.Equal(t, "cat-1", m.CategoryID)
		assert.Equal(t, int64(60000), m.RemainingMs)
		assert.Equal(t, 1, m.Half)
		assert.Nil(t, m.StartedAt)
	}
}

func TestRoundRobinPoolLabels(t *testing.T) {
	gen := NewRoundRobinGenerator(rand.New(rand.NewSource(3)), 4)
	result, err := gen.Generate(Params{CategoryID: "cat-1", Teams: testTeams(8), PeriodMs: 60000})
	require.NoError(t, err)

	require.Len(t, result.Groups, 8)
	byLabel := map[string]int{}
	for _, label := range result.Groups {
		byLabel[label]++
	}
	assert.Equal(t, map[string]int{"A": 4, "B": 4}, byLabel)
}

func TestRoundRobinOddPoolUsesBye(t *testing.T) {
	gen := NewRoundRobinGenerator(rand.New(rand.NewSource(4)), 4)
	result, err := gen.Generate(Params{CategoryID: "cat-1", Teams: testTeams(3), PeriodMs: 60000})
	require.NoError(t, err)

	// Single pool of 3: C(3,2)=3 matches, no bye leaks into a pairing.
	assert.Len(t, result.Matches, 3)
	for _, m := range result.Matches {
		assert.NotEqual(t, byeSlot, m.LeftTeamID)
		assert.NotEqual(t, byeSlot, m.RightTeamID)
	}
}

func TestRoundRobinUnevenPools(t *testing.T) {
	gen := NewRoundRobinGenerator(rand.New(rand.NewSource(5)), 4)
	result, err := gen.Generate(Params{CategoryID: "cat-1", Teams: testTeams(5), PeriodMs: 60000})
	require.NoError(t, err)

	// Five teams deal into pools of 3 and 2: 3 + 1 matches.
	assert.Len(t, result.Matches, 4)

	byLabel := map[string]int{}
	for _, label := range result.Groups {
		byLabel[label]++
	}
	assert.Equal(t, map[string]int{"A": 3, "B": 2}, byLabel)
}

func TestPoolLabelSequence(t *testing.T) {
	assert.Equal(t, "A", poolLabel(0))
	assert.Equal(t, "B", poolLabel(1))
	assert.Equal(t, "Z", poolLabel(25))
	assert.Equal(t, "AA", poolLabel(26))
	assert.Equal(t, "AB", poolLabel(27))
}

func TestCircleRoundsNoTeamTwicePerRound(t *testing.T) {
	gen := &RoundRobinGenerator{rnd: rand.New(rand.NewSource(6)), poolSize: 6}
	pool := []string{"a", "b", "c", "d", "e", "f"}

	rounds := gen.circleRounds(pool)
	require.Len(t, rounds, 5)

	for r, round := range rounds {
		assert.Len(t, round, 3)
		seen := map[string]bool{}
		for _, pair := range round {
			assert.False(t, seen[pair[0]], "round %d reuses %s", r, pair[0])
			assert.False(t, seen[pair[1]], "round %d reuses %s", r, pair[1])
			seen[pair[0]] = true
			seen[pair[1]] = true
		}
	}
}
