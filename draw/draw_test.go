package draw

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func testTeams(n, capacity int) []models.Team {
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{
			ID:         fmt.Sprintf("team-%d", i),
			Name:       fmt.Sprintf("Team %d", i),
			Capacity:   capacity,
			CategoryID: "cat-1",
		}
	}
	return teams
}

func testPlayers(goalkeepers, outfield int) []models.Player {
	players := make([]models.Player, 0, goalkeepers+outfield)
	for i := 0; i < goalkeepers; i++ {
		players = append(players, models.Player{
			ID:         fmt.Sprintf("gk-%d", i),
			Name:       fmt.Sprintf("Goalkeeper %d", i),
			Position:   models.PositionGoalkeeper,
			Paid:       true,
			CategoryID: "cat-1",
		})
	}
	outfieldPositions := []models.Position{
		models.PositionFixed,
		models.PositionMid,
		models.PositionRightWing,
		models.PositionLeftWing,
		models.PositionForward,
		models.PositionNone,
	}
	for i := 0; i < outfield; i++ {
		players = append(players, models.Player{
			ID:         fmt.Sprintf("out-%d", i),
			Name:       fmt.Sprintf("Player %d", i),
			Position:   outfieldPositions[i%len(outfieldPositions)],
			Paid:       true,
			CategoryID: "cat-1",
		})
	}
	return players
}

func TestDrawNoTeams(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(1)))
	result := engine.Draw(testPlayers(2, 10), nil, Options{})
	assert.Nil(t, result)
}

func TestDrawEmptyPoolKeepsBuckets(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(1)))
	teams := testTeams(3, 8)

	result := engine.Draw(nil, teams, Options{})

	require.Len(t, result, 3)
	for _, team := range teams {
		bucket, ok := result[team.ID]
		require.True(t, ok)
		assert.Empty(t, bucket)
	}
}

func TestDrawAssignsEachPlayerOnce(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(7)))
	teams := testTeams(4, 8)
	players := testPlayers(4, 24)

	result := engine.Draw(players, teams, Options{})

	seen := map[string]string{}
	for teamID, bucket := range result {
		for _, playerID := range bucket {
			prev, dup := seen[playerID]
			require.False(t, dup, "player %s assigned to both %s and %s", playerID, prev, teamID)
			seen[playerID] = teamID
		}
	}
	// 28 players, 4 teams with target 8: everyone fits.
	assert.Len(t, seen, len(players))
}

func TestDrawOneGoalkeeperPerTeam(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(42)))
	teams := testTeams(8, 8)
	players := testPlayers(8, 56)

	result := engine.Draw(players, teams, Options{})

	posOf := map[string]models.Position{}
	for _, p := range players {
		posOf[p.ID] = p.Position
	}
	for teamID, bucket := range result {
		goalkeepers := 0
		for _, playerID := range bucket {
			if posOf[playerID] == models.PositionGoalkeeper {
				goalkeepers++
			}
		}
		assert.Equal(t, 1, goalkeepers, "team %s should hold exactly one goalkeeper", teamID)
	}
}

func TestDrawBalancedWithinOne(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		engine := NewEngine(rand.New(rand.NewSource(seed)))
		teams := testTeams(3, 8)
		players := testPlayers(3, 7) // 10 players over 3 teams

		result := engine.Draw(players, teams, Options{})

		minLen, maxLen := len(players), 0
		for _, team := range teams {
			n := len(result[team.ID])
			if n < minLen {
				minLen = n
			}
			if n > maxLen {
				maxLen = n
			}
		}
		assert.LessOrEqual(t, maxLen-minLen, 1, "seed %d: team sizes spread too far", seed)
	}
}

func TestDrawRespectsCapacity(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(3)))
	teams := testTeams(2, 5)
	players := testPlayers(2, 20)

	result := engine.Draw(players, teams, Options{})

	for teamID, bucket := range result {
		assert.LessOrEqual(t, len(bucket), 5, "team %s over capacity", teamID)
	}
}

func TestDrawTargetCapsAtPositionsPlusReserves(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(3)))
	teams := testTeams(1, 20)
	players := testPlayers(1, 20)

	result := engine.Draw(players, teams, Options{})

	// min(20, 6 positions + 2 reserves) = 8
	assert.Len(t, result["team-0"], 8)
}

func TestDrawPaidOnly(t *testing.T) {
	engine := NewEngine(rand.New(rand.NewSource(5)))
	teams := testTeams(2, 8)
	players := testPlayers(2, 10)
	players[3].Paid = false
	players[7].Paid = false

	result := engine.Draw(players, teams, Options{PaidOnly: true})

	for _, bucket := range result {
		for _, playerID := range bucket {
			assert.NotEqual(t, players[3].ID, playerID)
			assert.NotEqual(t, players[7].ID, playerID)
		}
	}
}

func TestDrawGoalkeepersNeverRebalanced(t *testing.T) {
	// One team receives its goalkeeper, the other has none to take: the
	// balancing pass must not move a goalkeeper to even things out.
	engine := NewEngine(rand.New(rand.NewSource(11)))
	teams := testTeams(2, 8)
	players := []models.Player{
		{ID: "gk-0", Name: "GK", Position: models.PositionGoalkeeper, CategoryID: "cat-1"},
		{ID: "out-0", Name: "A", Position: models.PositionFixed, CategoryID: "cat-1"},
		{ID: "out-1", Name: "B", Position: models.PositionMid, CategoryID: "cat-1"},
	}

	result := engine.Draw(players, teams, Options{})

	total := 0
	for _, bucket := range result {
		total += len(bucket)
	}
	assert.Equal(t, 3, total)
}
