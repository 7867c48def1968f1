package brackets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func pairMatch(left, right string) models.Match {
	return models.Match{
		ID:          fmt.Sprintf("%s-%s", left, right),
		LeftTeamID:  left,
		RightTeamID: right,
		Phase:       models.PhaseGroup,
		Half:        1,
		CategoryID:  "cat-1",
	}
}

func TestPackWeeksEmpty(t *testing.T) {
	assert.Empty(t, PackWeeks(nil, 4))
}

func TestPackWeeksNoTeamTwicePerWeek(t *testing.T) {
	matches := []models.Match{
		pairMatch("a", "b"),
		pairMatch("a", "c"), // conflicts with week 1
		pairMatch("c", "d"),
		pairMatch("b", "d"), // conflicts with week 1
	}

	weeks := PackWeeks(matches, 4)

	require.Len(t, weeks, 2)
	assert.Len(t, weeks[0], 2)
	assert.Len(t, weeks[1], 2)
	for _, week := range weeks {
		used := map[string]bool{}
		for _, m := range week {
			assert.False(t, used[m.LeftTeamID])
			assert.False(t, used[m.RightTeamID])
			used[m.LeftTeamID] = true
			used[m.RightTeamID] = true
		}
	}
}

func TestPackWeeksRespectsCapacity(t *testing.T) {
	var matches []models.Match
	for i := 0; i < 10; i++ {
		matches = append(matches, pairMatch(fmt.Sprintf("l%d", i), fmt.Sprintf("r%d", i)))
	}

	weeks := PackWeeks(matches, 4)

	require.Len(t, weeks, 3)
	assert.Len(t, weeks[0], 4)
	assert.Len(t, weeks[1], 4)
	assert.Len(t, weeks[2], 2)
}

func TestPackWeeksKeepsOrder(t *testing.T) {
	matches := []models.Match{
		pairMatch("a", "b"),
		pairMatch("c", "d"),
	}

	weeks := PackWeeks(matches, 4)

	require.Len(t, weeks, 1)
	assert.Equal(t, "a-b", weeks[0][0].ID)
	assert.Equal(t, "c-d", weeks[0][1].ID)
}
