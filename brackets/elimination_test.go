package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
)

func TestEliminationRejectsGroupPhase(t *testing.T) {
	gen := NewEliminationGenerator()
	_, err := gen.Generate(Params{
		CategoryID: "cat-1",
		Phase:      models.PhaseGroup,
		Seeds:      []string{"a", "b"},
	})
	assert.Error(t, err)
}

func TestEliminationRejectsTooFewSeeds(t *testing.T) {
	gen := NewEliminationGenerator()
	_, err := gen.Generate(Params{
		CategoryID: "cat-1",
		Phase:      models.PhaseSemifinal,
		Seeds:      []string{"a"},
	})
	assert.Error(t, err)
}

func TestSeedPodsSnakeOrder(t *testing.T) {
	seeds := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	pods := SeedPods(seeds)

	require.Len(t, pods, 2)
	assert.Equal(t, []string{"A", "D", "E", "H"}, pods[0])
	assert.Equal(t, []string{"B", "C", "F", "G"}, pods[1])
}

func TestEliminationPodPairing(t *testing.T) {
	gen := NewEliminationGenerator()
	result, err := gen.Generate(Params{
		CategoryID: "cat-1",
		Phase:      models.PhaseQuarterfinal,
		Seeds:      []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		PeriodMs:   60000,
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 4)

	pairs := make([][2]string, len(result.Matches))
	for i, m := range result.Matches {
		pairs[i] = [2]string{m.LeftTeamID, m.RightTeamID}
		assert.Equal(t, models.PhaseQuarterfinal, m.Phase)
		assert.Equal(t, int64(60000), m.RemainingMs)
	}
	assert.Equal(t, [][2]string{
		{"A", "H"}, {"D", "E"},
		{"B", "G"}, {"C", "F"},
	}, pairs)
}

func TestEliminationSequentialFallback(t *testing.T) {
	gen := NewEliminationGenerator()
	result, err := gen.Generate(Params{
		CategoryID: "cat-1",
		Phase:      models.PhaseSemifinal,
		Seeds:      []string{"A", "B", "C", "D", "E", "F"},
		PeriodMs:   60000,
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 3)

	assert.Equal(t, "A", result.Matches[0].LeftTeamID)
	assert.Equal(t, "B", result.Matches[0].RightTeamID)
	assert.Equal(t, "C", result.Matches[1].LeftTeamID)
	assert.Equal(t, "D", result.Matches[1].RightTeamID)
	assert.Equal(t, "E", result.Matches[2].LeftTeamID)
	assert.Equal(t, "F", result.Matches[2].RightTeamID)
}

func TestEliminationFinal(t *testing.T) {
	gen := NewEliminationGenerator()
	result, err := gen.Generate(Params{
		CategoryID: "cat-1",
		Phase:      models.PhaseFinal,
		Seeds:      []string{"A", "B"},
		PeriodMs:   60000,
	})
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "A", result.Matches[0].LeftTeamID)
	assert.Equal(t, "B", result.Matches[0].RightTeamID)
}

func TestEliminationOddSeedDropsLast(t *testing.T) {
	gen := NewEliminationGenerator()
	result, err := gen.Generate(Params{
		CategoryID: "cat-1",
		Phase:      models.PhaseSemifinal,
		Seeds:      []string{"A", "B", "C"},
		PeriodMs:   60000,
	})
	require.NoError(t, err)
	// The unpaired last seed sits this round out.
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "A", result.Matches[0].LeftTeamID)
	assert.Equal(t, "B", result.Matches[0].RightTeamID)
}
