package brackets

import (
	"github.com/google/uuid"
	"github.com/luismarketmedia/dash-fut/models"
)

// Params carries the input of one generation pass. Group stage pairs
// the Teams; elimination stages pair the Seeds (team ids ranked
// best-first, already cut to the qualifier count).
type Params struct {
	CategoryID string
	Phase      models.Phase
	Teams      []models.Team
	Seeds      []string
	PeriodMs   int64
}

// Result of a generation pass. Groups is populated by the group-stage
// generator only and maps team id to its pool label.
type Result struct {
	Matches []models.Match
	Groups  map[string]string
}

type Generator interface {
	Generate(params Params) (*Result, error)

	Name() string
}

// newMatch builds a match with the default clock state: first half,
// full period remaining, stopped, no events.
func newMatch(categoryID string, phase models.Phase, leftTeamID, rightTeamID string, periodMs int64) models.Match {
	return models.Match{
		ID:          uuid.NewString(),
		LeftTeamID:  leftTeamID,
		RightTeamID: rightTeamID,
		Phase:       phase,
		Half:        1,
		StartedAt:   nil,
		RemainingMs: periodMs,
		Events:      map[string]models.PlayerStats{},
		CategoryID:  categoryID,
	}
}

// pairKey identifies a pairing regardless of side order.
func pairKey(a, b string) string {
	if a < b {
		return a + "::" + b
	}
	return b + "::" + a
}
