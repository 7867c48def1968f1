package brackets

import "github.com/luismarketmedia/dash-fut/models"

const defaultWeekSize = 4

// PackWeeks groups matches into display rounds: each week holds at most
// maxPerWeek games and no team plays twice in the same week. The greedy
// pass keeps the incoming order, so the circle-method rounds mostly
// survive intact.
func PackWeeks(matches []models.Match, maxPerWeek int) [][]models.Match {
	if maxPerWeek <= 0 {
		maxPerWeek = defaultWeekSize
	}

	remaining := append([]models.Match(nil), matches...)
	var weeks [][]models.Match
	for len(remaining) > 0 {
		week := make([]models.Match, 0, maxPerWeek)
		used := make(map[string]bool)
		deferred := make([]models.Match, 0, len(remaining))
		for _, m := range remaining {
			if len(week) < maxPerWeek && !used[m.LeftTeamID] && !used[m.RightTeamID] {
				week = append(week, m)
				used[m.LeftTeamID] = true
				used[m.RightTeamID] = true
				continue
			}
			deferred = append(deferred, m)
		}
		weeks = append(weeks, week)
		remaining = deferred
	}
	return weeks
}
