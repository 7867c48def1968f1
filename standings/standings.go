// Package standings derives league tables and scorer rankings from
// match events. Everything here is a pure function over a snapshot
// slice; goals are attributed to the side whose assignment list holds
// the scoring player.
package standings

import (
	"sort"

	"github.com/luismarketmedia/dash-fut/models"
)

// Row is one line of the classification table.
type Row struct {
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Points       int    `json:"points"`
}

// Options restrict which matches count toward the table.
type Options struct {
	Phase models.Phase // when set, only matches of this phase count
}

// Compute builds the table for the given teams. Every match whose two
// sides are in the team set counts: win 3, draw 1, loss 0. Ordering is
// points desc, goal difference desc, goals for desc, then name asc —
// a deterministic total order, required so elimination seeding is
// reproducible given identical inputs.
func Compute(teams []models.Team, matches []models.Match, assignments models.Assignments, opts Options) []Row {
	index := make(map[string]*Row, len(teams))
	rows := make([]Row, len(teams))
	for i, t := range teams {
		rows[i] = Row{TeamID: t.ID, Name: t.Name, Color: t.Color}
		index[t.ID] = &rows[i]
	}

	for _, m := range matches {
		if opts.Phase != "" && m.Phase != opts.Phase {
			continue
		}
		left, right := index[m.LeftTeamID], index[m.RightTeamID]
		if left == nil || right == nil {
			continue
		}
		lg := GoalsFor(m.LeftTeamID, m, assignments)
		rg := GoalsFor(m.RightTeamID, m, assignments)

		left.Played++
		right.Played++
		left.GoalsFor += lg
		left.GoalsAgainst += rg
		right.GoalsFor += rg
		right.GoalsAgainst += lg
		left.GoalDiff += lg - rg
		right.GoalDiff += rg - lg

		switch {
		case lg > rg:
			left.Wins++
			right.Losses++
			left.Points += 3
		case lg < rg:
			right.Wins++
			left.Losses++
			right.Points += 3
		default:
			left.Draws++
			right.Draws++
			left.Points++
			right.Points++
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Name < b.Name
	})
	return rows
}

// GoalsFor sums the goal events of every player currently assigned to
// the team for one match.
func GoalsFor(teamID string, m models.Match, assignments models.Assignments) int {
	total := 0
	for _, pid := range assignments[teamID] {
		if ev, ok := m.Events[pid]; ok {
			total += ev.Goals
		}
	}
	return total
}

// Scorer is one line of the artilharia (top scorers) table.
type Scorer struct {
	PlayerID  string `json:"player_id"`
	Name      string `json:"name"`
	TeamID    string `json:"team_id,omitempty"`
	TeamName  string `json:"team_name,omitempty"`
	TeamColor string `json:"team_color,omitempty"`
	Goals     int    `json:"goals"`
}

// TopScorers aggregates goals per player across the given matches,
// ordered by goals desc then name asc, cut to limit (<=0 means all).
func TopScorers(players []models.Player, teams []models.Team, matches []models.Match, assignments models.Assignments, limit int) []Scorer {
	playerByID := make(map[string]models.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}
	teamByID := make(map[string]models.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	totals := make(map[string]*Scorer)
	for _, m := range matches {
		for pid, ev := range m.Events {
			pl, ok := playerByID[pid]
			if !ok {
				continue
			}
			row := totals[pid]
			if row == nil {
				row = &Scorer{PlayerID: pid, Name: pl.Name}
				if tid := assignments.TeamOf(pid); tid != "" {
					if t, ok := teamByID[tid]; ok {
						row.TeamID = t.ID
						row.TeamName = t.Name
						row.TeamColor = t.Color
					}
				}
				totals[pid] = row
			}
			row.Goals += ev.Goals
		}
	}

	out := make([]Scorer, 0, len(totals))
	for _, row := range totals {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
