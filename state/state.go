package state

import "github.com/luismarketmedia/dash-fut/models"

// State is the authoritative in-memory snapshot of the whole domain.
// It is a value: Apply never mutates its input, and every entity is
// related by id only, so the snapshot serializes freely.
type State struct {
	Workspaces        []models.Workspace `json:"workspaces"`
	ActiveWorkspaceID string             `json:"active_workspace_id"`
	Categories        []models.Category  `json:"categories"`
	ActiveCategoryID  string             `json:"active_category_id"`
	Players           []models.Player    `json:"players"`
	Teams             []models.Team      `json:"teams"`
	Assignments       models.Assignments `json:"assignments"`
	Groups            map[string]string  `json:"groups"` // team id -> pool label ("A", "B", ...)
	Matches           []models.Match     `json:"matches"`
	Loading           bool               `json:"loading"`
}

func Empty() State {
	return State{
		Workspaces:  []models.Workspace{},
		Categories:  []models.Category{},
		Players:     []models.Player{},
		Teams:       []models.Team{},
		Assignments: models.Assignments{},
		Groups:      map[string]string{},
		Matches:     []models.Match{},
	}
}

func (s State) Clone() State {
	out := s
	out.Workspaces = append([]models.Workspace(nil), s.Workspaces...)
	out.Categories = append([]models.Category(nil), s.Categories...)
	out.Players = append([]models.Player(nil), s.Players...)
	out.Teams = append([]models.Team(nil), s.Teams...)
	out.Assignments = s.Assignments.Clone()
	out.Groups = make(map[string]string, len(s.Groups))
	for tid, label := range s.Groups {
		out.Groups[tid] = label
	}
	out.Matches = make([]models.Match, len(s.Matches))
	for i, m := range s.Matches {
		out.Matches[i] = m.Clone()
	}
	return out
}

// TeamsInCategory returns the teams of the given category, in state order.
func (s State) TeamsInCategory(categoryID string) []models.Team {
	var out []models.Team
	for _, t := range s.Teams {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// PlayersInCategory returns the players of the given category, in state order.
func (s State) PlayersInCategory(categoryID string) []models.Player {
	var out []models.Player
	for _, p := range s.Players {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// MatchesInCategory returns the matches of the given category, in state order.
func (s State) MatchesInCategory(categoryID string) []models.Match {
	var out []models.Match
	for _, m := range s.Matches {
		if m.CategoryID == categoryID {
			out = append(out, m)
		}
	}
	return out
}

// MatchByID finds a match in the snapshot, or returns false.
func (s State) MatchByID(id string) (models.Match, bool) {
	for _, m := range s.Matches {
		if m.ID == id {
			return m, true
		}
	}
	return models.Match{}, false
}
