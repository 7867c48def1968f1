package state

import "github.com/luismarketmedia/dash-fut/models"

// Apply is the pure state transition function. It never performs I/O
// and never mutates its input; callers get a fresh snapshot back.
// Persistence is a side effect layered on top by the dispatcher.
func Apply(s State, action Action) State {
	switch a := action.(type) {
	case Hydrate:
		return a.State.Clone()

	case AddCategory:
		next := s.Clone()
		next.Categories = append(next.Categories, a.Category)
		return next

	case UpdateCategory:
		next := s.Clone()
		for i, c := range next.Categories {
			if c.ID == a.Category.ID {
				next.Categories[i] = a.Category
			}
		}
		return next

	case DeleteCategory:
		return deleteCategory(s, a.ID)

	case AddPlayer:
		next := s.Clone()
		next.Players = append(next.Players, a.Player)
		return next

	case UpdatePlayer:
		next := s.Clone()
		for i, p := range next.Players {
			if p.ID == a.Player.ID {
				next.Players[i] = a.Player
			}
		}
		return next

	case DeletePlayer:
		next := s.Clone()
		next.Players = filterPlayers(next.Players, func(p models.Player) bool { return p.ID != a.ID })
		next.Assignments.RemovePlayer(a.ID)
		return next

	case AddTeam:
		next := s.Clone()
		next.Teams = append(next.Teams, a.Team)
		next.Assignments[a.Team.ID] = []string{}
		return next

	case UpdateTeam:
		next := s.Clone()
		for i, t := range next.Teams {
			if t.ID == a.Team.ID {
				next.Teams[i] = a.Team
			}
		}
		return next

	case DeleteTeam:
		next := s.Clone()
		next.Teams = filterTeams(next.Teams, func(t models.Team) bool { return t.ID != a.ID })
		delete(next.Assignments, a.ID)
		delete(next.Groups, a.ID)
		return next

	case SetAssignments:
		next := s.Clone()
		next.Assignments = a.Assignments.Clone()
		return next

	case AddMatches:
		next := s.Clone()
		for _, m := range a.Matches {
			next.Matches = append(next.Matches, m.Clone())
		}
		return next

	case UpdateMatch:
		next := s.Clone()
		for i, m := range next.Matches {
			if m.ID == a.Match.ID {
				next.Matches[i] = a.Match.Clone()
			}
		}
		return next

	case DeleteMatch:
		next := s.Clone()
		next.Matches = filterMatches(next.Matches, func(m models.Match) bool { return m.ID != a.ID })
		return next

	case EditMatchTeams:
		next := s.Clone()
		for i, m := range next.Matches {
			if m.ID != a.ID {
				continue
			}
			m.LeftTeamID = a.LeftTeamID
			m.RightTeamID = a.RightTeamID
			m.Half = 1
			m.StartedAt = nil
			m.RemainingMs = a.RemainingMs
			m.Events = map[string]models.PlayerStats{}
			next.Matches[i] = m
		}
		return next

	case ClearMatches:
		next := s.Clone()
		next.Matches = filterMatches(next.Matches, func(m models.Match) bool {
			return a.CategoryID != "" && m.CategoryID != a.CategoryID
		})
		return next

	case ClearPhase:
		next := s.Clone()
		next.Matches = filterMatches(next.Matches, func(m models.Match) bool {
			return m.CategoryID != a.CategoryID || m.Phase != a.Phase
		})
		return next

	case SetGroups:
		next := s.Clone()
		next.Groups = make(map[string]string, len(a.Groups))
		for tid, label := range a.Groups {
			next.Groups[tid] = label
		}
		return next

	case ResetPhases:
		return resetPhases(s, a.CategoryID)

	case SetLoading:
		next := s.Clone()
		next.Loading = a.Loading
		return next

	case SetWorkspaces:
		next := s.Clone()
		next.Workspaces = append([]models.Workspace(nil), a.Workspaces...)
		return next

	case SetActiveWorkspace:
		next := s.Clone()
		next.ActiveWorkspaceID = a.ID
		return next

	case SetActiveCategory:
		next := s.Clone()
		next.ActiveCategoryID = a.ID
		return next

	case ResetAll:
		return Empty()
	}
	return s
}

// deleteCategory cascades: the category's players, teams (with their
// assignment buckets and pool labels) and matches all go with it.
func deleteCategory(s State, categoryID string) State {
	next := s.Clone()
	next.Categories = filterCategories(next.Categories, func(c models.Category) bool { return c.ID != categoryID })
	next.Players = filterPlayers(next.Players, func(p models.Player) bool { return p.CategoryID != categoryID })
	for _, t := range next.Teams {
		if t.CategoryID == categoryID {
			delete(next.Assignments, t.ID)
			delete(next.Groups, t.ID)
		}
	}
	next.Teams = filterTeams(next.Teams, func(t models.Team) bool { return t.CategoryID != categoryID })
	next.Matches = filterMatches(next.Matches, func(m models.Match) bool { return m.CategoryID != categoryID })
	if next.ActiveCategoryID == categoryID {
		next.ActiveCategoryID = ""
	}
	return next
}

func resetPhases(s State, categoryID string) State {
	next := s.Clone()
	if categoryID == "" {
		next.Assignments = models.Assignments{}
		for _, t := range next.Teams {
			next.Assignments[t.ID] = []string{}
		}
		next.Groups = map[string]string{}
		next.Matches = []models.Match{}
		return next
	}
	for _, t := range next.Teams {
		if t.CategoryID == categoryID {
			next.Assignments[t.ID] = []string{}
			delete(next.Groups, t.ID)
		}
	}
	next.Matches = filterMatches(next.Matches, func(m models.Match) bool { return m.CategoryID != categoryID })
	return next
}

func filterCategories(in []models.Category, keep func(models.Category) bool) []models.Category {
	out := in[:0]
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func filterPlayers(in []models.Player, keep func(models.Player) bool) []models.Player {
	out := in[:0]
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func filterTeams(in []models.Team, keep func(models.Team) bool) []models.Team {
	out := in[:0]
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func filterMatches(in []models.Match, keep func(models.Match) bool) []models.Match {
	out := in[:0]
	for _, m := range in {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
