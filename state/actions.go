package state

import "github.com/luismarketmedia/dash-fut/models"

// Action is a closed tagged variant: every state transition is one of
// the types below, matched exhaustively by Apply. The Kind string is
// used for logging and metrics labels only.
type Action interface {
	Kind() string
	isAction()
}

type Hydrate struct{ State State }

type AddCategory struct{ Category models.Category }
type UpdateCategory struct{ Category models.Category }
type DeleteCategory struct{ ID string }

type AddPlayer struct{ Player models.Player }
type UpdatePlayer struct{ Player models.Player }
type DeletePlayer struct{ ID string }

type AddTeam struct{ Team models.Team }
type UpdateTeam struct{ Team models.Team }
type DeleteTeam struct{ ID string }

// SetAssignments replaces the whole assignment map.
type SetAssignments struct{ Assignments models.Assignments }

type AddMatches struct{ Matches []models.Match }
type UpdateMatch struct{ Match models.Match }
type DeleteMatch struct{ ID string }

// EditMatchTeams swaps both team references of a match. The contest
// identity changed, so the reducer resets clock and events to defaults.
type EditMatchTeams struct {
	ID          string
	LeftTeamID  string
	RightTeamID string
	RemainingMs int64 // default period length
}

// ClearMatches wipes all matches of one category, or all matches when
// CategoryID is empty.
type ClearMatches struct{ CategoryID string }

// ClearPhase wipes the matches of a single phase within one category.
// Regenerating a schedule dispatches this before the new AddMatches.
type ClearPhase struct {
	CategoryID string
	Phase      models.Phase
}

// SetGroups replaces the pool label map.
type SetGroups struct{ Groups map[string]string }

// ResetPhases clears assignments, matches and pool labels of one
// category (all categories when CategoryID is empty).
type ResetPhases struct{ CategoryID string }

type SetLoading struct{ Loading bool }

type SetWorkspaces struct{ Workspaces []models.Workspace }
type SetActiveWorkspace struct{ ID string }
type SetActiveCategory struct{ ID string }

type ResetAll struct{}

func (Hydrate) Kind() string            { return "HYDRATE" }
func (AddCategory) Kind() string        { return "ADD_CATEGORY" }
func (UpdateCategory) Kind() string     { return "UPDATE_CATEGORY" }
func (DeleteCategory) Kind() string     { return "DELETE_CATEGORY" }
func (AddPlayer) Kind() string          { return "ADD_PLAYER" }
func (UpdatePlayer) Kind() string       { return "UPDATE_PLAYER" }
func (DeletePlayer) Kind() string       { return "DELETE_PLAYER" }
func (AddTeam) Kind() string            { return "ADD_TEAM" }
func (UpdateTeam) Kind() string         { return "UPDATE_TEAM" }
func (DeleteTeam) Kind() string         { return "DELETE_TEAM" }
func (SetAssignments) Kind() string     { return "SET_ASSIGNMENTS" }
func (AddMatches) Kind() string         { return "ADD_MATCHES" }
func (UpdateMatch) Kind() string        { return "UPDATE_MATCH" }
func (DeleteMatch) Kind() string        { return "DELETE_MATCH" }
func (EditMatchTeams) Kind() string     { return "EDIT_MATCH_TEAMS" }
func (ClearMatches) Kind() string       { return "CLEAR_MATCHES" }
func (ClearPhase) Kind() string         { return "CLEAR_PHASE" }
func (SetGroups) Kind() string          { return "SET_GROUPS" }
func (ResetPhases) Kind() string        { return "RESET_PHASES" }
func (SetLoading) Kind() string         { return "SET_LOADING" }
func (SetWorkspaces) Kind() string      { return "SET_WORKSPACES" }
func (SetActiveWorkspace) Kind() string { return "SET_ACTIVE_WORKSPACE" }
func (SetActiveCategory) Kind() string  { return "SET_ACTIVE_CATEGORY" }
func (ResetAll) Kind() string           { return "RESET_ALL" }

func (Hydrate) isAction()            {}
func (AddCategory) isAction()        {}
func (UpdateCategory) isAction()     {}
func (DeleteCategory) isAction()     {}
func (AddPlayer) isAction()          {}
func (UpdatePlayer) isAction()       {}
func (DeletePlayer) isAction()       {}
func (AddTeam) isAction()            {}
func (UpdateTeam) isAction()         {}
func (DeleteTeam) isAction()         {}
func (SetAssignments) isAction()     {}
func (AddMatches) isAction()         {}
func (UpdateMatch) isAction()        {}
func (DeleteMatch) isAction()        {}
func (EditMatchTeams) isAction()     {}
func (ClearMatches) isAction()       {}
func (ClearPhase) isAction()         {}
func (SetGroups) isAction()          {}
func (ResetPhases) isAction()        {}
func (SetLoading) isAction()         {}
func (SetWorkspaces) isAction()      {}
func (SetActiveWorkspace) isAction() {}
func (SetActiveCategory) isAction()  {}
func (ResetAll) isAction()           {}
