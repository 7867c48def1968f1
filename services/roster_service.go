package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/state"
)

const (
	defaultTeamColor    = "#3b82f6"
	defaultTeamCapacity = 8
)

// RosterService covers category, player and team management.
type RosterService struct {
	dispatcher *Dispatcher
}

func NewRosterService(dispatcher *Dispatcher) *RosterService {
	return &RosterService{dispatcher: dispatcher}
}

type CategoryInput struct {
	Name string `json:"name"`
}

func (s *RosterService) CreateCategory(ctx context.Context, workspaceID string, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	category := models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		WorkspaceID: workspaceID,
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.AddCategory{Category: category})
	return &category, nil
}

func (s *RosterService) UpdateCategory(ctx context.Context, workspaceID, categoryID string, input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	st := s.dispatcher.Store().State()
	if !categoryExists(st, categoryID) {
		return nil, ErrCategoryNotFound
	}
	category := models.Category{ID: categoryID, Name: name, WorkspaceID: workspaceID}
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateCategory{Category: category})
	return &category, nil
}

// DeleteCategory cascades: players, teams, assignments, labels and
// matches of the category all go with it.
func (s *RosterService) DeleteCategory(ctx context.Context, workspaceID, categoryID string) error {
	st := s.dispatcher.Store().State()
	if !categoryExists(st, categoryID) {
		return ErrCategoryNotFound
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.DeleteCategory{ID: categoryID})
	return nil
}

func (s *RosterService) SetActiveCategory(ctx context.Context, workspaceID, categoryID string) error {
	st := s.dispatcher.Store().State()
	if categoryID != "" && !categoryExists(st, categoryID) {
		return ErrCategoryNotFound
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.SetActiveCategory{ID: categoryID})
	return nil
}

type PlayerInput struct {
	JerseyNumber int             `json:"jersey_number"`
	Name         string          `json:"name"`
	Position     models.Position `json:"position"`
	Paid         bool            `json:"paid"`
	CategoryID   string          `json:"category_id"`
}

func (s *RosterService) validatePlayer(st state.State, input PlayerInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrPlayerNameRequired
	}
	if input.Position != "" && !input.Position.Valid() {
		return ErrInvalidPosition
	}
	if !categoryExists(st, input.CategoryID) {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *RosterService) CreatePlayer(ctx context.Context, workspaceID string, input PlayerInput) (*models.Player, error) {
	st := s.dispatcher.Store().State()
	if err := s.validatePlayer(st, input); err != nil {
		return nil, err
	}
	position := input.Position
	if position == "" {
		position = models.PositionNone
	}
	player := models.Player{
		ID:           uuid.NewString(),
		JerseyNumber: input.JerseyNumber,
		Name:         strings.TrimSpace(input.Name),
		Position:     position,
		Paid:         input.Paid,
		CategoryID:   input.CategoryID,
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.AddPlayer{Player: player})
	return &player, nil
}

func (s *RosterService) UpdatePlayer(ctx context.Context, workspaceID, playerID string, input PlayerInput) (*models.Player, error) {
	st := s.dispatcher.Store().State()
	if err := s.validatePlayer(st, input); err != nil {
		return nil, err
	}
	if !playerExists(st, playerID) {
		return nil, ErrPlayerNotFound
	}
	position := input.Position
	if position == "" {
		position = models.PositionNone
	}
	player := models.Player{
		ID:           playerID,
		JerseyNumber: input.JerseyNumber,
		Name:         strings.TrimSpace(input.Name),
		Position:     position,
		Paid:         input.Paid,
		CategoryID:   input.CategoryID,
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdatePlayer{Player: player})
	return &player, nil
}

// DeletePlayer also removes the player from any team bucket.
func (s *RosterService) DeletePlayer(ctx context.Context, workspaceID, playerID string) error {
	st := s.dispatcher.Store().State()
	if !playerExists(st, playerID) {
		return ErrPlayerNotFound
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.DeletePlayer{ID: playerID})
	return nil
}

type TeamInput struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Capacity   int    `json:"capacity"`
	CategoryID string `json:"category_id"`
}

func (s *RosterService) CreateTeam(ctx context.Context, workspaceID string, input TeamInput) (*models.Team, error) {
	st := s.dispatcher.Store().State()
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}
	if !categoryExists(st, input.CategoryID) {
		return nil, ErrCategoryNotFound
	}
	team := models.Team{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(input.Name),
		Color:      input.Color,
		Capacity:   input.Capacity,
		CategoryID: input.CategoryID,
	}
	if team.Color == "" {
		team.Color = defaultTeamColor
	}
	if team.Capacity <= 0 {
		team.Capacity = defaultTeamCapacity
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.AddTeam{Team: team})
	return &team, nil
}

func (s *RosterService) UpdateTeam(ctx context.Context, workspaceID, teamID string, input TeamInput) (*models.Team, error) {
	st := s.dispatcher.Store().State()
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTeamNameRequired
	}
	current := findTeam(st, teamID)
	if current == nil {
		return nil, ErrTeamNotFound
	}
	if !categoryExists(st, input.CategoryID) {
		return nil, ErrCategoryNotFound
	}
	team := models.Team{
		ID:         teamID,
		Name:       strings.TrimSpace(input.Name),
		Color:      input.Color,
		Capacity:   input.Capacity,
		CategoryID: input.CategoryID,
	}
	if team.Color == "" {
		team.Color = current.Color
	}
	if team.Capacity <= 0 {
		team.Capacity = current.Capacity
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateTeam{Team: team})
	return &team, nil
}

// DeleteTeam drops the team, its assignment bucket and its pool label.
func (s *RosterService) DeleteTeam(ctx context.Context, workspaceID, teamID string) error {
	st := s.dispatcher.Store().State()
	if findTeam(st, teamID) == nil {
		return ErrTeamNotFound
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.DeleteTeam{ID: teamID})
	return nil
}

func playerExists(st state.State, playerID string) bool {
	for _, p := range st.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

func findTeam(st state.State, teamID string) *models.Team {
	for i := range st.Teams {
		if st.Teams[i].ID == teamID {
			return &st.Teams[i]
		}
	}
	return nil
}
