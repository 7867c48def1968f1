package services

import (
	"context"

	"github.com/luismarketmedia/dash-fut/draw"
	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/state"
)

// DrawService runs the constrained random draw for one category and
// publishes the result.
type DrawService struct {
	dispatcher *Dispatcher
	engine     *draw.Engine
}

func NewDrawService(dispatcher *Dispatcher, engine *draw.Engine) *DrawService {
	if engine == nil {
		engine = draw.NewEngine(nil)
	}
	return &DrawService{dispatcher: dispatcher, engine: engine}
}

// PerformDraw reshuffles the category's players across its teams. Other
// categories keep their buckets untouched.
func (s *DrawService) PerformDraw(ctx context.Context, workspaceID, categoryID string, opts draw.Options) (models.Assignments, error) {
	st := s.dispatcher.Store().State()
	if !categoryExists(st, categoryID) {
		return nil, ErrCategoryNotFound
	}

	teams := st.TeamsInCategory(categoryID)
	if len(teams) == 0 {
		return nil, ErrNotEnoughTeams
	}
	players := st.PlayersInCategory(categoryID)

	drawn := s.engine.Draw(players, teams, opts)

	merged := st.Assignments.Clone()
	for _, t := range teams {
		delete(merged, t.ID)
	}
	for teamID, bucket := range drawn {
		merged[teamID] = bucket
	}

	next := s.dispatcher.Dispatch(ctx, workspaceID, state.SetAssignments{Assignments: merged})
	return next.Assignments, nil
}

func categoryExists(st state.State, categoryID string) bool {
	for _, c := range st.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}
