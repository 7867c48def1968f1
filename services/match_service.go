package services

import (
	"context"
	"time"

	"github.com/luismarketmedia/dash-fut/clock"
	"github.com/luismarketmedia/dash-fut/config"
	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/state"
)

// MatchService covers live match operations: the clock, the score
// sheet and team corrections. Every operation reads the current match,
// derives the next one and dispatches a single UpdateMatch.
type MatchService struct {
	dispatcher *Dispatcher
	cfg        *config.Config
}

func NewMatchService(dispatcher *Dispatcher, cfg *config.Config) *MatchService {
	return &MatchService{dispatcher: dispatcher, cfg: cfg}
}

func (s *MatchService) getMatch(matchID string) (models.Match, error) {
	st := s.dispatcher.Store().State()
	if m, ok := st.MatchByID(matchID); ok {
		return m.Clone(), nil
	}
	return models.Match{}, ErrMatchNotFound
}

// ToggleClock starts a stopped clock or stops a running one, folding
// the elapsed time into the remaining budget.
func (s *MatchService) ToggleClock(ctx context.Context, workspaceID, matchID string) (models.Match, error) {
	m, err := s.getMatch(matchID)
	if err != nil {
		return models.Match{}, err
	}
	next := clock.Toggle(m, time.Now())
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateMatch{Match: next})
	return next, nil
}

// ResetClock stops the match and restores the full period.
func (s *MatchService) ResetClock(ctx context.Context, workspaceID, matchID string) (models.Match, error) {
	m, err := s.getMatch(matchID)
	if err != nil {
		return models.Match{}, err
	}
	next := clock.Reset(m, s.cfg.PeriodMs())
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateMatch{Match: next})
	return next, nil
}

// NextHalf flips between the two halves with a fresh stopped period.
func (s *MatchService) NextHalf(ctx context.Context, workspaceID, matchID string) (models.Match, error) {
	m, err := s.getMatch(matchID)
	if err != nil {
		return models.Match{}, err
	}
	next := clock.NextHalf(m, s.cfg.PeriodMs())
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateMatch{Match: next})
	return next, nil
}

// AddGoal adjusts a player's goal count by delta, floored at zero.
func (s *MatchService) AddGoal(ctx context.Context, workspaceID, matchID, playerID string, delta int) (models.Match, error) {
	return s.updateStats(ctx, workspaceID, matchID, playerID, func(stats *models.PlayerStats) {
		stats.Goals += delta
		if stats.Goals < 0 {
			stats.Goals = 0
		}
	})
}

// AddYellow adjusts a player's yellow card count by delta, kept in
// the 0..2 range.
func (s *MatchService) AddYellow(ctx context.Context, workspaceID, matchID, playerID string, delta int) (models.Match, error) {
	return s.updateStats(ctx, workspaceID, matchID, playerID, func(stats *models.PlayerStats) {
		stats.Yellow += delta
		if stats.Yellow < 0 {
			stats.Yellow = 0
		}
		if stats.Yellow > 2 {
			stats.Yellow = 2
		}
	})
}

// ToggleRed flips a player's red card.
func (s *MatchService) ToggleRed(ctx context.Context, workspaceID, matchID, playerID string) (models.Match, error) {
	return s.updateStats(ctx, workspaceID, matchID, playerID, func(stats *models.PlayerStats) {
		stats.Red = !stats.Red
	})
}

func (s *MatchService) updateStats(ctx context.Context, workspaceID, matchID, playerID string, mutate func(*models.PlayerStats)) (models.Match, error) {
	m, err := s.getMatch(matchID)
	if err != nil {
		return models.Match{}, err
	}
	stats := m.Events[playerID]
	mutate(&stats)
	m.Events[playerID] = stats
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateMatch{Match: m})
	return m, nil
}

// ToggleDestaque marks the player as man of the match, clearing the
// flag on every other player of the match; a second call removes it.
func (s *MatchService) ToggleDestaque(ctx context.Context, workspaceID, matchID, playerID string) (models.Match, error) {
	m, err := s.getMatch(matchID)
	if err != nil {
		return models.Match{}, err
	}
	next := m.WithUniqueDestaque(playerID)
	s.dispatcher.Dispatch(ctx, workspaceID, state.UpdateMatch{Match: next})
	return next, nil
}

// EditTeams swaps both sides of a match. The contest identity changed,
// so clock and events are reset to a fresh first half.
func (s *MatchService) EditTeams(ctx context.Context, workspaceID, matchID, leftTeamID, rightTeamID string) (models.Match, error) {
	if leftTeamID == "" || rightTeamID == "" || leftTeamID == rightTeamID {
		return models.Match{}, ErrValidationFailed
	}
	m, err := s.getMatch(matchID)
	if err != nil {
		return models.Match{}, err
	}
	st := s.dispatcher.Store().State()
	for _, id := range []string{leftTeamID, rightTeamID} {
		if !teamExists(st, id, m.CategoryID) {
			return models.Match{}, ErrTeamNotFound
		}
	}
	next := s.dispatcher.Dispatch(ctx, workspaceID, state.EditMatchTeams{
		ID:          matchID,
		LeftTeamID:  leftTeamID,
		RightTeamID: rightTeamID,
		RemainingMs: s.cfg.PeriodMs(),
	})
	if updated, ok := next.MatchByID(matchID); ok {
		return updated, nil
	}
	return models.Match{}, ErrMatchNotFound
}

// DeleteMatch removes a single match and its events.
func (s *MatchService) DeleteMatch(ctx context.Context, workspaceID, matchID string) error {
	if _, err := s.getMatch(matchID); err != nil {
		return err
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.DeleteMatch{ID: matchID})
	return nil
}

// ClearMatches wipes a category's schedule, or everything when
// categoryID is empty.
func (s *MatchService) ClearMatches(ctx context.Context, workspaceID, categoryID string) error {
	s.dispatcher.Dispatch(ctx, workspaceID, state.ClearMatches{CategoryID: categoryID})
	return nil
}

func teamExists(st state.State, teamID, categoryID string) bool {
	for _, t := range st.Teams {
		if t.ID == teamID && t.CategoryID == categoryID {
			return true
		}
	}
	return false
}
