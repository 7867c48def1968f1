package services

import (
	"context"
	"fmt"

	"github.com/luismarketmedia/dash-fut/brackets"
	"github.com/luismarketmedia/dash-fut/config"
	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/standings"
	"github.com/luismarketmedia/dash-fut/state"
)

// PhaseService generates and replaces the schedule of one phase at a
// time. Regeneration is destructive for the phase: existing matches of
// that phase (and their events) are cleared first.
type PhaseService struct {
	dispatcher *Dispatcher
	cfg        *config.Config
	groupGen   brackets.Generator
	elimGen    brackets.Generator
}

func NewPhaseService(dispatcher *Dispatcher, cfg *config.Config, groupGen, elimGen brackets.Generator) *PhaseService {
	if groupGen == nil {
		groupGen = brackets.NewRoundRobinGenerator(nil, cfg.GroupPoolSize)
	}
	if elimGen == nil {
		elimGen = brackets.NewEliminationGenerator()
	}
	return &PhaseService{dispatcher: dispatcher, cfg: cfg, groupGen: groupGen, elimGen: elimGen}
}

// GenerateGroupStage splits the category's teams into pools and
// schedules a single round robin inside each pool.
func (s *PhaseService) GenerateGroupStage(ctx context.Context, workspaceID, categoryID string) ([]models.Match, map[string]string, error) {
	st := s.dispatcher.Store().State()
	if !categoryExists(st, categoryID) {
		return nil, nil, ErrCategoryNotFound
	}
	teams := st.TeamsInCategory(categoryID)
	if len(teams) < 2 {
		return nil, nil, ErrNotEnoughTeams
	}

	result, err := s.groupGen.Generate(brackets.Params{
		CategoryID: categoryID,
		Phase:      models.PhaseGroup,
		Teams:      teams,
		PeriodMs:   s.cfg.PeriodMs(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate group stage: %w", err)
	}

	// Pool labels of other categories survive the regeneration.
	merged := make(map[string]string, len(st.Groups)+len(result.Groups))
	for teamID, label := range st.Groups {
		merged[teamID] = label
	}
	for _, t := range teams {
		delete(merged, t.ID)
	}
	for teamID, label := range result.Groups {
		merged[teamID] = label
	}

	s.dispatcher.Dispatch(ctx, workspaceID, state.ClearPhase{CategoryID: categoryID, Phase: models.PhaseGroup})
	s.dispatcher.Dispatch(ctx, workspaceID, state.AddMatches{Matches: result.Matches})
	s.dispatcher.Dispatch(ctx, workspaceID, state.SetGroups{Groups: merged})

	return result.Matches, result.Groups, nil
}

// GenerateEliminationStage seeds a knockout phase from the group stage
// table: the top qualifiers ranked best-first feed the bracket
// generator. The qualifier count comes from configuration, coerced to
// what the pod pairing can use.
func (s *PhaseService) GenerateEliminationStage(ctx context.Context, workspaceID, categoryID string, phase models.Phase) ([]models.Match, error) {
	if !phase.Elimination() {
		return nil, ErrInvalidPhase
	}
	st := s.dispatcher.Store().State()
	if !categoryExists(st, categoryID) {
		return nil, ErrCategoryNotFound
	}
	teams := st.TeamsInCategory(categoryID)
	if len(teams) < 2 {
		return nil, ErrNotEnoughTeams
	}
	matches := st.MatchesInCategory(categoryID)
	if !hasPhase(matches, models.PhaseGroup) {
		return nil, ErrNoGroupResults
	}

	table := standings.Compute(teams, matches, st.Assignments, standings.Options{Phase: models.PhaseGroup})
	qualifiers := s.cfg.QualifiersFor(phase, len(teams))
	if qualifiers > len(table) {
		qualifiers = len(table)
	}
	if qualifiers < 2 {
		return nil, ErrNotEnoughTeams
	}
	seeds := make([]string, 0, qualifiers)
	for _, row := range table[:qualifiers] {
		seeds = append(seeds, row.TeamID)
	}

	result, err := s.elimGen.Generate(brackets.Params{
		CategoryID: categoryID,
		Phase:      phase,
		Seeds:      seeds,
		PeriodMs:   s.cfg.PeriodMs(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s stage: %w", phase, err)
	}

	s.dispatcher.Dispatch(ctx, workspaceID, state.ClearPhase{CategoryID: categoryID, Phase: phase})
	s.dispatcher.Dispatch(ctx, workspaceID, state.AddMatches{Matches: result.Matches})

	return result.Matches, nil
}

// ResetPhases clears assignments, matches and pool labels of the given
// category, or of all categories when categoryID is empty.
func (s *PhaseService) ResetPhases(ctx context.Context, workspaceID, categoryID string) error {
	st := s.dispatcher.Store().State()
	if categoryID != "" && !categoryExists(st, categoryID) {
		return ErrCategoryNotFound
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.ResetPhases{CategoryID: categoryID})
	return nil
}

func hasPhase(matches []models.Match, phase models.Phase) bool {
	for _, m := range matches {
		if m.Phase == phase {
			return true
		}
	}
	return false
}
