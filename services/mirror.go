package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/luismarketmedia/dash-fut/repositories"
	"github.com/luismarketmedia/dash-fut/state"
)

// Mirror translates an accepted state transition into record store
// writes. The dispatcher calls it after the in-memory snapshot already
// moved on, so a failing mirror never blocks or rolls back the UI; the
// dispatcher logs and counts the failure instead.
type Mirror interface {
	Persist(ctx context.Context, workspaceID string, prev, next state.State, action state.Action) error
}

type sqlMirror struct {
	categoryRepo   repositories.CategoryRepository
	playerRepo     repositories.PlayerRepository
	teamRepo       repositories.TeamRepository
	assignmentRepo repositories.AssignmentRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	eventRepo      repositories.MatchEventRepository
}

func NewSQLMirror(
	categoryRepo repositories.CategoryRepository,
	playerRepo repositories.PlayerRepository,
	teamRepo repositories.TeamRepository,
	assignmentRepo repositories.AssignmentRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	eventRepo repositories.MatchEventRepository,
) Mirror {
	return &sqlMirror{
		categoryRepo:   categoryRepo,
		playerRepo:     playerRepo,
		teamRepo:       teamRepo,
		assignmentRepo: assignmentRepo,
		groupRepo:      groupRepo,
		matchRepo:      matchRepo,
		eventRepo:      eventRepo,
	}
}

func (m *sqlMirror) Persist(ctx context.Context, workspaceID string, prev, next state.State, action state.Action) error {
	var exec repositories.SQLExecutor // nil, every repo falls back to its pool

	switch a := action.(type) {
	case state.AddCategory:
		c := a.Category
		c.WorkspaceID = workspaceID
		return m.categoryRepo.Create(ctx, exec, &c)

	case state.UpdateCategory:
		c := a.Category
		c.WorkspaceID = workspaceID
		return m.categoryRepo.Update(ctx, exec, &c)

	case state.DeleteCategory:
		return m.deleteCategory(ctx, workspaceID, prev, a.ID)

	case state.AddPlayer:
		p := a.Player
		return m.playerRepo.Create(ctx, exec, workspaceID, &p)

	case state.UpdatePlayer:
		p := a.Player
		return m.playerRepo.Update(ctx, exec, workspaceID, &p)

	case state.DeletePlayer:
		if err := m.assignmentRepo.DeleteByPlayer(ctx, exec, workspaceID, a.ID); err != nil {
			return err
		}
		return m.playerRepo.Delete(ctx, exec, workspaceID, a.ID)

	case state.AddTeam:
		t := a.Team
		return m.teamRepo.Create(ctx, exec, workspaceID, &t)

	case state.UpdateTeam:
		t := a.Team
		return m.teamRepo.Update(ctx, exec, workspaceID, &t)

	case state.DeleteTeam:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return m.assignmentRepo.DeleteByTeam(gctx, exec, workspaceID, a.ID) })
		g.Go(func() error { return m.groupRepo.DeleteByTeam(gctx, exec, workspaceID, a.ID) })
		if err := g.Wait(); err != nil {
			return err
		}
		return m.teamRepo.Delete(ctx, exec, workspaceID, a.ID)

	case state.SetAssignments:
		if err := m.assignmentRepo.DeleteByWorkspace(ctx, exec, workspaceID); err != nil {
			return err
		}
		return m.assignmentRepo.Replace(ctx, exec, workspaceID, next.Assignments)

	case state.AddMatches:
		return m.matchRepo.CreateBatch(ctx, exec, workspaceID, a.Matches)

	case state.UpdateMatch:
		match := a.Match
		if err := m.matchRepo.Update(ctx, exec, workspaceID, &match); err != nil {
			return err
		}
		for playerID, stats := range match.Events {
			if err := m.eventRepo.Upsert(ctx, exec, workspaceID, match.ID, playerID, stats); err != nil {
				return err
			}
		}
		return nil

	case state.DeleteMatch:
		if err := m.eventRepo.DeleteByMatch(ctx, exec, workspaceID, a.ID); err != nil {
			return err
		}
		return m.matchRepo.Delete(ctx, exec, workspaceID, a.ID)

	case state.EditMatchTeams:
		if err := m.eventRepo.DeleteByMatch(ctx, exec, workspaceID, a.ID); err != nil {
			return err
		}
		if match, ok := next.MatchByID(a.ID); ok {
			return m.matchRepo.Update(ctx, exec, workspaceID, &match)
		}
		return nil

	case state.ClearMatches:
		if a.CategoryID == "" {
			if err := m.eventRepo.DeleteByWorkspace(ctx, exec, workspaceID); err != nil {
				return err
			}
			return m.matchRepo.DeleteByWorkspace(ctx, exec, workspaceID)
		}
		if err := m.eventRepo.DeleteByCategory(ctx, exec, workspaceID, a.CategoryID); err != nil {
			return err
		}
		return m.matchRepo.DeleteByCategory(ctx, exec, workspaceID, a.CategoryID)

	case state.ClearPhase:
		// Events reference matches through a subquery, so they go first.
		if err := m.eventRepo.DeleteByPhase(ctx, exec, workspaceID, a.CategoryID, a.Phase); err != nil {
			return err
		}
		return m.matchRepo.DeleteByPhase(ctx, exec, workspaceID, a.CategoryID, a.Phase)

	case state.SetGroups:
		return m.groupRepo.Replace(ctx, exec, workspaceID, next.Groups)

	case state.ResetPhases:
		return m.resetPhases(ctx, workspaceID, prev, a.CategoryID)

	case state.ResetAll:
		return m.resetAll(ctx, workspaceID)
	}

	// Hydrate, SetLoading and the selection actions are local-only.
	return nil
}

func (m *sqlMirror) deleteCategory(ctx context.Context, workspaceID string, prev state.State, categoryID string) error {
	var exec repositories.SQLExecutor

	// Phase one: rows referencing matches or teams of the category.
	if err := m.eventRepo.DeleteByCategory(ctx, exec, workspaceID, categoryID); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range prev.TeamsInCategory(categoryID) {
		teamID := t.ID
		g.Go(func() error { return m.assignmentRepo.DeleteByTeam(gctx, exec, workspaceID, teamID) })
		g.Go(func() error { return m.groupRepo.DeleteByTeam(gctx, exec, workspaceID, teamID) })
	}
	g.Go(func() error { return m.matchRepo.DeleteByCategory(gctx, exec, workspaceID, categoryID) })
	if err := g.Wait(); err != nil {
		return err
	}

	// Phase two: the entities themselves.
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error { return m.playerRepo.DeleteByCategory(gctx, exec, workspaceID, categoryID) })
	g.Go(func() error { return m.teamRepo.DeleteByCategory(gctx, exec, workspaceID, categoryID) })
	if err := g.Wait(); err != nil {
		return err
	}

	err := m.categoryRepo.Delete(ctx, exec, workspaceID, categoryID)
	if errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil
	}
	return err
}

func (m *sqlMirror) resetPhases(ctx context.Context, workspaceID string, prev state.State, categoryID string) error {
	var exec repositories.SQLExecutor

	if categoryID == "" {
		if err := m.eventRepo.DeleteByWorkspace(ctx, exec, workspaceID); err != nil {
			return err
		}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return m.matchRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
		g.Go(func() error { return m.assignmentRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
		g.Go(func() error { return m.groupRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
		return g.Wait()
	}

	if err := m.eventRepo.DeleteByCategory(ctx, exec, workspaceID, categoryID); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.matchRepo.DeleteByCategory(gctx, exec, workspaceID, categoryID) })
	for _, t := range prev.TeamsInCategory(categoryID) {
		teamID := t.ID
		g.Go(func() error { return m.assignmentRepo.DeleteByTeam(gctx, exec, workspaceID, teamID) })
		g.Go(func() error { return m.groupRepo.DeleteByTeam(gctx, exec, workspaceID, teamID) })
	}
	return g.Wait()
}

func (m *sqlMirror) resetAll(ctx context.Context, workspaceID string) error {
	var exec repositories.SQLExecutor

	if err := m.eventRepo.DeleteByWorkspace(ctx, exec, workspaceID); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.matchRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
	g.Go(func() error { return m.assignmentRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
	g.Go(func() error { return m.groupRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
	g.Go(func() error { return m.playerRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
	g.Go(func() error { return m.teamRepo.DeleteByWorkspace(gctx, exec, workspaceID) })
	if err := g.Wait(); err != nil {
		return err
	}

	categories, err := m.categoryRepo.ListByWorkspace(ctx, exec, workspaceID)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if err := m.categoryRepo.Delete(ctx, exec, workspaceID, c.ID); err != nil {
			return err
		}
	}
	return nil
}

// noopMirror backs snapshot-only deployments, where no record store is
// configured and the serialized snapshot is the only persistence.
type noopMirror struct{}

func NewNoopMirror() Mirror { return noopMirror{} }

func (noopMirror) Persist(context.Context, string, state.State, state.State, state.Action) error {
	return nil
}
