package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/repositories"
	"github.com/luismarketmedia/dash-fut/state"
	"github.com/luismarketmedia/dash-fut/storage"
)

// Loader rebuilds the in-memory snapshot from the record store, or from
// the serialized snapshot when no record store is configured. Every
// collection is fetched independently; a failed fetch degrades to an
// empty collection instead of failing the whole hydration, matching the
// dashboard's best-effort startup.
type Loader struct {
	dispatcher *Dispatcher

	workspaceRepo  repositories.WorkspaceRepository
	categoryRepo   repositories.CategoryRepository
	playerRepo     repositories.PlayerRepository
	teamRepo       repositories.TeamRepository
	assignmentRepo repositories.AssignmentRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	eventRepo      repositories.MatchEventRepository

	snapshots []storage.SnapshotStore
	logger    *slog.Logger

	// seq guards against a slow fetch overwriting the result of a newer
	// one after the user switched workspaces mid-flight.
	seq atomic.Uint64
}

type LoaderRepos struct {
	Workspaces  repositories.WorkspaceRepository
	Categories  repositories.CategoryRepository
	Players     repositories.PlayerRepository
	Teams       repositories.TeamRepository
	Assignments repositories.AssignmentRepository
	Groups      repositories.GroupRepository
	Matches     repositories.MatchRepository
	Events      repositories.MatchEventRepository
}

func NewLoader(dispatcher *Dispatcher, repos LoaderRepos, snapshots []storage.SnapshotStore, logger *slog.Logger) *Loader {
	return &Loader{
		dispatcher:     dispatcher,
		workspaceRepo:  repos.Workspaces,
		categoryRepo:   repos.Categories,
		playerRepo:     repos.Players,
		teamRepo:       repos.Teams,
		assignmentRepo: repos.Assignments,
		groupRepo:      repos.Groups,
		matchRepo:      repos.Matches,
		eventRepo:      repos.Events,
		snapshots:      snapshots,
		logger:         logger,
	}
}

// Hydrate replaces the whole snapshot with the given workspace's data.
// If a newer hydration started while this one was fetching, the result
// is discarded.
func (l *Loader) Hydrate(ctx context.Context, userID, workspaceID string) error {
	seq := l.seq.Add(1)
	l.dispatcher.Dispatch(ctx, "", state.SetLoading{Loading: true})

	var snapshot state.State
	var err error
	if l.categoryRepo != nil {
		snapshot, err = l.fetchWorkspace(ctx, userID, workspaceID)
	} else {
		snapshot, err = l.loadSnapshot(ctx)
	}
	if err != nil {
		l.dispatcher.Dispatch(ctx, "", state.SetLoading{Loading: false})
		return err
	}

	if l.seq.Load() != seq {
		l.logger.Info("discarding stale hydration result",
			slog.String("workspace_id", workspaceID))
		return nil
	}

	snapshot.Loading = false
	l.dispatcher.Dispatch(ctx, "", state.Hydrate{State: snapshot})
	return nil
}

func (l *Loader) fetchWorkspace(ctx context.Context, userID, workspaceID string) (state.State, error) {
	var exec repositories.SQLExecutor

	snapshot := state.Empty()
	snapshot.ActiveWorkspaceID = workspaceID

	var events map[string]map[string]models.PlayerStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		workspaces, err := l.workspaceRepo.ListByUser(gctx, exec, userID)
		if err != nil {
			l.logger.Warn("failed to load workspaces", slog.Any("error", err))
			return nil
		}
		snapshot.Workspaces = workspaces
		return nil
	})
	g.Go(func() error {
		categories, err := l.categoryRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load categories", slog.Any("error", err))
			return nil
		}
		snapshot.Categories = categories
		return nil
	})
	g.Go(func() error {
		players, err := l.playerRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load players", slog.Any("error", err))
			return nil
		}
		snapshot.Players = players
		return nil
	})
	g.Go(func() error {
		teams, err := l.teamRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load teams", slog.Any("error", err))
			return nil
		}
		snapshot.Teams = teams
		return nil
	})
	g.Go(func() error {
		assignments, err := l.assignmentRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load assignments", slog.Any("error", err))
			return nil
		}
		snapshot.Assignments = assignments
		return nil
	})
	g.Go(func() error {
		groups, err := l.groupRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load groups", slog.Any("error", err))
			return nil
		}
		snapshot.Groups = groups
		return nil
	})
	g.Go(func() error {
		matches, err := l.matchRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load matches", slog.Any("error", err))
			return nil
		}
		snapshot.Matches = matches
		return nil
	})
	g.Go(func() error {
		loaded, err := l.eventRepo.ListByWorkspace(gctx, exec, workspaceID)
		if err != nil {
			l.logger.Warn("failed to load match events", slog.Any("error", err))
			return nil
		}
		events = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		return state.State{}, err
	}

	for i, m := range snapshot.Matches {
		if stats, ok := events[m.ID]; ok {
			snapshot.Matches[i].Events = stats
		}
	}
	// Every team keeps a bucket even when the draw never ran.
	for _, t := range snapshot.Teams {
		if _, ok := snapshot.Assignments[t.ID]; !ok {
			snapshot.Assignments[t.ID] = []string{}
		}
	}
	if len(snapshot.Categories) > 0 {
		snapshot.ActiveCategoryID = snapshot.Categories[0].ID
	}
	return snapshot, nil
}

func (l *Loader) loadSnapshot(ctx context.Context) (state.State, error) {
	for _, store := range l.snapshots {
		data, err := store.Load(ctx)
		if err != nil {
			if !errors.Is(err, storage.ErrSnapshotNotFound) {
				l.logger.Warn("failed to load snapshot", slog.Any("error", err))
			}
			continue
		}
		var snapshot state.State
		if err := json.Unmarshal(data, &snapshot); err != nil {
			l.logger.Warn("failed to decode snapshot", slog.Any("error", err))
			continue
		}
		return normalized(snapshot), nil
	}
	return state.Empty(), nil
}

// normalized fills the nil maps a hand-edited or older snapshot may
// carry.
func normalized(s state.State) state.State {
	if s.Assignments == nil {
		s.Assignments = models.Assignments{}
	}
	if s.Groups == nil {
		s.Groups = map[string]string{}
	}
	for i, m := range s.Matches {
		if m.Events == nil {
			s.Matches[i].Events = map[string]models.PlayerStats{}
		}
	}
	return s
}
