package repositories

import (
	"context"
	"database/sql"

	"github.com/luismarketmedia/dash-fut/models"
)

// MatchEventRepository stores per-match, per-player stats. Upserts are
// keyed by (match_id, player_id, workspace_id) so repeated stat updates
// stay idempotent.
type MatchEventRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, workspaceID, matchID, playerID string, stats models.PlayerStats) error
	DeleteByMatch(ctx context.Context, exec SQLExecutor, workspaceID, matchID string) error
	DeleteByPhase(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string, phase models.Phase) error
	DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error
	DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) (map[string]map[string]models.PlayerStats, error)
}

type postgresMatchEventRepository struct {
	db *sql.DB
}

func NewPostgresMatchEventRepository(db *sql.DB) MatchEventRepository {
	return &postgresMatchEventRepository{db: db}
}

func (r *postgresMatchEventRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchEventRepository) Upsert(ctx context.Context, exec SQLExecutor, workspaceID, matchID, playerID string, stats models.PlayerStats) error {
	query := `
		INSERT INTO match_events (match_id, player_id, goals, yellow, red, destaque, workspace_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (match_id, player_id, workspace_id)
		DO UPDATE SET goals = EXCLUDED.goals, yellow = EXCLUDED.yellow, red = EXCLUDED.red, destaque = EXCLUDED.destaque`
	_, err := r.getExecutor(exec).ExecContext(ctx, query,
		matchID, playerID, stats.Goals, stats.Yellow, stats.Red, stats.Destaque, workspaceID)
	return err
}

func (r *postgresMatchEventRepository) DeleteByMatch(ctx context.Context, exec SQLExecutor, workspaceID, matchID string) error {
	query := `DELETE FROM match_events WHERE match_id = $1 AND workspace_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, matchID, workspaceID)
	return err
}

func (r *postgresMatchEventRepository) DeleteByPhase(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string, phase models.Phase) error {
	query := `
		DELETE FROM match_events WHERE workspace_id = $1 AND match_id IN (
			SELECT id FROM matches WHERE workspace_id = $1 AND category_id = $2 AND phase = $3
		)`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID, categoryID, phase)
	return err
}

func (r *postgresMatchEventRepository) DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error {
	query := `
		DELETE FROM match_events WHERE workspace_id = $1 AND match_id IN (
			SELECT id FROM matches WHERE workspace_id = $1 AND category_id = $2
		)`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID, categoryID)
	return err
}

func (r *postgresMatchEventRepository) DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error {
	query := `DELETE FROM match_events WHERE workspace_id = $1`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID)
	return err
}

func (r *postgresMatchEventRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) (map[string]map[string]models.PlayerStats, error) {
	query := `SELECT match_id, player_id, goals, yellow, red, destaque FROM match_events WHERE workspace_id = $1`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := map[string]map[string]models.PlayerStats{}
	for rows.Next() {
		var matchID, playerID string
		var stats models.PlayerStats
		if err := rows.Scan(&matchID, &playerID, &stats.Goals, &stats.Yellow, &stats.Red, &stats.Destaque); err != nil {
			return nil, err
		}
		if events[matchID] == nil {
			events[matchID] = map[string]models.PlayerStats{}
		}
		events[matchID][playerID] = stats
	}
	return events, rows.Err()
}
