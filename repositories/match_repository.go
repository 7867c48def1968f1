package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luismarketmedia/dash-fut/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, workspaceID string, matches []models.Match) error
	Update(ctx context.Context, exec SQLExecutor, workspaceID string, match *models.Match) error
	Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error
	DeleteByPhase(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string, phase models.Phase) error
	DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error
	DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Match, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) CreateBatch(ctx context.Context, exec SQLExecutor, workspaceID string, matches []models.Match) error {
	if len(matches) == 0 {
		return nil
	}
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches (id, left_team_id, right_team_id, phase, half, started_at, remaining_ms, category_id, workspace_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, m := range matches {
		_, err := executor.ExecContext(ctx, query,
			m.ID, m.LeftTeamID, m.RightTeamID, m.Phase, m.Half, m.StartedAt, m.RemainingMs, m.CategoryID, workspaceID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, exec SQLExecutor, workspaceID string, match *models.Match) error {
	query := `
		UPDATE matches SET left_team_id = $1, right_team_id = $2, phase = $3, half = $4, started_at = $5, remaining_ms = $6
		WHERE id = $7 AND workspace_id = $8`
	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		match.LeftTeamID, match.RightTeamID, match.Phase, match.Half, match.StartedAt, match.RemainingMs, match.ID, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error {
	query := `DELETE FROM matches WHERE id = $1 AND workspace_id = $2`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, id, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteByPhase(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string, phase models.Phase) error {
	query := `DELETE FROM matches WHERE workspace_id = $1 AND category_id = $2 AND phase = $3`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID, categoryID, phase)
	return err
}

func (r *postgresMatchRepository) DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error {
	query := `DELETE FROM matches WHERE workspace_id = $1 AND category_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID, categoryID)
	return err
}

func (r *postgresMatchRepository) DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error {
	query := `DELETE FROM matches WHERE workspace_id = $1`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID)
	return err
}

func (r *postgresMatchRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Match, error) {
	query := `
		SELECT id, left_team_id, right_team_id, phase, half, started_at, remaining_ms, category_id
		FROM matches WHERE workspace_id = $1 ORDER BY created_at, id`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		var startedAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.LeftTeamID, &m.RightTeamID, &m.Phase, &m.Half, &startedAt, &m.RemainingMs, &m.CategoryID); err != nil {
			return nil, err
		}
		if startedAt.Valid {
			t := startedAt.Time
			m.StartedAt = &t
		}
		m.Events = map[string]models.PlayerStats{}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
