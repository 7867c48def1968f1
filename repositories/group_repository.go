package repositories

import (
	"context"
	"database/sql"
)

// GroupRepository stores the team -> pool label map produced by the
// group stage generator.
type GroupRepository interface {
	Replace(ctx context.Context, exec SQLExecutor, workspaceID string, groups map[string]string) error
	DeleteByTeam(ctx context.Context, exec SQLExecutor, workspaceID, teamID string) error
	DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) (map[string]string, error)
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresGroupRepository) Replace(ctx context.Context, exec SQLExecutor, workspaceID string, groups map[string]string) error {
	executor := r.getExecutor(exec)
	deleteQuery := `DELETE FROM team_groups WHERE workspace_id = $1`
	insertQuery := `INSERT INTO team_groups (team_id, label, workspace_id) VALUES ($1, $2, $3)`
	if _, err := executor.ExecContext(ctx, deleteQuery, workspaceID); err != nil {
		return err
	}
	for teamID, label := range groups {
		if _, err := executor.ExecContext(ctx, insertQuery, teamID, label, workspaceID); err != nil {
			return err
		}
	}
	return nil
}

func (r *postgresGroupRepository) DeleteByTeam(ctx context.Context, exec SQLExecutor, workspaceID, teamID string) error {
	query := `DELETE FROM team_groups WHERE team_id = $1 AND workspace_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, teamID, workspaceID)
	return err
}

func (r *postgresGroupRepository) DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error {
	query := `DELETE FROM team_groups WHERE workspace_id = $1`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID)
	return err
}

func (r *postgresGroupRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) (map[string]string, error) {
	query := `SELECT team_id, label FROM team_groups WHERE workspace_id = $1`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := map[string]string{}
	for rows.Next() {
		var teamID, label string
		if err := rows.Scan(&teamID, &label); err != nil {
			return nil, err
		}
		groups[teamID] = label
	}
	return groups, rows.Err()
}
