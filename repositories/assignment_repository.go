package repositories

import (
	"context"
	"database/sql"

	"github.com/luismarketmedia/dash-fut/models"
)

// AssignmentRepository stores the team -> players mapping. Rows carry a
// slot index so the draw order survives a round trip.
type AssignmentRepository interface {
	// Replace rewrites the buckets of the given teams atomically with
	// respect to each team: prior rows for those teams are removed first.
	Replace(ctx context.Context, exec SQLExecutor, workspaceID string, assignments models.Assignments) error
	DeleteByTeam(ctx context.Context, exec SQLExecutor, workspaceID, teamID string) error
	DeleteByPlayer(ctx context.Context, exec SQLExecutor, workspaceID, playerID string) error
	DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) (models.Assignments, error)
}

type postgresAssignmentRepository struct {
	db *sql.DB
}

func NewPostgresAssignmentRepository(db *sql.DB) AssignmentRepository {
	return &postgresAssignmentRepository{db: db}
}

func (r *postgresAssignmentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresAssignmentRepository) Replace(ctx context.Context, exec SQLExecutor, workspaceID string, assignments models.Assignments) error {
	executor := r.getExecutor(exec)
	deleteQuery := `DELETE FROM assignments WHERE team_id = $1 AND workspace_id = $2`
	insertQuery := `INSERT INTO assignments (team_id, player_id, slot, workspace_id) VALUES ($1, $2, $3, $4)`
	for teamID, playerIDs := range assignments {
		if _, err := executor.ExecContext(ctx, deleteQuery, teamID, workspaceID); err != nil {
			return err
		}
		for slot, playerID := range playerIDs {
			if _, err := executor.ExecContext(ctx, insertQuery, teamID, playerID, slot, workspaceID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *postgresAssignmentRepository) DeleteByTeam(ctx context.Context, exec SQLExecutor, workspaceID, teamID string) error {
	query := `DELETE FROM assignments WHERE team_id = $1 AND workspace_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, teamID, workspaceID)
	return err
}

func (r *postgresAssignmentRepository) DeleteByPlayer(ctx context.Context, exec SQLExecutor, workspaceID, playerID string) error {
	query := `DELETE FROM assignments WHERE player_id = $1 AND workspace_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, playerID, workspaceID)
	return err
}

func (r *postgresAssignmentRepository) DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error {
	query := `DELETE FROM assignments WHERE workspace_id = $1`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID)
	return err
}

func (r *postgresAssignmentRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) (models.Assignments, error) {
	query := `SELECT team_id, player_id FROM assignments WHERE workspace_id = $1 ORDER BY team_id, slot`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := models.Assignments{}
	for rows.Next() {
		var teamID, playerID string
		if err := rows.Scan(&teamID, &playerID); err != nil {
			return nil, err
		}
		assignments[teamID] = append(assignments[teamID], playerID)
	}
	return assignments, rows.Err()
}
