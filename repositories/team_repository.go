package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luismarketmedia/dash-fut/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, workspaceID string, team *models.Team) error
	Update(ctx context.Context, exec SQLExecutor, workspaceID string, team *models.Team) error
	Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error
	DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error
	DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Team, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, workspaceID string, team *models.Team) error {
	query := `
		INSERT INTO teams (id, name, color, capacity, category_id, workspace_id)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.getExecutor(exec).ExecContext(ctx, query,
		team.ID, team.Name, team.Color, team.Capacity, team.CategoryID, workspaceID)
	return err
}

func (r *postgresTeamRepository) Update(ctx context.Context, exec SQLExecutor, workspaceID string, team *models.Team) error {
	query := `
		UPDATE teams SET name = $1, color = $2, capacity = $3, category_id = $4
		WHERE id = $5 AND workspace_id = $6`
	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		team.Name, team.Color, team.Capacity, team.CategoryID, team.ID, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error {
	query := `DELETE FROM teams WHERE id = $1 AND workspace_id = $2`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, id, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error {
	query := `DELETE FROM teams WHERE category_id = $1 AND workspace_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, categoryID, workspaceID)
	return err
}

func (r *postgresTeamRepository) DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error {
	query := `DELETE FROM teams WHERE workspace_id = $1`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID)
	return err
}

func (r *postgresTeamRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Team, error) {
	query := `
		SELECT id, name, color, capacity, category_id
		FROM teams WHERE workspace_id = $1 ORDER BY name`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Capacity, &t.CategoryID); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}
