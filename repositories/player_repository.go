package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luismarketmedia/dash-fut/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, workspaceID string, player *models.Player) error
	Update(ctx context.Context, exec SQLExecutor, workspaceID string, player *models.Player) error
	Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error
	DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error
	DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Player, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayerRepository) Create(ctx context.Context, exec SQLExecutor, workspaceID string, player *models.Player) error {
	query := `
		INSERT INTO players (id, jersey_number, name, position, paid, category_id, workspace_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.getExecutor(exec).ExecContext(ctx, query,
		player.ID, player.JerseyNumber, player.Name, player.Position, player.Paid, player.CategoryID, workspaceID)
	return err
}

func (r *postgresPlayerRepository) Update(ctx context.Context, exec SQLExecutor, workspaceID string, player *models.Player) error {
	query := `
		UPDATE players SET jersey_number = $1, name = $2, position = $3, paid = $4, category_id = $5
		WHERE id = $6 AND workspace_id = $7`
	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		player.JerseyNumber, player.Name, player.Position, player.Paid, player.CategoryID, player.ID, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error {
	query := `DELETE FROM players WHERE id = $1 AND workspace_id = $2`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, id, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) DeleteByCategory(ctx context.Context, exec SQLExecutor, workspaceID, categoryID string) error {
	query := `DELETE FROM players WHERE category_id = $1 AND workspace_id = $2`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, categoryID, workspaceID)
	return err
}

func (r *postgresPlayerRepository) DeleteByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) error {
	query := `DELETE FROM players WHERE workspace_id = $1`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID)
	return err
}

func (r *postgresPlayerRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Player, error) {
	query := `
		SELECT id, jersey_number, name, position, paid, category_id
		FROM players WHERE workspace_id = $1 ORDER BY jersey_number, name`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.JerseyNumber, &p.Name, &p.Position, &p.Paid, &p.CategoryID); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
