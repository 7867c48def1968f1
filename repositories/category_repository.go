package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luismarketmedia/dash-fut/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(ctx context.Context, exec SQLExecutor, category *models.Category) error
	Update(ctx context.Context, exec SQLExecutor, category *models.Category) error
	Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error
	ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Category, error)
}

type postgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) CategoryRepository {
	return &postgresCategoryRepository{db: db}
}

func (r *postgresCategoryRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresCategoryRepository) Create(ctx context.Context, exec SQLExecutor, category *models.Category) error {
	query := `INSERT INTO categories (id, name, workspace_id) VALUES ($1, $2, $3)`
	_, err := r.getExecutor(exec).ExecContext(ctx, query, category.ID, category.Name, category.WorkspaceID)
	return err
}

func (r *postgresCategoryRepository) Update(ctx context.Context, exec SQLExecutor, category *models.Category) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2 AND workspace_id = $3`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, category.Name, category.ID, category.WorkspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCategoryNotFound)
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, exec SQLExecutor, workspaceID, id string) error {
	query := `DELETE FROM categories WHERE id = $1 AND workspace_id = $2`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, id, workspaceID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCategoryNotFound)
}

func (r *postgresCategoryRepository) ListByWorkspace(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.Category, error) {
	query := `SELECT id, name, workspace_id FROM categories WHERE workspace_id = $1 ORDER BY name`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.WorkspaceID); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
