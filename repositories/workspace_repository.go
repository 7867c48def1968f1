package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/luismarketmedia/dash-fut/models"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrMemberNotFound    = errors.New("workspace member not found")
)

type WorkspaceRepository interface {
	Create(ctx context.Context, exec SQLExecutor, workspace *models.Workspace) error
	GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Workspace, error)
	ListByUser(ctx context.Context, exec SQLExecutor, userID string) ([]models.Workspace, error)
	AddMember(ctx context.Context, exec SQLExecutor, member *models.WorkspaceMember) error
	RemoveMember(ctx context.Context, exec SQLExecutor, workspaceID, userID string) error
	ListMembers(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.WorkspaceMember, error)
	GetMember(ctx context.Context, exec SQLExecutor, workspaceID, userID string) (*models.WorkspaceMember, error)
}

type postgresWorkspaceRepository struct {
	db *sql.DB
}

func NewPostgresWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &postgresWorkspaceRepository{db: db}
}

func (r *postgresWorkspaceRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresWorkspaceRepository) Create(ctx context.Context, exec SQLExecutor, workspace *models.Workspace) error {
	query := `INSERT INTO workspaces (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.getExecutor(exec).ExecContext(ctx, query,
		workspace.ID, workspace.Name, workspace.OwnerID, workspace.CreatedAt)
	return err
}

func (r *postgresWorkspaceRepository) GetByID(ctx context.Context, exec SQLExecutor, id string) (*models.Workspace, error) {
	query := `SELECT id, name, owner_id, created_at FROM workspaces WHERE id = $1`
	var w models.Workspace
	err := r.getExecutor(exec).QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.OwnerID, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (r *postgresWorkspaceRepository) ListByUser(ctx context.Context, exec SQLExecutor, userID string) ([]models.Workspace, error) {
	query := `
		SELECT DISTINCT w.id, w.name, w.owner_id, w.created_at
		FROM workspaces w
		LEFT JOIN workspace_members m ON m.workspace_id = w.id
		WHERE w.owner_id = $1 OR m.user_id = $1
		ORDER BY w.created_at`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workspaces := make([]models.Workspace, 0)
	for rows.Next() {
		var w models.Workspace
		if err := rows.Scan(&w.ID, &w.Name, &w.OwnerID, &w.CreatedAt); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, w)
	}
	return workspaces, rows.Err()
}

func (r *postgresWorkspaceRepository) AddMember(ctx context.Context, exec SQLExecutor, member *models.WorkspaceMember) error {
	query := `
		INSERT INTO workspace_members (workspace_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (workspace_id, user_id) DO UPDATE SET role = EXCLUDED.role`
	_, err := r.getExecutor(exec).ExecContext(ctx, query,
		member.WorkspaceID, member.UserID, member.Role, member.CreatedAt)
	return err
}

func (r *postgresWorkspaceRepository) RemoveMember(ctx context.Context, exec SQLExecutor, workspaceID, userID string) error {
	query := `DELETE FROM workspace_members WHERE workspace_id = $1 AND user_id = $2`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, workspaceID, userID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMemberNotFound)
}

func (r *postgresWorkspaceRepository) ListMembers(ctx context.Context, exec SQLExecutor, workspaceID string) ([]models.WorkspaceMember, error) {
	query := `
		SELECT workspace_id, user_id, role, created_at
		FROM workspace_members WHERE workspace_id = $1 ORDER BY created_at`
	rows, err := r.getExecutor(exec).QueryContext(ctx, query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.WorkspaceMember, 0)
	for rows.Next() {
		var m models.WorkspaceMember
		if err := rows.Scan(&m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *postgresWorkspaceRepository) GetMember(ctx context.Context, exec SQLExecutor, workspaceID, userID string) (*models.WorkspaceMember, error) {
	query := `SELECT workspace_id, user_id, role, created_at FROM workspace_members WHERE workspace_id = $1 AND user_id = $2`
	var m models.WorkspaceMember
	err := r.getExecutor(exec).QueryRowContext(ctx, query, workspaceID, userID).
		Scan(&m.WorkspaceID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}
