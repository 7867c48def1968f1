package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/repositories"
)

type WorkspaceService interface {
	Create(ctx context.Context, ownerID, name string) (*models.Workspace, error)
	Get(ctx context.Context, userID, workspaceID string) (*models.Workspace, error)
	ListForUser(ctx context.Context, userID string) ([]models.Workspace, error)
	AddMember(ctx context.Context, actorID, workspaceID, email string, role models.WorkspaceRole) (*models.WorkspaceMember, error)
	RemoveMember(ctx context.Context, actorID, workspaceID, userID string) error
	ListMembers(ctx context.Context, actorID, workspaceID string) ([]models.WorkspaceMember, error)
	Authorize(ctx context.Context, userID, workspaceID string) error
}

type workspaceService struct {
	workspaceRepo repositories.WorkspaceRepository
	userRepo      repositories.UserRepository
}

func NewWorkspaceService(workspaceRepo repositories.WorkspaceRepository, userRepo repositories.UserRepository) WorkspaceService {
	return &workspaceService{workspaceRepo: workspaceRepo, userRepo: userRepo}
}

func (s *workspaceService) Create(ctx context.Context, ownerID, name string) (*models.Workspace, error) {
	if s.workspaceRepo == nil {
		return nil, ErrPersistenceDisabled
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidationFailed
	}
	workspace := &models.Workspace{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.workspaceRepo.Create(ctx, nil, workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return workspace, nil
}

func (s *workspaceService) Get(ctx context.Context, userID, workspaceID string) (*models.Workspace, error) {
	if err := s.Authorize(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	workspace, err := s.workspaceRepo.GetByID(ctx, nil, workspaceID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return workspace, nil
}

func (s *workspaceService) ListForUser(ctx context.Context, userID string) ([]models.Workspace, error) {
	if s.workspaceRepo == nil {
		return nil, ErrPersistenceDisabled
	}
	return s.workspaceRepo.ListByUser(ctx, nil, userID)
}

// AddMember invites an existing account by email. Owner only.
func (s *workspaceService) AddMember(ctx context.Context, actorID, workspaceID, email string, role models.WorkspaceRole) (*models.WorkspaceMember, error) {
	workspace, err := s.workspaceRepo.GetByID(ctx, nil, workspaceID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	if workspace.OwnerID != actorID {
		return nil, ErrOwnerActionForbidden
	}

	user, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if role != models.RoleOwner && role != models.RoleMember {
		role = models.RoleMember
	}

	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      user.ID,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.workspaceRepo.AddMember(ctx, nil, member); err != nil {
		return nil, fmt.Errorf("failed to add workspace member: %w", err)
	}
	return member, nil
}

// RemoveMember: the owner can remove anyone, a member can remove
// themselves. The owner cannot be removed.
func (s *workspaceService) RemoveMember(ctx context.Context, actorID, workspaceID, userID string) error {
	workspace, err := s.workspaceRepo.GetByID(ctx, nil, workspaceID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNotFound) {
			return ErrWorkspaceNotFound
		}
		return err
	}
	if userID == workspace.OwnerID {
		return ErrForbiddenOperation
	}
	if actorID != workspace.OwnerID && actorID != userID {
		return ErrForbiddenOperation
	}
	if err := s.workspaceRepo.RemoveMember(ctx, nil, workspaceID, userID); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return nil
}

func (s *workspaceService) ListMembers(ctx context.Context, actorID, workspaceID string) ([]models.WorkspaceMember, error) {
	if err := s.Authorize(ctx, actorID, workspaceID); err != nil {
		return nil, err
	}
	return s.workspaceRepo.ListMembers(ctx, nil, workspaceID)
}

// Authorize reports whether the user may touch the workspace: the
// owner always can, everyone else needs a membership row.
func (s *workspaceService) Authorize(ctx context.Context, userID, workspaceID string) error {
	if s.workspaceRepo == nil {
		return ErrPersistenceDisabled
	}
	workspace, err := s.workspaceRepo.GetByID(ctx, nil, workspaceID)
	if err != nil {
		if errors.Is(err, repositories.ErrWorkspaceNotFound) {
			return ErrWorkspaceNotFound
		}
		return err
	}
	if workspace.OwnerID == userID {
		return nil
	}
	if _, err := s.workspaceRepo.GetMember(ctx, nil, workspaceID, userID); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return ErrForbiddenOperation
		}
		return err
	}
	return nil
}
