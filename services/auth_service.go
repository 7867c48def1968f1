package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/repositories"
	"github.com/luismarketmedia/dash-fut/utils"
)

const (
	minPasswordLength = 8
	tokenLifetime     = 72 * time.Hour
)

type AuthService interface {
	Register(ctx context.Context, input models.Credentials) (*models.User, string, error)
	Login(ctx context.Context, input models.Credentials) (*models.User, string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	userRepo      repositories.UserRepository
	workspaceRepo repositories.WorkspaceRepository
	jwtSecret     string
}

func NewAuthService(userRepo repositories.UserRepository, workspaceRepo repositories.WorkspaceRepository, jwtSecret string) AuthService {
	return &authService{
		userRepo:      userRepo,
		workspaceRepo: workspaceRepo,
		jwtSecret:     jwtSecret,
	}
}

// Register creates the account plus a personal workspace, so the
// dashboard has somewhere to put the first category.
func (s *authService) Register(ctx context.Context, input models.Credentials) (*models.User, string, error) {
	if s.userRepo == nil {
		return nil, "", ErrPersistenceDisabled
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, "", ErrValidationFailed
	}
	if len(input.Password) < minPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, nil, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, "", ErrUserEmailConflict
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	workspace := &models.Workspace{
		ID:        uuid.NewString(),
		Name:      "Meu campeonato",
		OwnerID:   user.ID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.workspaceRepo.Create(ctx, nil, workspace); err != nil {
		return nil, "", fmt.Errorf("failed to create default workspace: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = ""
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, input models.Credentials) (*models.User, string, error) {
	if s.userRepo == nil {
		return nil, "", ErrPersistenceDisabled
	}
	user, err := s.userRepo.GetByEmail(ctx, nil, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user by email: %w", err)
	}

	if !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	user.PasswordHash = ""
	return user, token, nil
}

func (s *authService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, ErrPersistenceDisabled
	}
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *authService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
