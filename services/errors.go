package services

import "errors"

// Shared errors mapped to HTTP status codes by the handlers.
var (
	// Generic not-found
	ErrNotFound = errors.New("requested resource not found")

	// Snapshot-only deployments have no accounts or workspaces.
	ErrPersistenceDisabled = errors.New("record store is not configured")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrPlayerNameRequired   = errors.New("player name is required")
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrInvalidPosition      = errors.New("invalid player position")
	ErrInvalidPhase         = errors.New("invalid tournament phase")
	ErrNotEnoughTeams       = errors.New("at least two teams are required")
	ErrNoGroupResults       = errors.New("no group stage results to seed from")

	// Conflicts
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Authentication and authorization
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")
	ErrOwnerActionForbidden = errors.New("only the workspace owner can perform this action")

	// Entity-specific
	ErrUserNotFound      = errors.New("user not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrMemberNotFound    = errors.New("workspace member not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrMatchNotFound     = errors.New("match not found")
)
