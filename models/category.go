package models

// Category is a tournament scope. Every player, team and match belongs
// to exactly one category; categories belong to a workspace.
type Category struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	WorkspaceID string `json:"workspace_id" db:"workspace_id"`
}
