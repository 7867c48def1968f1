package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luismarketmedia/dash-fut/services"
)

// RequireWorkspace rejects requests whose authenticated user is
// neither the owner nor a member of the workspace in the URL. Without
// a record store there are no membership rows to check and the request
// passes through.
func RequireWorkspace(workspaces services.WorkspaceService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			workspaceID := chi.URLParam(r, "workspaceID")
			err := workspaces.Authorize(r.Context(), UserID(r.Context()), workspaceID)
			switch {
			case err == nil, errors.Is(err, services.ErrPersistenceDisabled):
				next.ServeHTTP(w, r)
			case errors.Is(err, services.ErrWorkspaceNotFound):
				http.Error(w, "Not Found", http.StatusNotFound)
			case errors.Is(err, services.ErrForbiddenOperation):
				http.Error(w, "Forbidden", http.StatusForbidden)
			default:
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		})
	}
}
