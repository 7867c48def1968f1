package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/services"
	"github.com/luismarketmedia/dash-fut/state"
)

type WorkspaceHandler struct {
	workspaceService services.WorkspaceService
	loader           *services.Loader
	dispatcher       *services.Dispatcher
}

func NewWorkspaceHandler(workspaceService services.WorkspaceService, loader *services.Loader, dispatcher *services.Dispatcher) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		loader:           loader,
		dispatcher:       dispatcher,
	}
}

func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), userIDFromRequest(r), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"workspace": workspace}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaceService.ListForUser(r.Context(), userIDFromRequest(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	h.dispatcher.Dispatch(r.Context(), "", state.SetWorkspaces{Workspaces: workspaces})
	if err := writeJSON(w, http.StatusOK, jsonResponse{"workspaces": workspaces}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Select makes the workspace current and rehydrates the snapshot from
// the record store.
func (h *WorkspaceHandler) Select(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromRequest(r)
	workspaceID := workspaceIDFromRequest(r)

	if err := h.workspaceService.Authorize(r.Context(), userID, workspaceID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := h.loader.Hydrate(r.Context(), userID, workspaceID); err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	h.dispatcher.Dispatch(r.Context(), "", state.SetActiveWorkspace{ID: workspaceID})

	snapshot := h.dispatcher.Store().State()
	if err := writeJSON(w, http.StatusOK, jsonResponse{"state": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string               `json:"email"`
		Role  models.WorkspaceRole `json:"role"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Email == "" {
		badRequestResponse(w, r, errors.New("email is required"))
		return
	}

	member, err := h.workspaceService.AddMember(r.Context(), userIDFromRequest(r), workspaceIDFromRequest(r), input.Email, input.Role)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"member": member}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *WorkspaceHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	err := h.workspaceService.RemoveMember(r.Context(), userIDFromRequest(r), workspaceIDFromRequest(r), chi.URLParam(r, "userID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WorkspaceHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.workspaceService.ListMembers(r.Context(), userIDFromRequest(r), workspaceIDFromRequest(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"members": members}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
