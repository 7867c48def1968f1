package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/services"
)

type MatchHandler struct {
	matchService *services.MatchService
}

func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) respondMatch(w http.ResponseWriter, r *http.Request, match models.Match, err error) {
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ToggleClock(w http.ResponseWriter, r *http.Request) {
	match, err := h.matchService.ToggleClock(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "matchID"))
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) ResetClock(w http.ResponseWriter, r *http.Request) {
	match, err := h.matchService.ResetClock(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "matchID"))
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) NextHalf(w http.ResponseWriter, r *http.Request) {
	match, err := h.matchService.NextHalf(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "matchID"))
	h.respondMatch(w, r, match, err)
}

type statInput struct {
	Delta int `json:"delta"`
}

func (h *MatchHandler) readDelta(w http.ResponseWriter, r *http.Request) (int, bool) {
	input := statInput{Delta: 1}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return 0, false
		}
	}
	return input.Delta, true
}

func (h *MatchHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	delta, ok := h.readDelta(w, r)
	if !ok {
		return
	}
	match, err := h.matchService.AddGoal(r.Context(), workspaceIDFromRequest(r),
		chi.URLParam(r, "matchID"), chi.URLParam(r, "playerID"), delta)
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) AddYellow(w http.ResponseWriter, r *http.Request) {
	delta, ok := h.readDelta(w, r)
	if !ok {
		return
	}
	match, err := h.matchService.AddYellow(r.Context(), workspaceIDFromRequest(r),
		chi.URLParam(r, "matchID"), chi.URLParam(r, "playerID"), delta)
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) ToggleRed(w http.ResponseWriter, r *http.Request) {
	match, err := h.matchService.ToggleRed(r.Context(), workspaceIDFromRequest(r),
		chi.URLParam(r, "matchID"), chi.URLParam(r, "playerID"))
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) ToggleDestaque(w http.ResponseWriter, r *http.Request) {
	match, err := h.matchService.ToggleDestaque(r.Context(), workspaceIDFromRequest(r),
		chi.URLParam(r, "matchID"), chi.URLParam(r, "playerID"))
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) EditTeams(w http.ResponseWriter, r *http.Request) {
	var input struct {
		LeftTeamID  string `json:"left_team_id"`
		RightTeamID string `json:"right_team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	match, err := h.matchService.EditTeams(r.Context(), workspaceIDFromRequest(r),
		chi.URLParam(r, "matchID"), input.LeftTeamID, input.RightTeamID)
	h.respondMatch(w, r, match, err)
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.matchService.DeleteMatch(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "matchID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MatchHandler) Clear(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")
	if err := h.matchService.ClearMatches(r.Context(), workspaceIDFromRequest(r), categoryID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
