package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/luismarketmedia/dash-fut/brackets"
	"github.com/luismarketmedia/dash-fut/draw"
	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/services"
	"github.com/luismarketmedia/dash-fut/standings"
)

// TournamentHandler covers the draw, schedule generation, standings
// and the demo seed.
type TournamentHandler struct {
	dispatcher   *services.Dispatcher
	drawService  *services.DrawService
	phaseService *services.PhaseService
	demoService  *services.DemoService
}

func NewTournamentHandler(dispatcher *services.Dispatcher, drawService *services.DrawService, phaseService *services.PhaseService, demoService *services.DemoService) *TournamentHandler {
	return &TournamentHandler{
		dispatcher:   dispatcher,
		drawService:  drawService,
		phaseService: phaseService,
		demoService:  demoService,
	}
}

// State returns the full current snapshot.
func (h *TournamentHandler) State(w http.ResponseWriter, r *http.Request) {
	snapshot := h.dispatcher.Store().State()
	if err := writeJSON(w, http.StatusOK, jsonResponse{"state": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) PerformDraw(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PaidOnly bool `json:"paid_only"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	assignments, err := h.drawService.PerformDraw(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "categoryID"), draw.Options{PaidOnly: input.PaidOnly})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"assignments": assignments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GenerateGroupStage(w http.ResponseWriter, r *http.Request) {
	matches, groups, err := h.phaseService.GenerateGroupStage(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "categoryID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	response := jsonResponse{
		"matches": matches,
		"groups":  groups,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) GenerateEliminationStage(w http.ResponseWriter, r *http.Request) {
	phase := models.Phase(chi.URLParam(r, "phase"))
	matches, err := h.phaseService.GenerateEliminationStage(r.Context(), workspaceIDFromRequest(r), chi.URLParam(r, "categoryID"), phase)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetPhases clears the draw, the schedule and the pool labels of one
// category (all of them when no category is given).
func (h *TournamentHandler) ResetPhases(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")
	if err := h.phaseService.ResetPhases(r.Context(), workspaceIDFromRequest(r), categoryID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Standings computes the classification table of a category. An
// optional phase query parameter restricts which matches count.
func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	phase := models.Phase(r.URL.Query().Get("phase"))
	if phase != "" && !phase.Valid() {
		mapServiceErrorToHTTP(w, r, services.ErrInvalidPhase)
		return
	}

	st := h.dispatcher.Store().State()
	rows := standings.Compute(
		st.TeamsInCategory(categoryID),
		st.MatchesInCategory(categoryID),
		st.Assignments,
		standings.Options{Phase: phase},
	)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": rows}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Weeks returns a category's schedule packed into display rounds. An
// optional phase query parameter restricts which matches are packed.
func (h *TournamentHandler) Weeks(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	phase := models.Phase(r.URL.Query().Get("phase"))
	if phase != "" && !phase.Valid() {
		mapServiceErrorToHTTP(w, r, services.ErrInvalidPhase)
		return
	}

	st := h.dispatcher.Store().State()
	matches := st.MatchesInCategory(categoryID)
	if phase != "" {
		filtered := make([]models.Match, 0, len(matches))
		for _, m := range matches {
			if m.Phase == phase {
				filtered = append(filtered, m)
			}
		}
		matches = filtered
	}

	weeks := brackets.PackWeeks(matches, 0)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"weeks": weeks}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TopScorers returns the artilharia ranking of a category.
func (h *TournamentHandler) TopScorers(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			mapServiceErrorToHTTP(w, r, services.ErrValidationFailed)
			return
		}
		limit = n
	}

	st := h.dispatcher.Store().State()
	scorers := standings.TopScorers(
		st.PlayersInCategory(categoryID),
		st.TeamsInCategory(categoryID),
		st.MatchesInCategory(categoryID),
		st.Assignments,
		limit,
	)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"scorers": scorers}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SeedDemo replaces the workspace content with the demo roster.
func (h *TournamentHandler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.demoService.Seed(r.Context(), workspaceIDFromRequest(r))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"state": snapshot}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
