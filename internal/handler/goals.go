package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/daybreak-labs/companion-api/internal/middleware"
	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/service"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

// GoalHandler handles goal endpoints.
type GoalHandler struct {
	service *service.GoalService
	logger  *logger.Logger
}

// NewGoalHandler creates a new goal handler.
func NewGoalHandler(svc *service.GoalService, log *logger.Logger) *GoalHandler {
	return &GoalHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/goals
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Get handles GET /api/goals/{id}
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goal, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// Create handles POST /api/goals
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateTitle(req.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// Update handles PATCH /api/goals/{id}
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	goal, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// Delete handles DELETE /api/goals/{id}
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
