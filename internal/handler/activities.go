package handler

import (
	"encoding/json"
	"net/http"

	"github.com/daybreak-labs/companion-api/internal/model"
	"github.com/daybreak-labs/companion-api/internal/service"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

// ActivityHandler handles activity log endpoints.
type ActivityHandler struct {
	service *service.ActivityService
	logger  *logger.Logger
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(svc *service.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/activities
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List(r.Context()))
}

// Create handles POST /api/activities
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.service.AppendManual(r.Context(), &req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}
