package handler

import (
	"net/http"

	"github.com/daybreak-labs/companion-api/internal/service"
	"github.com/daybreak-labs/companion-api/pkg/logger"
)

// SummaryHandler handles the daily summary endpoint.
type SummaryHandler struct {
	service *service.SummaryService
	logger  *logger.Logger
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(svc *service.SummaryService, log *logger.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: svc,
		logger:  log,
	}
}

// Daily handles GET /api/summary/daily. The summary path never fails;
// insight generation degrades to a fixed list internally.
func (h *SummaryHandler) Daily(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Daily(r.Context()))
}
