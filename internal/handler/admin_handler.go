package handler

import (
	"net/http"

	"moshood-fashion/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler serves the dashboard aggregates and payment listing.
type AdminHandler struct {
	stats    service.StatsService
	payments service.PaymentService
	logger   zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(stats service.StatsService, payments service.PaymentService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		stats:    stats,
		payments: payments,
		logger:   logger.With().Str("handler", "admin").Logger(),
	}
}

// Overview handles GET /api/admin/overview requests.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build overview", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// Payments handles GET /api/admin/payments requests.
func (h *AdminHandler) Payments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit, offset, err := paginationParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	payments, err := h.payments.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve payments", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}
