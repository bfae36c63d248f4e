package handler

import (
	"encoding/json"
	"net/http"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles the post-payment checkout callback.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Complete handles POST /api/checkout requests. A callback with a
// non-completed status still answers 200; Processed tells the storefront
// whether anything was recorded.
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "checkout requires at least one item", h.logger)
		return
	}

	result, err := h.service.CompleteCheckout(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to process checkout", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
