package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/service"

	"github.com/rs/zerolog"
)

// SubscriptionHandler handles newsletter subscription and digest
// fan-out HTTP requests.
type SubscriptionHandler struct {
	subscriptions service.SubscriptionService
	notifications service.NotificationService
	logger        zerolog.Logger
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(
	subscriptions service.SubscriptionService,
	notifications service.NotificationService,
	logger zerolog.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		notifications: notifications,
		logger:        logger.With().Str("handler", "subscription").Logger(),
	}
}

// Subscribe handles POST /api/subscribe requests.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "a valid email is required", h.logger)
		return
	}

	sub, err := h.subscriptions.Subscribe(r.Context(), req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to subscribe", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

// List handles GET /api/admin/subscriptions requests.
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	subs, err := h.subscriptions.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve subscriptions", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, subs)
}

// Notify handles POST /api/admin/notifications requests, fanning the
// selected digest out to every subscriber.
func (h *SubscriptionHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	mode := req.Type
	if mode == "" {
		mode = model.ModeDaily
	}
	if mode != model.ModeDaily && mode != model.ModeWeekend {
		writeError(w, http.StatusBadRequest, "unknown notification type", h.logger)
		return
	}

	sent, err := h.notifications.Dispatch(r.Context(), mode)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to send one or more emails", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.NotificationResult{
		Message:    "Emails sent successfully!",
		EmailsSent: sent,
	})
}
