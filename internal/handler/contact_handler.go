package handler

import (
	"encoding/json"
	"net/http"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/service"

	"github.com/rs/zerolog"
)

// ContactHandler handles contact profile HTTP requests.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Save handles POST /api/contact-info requests. Every submission stores a
// fresh row.
func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var profile model.ContactProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if profile.CustomerEmail == "" {
		writeError(w, http.StatusBadRequest, "customer email is required", h.logger)
		return
	}

	saved, err := h.service.Save(r.Context(), &profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save contact details", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// Get handles GET /api/contact-info?email= requests, returning the most
// recent profile for the email.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email query parameter is required", h.logger)
		return
	}

	profile, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve contact details", h.logger)
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "no contact details for this email", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
