package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"moshood-fashion/internal/middleware"
	"moshood-fashion/internal/model"
	"moshood-fashion/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestHandler handles custom product request HTTP requests.
type RequestHandler struct {
	service service.RequestService
	logger  zerolog.Logger
}

// NewRequestHandler creates a new product request handler.
func NewRequestHandler(service service.RequestService, logger zerolog.Logger) *RequestHandler {
	return &RequestHandler{
		service: service,
		logger:  logger.With().Str("handler", "request").Logger(),
	}
}

// Create handles POST /api/requests requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	var input model.ProductRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	request, err := h.service.Create(r.Context(), userID, &input)
	if err != nil {
		writeDomainError(w, err, "failed to submit request", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, request)
}

// GetMine handles GET /api/requests requests.
func (h *RequestHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	requests, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve requests", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

// UpdateInfo handles PATCH /api/requests/{id} requests, editing the
// free-text notes on the caller's own request.
func (h *RequestHandler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		AdditionalInfo string `json:"additionalInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateAdditionalInfo(r.Context(), id, userID, req.AdditionalInfo); err != nil {
		writeDomainError(w, err, "failed to update request", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"additionalInfo": req.AdditionalInfo})
}

// Delete handles DELETE /api/requests/{id} requests.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	userID, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		writeDomainError(w, err, "failed to delete request", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetAll handles GET /api/admin/requests requests.
func (h *RequestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit, offset, err := paginationParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	requests, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve requests", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, requests)
}

func (h *RequestHandler) sessionUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "session required", h.logger)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid session", h.logger)
		return uuid.Nil, false
	}
	return userID, true
}

func (h *RequestHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/requests/")
	if idStr == "" || idStr == r.URL.Path {
		writeError(w, http.StatusBadRequest, "request ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(strings.TrimSuffix(idStr, "/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
