package handler

import (
	"encoding/json"
	"net/http"

	"moshood-fashion/internal/middleware"
	"moshood-fashion/internal/model"
	"moshood-fashion/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests for both guests and signed-in
// customers.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// owner resolves who the cart operation targets: session claims when the
// request carries a valid token, otherwise the guest token header.
func (h *CartHandler) owner(w http.ResponseWriter, r *http.Request) (model.CartOwner, bool) {
	if claims := middleware.ClaimsFromContext(r.Context()); claims != nil {
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid session", h.logger)
			return model.CartOwner{}, false
		}
		return model.CartOwner{UserID: &userID, Email: claims.Email}, true
	}

	token := r.Header.Get("X-Guest-Token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "guest token or session required", h.logger)
		return model.CartOwner{}, false
	}
	return model.CartOwner{GuestToken: token}, true
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	lines, err := h.service.GetLines(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, lines)
}

// Add handles POST /api/cart requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req model.AddCartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	req.Owner = owner

	line, err := h.service.AddLine(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "failed to add to cart", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, line)
}

// Update handles PUT /api/cart requests.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req model.UpdateCartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	req.Owner = owner

	line, err := h.service.SetQuantity(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "failed to update cart", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, line)
}

// Remove handles DELETE /api/cart requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	var req model.RemoveCartLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	req.Owner = owner

	if err := h.service.RemoveLine(r.Context(), &req); err != nil {
		writeDomainError(w, err, "failed to remove from cart", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
