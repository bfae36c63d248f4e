package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"moshood-fashion/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeDomainError maps a business failure to an HTTP status, falling
// back to 500 with a neutral message for anything unexpected.
func writeDomainError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, fallback, logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound, model.ErrCodeRequestNotFound:
		status = http.StatusNotFound
	case model.ErrCodeEmailTaken, model.ErrCodeAlreadyCancelled:
		status = http.StatusConflict
	case model.ErrCodeBadCredentials:
		status = http.StatusUnauthorized
	case model.ErrCodeNotOwner:
		status = http.StatusForbidden
	}

	logger.Error().Str("code", domainErr.Code).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
}

// paginationParams parses limit/offset query parameters with defaults.
func paginationParams(r *http.Request) (limit, offset int, err error) {
	limit, offset = 10, 0

	if s := r.URL.Query().Get("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid limit parameter")
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		offset, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid offset parameter")
		}
	}
	return limit, offset, nil
}
