package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Unclassified
// errors surface as 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrCarUnavailable):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrForbiddenTransition):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrSelfBooking):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrUnknownTier),
		errors.Is(err, domain.ErrUnknownExtra):
		status = http.StatusBadRequest
	default:
		logger.Error("Internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
