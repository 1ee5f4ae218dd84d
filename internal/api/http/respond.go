package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"alugo-backend/internal/domain"
	"alugo-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. The response
// body carries only the stable error code; details stay in logs.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidMinutes),
		errors.Is(err, domain.ErrInvalidPricing),
		errors.Is(err, domain.ErrItemUnavailable):
		status = http.StatusBadRequest
		code = err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = err.Error()
	case errors.Is(err, domain.ErrRentalNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrItemTypeNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		status = http.StatusNotFound
		code = err.Error()
	case errors.Is(err, domain.ErrRentalAlreadyFinalized),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrItemRented):
		status = http.StatusConflict
		code = err.Error()
	default:
		logger.Error("unhandled error in request", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: code})
}
