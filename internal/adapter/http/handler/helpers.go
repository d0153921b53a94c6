package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/iho/bankrecon/internal/adapter/http/dto"
	"github.com/iho/bankrecon/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message, Code: code})
}

// mapDomainError translates domain validation errors to HTTP responses.
// Unknown errors become a 500.
func mapDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNegativeDateTolerance),
		errors.Is(err, domain.ErrNegativeAmountTolerance),
		errors.Is(err, domain.ErrInvalidSeparator),
		errors.Is(err, domain.ErrInvalidReviewStatus),
		errors.Is(err, domain.ErrRoleNotMapped):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
