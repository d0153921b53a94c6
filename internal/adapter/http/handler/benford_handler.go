package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/iho/bankrecon/internal/adapter/http/dto"
	"github.com/iho/bankrecon/internal/infrastructure/metrics"
	"github.com/iho/bankrecon/internal/usecase"
)

// BenfordHandler handles leading-digit analysis requests.
type BenfordHandler struct {
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewBenfordHandler creates a new BenfordHandler.
func NewBenfordHandler(m *metrics.Metrics, logger zerolog.Logger) *BenfordHandler {
	return &BenfordHandler{metrics: m, logger: logger}
}

// Analyze handles POST /api/v1/benford.
func (h *BenfordHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.BenfordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	points := usecase.AnalyzeLeadingDigits(req.Records, req.Mapping)
	if h.metrics != nil {
		h.metrics.BenfordAnalyses.Inc()
	}
	writeJSON(w, http.StatusOK, dto.BenfordResponse{Points: points})
}
