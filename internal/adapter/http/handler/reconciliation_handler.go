package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/bankrecon/internal/adapter/http/dto"
	"github.com/iho/bankrecon/internal/domain"
	"github.com/iho/bankrecon/internal/infrastructure/metrics"
	"github.com/iho/bankrecon/internal/usecase"
)

// ReconciliationService runs reconciliations.
type ReconciliationService interface {
	Reconcile(ctx context.Context, input usecase.ReconcileInput) (*domain.ReconciliationResult, error)
}

// ReconciliationHandler handles reconciliation requests.
type ReconciliationHandler struct {
	service      ReconciliationService
	metrics      *metrics.Metrics
	logger       zerolog.Logger
	fuzzyTimeout time.Duration
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(service ReconciliationService, m *metrics.Metrics, logger zerolog.Logger, fuzzyTimeout time.Duration) *ReconciliationHandler {
	return &ReconciliationHandler{
		service:      service,
		metrics:      m,
		logger:       logger,
		fuzzyTimeout: fuzzyTimeout,
	}
}

// Create handles POST /api/v1/reconciliations.
func (h *ReconciliationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	start := time.Now()
	result, err := h.service.Reconcile(r.Context(), req.ToUseCaseInput(h.fuzzyTimeout))
	if err != nil {
		h.logger.Error().Err(err).Msg("reconciliation failed")
		mapDomainError(w, err)
		return
	}

	h.record(result, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func (h *ReconciliationHandler) record(result *domain.ReconciliationResult, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}
	h.metrics.RunsTotal.Inc()
	h.metrics.RunDuration.Observe(elapsed.Seconds())
	for _, pair := range result.MatchedPairs {
		h.metrics.MatchedPairs.WithLabelValues(string(pair.Method)).Inc()
	}
	h.metrics.UnmatchedRecords.WithLabelValues("ledger").Add(float64(len(result.UnmatchedLedgerRecords)))
	h.metrics.UnmatchedRecords.WithLabelValues("bank").Add(float64(len(result.UnmatchedBankRecords)))
	if result.Diagnostics.FuzzyMatcherFailed {
		h.metrics.FuzzyMatcherFailures.Inc()
	}
}
