package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bankrecon/internal/domain"
	"github.com/iho/bankrecon/internal/usecase"
)

// TolerancesRequest is the caller-supplied base tolerance.
type TolerancesRequest struct {
	DateDays      int             `json:"date_days"`
	AmountPercent decimal.Decimal `json:"amount_percent"`
}

// ReconcileRequest represents a request to run a reconciliation.
type ReconcileRequest struct {
	LedgerRecords      []domain.Record      `json:"ledger_records"`
	BankRecords        []domain.Record      `json:"bank_records"`
	LedgerMapping      domain.ColumnMapping `json:"ledger_mapping"`
	BankMapping        domain.ColumnMapping `json:"bank_mapping"`
	Tolerances         TolerancesRequest    `json:"tolerances"`
	ThousandsSeparator string               `json:"thousands_separator,omitempty"`
	UseFuzzyMatching   bool                 `json:"use_fuzzy_matching,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ReconcileRequest) ToUseCaseInput(fuzzyTimeout time.Duration) usecase.ReconcileInput {
	return usecase.ReconcileInput{
		LedgerRecords: r.LedgerRecords,
		BankRecords:   r.BankRecords,
		LedgerMapping: r.LedgerMapping,
		BankMapping:   r.BankMapping,
		Tolerances: domain.Tolerances{
			DateDays:      r.Tolerances.DateDays,
			AmountPercent: r.Tolerances.AmountPercent,
		},
		Separator:        domain.ThousandsSeparator(r.ThousandsSeparator),
		UseFuzzyMatching: r.UseFuzzyMatching,
		FuzzyTimeout:     fuzzyTimeout,
	}
}

// BenfordRequest represents a request to run a leading-digit analysis.
type BenfordRequest struct {
	Records []domain.Record      `json:"records"`
	Mapping domain.ColumnMapping `json:"mapping"`
}
