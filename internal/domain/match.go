package domain

import (
	"github.com/shopspring/decimal"
)

// MatchMethod identifies which pass produced a matched pair.
type MatchMethod string

const (
	MethodReferenceNumber MatchMethod = "reference_number"
	MethodToleranceMatch  MatchMethod = "tolerance_match"
	MethodFuzzyMatch      MatchMethod = "fuzzy_match"
)

// MatchedPair is one ledger record paired with one bank record. Pairs are
// created once by the engine and immutable afterwards.
type MatchedPair struct {
	ID                 string          `json:"id"`
	LedgerRecord       Record          `json:"ledger_record"`
	BankRecord         Record          `json:"bank_record"`
	LedgerDate         string          `json:"ledger_date"`
	LedgerDescription  string          `json:"ledger_description"`
	LedgerAmount       decimal.Decimal `json:"ledger_amount"`
	BankDate           string          `json:"bank_date"`
	BankDescription    string          `json:"bank_description"`
	BankAmount         decimal.Decimal `json:"bank_amount"`
	AmountDifference   decimal.Decimal `json:"amount_difference"`
	DateDifferenceDays int             `json:"date_difference_days"`
	Method             MatchMethod     `json:"method"`
	TierLabel          string          `json:"tier_label,omitempty"`
	Confidence         float64         `json:"confidence"`
}

// ReviewStatus tracks the manual review state of an unmatched bank record.
type ReviewStatus string

const (
	StatusUnreviewed ReviewStatus = "unreviewed"
	StatusReviewed   ReviewStatus = "reviewed"
	StatusDismissed  ReviewStatus = "dismissed"
)

// UnmatchedBankRecord is a bank record that survived every matching pass.
type UnmatchedBankRecord struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	OriginalRecord Record          `json:"original_record"`
	Status         ReviewStatus    `json:"status"`
}

// Summary aggregates counts for one reconciliation run.
type Summary struct {
	TotalLedgerRecords int             `json:"total_ledger_records"`
	TotalBankRecords   int             `json:"total_bank_records"`
	MatchedPairs       int             `json:"matched_pairs"`
	ReferenceMatches   int             `json:"reference_matches"`
	ToleranceMatches   int             `json:"tolerance_matches"`
	FuzzyMatches       int             `json:"fuzzy_matches"`
	TotalAmountMatched decimal.Decimal `json:"total_amount_matched"`
}

// Diagnostics carries non-fatal signals out of a run.
type Diagnostics struct {
	FuzzyMatcherFailed bool   `json:"fuzzy_matcher_failed"`
	FuzzyMatcherError  string `json:"fuzzy_matcher_error,omitempty"`
}

// ReconciliationResult is the complete output of one run. Every input record
// appears in exactly one of MatchedPairs, UnmatchedLedgerRecords, or
// UnmatchedBankRecords.
type ReconciliationResult struct {
	MatchedPairs           []MatchedPair         `json:"matched_pairs"`
	UnmatchedLedgerRecords []Record              `json:"unmatched_ledger_records"`
	UnmatchedBankRecords   []UnmatchedBankRecord `json:"unmatched_bank_records"`
	BenfordPoints          []BenfordPoint        `json:"benford_points"`
	Summary                Summary               `json:"summary"`
	Diagnostics            Diagnostics           `json:"diagnostics"`
}
