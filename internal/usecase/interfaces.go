package usecase

import (
	"context"
)

// FuzzyEntry is one description handed to the fuzzy matcher, tagged with its
// position in the remaining pool.
type FuzzyEntry struct {
	Description string `json:"description"`
	Index       int    `json:"index"`
}

// FuzzyMatch is one pairing proposed by the fuzzy matcher.
type FuzzyMatch struct {
	LedgerIndex     int     `json:"ledger_index"`
	BankDescription string  `json:"bank_description"`
	Confidence      float64 `json:"confidence"`
}

// FuzzyMatcher pairs ledger and bank records by description similarity. It
// is an external collaborator: potentially slow, potentially failing. The
// orchestrator treats any error as "no fuzzy matches found".
type FuzzyMatcher interface {
	Match(ctx context.Context, ledger, bank []FuzzyEntry) ([]FuzzyMatch, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
