package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/bankrecon/internal/domain"
)

// DefaultFuzzyTimeout bounds the one external call a run may make.
const DefaultFuzzyTimeout = 10 * time.Second

// ReconciliationUseCase sequences the matching passes of a single run:
// reference pass, tolerance tiers, optional fuzzy merge, Benford analysis.
// A use case value is safe for concurrent runs; each run owns private pools.
type ReconciliationUseCase struct {
	fuzzy  FuzzyMatcher
	idGen  IDGenerator
	logger zerolog.Logger
	tiers  func(domain.Tolerances) []Tier
}

// Option configures a ReconciliationUseCase.
type Option func(*ReconciliationUseCase)

// WithTierSchedule overrides the tolerance tier derivation.
func WithTierSchedule(fn func(domain.Tolerances) []Tier) Option {
	return func(uc *ReconciliationUseCase) {
		uc.tiers = fn
	}
}

// NewReconciliationUseCase creates a new reconciliation use case. The fuzzy
// matcher may be nil when fuzzy matching is never requested.
func NewReconciliationUseCase(fuzzy FuzzyMatcher, idGen IDGenerator, logger zerolog.Logger, opts ...Option) *ReconciliationUseCase {
	uc := &ReconciliationUseCase{
		fuzzy:  fuzzy,
		idGen:  idGen,
		logger: logger,
		tiers:  TierSchedule,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ReconcileInput carries everything one run needs. Record slices are copied
// into private pools; caller-owned records are never mutated.
type ReconcileInput struct {
	LedgerRecords    []domain.Record
	BankRecords      []domain.Record
	LedgerMapping    domain.ColumnMapping
	BankMapping      domain.ColumnMapping
	Tolerances       domain.Tolerances
	Separator        domain.ThousandsSeparator
	UseFuzzyMatching bool
	FuzzyTimeout     time.Duration
}

// Reconcile executes one reconciliation run. The only suspension point is
// the optional fuzzy matcher call; everything else is pure computation.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, input ReconcileInput) (*domain.ReconciliationResult, error) {
	if err := domain.ValidateTolerances(input.Tolerances); err != nil {
		return nil, err
	}
	if err := domain.ValidateSeparator(input.Separator); err != nil {
		return nil, err
	}

	sep := input.Separator
	if sep == "" {
		sep = domain.SeparatorComma
	}

	result := &domain.ReconciliationResult{
		MatchedPairs:           []domain.MatchedPair{},
		UnmatchedLedgerRecords: []domain.Record{},
		UnmatchedBankRecords:   []domain.UnmatchedBankRecord{},
		Summary: domain.Summary{
			TotalLedgerRecords: len(input.LedgerRecords),
			TotalBankRecords:   len(input.BankRecords),
			TotalAmountMatched: decimal.Zero,
		},
	}

	// The Benford pass runs over the full original ledger column, not the
	// unmatched subset.
	result.BenfordPoints = AnalyzeLeadingDigits(input.LedgerRecords, input.LedgerMapping)

	// An empty bank set short-circuits the whole matching stage.
	if len(input.BankRecords) == 0 {
		result.UnmatchedLedgerRecords = append([]domain.Record(nil), input.LedgerRecords...)
		uc.summarize(result)
		return result, nil
	}

	ledger := newRecordPool(input.LedgerRecords)
	bank := newRecordPool(input.BankRecords)

	pairs := matchByReference(ledger, bank, input.LedgerMapping, input.BankMapping, sep, uc.idGen)
	pairs = append(pairs, matchByTolerance(ledger, bank, input.LedgerMapping, input.BankMapping, uc.tiers(input.Tolerances), sep, uc.idGen)...)

	if uc.shouldRunFuzzy(input, ledger, bank) {
		fuzzyPairs, diag := uc.mergeFuzzyMatches(ctx, input, ledger, bank, sep)
		pairs = append(pairs, fuzzyPairs...)
		result.Diagnostics = diag
	}

	result.MatchedPairs = append(result.MatchedPairs, pairs...)

	result.UnmatchedLedgerRecords = ledger.Remaining()
	for _, rec := range bank.Remaining() {
		amount, _ := domain.AmountOf(rec, input.BankMapping, domain.RoleDebit, sep)
		result.UnmatchedBankRecords = append(result.UnmatchedBankRecords, domain.UnmatchedBankRecord{
			ID:             uc.idGen.Generate(),
			Date:           domain.TextOf(rec, input.BankMapping, domain.RoleDate),
			Description:    domain.TextOf(rec, input.BankMapping, domain.RoleDescription),
			Amount:         amount,
			OriginalRecord: rec,
			Status:         domain.StatusUnreviewed,
		})
	}

	uc.summarize(result)
	return result, nil
}

func (uc *ReconciliationUseCase) shouldRunFuzzy(input ReconcileInput, ledger, bank *recordPool) bool {
	return input.UseFuzzyMatching &&
		uc.fuzzy != nil &&
		ledger.Len() > 0 &&
		bank.Len() > 0 &&
		input.LedgerMapping.Has(domain.RoleDescription) &&
		input.BankMapping.Has(domain.RoleDescription)
}

// mergeFuzzyMatches hands the residual descriptions to the external fuzzy
// matcher and folds accepted pairings back into the pools. The call fails
// open: any error or timeout is reported through Diagnostics and the run
// continues with zero fuzzy matches.
func (uc *ReconciliationUseCase) mergeFuzzyMatches(
	ctx context.Context,
	input ReconcileInput,
	ledger, bank *recordPool,
	sep domain.ThousandsSeparator,
) ([]domain.MatchedPair, domain.Diagnostics) {
	ledgerEntries := fuzzyEntries(ledger, input.LedgerMapping)
	bankEntries := fuzzyEntries(bank, input.BankMapping)

	timeout := input.FuzzyTimeout
	if timeout <= 0 {
		timeout = DefaultFuzzyTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	matches, err := uc.fuzzy.Match(callCtx, ledgerEntries, bankEntries)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("fuzzy matcher failed, continuing without fuzzy matches")
		return nil, domain.Diagnostics{
			FuzzyMatcherFailed: true,
			FuzzyMatcherError:  err.Error(),
		}
	}

	var pairs []domain.MatchedPair

	for _, m := range matches {
		if m.LedgerIndex < 0 || m.LedgerIndex >= len(ledger.records) || ledger.Consumed(m.LedgerIndex) {
			continue
		}

		j, ok := findByDescription(bank, input.BankMapping, m.BankDescription)
		if !ok {
			continue
		}

		ledgerRec := ledger.At(m.LedgerIndex)
		bankRec := bank.At(j)

		amountDiff, dateDiff := pairDifferences(ledgerRec, bankRec, input.LedgerMapping, input.BankMapping, sep)

		pairs = append(pairs, buildPair(
			uc.idGen.Generate(),
			ledgerRec, bankRec,
			input.LedgerMapping, input.BankMapping,
			sep,
			domain.MethodFuzzyMatch, "",
			m.Confidence,
			amountDiff, dateDiff,
		))
		ledger.Consume(m.LedgerIndex)
		bank.Consume(j)
	}

	return pairs, domain.Diagnostics{}
}

func (uc *ReconciliationUseCase) summarize(result *domain.ReconciliationResult) {
	for _, pair := range result.MatchedPairs {
		switch pair.Method {
		case domain.MethodReferenceNumber:
			result.Summary.ReferenceMatches++
		case domain.MethodToleranceMatch:
			result.Summary.ToleranceMatches++
		case domain.MethodFuzzyMatch:
			result.Summary.FuzzyMatches++
		}
		result.Summary.TotalAmountMatched = result.Summary.TotalAmountMatched.Add(pair.LedgerAmount.Abs())
	}
	result.Summary.MatchedPairs = len(result.MatchedPairs)
}

// fuzzyEntries builds the description list for the still-unmatched records
// of a pool. Indexes refer to positions in the original pool so returned
// matches can be resolved without re-scanning.
func fuzzyEntries(p *recordPool, mapping domain.ColumnMapping) []FuzzyEntry {
	entries := make([]FuzzyEntry, 0, p.Len())
	for i := range p.records {
		if p.Consumed(i) {
			continue
		}
		entries = append(entries, FuzzyEntry{
			Description: domain.TextOf(p.At(i), mapping, domain.RoleDescription),
			Index:       i,
		})
	}
	return entries
}

// findByDescription returns the first unconsumed record whose description
// matches exactly.
func findByDescription(p *recordPool, mapping domain.ColumnMapping, description string) (int, bool) {
	for j := range p.records {
		if p.Consumed(j) {
			continue
		}
		if domain.TextOf(p.At(j), mapping, domain.RoleDescription) == description {
			return j, true
		}
	}
	return 0, false
}

// pairDifferences computes the absolute amount and date distances for a
// fuzzy pairing; unparseable fields degrade to zero rather than failing.
func pairDifferences(
	ledgerRec, bankRec domain.Record,
	ledgerMapping, bankMapping domain.ColumnMapping,
	sep domain.ThousandsSeparator,
) (decimal.Decimal, int) {
	amountDiff := decimal.Zero
	dateDiff := 0

	la, errL := domain.AmountOf(ledgerRec, ledgerMapping, domain.RoleDebit, sep)
	ba, errB := domain.AmountOf(bankRec, bankMapping, domain.RoleDebit, sep)
	if errL == nil && errB == nil {
		amountDiff = la.Sub(ba).Abs()
	}

	ld, errL := domain.DateOf(ledgerRec, ledgerMapping, domain.RoleDate)
	bd, errB := domain.DateOf(bankRec, bankMapping, domain.RoleDate)
	if errL == nil && errB == nil {
		dateDiff = domain.DaysBetween(ld, bd)
	}

	return amountDiff, dateDiff
}
