package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bankrecon/internal/domain"
)

// ReferenceConfidence is the confidence assigned to exact reference matches.
const ReferenceConfidence = 100

// matchByReference runs the exact reference-number pass over both pools.
// It is a no-op unless both mappings define the reference role. For each
// ledger record in pool order the first bank record with a byte-equal
// reference is consumed; no normalization is applied.
func matchByReference(
	ledger, bank *recordPool,
	ledgerMapping, bankMapping domain.ColumnMapping,
	sep domain.ThousandsSeparator,
	idGen IDGenerator,
) []domain.MatchedPair {
	if !ledgerMapping.Has(domain.RoleReference) || !bankMapping.Has(domain.RoleReference) {
		return nil
	}

	var pairs []domain.MatchedPair

	for i := range ledger.records {
		if ledger.Consumed(i) {
			continue
		}
		if bank.Len() == 0 {
			break
		}

		ref := domain.TextOf(ledger.At(i), ledgerMapping, domain.RoleReference)
		if ref == "" {
			continue
		}

		for j := range bank.records {
			if bank.Consumed(j) {
				continue
			}
			if domain.TextOf(bank.At(j), bankMapping, domain.RoleReference) != ref {
				continue
			}

			pairs = append(pairs, buildPair(
				idGen.Generate(),
				ledger.At(i), bank.At(j),
				ledgerMapping, bankMapping,
				sep,
				domain.MethodReferenceNumber, "",
				ReferenceConfidence,
				decimal.Zero, 0,
			))
			ledger.Consume(i)
			bank.Consume(j)
			break
		}
	}

	return pairs
}

// buildPair assembles an immutable MatchedPair from a consumed ledger/bank
// record couple. Amount and date fields that fail to parse are carried as
// their zero values; the raw record is always attached.
func buildPair(
	id string,
	ledgerRec, bankRec domain.Record,
	ledgerMapping, bankMapping domain.ColumnMapping,
	sep domain.ThousandsSeparator,
	method domain.MatchMethod, tierLabel string,
	confidence float64,
	amountDiff decimal.Decimal, dateDiffDays int,
) domain.MatchedPair {
	ledgerAmount, _ := domain.AmountOf(ledgerRec, ledgerMapping, domain.RoleDebit, sep)
	bankAmount, _ := domain.AmountOf(bankRec, bankMapping, domain.RoleDebit, sep)

	return domain.MatchedPair{
		ID:                 id,
		LedgerRecord:       ledgerRec,
		BankRecord:         bankRec,
		LedgerDate:         domain.TextOf(ledgerRec, ledgerMapping, domain.RoleDate),
		LedgerDescription:  domain.TextOf(ledgerRec, ledgerMapping, domain.RoleDescription),
		LedgerAmount:       ledgerAmount,
		BankDate:           domain.TextOf(bankRec, bankMapping, domain.RoleDate),
		BankDescription:    domain.TextOf(bankRec, bankMapping, domain.RoleDescription),
		BankAmount:         bankAmount,
		AmountDifference:   amountDiff,
		DateDifferenceDays: dateDiffDays,
		Method:             method,
		TierLabel:          tierLabel,
		Confidence:         confidence,
	}
}
