package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bankrecon/internal/domain"
)

// Tier is one step of the widening tolerance schedule.
type Tier struct {
	Label         string
	DateDays      int
	AmountPercent decimal.Decimal
	Confidence    float64
}

var (
	halfPercent = decimal.NewFromFloat(0.5)
	onePercent  = decimal.NewFromInt(1)
	hundred     = decimal.NewFromInt(100)
)

// TierSchedule derives the four fixed tolerance tiers from the caller's base
// tolerance. The schedule is a plain value so tests can substitute their own.
func TierSchedule(base domain.Tolerances) []Tier {
	return []Tier{
		{Label: "base_window", DateDays: base.DateDays, AmountPercent: base.AmountPercent, Confidence: 95},
		{Label: "extended_date", DateDays: base.DateDays + 2, AmountPercent: base.AmountPercent, Confidence: 85},
		{Label: "extended_amount", DateDays: base.DateDays, AmountPercent: base.AmountPercent.Add(halfPercent), Confidence: 80},
		{Label: "wide_window", DateDays: base.DateDays + 3, AmountPercent: base.AmountPercent.Add(onePercent), Confidence: 70},
	}
}

// matchByTolerance runs the tiered date/amount window pass. Tiers are
// evaluated in order, each consuming from the pools left by the previous
// one; matching stops as soon as either pool is empty. Within a tier the
// ledger pool is scanned in order and the first bank record inside both
// windows wins. The assignment is deliberately greedy: it takes the first
// satisfying candidate, not the closest one.
func matchByTolerance(
	ledger, bank *recordPool,
	ledgerMapping, bankMapping domain.ColumnMapping,
	tiers []Tier,
	sep domain.ThousandsSeparator,
	idGen IDGenerator,
) []domain.MatchedPair {
	var pairs []domain.MatchedPair

	for _, tier := range tiers {
		if ledger.Len() == 0 || bank.Len() == 0 {
			break
		}

		for i := range ledger.records {
			if ledger.Consumed(i) {
				continue
			}
			if bank.Len() == 0 {
				break
			}

			ledgerRec := ledger.At(i)

			// Records that fail to parse are skipped for this tier only;
			// they stay in the pool.
			ledgerAmount, err := domain.AmountOf(ledgerRec, ledgerMapping, domain.RoleDebit, sep)
			if err != nil {
				continue
			}
			ledgerDate, err := domain.DateOf(ledgerRec, ledgerMapping, domain.RoleDate)
			if err != nil {
				continue
			}

			amountWindow := ledgerAmount.Abs().Mul(tier.AmountPercent).Div(hundred)

			for j := range bank.records {
				if bank.Consumed(j) {
					continue
				}

				bankRec := bank.At(j)

				bankAmount, err := domain.AmountOf(bankRec, bankMapping, domain.RoleDebit, sep)
				if err != nil {
					continue
				}
				bankDate, err := domain.DateOf(bankRec, bankMapping, domain.RoleDate)
				if err != nil {
					continue
				}

				dateDiff := domain.DaysBetween(ledgerDate, bankDate)
				if dateDiff > tier.DateDays {
					continue
				}

				amountDiff := ledgerAmount.Sub(bankAmount).Abs()
				if amountDiff.GreaterThan(amountWindow) {
					continue
				}

				pairs = append(pairs, buildPair(
					idGen.Generate(),
					ledgerRec, bankRec,
					ledgerMapping, bankMapping,
					sep,
					domain.MethodToleranceMatch, tier.Label,
					tier.Confidence,
					amountDiff, dateDiff,
				))
				ledger.Consume(i)
				bank.Consume(j)
				break
			}
		}
	}

	return pairs
}
