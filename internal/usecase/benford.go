package usecase

import (
	"math"

	"github.com/iho/bankrecon/internal/domain"
)

// AnalyzeLeadingDigits computes the observed leading-digit distribution of
// the amount column against the Benford reference table. Records without a
// nonzero leading digit (empty, zero, non-numeric) are excluded from the
// population rather than counted as digit 0. An empty population yields an
// empty slice. The analysis is independent of the matching outcome.
func AnalyzeLeadingDigits(records []domain.Record, mapping domain.ColumnMapping) []domain.BenfordPoint {
	if !mapping.Has(domain.RoleDebit) {
		return nil
	}

	var counts [9]int
	total := 0

	for _, rec := range records {
		digit, ok := leadingDigit(domain.TextOf(rec, mapping, domain.RoleDebit))
		if !ok {
			continue
		}
		counts[digit-1]++
		total++
	}

	if total == 0 {
		return nil
	}

	points := make([]domain.BenfordPoint, 9)
	for d := 1; d <= 9; d++ {
		observed := 100 * float64(counts[d-1]) / float64(total)
		points[d-1] = domain.BenfordPoint{
			Digit:           d,
			ObservedPercent: math.Round(observed*10) / 10,
			ExpectedPercent: domain.BenfordExpected[d-1],
		}
	}

	return points
}

// leadingDigit scans for the first significant digit of a raw amount.
func leadingDigit(raw string) (int, bool) {
	for _, r := range raw {
		if r >= '1' && r <= '9' {
			return int(r - '0'), true
		}
	}
	return 0, false
}
