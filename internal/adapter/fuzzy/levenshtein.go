package fuzzy

import (
	"context"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/iho/bankrecon/internal/usecase"
)

// DefaultSimilarityThreshold is the minimum normalized similarity for a
// Levenshtein pairing to be proposed.
const DefaultSimilarityThreshold = 0.6

// LevenshteinMatcher is a local, deterministic usecase.FuzzyMatcher built on
// edit distance over uppercased descriptions. It stands in for the external
// AI service when running offline.
type LevenshteinMatcher struct {
	threshold float64
}

// NewLevenshteinMatcher creates a matcher with the given similarity
// threshold; values outside (0,1] fall back to the default.
func NewLevenshteinMatcher(threshold float64) *LevenshteinMatcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &LevenshteinMatcher{threshold: threshold}
}

// Match pairs each ledger entry with its most similar unclaimed bank entry.
func (m *LevenshteinMatcher) Match(_ context.Context, ledger, bank []usecase.FuzzyEntry) ([]usecase.FuzzyMatch, error) {
	var matches []usecase.FuzzyMatch
	claimed := make(map[int]bool, len(bank))

	for _, l := range ledger {
		if strings.TrimSpace(l.Description) == "" {
			continue
		}

		best := -1
		bestScore := 0.0

		for i, b := range bank {
			if claimed[i] || strings.TrimSpace(b.Description) == "" {
				continue
			}

			score := similarity(l.Description, b.Description)
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best < 0 || bestScore < m.threshold {
			continue
		}

		claimed[best] = true
		matches = append(matches, usecase.FuzzyMatch{
			LedgerIndex:     l.Index,
			BankDescription: bank[best].Description,
			Confidence:      math.Round(bestScore*1000) / 10,
		})
	}

	return matches, nil
}

// similarity is 1 - normalized edit distance over uppercased input.
func similarity(a, b string) float64 {
	a = strings.ToUpper(a)
	b = strings.ToUpper(b)

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
