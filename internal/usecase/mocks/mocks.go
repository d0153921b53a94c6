package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/bankrecon/internal/usecase"
)

// StubFuzzyMatcher is a deterministic FuzzyMatcher for tests.
type StubFuzzyMatcher struct {
	MatchFunc func(ctx context.Context, ledger, bank []usecase.FuzzyEntry) ([]usecase.FuzzyMatch, error)

	mu    sync.Mutex
	calls int
}

func (s *StubFuzzyMatcher) Match(ctx context.Context, ledger, bank []usecase.FuzzyEntry) ([]usecase.FuzzyMatch, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.MatchFunc != nil {
		return s.MatchFunc(ctx, ledger, bank)
	}
	return nil, nil
}

// Calls returns how many times Match was invoked.
func (s *StubFuzzyMatcher) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// SequentialIDGenerator yields id-1, id-2, ... for deterministic assertions.
type SequentialIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
