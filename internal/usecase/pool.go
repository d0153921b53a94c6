package usecase

import (
	"github.com/iho/bankrecon/internal/domain"
)

// recordPool tracks the unconsumed records of one side of a run. Consumption
// tombstones the index instead of splicing the slice, so scans always see
// the original insertion order and removal is O(1).
type recordPool struct {
	records  []domain.Record
	consumed []bool
	live     int
}

func newRecordPool(records []domain.Record) *recordPool {
	return &recordPool{
		records:  append([]domain.Record(nil), records...),
		consumed: make([]bool, len(records)),
		live:     len(records),
	}
}

// Len returns the number of unconsumed records.
func (p *recordPool) Len() int {
	return p.live
}

// At returns the record at index i. Callers must check Consumed first.
func (p *recordPool) At(i int) domain.Record {
	return p.records[i]
}

// Consumed reports whether index i has already been matched.
func (p *recordPool) Consumed(i int) bool {
	return p.consumed[i]
}

// Consume marks index i as matched. Consuming twice is a bug in the caller.
func (p *recordPool) Consume(i int) {
	if !p.consumed[i] {
		p.consumed[i] = true
		p.live--
	}
}

// Remaining returns the unconsumed records in insertion order.
func (p *recordPool) Remaining() []domain.Record {
	out := make([]domain.Record, 0, p.live)
	for i, rec := range p.records {
		if !p.consumed[i] {
			out = append(out, rec)
		}
	}
	return out
}
