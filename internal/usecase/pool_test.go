package usecase

import (
	"testing"

	"github.com/iho/bankrecon/internal/domain"
)

func TestRecordPool_ConsumePreservesOrder(t *testing.T) {
	records := []domain.Record{
		{"id": "a"},
		{"id": "b"},
		{"id": "c"},
		{"id": "d"},
	}

	pool := newRecordPool(records)

	pool.Consume(1)
	pool.Consume(2)

	if pool.Len() != 2 {
		t.Fatalf("expected 2 live records, got %d", pool.Len())
	}

	remaining := pool.Remaining()
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining records, got %d", len(remaining))
	}

	if remaining[0]["id"] != "a" || remaining[1]["id"] != "d" {
		t.Errorf("remaining records out of insertion order: %v", remaining)
	}
}

func TestRecordPool_DoubleConsumeCountsOnce(t *testing.T) {
	pool := newRecordPool([]domain.Record{{"id": "a"}})

	pool.Consume(0)
	pool.Consume(0)

	if pool.Len() != 0 {
		t.Errorf("expected empty pool, got %d live", pool.Len())
	}
}

func TestRecordPool_CopiesInputSlice(t *testing.T) {
	records := []domain.Record{{"id": "a"}}
	pool := newRecordPool(records)

	records[0] = domain.Record{"id": "replaced"}

	if pool.At(0)["id"] != "a" {
		t.Error("pool must own a private copy of the input slice")
	}
}
