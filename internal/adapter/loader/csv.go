package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/iho/bankrecon/internal/domain"
)

// ReadCSV loads records from a CSV stream. The first row supplies column
// names; every later row becomes one Record keyed by those names. Short rows
// leave the missing columns unset.
func ReadCSV(r io.Reader) ([]domain.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return rowsToRecords(rows), nil
}

// ReadCSVFile loads records from a CSV file on disk.
func ReadCSVFile(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func rowsToRecords(rows [][]string) []domain.Record {
	header := rows[0]
	records := make([]domain.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		rec := make(domain.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}

	return records
}
