package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/iho/bankrecon/internal/domain"
)

// ReadXLSX loads records from the first sheet of an Excel workbook. The
// first row supplies column names, matching the CSV loader's contract.
func ReadXLSX(path string) ([]domain.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return rowsToRecords(rows), nil
}
