package loader_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iho/bankrecon/internal/adapter/loader"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"date,description,amount,ref",
		"2024-01-10,ACME INVOICE,1200.50,A1",
		"2024-01-11,PAYROLL,88000,A2",
	}, "\n")

	records, err := loader.ReadCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ACME INVOICE", records[0]["description"])
	assert.Equal(t, "1200.50", records[0]["amount"])
	assert.Equal(t, "A2", records[1]["ref"])
}

func TestReadCSV_ShortRows(t *testing.T) {
	input := "date,amount\n2024-01-10\n"

	records, err := loader.ReadCSV(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-10", records[0]["date"])
	_, present := records[0]["amount"]
	assert.False(t, present, "missing trailing columns stay unset")
}

func TestReadCSV_Empty(t *testing.T) {
	records, err := loader.ReadCSV(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"value_date", "narrative", "value"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"2024-01-12", "CARD PAYMENT", "42.80"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := loader.ReadXLSX(path)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CARD PAYMENT", records[0]["narrative"])
	assert.Equal(t, "42.80", records[0]["value"])
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := loader.ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
}
