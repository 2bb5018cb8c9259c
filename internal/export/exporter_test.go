package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/acasal/gastos/internal/expense"
)

func TestWriteFile(t *testing.T) {
	expenses := []*expense.Expense{
		{
			Amount:           decimal.RequireFromString("50.00"),
			Description:      "Groceries",
			ExpenseDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			PayerName:        "Ana",
			RegisteredByName: "Ana",
		},
		{
			Amount:           decimal.RequireFromString("75.50"),
			Description:      "Internet bill",
			ExpenseDate:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			PayerName:        "Bruno",
			RegisteredByName: "Ana",
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteFile(path, expenses))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetName, ref, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Date", cell("A1"))
	assert.Equal(t, "Amount", cell("B1"))
	assert.Equal(t, "Description", cell("C1"))
	assert.Equal(t, "Paid By", cell("D1"))
	assert.Equal(t, "Registered By", cell("E1"))

	assert.Equal(t, "2024-03-01", cell("A2"))
	assert.Equal(t, "Groceries", cell("C2"))
	assert.Equal(t, "Bruno", cell("D3"))

	assert.Equal(t, "", cell("A4"))
	assert.Equal(t, "125.5", cell("B4"))
	assert.Equal(t, "TOTAL", cell("C4"))
}

func TestWriteFileEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteFile(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheetName, "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", v)

	total, err := f.GetCellValue(sheetName, "B2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}

func TestFilename(t *testing.T) {
	environmentID := uuid.MustParse("6f1c1af8-3f60-4f41-9a30-1c74f9a3a001")
	now := time.UnixMilli(1700000000000)

	got := Filename(environmentID, now)
	assert.Equal(t, "expenses_6f1c1af8-3f60-4f41-9a30-1c74f9a3a001_1700000000000.xlsx", got)
}
