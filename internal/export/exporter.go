// Package export renders a computed expense snapshot as an XLSX workbook.
package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/acasal/gastos/internal/expense"
)

const sheetName = "Expenses"

const currencyFormat = "€#,##0.00"

// Filename names an export artifact after its environment and the moment of
// the compute run, so repeated runs never collide on disk.
func Filename(environmentID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("expenses_%s_%d.xlsx", environmentID, now.UnixMilli())
}

// WriteFile renders the snapshot into an XLSX workbook at path. Rows keep
// the snapshot's order and a TOTAL row closes the sheet; the total is summed
// on decimals, not on the float cell values.
func WriteFile(path string, expenses []*expense.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	if err := writeSheet(f, expenses); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, expenses []*expense.Expense) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0E0E0"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: stringPtr(currencyFormat),
	})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFD700"}},
	})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}

	totalAmountStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFD700"}},
		CustomNumFmt: stringPtr(currencyFormat),
	})
	if err != nil {
		return fmt.Errorf("creating total amount style: %w", err)
	}

	headers := []string{"Date", "Amount", "Description", "Paid By", "Registered By"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := f.SetCellStyle(sheetName, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	widths := []float64{15, 12, 40, 20, 20}
	for i, w := range widths {
		col := string(rune('A' + i))
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return fmt.Errorf("setting column width: %w", err)
		}
	}

	total := decimal.Zero

	for idx, e := range expenses {
		row := idx + 2

		cells := map[string]any{
			fmt.Sprintf("A%d", row): e.ExpenseDate.Format("2006-01-02"),
			fmt.Sprintf("B%d", row): e.Amount.InexactFloat64(),
			fmt.Sprintf("C%d", row): e.Description,
			fmt.Sprintf("D%d", row): e.PayerName,
			fmt.Sprintf("E%d", row): e.RegisteredByName,
		}

		for cell, value := range cells {
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}

		cell := fmt.Sprintf("B%d", row)
		if err := f.SetCellStyle(sheetName, cell, cell, amountStyle); err != nil {
			return fmt.Errorf("styling amount: %w", err)
		}

		total = total.Add(e.Amount)
	}

	totalRow := len(expenses) + 2

	if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), "TOTAL"); err != nil {
		return fmt.Errorf("writing total label: %w", err)
	}

	if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), total.InexactFloat64()); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}

	if err := f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", totalRow), fmt.Sprintf("E%d", totalRow), totalStyle); err != nil {
		return fmt.Errorf("styling total row: %w", err)
	}

	if err := f.SetCellStyle(sheetName,
		fmt.Sprintf("B%d", totalRow), fmt.Sprintf("B%d", totalRow), totalAmountStyle); err != nil {
		return fmt.Errorf("styling total amount: %w", err)
	}

	return nil
}

func stringPtr(s string) *string {
	return &s
}
