package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fift2939-create/ather1/internal/domain"
	"github.com/fift2939-create/ather1/internal/locale"
)

// SheetName is the name of the only worksheet in the budget workbook.
const SheetName = "Budget"

// Columns is the fixed width of every spreadsheet row.
const Columns = 10

// SpreadsheetRows returns the cell values of the budget sheet: the title
// row padded to Columns, the header row, then one row per budget line in
// source order.
func SpreadsheetRows(p domain.ProjectProposal, lang locale.Language) [][]any {
	rows := make([][]any, 0, len(p.Budget)+2)

	title := make([]any, Columns)
	title[0] = p.Title
	for i := 1; i < Columns; i++ {
		title[i] = ""
	}
	rows = append(rows, title)

	header := lang.Labels().SpreadsheetHeader
	hdr := make([]any, Columns)
	for i, h := range header {
		hdr[i] = h
	}
	rows = append(rows, hdr)

	for _, li := range p.Budget {
		rows = append(rows, []any{
			li.BudgetCode,
			li.Item,
			li.MonthlyCost,
			li.Allocation,
			li.Quantity,
			li.Unit,
			li.Frequency,
			li.FrequencyUnit,
			li.Total,
			li.Description,
		})
	}
	return rows
}

// ToSpreadsheet renders the budget as an .xlsx workbook with a single
// "Budget" sheet. Arabic workbooks are laid out right-to-left.
func ToSpreadsheet(p domain.ProjectProposal, lang locale.Language) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for i, row := range SpreadsheetRows(p, lang) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := styleSheet(f, len(p.Budget)); err != nil {
		return nil, err
	}

	if lang.IsRTL() {
		rtl := true
		if err := f.SetSheetView(SheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, fmt.Errorf("setting sheet direction: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleSheet(f *excelize.File, lines int) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: brandColor},
	})
	if err != nil {
		return fmt.Errorf("creating title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: white},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{brandColor}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}

	if err := f.SetCellStyle(SheetName, "A1", "A1", titleStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A2", "J2", headerStyle); err != nil {
		return err
	}
	if lines > 0 {
		last := lines + 2
		for _, col := range []string{"C", "I"} {
			if err := f.SetCellStyle(SheetName, fmt.Sprintf("%s3", col), fmt.Sprintf("%s%d", col, last), moneyStyle); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", "I", 14); err != nil {
		return err
	}
	return f.SetColWidth(SheetName, "J", "J", 48)
}
