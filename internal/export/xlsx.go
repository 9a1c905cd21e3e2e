package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Export"

// XLSX returns a single-sheet workbook with a bold header row.
func XLSX(t Table) ([]byte, error) {
	sheet := t.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet instead of adding a second one.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}

	for i, h := range t.Headers {
		if err := setCell(f, sheet, i+1, 1, h); err != nil {
			return nil, err
		}
	}
	if len(t.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx header: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("xlsx header style: %w", err)
		}
	}

	for r, row := range t.Rows {
		for c, v := range row {
			if err := setCell(f, sheet, c+1, r+2, v); err != nil {
				return nil, err
			}
		}
	}

	for i := range t.Headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx column: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth(t, i)); err != nil {
			return nil, fmt.Errorf("xlsx column %s width: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, sheet string, col, row int, v string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx cell: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("xlsx cell %s: %w", cell, err)
	}
	return nil
}

// columnWidth sizes a column to its longest value, clamped to [10, 60].
func columnWidth(t Table, col int) float64 {
	width := len(t.Headers[col])
	for _, r := range t.Rows {
		if col < len(r) && len(r[col]) > width {
			width = len(r[col])
		}
	}
	w := float64(width + 2)
	switch {
	case w < 10:
		return 10
	case w > 60:
		return 60
	}
	return w
}
