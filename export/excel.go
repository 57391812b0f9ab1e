package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Report"

// ReportXLSX renders an arbitrary tabular report (headers plus rows) as a
// spreadsheet with a single "Report" sheet, headers in the first row.
func ReportXLSX(headers []string, rows [][]string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, ErrNoColumns
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return nil, fmt.Errorf("failed to name report sheet: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := writeRow(f, i+2, r); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetCellValue(reportSheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}
