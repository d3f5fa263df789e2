package utils

import (
	"encoding/json"
	"fmt"
	"io"

	models "acdoc-dashboard/app/models/dataset"
	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteWorkbook writes t as a single-sheet workbook: header row with the column names,
// then one row per record in table order. No styling is applied.
func WriteWorkbook(w io.Writer, t *models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range t.Rows {
		row := make([]interface{}, len(t.Columns))
		for j, c := range t.Columns {
			v, err := cellValue(rec[c])
			if err != nil {
				return fmt.Errorf("row %d column %q: %w", i+1, c, err)
			}
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	return nil
}

// cellValue maps a decoded JSON value to something excelize stores with the right cell type.
func cellValue(v any) (interface{}, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string, bool:
		return val, nil
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, nil
		}
		if f, err := val.Float64(); err == nil {
			return f, nil
		}
		return val.String(), nil
	case int, int64, float64:
		return val, nil
	default:
		// nested objects and arrays end up as their JSON text
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}
