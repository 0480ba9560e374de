package dataprocessing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// headerProbeRows is how deep into a sheet the header row is searched for.
// Exports sometimes carry a title row or two above the table.
const headerProbeRows = 10

// loadExcel reads the transaction table from an .xlsx export. The sheet is
// discovered by probing each one for a row containing all source column
// headers, then columns are mapped by header name exactly as for CSV.
func (l *Loader) loadExcel(ctx context.Context, path string) ([]domain.RawTransaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open Excel file", err).
			WithContext("path", path)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}

		headerRow := findHeaderRow(rows)
		if headerRow < 0 {
			continue
		}

		l.logger.InfoContext(ctx, "found transaction table in sheet",
			slog.String("sheet_name", sheet),
			slog.Int("header_row", headerRow))

		columns, err := mapColumns(rows[headerRow])
		if err != nil {
			return nil, err
		}
		return buildRawTransactions(columns, trimEmptyRows(rows[headerRow+1:], columns)), nil
	}

	return nil, apperrors.NewValidationError("no sheet contains the transaction columns", nil).
		WithContext("path", path)
}

// findHeaderRow returns the index of the first row carrying every source
// column header, or -1.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerProbeRows {
		limit = headerProbeRows
	}
	for i := 0; i < limit; i++ {
		if hasAllColumns(rows[i]) {
			return i
		}
	}
	return -1
}

func hasAllColumns(row []string) bool {
	present := make(map[string]bool, len(row))
	for _, cell := range row {
		present[strings.TrimSpace(cell)] = true
	}
	for _, required := range domain.SourceColumns {
		if !present[required] {
			return false
		}
	}
	return true
}

// trimEmptyRows drops rows whose mapped cells are all blank. Spreadsheets
// routinely carry trailing blank rows that are formatting artifacts, not
// transactions with every field missing.
func trimEmptyRows(records [][]string, columns map[string]int) [][]string {
	kept := make([][]string, 0, len(records))
	for _, record := range records {
		empty := true
		for _, idx := range columns {
			if idx < len(record) && strings.TrimSpace(record[idx]) != "" {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, record)
		}
	}
	return kept
}
