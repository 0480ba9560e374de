package dataprocessing

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// Loader reads raw transactions from disk. CSV is the native format; .xlsx
// exports of the same table are accepted and produce identical raw records.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger: logger.With(slog.String("component", "loader")),
	}
}

// Load reads the whole file into memory, dispatching on the file extension.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.RawTransaction, error) {
	l.logger.InfoContext(ctx, "loading raw transactions", slog.String("path", path))

	var (
		rows []domain.RawTransaction
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = l.loadExcel(ctx, path)
	} else {
		rows, err = l.loadCSV(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "raw transactions loaded",
		slog.String("path", path),
		slog.Int("row_count", len(rows)))

	return rows, nil
}

// loadCSV reads a comma-separated file with a header row. Fields are looked
// up by header name, so the physical column order does not matter.
func (l *Loader) loadCSV(ctx context.Context, path string) ([]domain.RawTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open input file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV input", err).
			WithContext("path", path)
	}
	if len(records) == 0 {
		return nil, apperrors.NewValidationError("input file has no header row", nil).
			WithContext("path", path)
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	return buildRawTransactions(columns, records[1:]), nil
}

// mapColumns resolves each required source column to its index in the header.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range domain.SourceColumns {
		if _, ok := columns[required]; !ok {
			return nil, apperrors.NewValidationError("input is missing required column", nil).
				WithContext("column", required)
		}
	}
	return columns, nil
}

// buildRawTransactions converts positional records into named raw rows.
// Short records yield empty strings for the missing trailing fields, which
// the pipeline already treats as sentinels.
func buildRawTransactions(columns map[string]int, records [][]string) []domain.RawTransaction {
	cell := func(record []string, column string) string {
		idx := columns[column]
		if idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	rows := make([]domain.RawTransaction, 0, len(records))
	for _, record := range records {
		rows = append(rows, domain.RawTransaction{
			Item:            cell(record, domain.ColItem),
			Quantity:        cell(record, domain.ColQuantity),
			PricePerUnit:    cell(record, domain.ColPricePerUnit),
			TotalSpent:      cell(record, domain.ColTotalSpent),
			PaymentMethod:   cell(record, domain.ColPaymentMethod),
			Location:        cell(record, domain.ColLocation),
			TransactionDate: cell(record, domain.ColTransactionDate),
		})
	}
	return rows
}
