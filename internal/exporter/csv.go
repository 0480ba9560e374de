package exporter

import (
	"context"
	"encoding/csv"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{
		logger: logger.With(slog.String("component", "csv_writer")),
	}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(ctx context.Context, path string, options WriteOptions) error {
	w.logger.InfoContext(ctx, "writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(options.Records)))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("failed to create output directory", err).
				WithContext("path", path)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return w.storageError(path, "failed to open output file for writing", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return w.storageError(path, "failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return w.storageError(path, "failed to write header row", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return w.storageError(path, "failed to write data row", err).
				WithContext("row", i+1)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return w.storageError(path, "failed to flush CSV output", err)
	}
	return nil
}

// WriteTransactions writes the cleaned row set with the standard header, one
// record per transaction, in input order.
func (w *CSVWriter) WriteTransactions(ctx context.Context, path string, transactions []domain.Transaction) error {
	records := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, tx.CSVRecord())
	}

	return w.WriteCSV(ctx, path, WriteOptions{
		Headers:   domain.CleanedColumns,
		Records:   records,
		BOMPrefix: true,
	})
}

// IsPermission reports whether err is the locked/permission-denied case the
// pipeline survives (typically the file is open in a spreadsheet program).
func IsPermission(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

func (w *CSVWriter) storageError(path, message string, cause error) *apperrors.AppError {
	return apperrors.NewStorageError(message, cause).WithContext("path", path)
}
