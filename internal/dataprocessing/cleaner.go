package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	apperrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// RowCleaner turns raw transactions into cleaned ones by applying the field
// parsers with the estimated column defaults and recomputing the derived
// total. The mapping is strictly one-to-one and order preserving.
type RowCleaner struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewRowCleaner creates a row cleaner.
func NewRowCleaner(logger *slog.Logger) *RowCleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &RowCleaner{
		logger:   logger.With(slog.String("component", "row_cleaner")),
		validate: validator.New(),
	}
}

// Clean processes every raw row independently. The first conversion failure
// aborts the run; there is no per-row skip logic.
func (c *RowCleaner) Clean(ctx context.Context, rows []domain.RawTransaction, defaults ColumnDefaults) ([]domain.Transaction, error) {
	cleaned := make([]domain.Transaction, 0, len(rows))

	for i, row := range rows {
		tx, err := c.cleanRow(row, defaults)
		if err != nil {
			c.logger.ErrorContext(ctx, "row cleaning failed",
				slog.Int("row", i+1),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		cleaned = append(cleaned, tx)
	}

	c.logger.InfoContext(ctx, "data cleaned and transformed",
		slog.Int("row_count", len(cleaned)))

	return cleaned, nil
}

// cleanRow parses and imputes a single row. The order of field handling is
// free of cross-field dependencies except that quantity and unit price feed
// the corrected total.
func (c *RowCleaner) cleanRow(row domain.RawTransaction, defaults ColumnDefaults) (domain.Transaction, error) {
	quantity, err := ParseInt(row.Quantity, defaults.Quantity)
	if err != nil {
		return domain.Transaction{}, columnError(domain.ColQuantity, err)
	}

	pricePerUnit, err := ParseFloat(row.PricePerUnit, defaults.PricePerUnit)
	if err != nil {
		return domain.Transaction{}, columnError(domain.ColPricePerUnit, err)
	}

	// Kept for reporting the original value only; CorrectedTotal never uses it.
	totalSpent, err := ParseFloat(row.TotalSpent, 0.0)
	if err != nil {
		return domain.Transaction{}, columnError(domain.ColTotalSpent, err)
	}

	transactionDate, err := ParseDate(row.TransactionDate, defaults.TransactionDate)
	if err != nil {
		return domain.Transaction{}, columnError(domain.ColTransactionDate, err)
	}

	tx := domain.Transaction{
		Item:            ParseString(row.Item, defaults.Item),
		Quantity:        quantity,
		PricePerUnit:    pricePerUnit,
		TotalSpent:      totalSpent,
		PaymentMethod:   ParseString(row.PaymentMethod, defaults.PaymentMethod),
		Location:        ParseString(row.Location, defaults.Location),
		TransactionDate: transactionDate,
		CorrectedTotal:  Round2(float64(quantity) * pricePerUnit),
	}

	if err := c.validate.Struct(tx); err != nil {
		return domain.Transaction{}, apperrors.NewValidationError("cleaned row failed validation", err)
	}

	return tx, nil
}

func columnError(column string, err error) error {
	if appErr, ok := err.(*apperrors.AppError); ok {
		appErr.WithContext("column", column)
	}
	return fmt.Errorf("column %q: %w", column, err)
}
