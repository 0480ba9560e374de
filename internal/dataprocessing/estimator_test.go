package dataprocessing

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"salescli/pkg/contracts/domain"
)

func rawRow(quantity, price, item, method, location, date string) domain.RawTransaction {
	return domain.RawTransaction{
		Item:            item,
		Quantity:        quantity,
		PricePerUnit:    price,
		TotalSpent:      "0.00",
		PaymentMethod:   method,
		Location:        location,
		TransactionDate: date,
	}
}

func TestDefaultEstimator_Estimate(t *testing.T) {
	ctx := context.Background()
	estimator := NewDefaultEstimator(slog.Default())

	rows := []domain.RawTransaction{
		rawRow("2", "3.00", "Coffee", "Cash", "NYC", "2023-05-01"),
		rawRow("UNKNOWN", "5.00", "Coffee", "Cash", "NYC", "2023-05-01"),
		rawRow("4", "ERROR", "Tea", "Card", "ERROR", "2023-05-02"),
		rawRow("ERROR", "7.00", "Coffee", "Cash", "", "2023-05-01"),
		rawRow("6", "", "Tea", "UNKNOWN", "NYC", "UNKNOWN"),
	}

	defaults := estimator.Estimate(ctx, rows)

	// Median of [2,4,6]; sentinels never become candidates.
	assert.Equal(t, 4, defaults.Quantity)
	assert.InDelta(t, 5.0, defaults.PricePerUnit, 1e-9)
	assert.Equal(t, "Coffee", defaults.Item)
	assert.Equal(t, "Cash", defaults.PaymentMethod)
	assert.Equal(t, "NYC", defaults.Location)
	assert.Equal(t, "2023-05-01", defaults.TransactionDate)
}

func TestDefaultEstimator_SkipsUnparseableNumbers(t *testing.T) {
	ctx := context.Background()
	estimator := NewDefaultEstimator(slog.Default())

	// Bad numeric text is silently excluded from estimation, unlike in the
	// cleaner where it is fatal.
	rows := []domain.RawTransaction{
		rawRow("two", "cheap", "Coffee", "Cash", "NYC", "2023-05-01"),
		rawRow("3", "2.00", "Coffee", "Cash", "NYC", "2023-05-01"),
	}

	defaults := estimator.Estimate(ctx, rows)

	assert.Equal(t, 3, defaults.Quantity)
	assert.InDelta(t, 2.0, defaults.PricePerUnit, 1e-9)
}

func TestDefaultEstimator_AllSentinelsFallBack(t *testing.T) {
	ctx := context.Background()
	estimator := NewDefaultEstimator(slog.Default())

	rows := []domain.RawTransaction{
		rawRow("ERROR", "UNKNOWN", "", "ERROR", "UNKNOWN", ""),
		rawRow("", "", "UNKNOWN", "", "ERROR", "ERROR"),
	}

	defaults := estimator.Estimate(ctx, rows)

	assert.Equal(t, 0, defaults.Quantity)
	assert.Zero(t, defaults.PricePerUnit)
	assert.Equal(t, "UNKNOWN", defaults.Item)
	assert.Equal(t, "UNKNOWN", defaults.PaymentMethod)
	assert.Equal(t, "UNKNOWN", defaults.Location)
	assert.Equal(t, "1970-01-01", defaults.TransactionDate)
}

func TestDefaultEstimator_EvenMedianRoundsToInt(t *testing.T) {
	ctx := context.Background()
	estimator := NewDefaultEstimator(slog.Default())

	rows := []domain.RawTransaction{
		rawRow("2", "1.00", "Coffee", "Cash", "NYC", "2023-05-01"),
		rawRow("5", "1.00", "Coffee", "Cash", "NYC", "2023-05-01"),
	}

	defaults := estimator.Estimate(ctx, rows)

	// median([2,5]) = 3.5, rounded half away from zero.
	assert.Equal(t, 4, defaults.Quantity)
}

func TestDefaultEstimator_ModeTieIsFirstSeen(t *testing.T) {
	ctx := context.Background()
	estimator := NewDefaultEstimator(slog.Default())

	rows := []domain.RawTransaction{
		rawRow("1", "1.00", "Tea", "Card", "LA", "2023-01-01"),
		rawRow("1", "1.00", "Coffee", "Cash", "NYC", "2023-01-02"),
		rawRow("1", "1.00", "Coffee", "Cash", "NYC", "2023-01-01"),
		rawRow("1", "1.00", "Tea", "Card", "LA", "2023-01-02"),
	}

	defaults := estimator.Estimate(ctx, rows)

	// Ties resolve to the value seen first in row order.
	assert.Equal(t, "Tea", defaults.Item)
	assert.Equal(t, "Card", defaults.PaymentMethod)
	assert.Equal(t, "LA", defaults.Location)
	assert.Equal(t, "2023-01-01", defaults.TransactionDate)
}
