package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"salescli/pkg/contracts/domain"
)

// Fallback defaults used when a column holds no usable value at all.
const (
	fallbackCategory = "UNKNOWN"
	fallbackDate     = "1970-01-01"
)

// ColumnDefaults holds one imputation default per imputable column, computed
// once per run from the raw dataset and then used uniformly for every row.
type ColumnDefaults struct {
	Quantity        int
	PricePerUnit    float64
	Item            string
	PaymentMethod   string
	Location        string
	TransactionDate string
}

// DefaultEstimator derives ColumnDefaults from raw transactions.
type DefaultEstimator struct {
	logger *slog.Logger
}

// NewDefaultEstimator creates a default estimator.
func NewDefaultEstimator(logger *slog.Logger) *DefaultEstimator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultEstimator{
		logger: logger.With(slog.String("component", "default_estimator")),
	}
}

// Estimate scans the raw rows once and computes the per-column defaults:
// median quantity, mean unit price, and the mode of each categorical column.
// Sentinel values never contribute. Numeric text that fails to parse is
// skipped here rather than raised; the same text is a fatal conversion error
// later in the cleaner.
func (e *DefaultEstimator) Estimate(ctx context.Context, rows []domain.RawTransaction) ColumnDefaults {
	var (
		quantities []float64
		prices     []float64
		items      []string
		methods    []string
		locations  []string
		dates      []string
	)

	for _, row := range rows {
		if !IsSentinel(row.Quantity) {
			if n, err := strconv.Atoi(row.Quantity); err == nil {
				quantities = append(quantities, float64(n))
			} else {
				e.logger.DebugContext(ctx, "skipping unparseable quantity",
					slog.String("value", row.Quantity))
			}
		}
		if !IsSentinel(row.PricePerUnit) {
			if f, err := strconv.ParseFloat(row.PricePerUnit, 64); err == nil {
				prices = append(prices, f)
			} else {
				e.logger.DebugContext(ctx, "skipping unparseable unit price",
					slog.String("value", row.PricePerUnit))
			}
		}
		if !IsSentinel(row.Item) {
			items = append(items, row.Item)
		}
		if !IsSentinel(row.PaymentMethod) {
			methods = append(methods, row.PaymentMethod)
		}
		if !IsSentinel(row.Location) {
			locations = append(locations, row.Location)
		}
		if !IsSentinel(row.TransactionDate) {
			dates = append(dates, row.TransactionDate)
		}
	}

	defaults := ColumnDefaults{
		Quantity:        medianQuantity(quantities),
		PricePerUnit:    meanOrZero(prices),
		Item:            modeOrFallback(items, fallbackCategory),
		PaymentMethod:   modeOrFallback(methods, fallbackCategory),
		Location:        modeOrFallback(locations, fallbackCategory),
		TransactionDate: modeOrFallback(dates, fallbackDate),
	}

	e.logger.InfoContext(ctx, "column defaults computed",
		slog.Int("row_count", len(rows)),
		slog.Int("quantity_default", defaults.Quantity),
		slog.Float64("price_per_unit_default", defaults.PricePerUnit),
		slog.String("item_default", defaults.Item),
		slog.String("payment_method_default", defaults.PaymentMethod),
		slog.String("location_default", defaults.Location),
		slog.String("transaction_date_default", defaults.TransactionDate))

	return defaults
}

// medianQuantity reduces the collected quantities to an integral default.
// An even-sized sample can produce a half-integral median; it is rounded
// half away from zero because the cleaned Quantity column is integral.
func medianQuantity(values []float64) int {
	m, err := Median(values)
	if err != nil {
		return 0
	}
	return int(math.Round(m))
}

func meanOrZero(values []float64) float64 {
	m, err := Mean(values)
	if err != nil {
		return 0.0
	}
	return m
}

// modeOrFallback picks the most frequent value; on a frequency tie the first
// value seen in row order wins, which keeps the estimate deterministic.
func modeOrFallback(values []string, fallback string) string {
	m, _, err := Mode(values)
	if err != nil {
		return fallback
	}
	return m
}
