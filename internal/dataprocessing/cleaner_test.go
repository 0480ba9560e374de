package dataprocessing

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescli/pkg/contracts/domain"
)

func TestRowCleaner_Clean(t *testing.T) {
	ctx := context.Background()
	cleaner := NewRowCleaner(slog.Default())

	defaults := ColumnDefaults{
		Quantity:        4,
		PricePerUnit:    2.50,
		Item:            "Coffee",
		PaymentMethod:   "Cash",
		Location:        "NYC",
		TransactionDate: "2023-05-01",
	}

	rows := []domain.RawTransaction{
		{
			Item:            "Coffee",
			Quantity:        "2",
			PricePerUnit:    "3.50",
			TotalSpent:      "ERROR",
			PaymentMethod:   "Cash",
			Location:        "NYC",
			TransactionDate: "2023-05-01",
		},
		{
			Item:            "UNKNOWN",
			Quantity:        "ERROR",
			PricePerUnit:    "",
			TotalSpent:      "9.99",
			PaymentMethod:   "",
			Location:        "ERROR",
			TransactionDate: "UNKNOWN",
		},
	}

	cleaned, err := cleaner.Clean(ctx, rows, defaults)
	require.NoError(t, err)
	require.Len(t, cleaned, len(rows), "row count in == row count out")

	// Fully parseable row: total spent imputed from its 0.0 default.
	first := cleaned[0]
	assert.Equal(t, "Coffee", first.Item)
	assert.Equal(t, 2, first.Quantity)
	assert.InDelta(t, 3.5, first.PricePerUnit, 1e-9)
	assert.InDelta(t, 7.0, first.CorrectedTotal, 1e-9)
	assert.Zero(t, first.TotalSpent)

	// Fully dirty row: every field imputed, derived total from defaults.
	second := cleaned[1]
	assert.Equal(t, "Coffee", second.Item)
	assert.Equal(t, 4, second.Quantity)
	assert.InDelta(t, 2.5, second.PricePerUnit, 1e-9)
	assert.InDelta(t, 10.0, second.CorrectedTotal, 1e-9)
	assert.InDelta(t, 9.99, second.TotalSpent, 1e-9)
	assert.Equal(t, "Cash", second.PaymentMethod)
	assert.Equal(t, "NYC", second.Location)
	assert.Equal(t, "2023-05-01", second.TransactionDate)
}

func TestRowCleaner_OrderPreserved(t *testing.T) {
	ctx := context.Background()
	cleaner := NewRowCleaner(slog.Default())

	var rows []domain.RawTransaction
	items := []string{"Coffee", "Tea", "Juice", "Cake", "Coffee"}
	for _, item := range items {
		rows = append(rows, rawRow("1", "1.00", item, "Cash", "NYC", "2023-05-01"))
	}

	cleaned, err := cleaner.Clean(ctx, rows, ColumnDefaults{
		Item: "Coffee", PaymentMethod: "Cash", Location: "NYC", TransactionDate: "2023-05-01",
	})
	require.NoError(t, err)
	require.Len(t, cleaned, len(items))
	for i, item := range items {
		assert.Equal(t, item, cleaned[i].Item)
	}
}

func TestRowCleaner_ConversionErrorsAbort(t *testing.T) {
	ctx := context.Background()
	cleaner := NewRowCleaner(slog.Default())
	defaults := ColumnDefaults{
		Item: "Coffee", PaymentMethod: "Cash", Location: "NYC", TransactionDate: "2023-05-01",
	}

	tests := []struct {
		name  string
		row   domain.RawTransaction
		inMsg []string
	}{
		{
			name:  "bad quantity",
			row:   rawRow("two", "1.00", "Coffee", "Cash", "NYC", "2023-05-01"),
			inMsg: []string{domain.ColQuantity, "two"},
		},
		{
			name:  "bad unit price",
			row:   rawRow("1", "cheap", "Coffee", "Cash", "NYC", "2023-05-01"),
			inMsg: []string{domain.ColPricePerUnit, "cheap"},
		},
		{
			name:  "impossible date",
			row:   rawRow("1", "1.00", "Coffee", "Cash", "NYC", "2023-13-45"),
			inMsg: []string{domain.ColTransactionDate, "2023-13-45"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, err := cleaner.Clean(ctx, []domain.RawTransaction{tt.row}, defaults)
			require.Error(t, err)
			assert.Nil(t, cleaned)
			for _, fragment := range tt.inMsg {
				assert.Contains(t, err.Error(), fragment)
			}
		})
	}
}

func TestRowCleaner_CorrectedTotalRounded(t *testing.T) {
	ctx := context.Background()
	cleaner := NewRowCleaner(slog.Default())

	rows := []domain.RawTransaction{
		rawRow("3", "1.99", "Coffee", "Cash", "NYC", "2023-05-01"),
	}
	cleaned, err := cleaner.Clean(ctx, rows, ColumnDefaults{
		Item: "Coffee", PaymentMethod: "Cash", Location: "NYC", TransactionDate: "2023-05-01",
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.97, cleaned[0].CorrectedTotal, 1e-9)
}
