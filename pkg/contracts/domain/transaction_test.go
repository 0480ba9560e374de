package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanedColumns(t *testing.T) {
	assert.Len(t, CleanedColumns, len(SourceColumns)+1)
	assert.Equal(t, ColCorrectedTotal, CleanedColumns[len(CleanedColumns)-1])
}

func TestRawTransaction_Field(t *testing.T) {
	r := RawTransaction{
		Item:            "Coffee",
		Quantity:        "2",
		PricePerUnit:    "3.50",
		TotalSpent:      "ERROR",
		PaymentMethod:   "Cash",
		Location:        "NYC",
		TransactionDate: "2023-05-01",
	}

	for column, want := range map[string]string{
		ColItem:            "Coffee",
		ColQuantity:        "2",
		ColPricePerUnit:    "3.50",
		ColTotalSpent:      "ERROR",
		ColPaymentMethod:   "Cash",
		ColLocation:        "NYC",
		ColTransactionDate: "2023-05-01",
	} {
		assert.Equal(t, want, r.Field(column), "column %s", column)
	}
	assert.Empty(t, r.Field("Nonexistent"))
}

func TestTransaction_CSVRecord(t *testing.T) {
	tx := Transaction{
		Item:            "Coffee",
		Quantity:        2,
		PricePerUnit:    3.5,
		TotalSpent:      0,
		PaymentMethod:   "Cash",
		Location:        "NYC",
		TransactionDate: "2023-05-01",
		CorrectedTotal:  7,
	}

	assert.Equal(t, []string{
		"Coffee", "2", "3.50", "0.00", "Cash", "NYC", "2023-05-01", "7.00",
	}, tx.CSVRecord())
}
