package dataprocessing

import (
	"salescli/pkg/contracts/domain"
)

// NumericColumn selects a numeric column from a cleaned transaction.
type NumericColumn func(domain.Transaction) float64

// CategoricalColumn selects a categorical column from a cleaned transaction.
type CategoricalColumn func(domain.Transaction) string

// Column selectors for the cleaned dataset.
var (
	QuantityColumn       NumericColumn = func(t domain.Transaction) float64 { return float64(t.Quantity) }
	PricePerUnitColumn   NumericColumn = func(t domain.Transaction) float64 { return t.PricePerUnit }
	TotalSpentColumn     NumericColumn = func(t domain.Transaction) float64 { return t.TotalSpent }
	CorrectedTotalColumn NumericColumn = func(t domain.Transaction) float64 { return t.CorrectedTotal }

	ItemColumn            CategoricalColumn = func(t domain.Transaction) string { return t.Item }
	PaymentMethodColumn   CategoricalColumn = func(t domain.Transaction) string { return t.PaymentMethod }
	LocationColumn        CategoricalColumn = func(t domain.Transaction) string { return t.Location }
	TransactionDateColumn CategoricalColumn = func(t domain.Transaction) string { return t.TransactionDate }
)

// SumByItem sums a numeric column across all transactions whose Item equals
// item, starting from 0.0. No matching rows is not an error; the sum is 0.0.
func SumByItem(transactions []domain.Transaction, item string, column NumericColumn) float64 {
	total := 0.0
	for _, tx := range transactions {
		if tx.Item == item {
			total += column(tx)
		}
	}
	return total
}

// collectNumeric extracts a numeric column across all transactions.
func collectNumeric(transactions []domain.Transaction, column NumericColumn) []float64 {
	values := make([]float64, 0, len(transactions))
	for _, tx := range transactions {
		values = append(values, column(tx))
	}
	return values
}

// collectCategorical extracts a categorical column across all transactions.
func collectCategorical(transactions []domain.Transaction, column CategoricalColumn) []string {
	values := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		values = append(values, column(tx))
	}
	return values
}
