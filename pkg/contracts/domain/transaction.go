package domain

import (
	"fmt"
	"strconv"
)

// Column names as they appear in the CSV header. Lookup is always by name;
// the physical column order in the source file is not significant.
const (
	ColItem            = "Item"
	ColQuantity        = "Quantity"
	ColPricePerUnit    = "Price Per Unit"
	ColTotalSpent      = "Total Spent"
	ColPaymentMethod   = "Payment Method"
	ColLocation        = "Location"
	ColTransactionDate = "Transaction Date"
	ColCorrectedTotal  = "Corrected Total"
)

// SourceColumns lists the columns every input file must provide.
var SourceColumns = []string{
	ColItem,
	ColQuantity,
	ColPricePerUnit,
	ColTotalSpent,
	ColPaymentMethod,
	ColLocation,
	ColTransactionDate,
}

// CleanedColumns is the output header: the source columns plus the derived
// Corrected Total appended last.
var CleanedColumns = append(append([]string{}, SourceColumns...), ColCorrectedTotal)

// RawTransaction is a single source record with every field kept as the
// original text, dirty sentinels included. Raw records are read once and
// never mutated.
type RawTransaction struct {
	Item            string
	Quantity        string
	PricePerUnit    string
	TotalSpent      string
	PaymentMethod   string
	Location        string
	TransactionDate string
}

// Field returns the raw text for a column name.
func (r RawTransaction) Field(column string) string {
	switch column {
	case ColItem:
		return r.Item
	case ColQuantity:
		return r.Quantity
	case ColPricePerUnit:
		return r.PricePerUnit
	case ColTotalSpent:
		return r.TotalSpent
	case ColPaymentMethod:
		return r.PaymentMethod
	case ColLocation:
		return r.Location
	case ColTransactionDate:
		return r.TransactionDate
	}
	return ""
}

// Transaction is a cleaned record: every field parsed or imputed, money
// values rounded to two places, plus the recomputed CorrectedTotal.
// TotalSpent keeps the original (possibly defaulted) value for reporting and
// plays no part in CorrectedTotal.
type Transaction struct {
	Item            string  `json:"item" csv:"Item" validate:"required"`
	Quantity        int     `json:"quantity" csv:"Quantity"`
	PricePerUnit    float64 `json:"price_per_unit" csv:"Price Per Unit"`
	TotalSpent      float64 `json:"total_spent" csv:"Total Spent"`
	PaymentMethod   string  `json:"payment_method" csv:"Payment Method" validate:"required"`
	Location        string  `json:"location" csv:"Location" validate:"required"`
	TransactionDate string  `json:"transaction_date" csv:"Transaction Date" validate:"required,datetime=2006-01-02"`
	CorrectedTotal  float64 `json:"corrected_total" csv:"Corrected Total"`
}

// CSVRecord renders the transaction in CleanedColumns order, formatting money
// with two decimal places so written files re-read to the same values.
func (t Transaction) CSVRecord() []string {
	return []string{
		t.Item,
		strconv.Itoa(t.Quantity),
		fmt.Sprintf("%.2f", t.PricePerUnit),
		fmt.Sprintf("%.2f", t.TotalSpent),
		t.PaymentMethod,
		t.Location,
		t.TransactionDate,
		fmt.Sprintf("%.2f", t.CorrectedTotal),
	}
}
