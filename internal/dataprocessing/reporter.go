package dataprocessing

import (
	"fmt"
	"io"
	"log/slog"

	"salescli/pkg/contracts/domain"
)

// Reporter prints formatted analysis blocks for the cleaned dataset. Output
// goes to an io.Writer so the binary writes to stdout while tests capture a
// buffer. Statistics gaps (empty columns, ambiguous modes) are reported as
// messages, never raised.
type Reporter struct {
	w      io.Writer
	logger *slog.Logger
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		w:      w,
		logger: logger.With(slog.String("component", "reporter")),
	}
}

// NumericAnalysis prints mean, median, and population variance for a numeric
// column, two decimal places each.
func (r *Reporter) NumericAnalysis(transactions []domain.Transaction, column NumericColumn, label string) {
	values := collectNumeric(transactions, column)

	fmt.Fprintf(r.w, "\n--- Analysis: %s ---\n", label)
	if len(values) == 0 {
		fmt.Fprintln(r.w, "No valid numeric data found.")
		return
	}

	mean, _ := Mean(values)
	median, _ := Median(values)
	variance, _ := Variance(values)

	fmt.Fprintf(r.w, "Mean:     %.2f\n", mean)
	fmt.Fprintf(r.w, "Median:   %.2f\n", median)
	fmt.Fprintf(r.w, "Variance: %.2f\n", variance)
}

// CategoricalAnalysis prints the mode of a categorical column. A frequency
// tie is reported as "Multiple found" rather than picking a winner.
func (r *Reporter) CategoricalAnalysis(transactions []domain.Transaction, column CategoricalColumn, label string) {
	values := collectCategorical(transactions, column)

	fmt.Fprintf(r.w, "\n--- Trend: %s ---\n", label)
	if len(values) == 0 {
		fmt.Fprintln(r.w, "Most Common (Mode): No data found")
		return
	}

	mode, tied, _ := Mode(values)
	if tied {
		fmt.Fprintln(r.w, "Most Common (Mode): Multiple found")
		return
	}
	fmt.Fprintf(r.w, "Most Common (Mode): %s\n", mode)
}

// ItemTotal prints the aggregate of a numeric column over one item.
func (r *Reporter) ItemTotal(transactions []domain.Transaction, item string, column NumericColumn) {
	total := SumByItem(transactions, item, column)

	fmt.Fprintf(r.w, "\n--- Total Spent on %s ---\n", item)
	fmt.Fprintf(r.w, "total:    %.2f\n", total)
}
