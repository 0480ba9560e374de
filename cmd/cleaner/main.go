package main

import (
	"context"
	"log/slog"
	"os"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/exporter"
	"salescli/internal/infrastructure"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return 1
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.NewRunContext(context.Background())

	logger.InfoContext(ctx, "starting sales cleaning pipeline",
		slog.String("input_file", cfg.Paths.InputFile),
		slog.String("output_file", cfg.Paths.OutputFile))

	loader := dataprocessing.NewLoader(logger)
	rawRows, err := loader.Load(ctx, cfg.Paths.InputFile)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load input", slog.String("error", err.Error()))
		return 1
	}
	if len(rawRows) == 0 {
		logger.WarnContext(ctx, "input contains no transactions, nothing to do")
		return 0
	}

	// Defaults come from the raw data only, before any cleaning.
	estimator := dataprocessing.NewDefaultEstimator(logger)
	defaults := estimator.Estimate(ctx, rawRows)

	cleaner := dataprocessing.NewRowCleaner(logger)
	cleaned, err := cleaner.Clean(ctx, rawRows, defaults)
	if err != nil {
		logger.ErrorContext(ctx, "cleaning aborted", slog.String("error", err.Error()))
		return 1
	}

	reporter := dataprocessing.NewReporter(os.Stdout, logger)
	reporter.ItemTotal(cleaned, "Coffee", dataprocessing.CorrectedTotalColumn)

	reporter.NumericAnalysis(cleaned, dataprocessing.QuantityColumn, "Quantity Sold")
	reporter.NumericAnalysis(cleaned, dataprocessing.PricePerUnitColumn, "Unit Price")
	reporter.NumericAnalysis(cleaned, dataprocessing.TotalSpentColumn, "Original Total Spent (from CSV)")
	reporter.NumericAnalysis(cleaned, dataprocessing.CorrectedTotalColumn, "Corrected Total (Calculated)")

	reporter.CategoricalAnalysis(cleaned, dataprocessing.ItemColumn, "Top Selling Items")
	reporter.CategoricalAnalysis(cleaned, dataprocessing.LocationColumn, "Top Locations")
	reporter.CategoricalAnalysis(cleaned, dataprocessing.PaymentMethodColumn, "Preferred Payment Methods")
	reporter.CategoricalAnalysis(cleaned, dataprocessing.TransactionDateColumn, "Busiest Day")

	writer := exporter.NewCSVWriter(logger)
	if err := writer.WriteTransactions(ctx, cfg.Paths.OutputFile, cleaned); err != nil {
		if exporter.IsPermission(err) {
			// The classic case: the output is open in a spreadsheet program.
			logger.ErrorContext(ctx, "could not save output file; is it open in another program?",
				slog.String("path", cfg.Paths.OutputFile),
				slog.String("error", err.Error()))
			return 0
		}
		logger.ErrorContext(ctx, "unexpected error writing output",
			slog.String("path", cfg.Paths.OutputFile),
			slog.String("error", err.Error()))
		return 1
	}

	logger.InfoContext(ctx, "pipeline finished",
		slog.String("output_file", cfg.Paths.OutputFile),
		slog.Int("row_count", len(cleaned)))

	return 0
}
