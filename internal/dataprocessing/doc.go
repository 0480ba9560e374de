// Package dataprocessing implements the retail sales cleaning pipeline.
// It consolidates loading, default estimation, cleaning, and analysis into a
// cohesive package covering the data lifecycle from file ingestion to the
// printed statistical reports.
//
// # Architecture
//
// The package is organized around four components:
//
//  1. Loader: reads raw transactions from CSV or Excel files
//  2. DefaultEstimator: derives per-column imputation defaults from raw data
//  3. RowCleaner: parses and imputes every row, recomputing the derived total
//  4. Reporter/analytics: aggregates and descriptive statistics over cleaned rows
//
// # Data Flow
//
// The typical flow through this package:
//
//	CSV/Excel file → Loader → RawTransactions → DefaultEstimator → ColumnDefaults
//	RawTransactions + ColumnDefaults → RowCleaner → Transactions → Reporter
//
// # Dirty data
//
// The source marks missing fields with the sentinel strings "ERROR",
// "UNKNOWN", or the empty string. IsSentinel is the single classification
// predicate; parsers substitute the supplied default for sentinels and fail
// on any other unconvertible text. The estimator is deliberately more
// tolerant than the cleaner: while collecting candidate values it silently
// skips numeric text that does not parse, whereas the cleaner treats the same
// text as a fatal conversion error.
package dataprocessing
