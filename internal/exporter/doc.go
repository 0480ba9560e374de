// Package exporter writes cleaned transaction sets back to disk as CSV.
// Output carries the source columns plus the derived Corrected Total, a UTF-8
// BOM for spreadsheet compatibility, and two-decimal money formatting so a
// written file re-reads to the same values.
package exporter
