package dataprocessing

import (
	"math"
	"strconv"
	"time"

	apperrors "salescli/internal/errors"
)

// decimalPlaces is the rounding applied to every money value.
const decimalPlaces = 2

// dateLayout is the only accepted transaction date format.
const dateLayout = "2006-01-02"

// IsSentinel reports whether raw text marks a missing or dirty field rather
// than a business value.
func IsSentinel(value string) bool {
	switch value {
	case "ERROR", "UNKNOWN", "":
		return true
	}
	return false
}

// Round2 rounds a value to two decimal places.
func Round2(value float64) float64 {
	shift := math.Pow10(decimalPlaces)
	return math.Round(value*shift) / shift
}

// ParseInt converts raw text to an integer, substituting def for sentinels.
func ParseInt(value string, def int) (int, error) {
	if IsSentinel(value) {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewConversionError(value, "int", err)
	}
	return n, nil
}

// ParseFloat converts raw text to a float rounded to two places,
// substituting def (also rounded) for sentinels.
func ParseFloat(value string, def float64) (float64, error) {
	if IsSentinel(value) {
		return Round2(def), nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apperrors.NewConversionError(value, "float", err)
	}
	return Round2(f), nil
}

// ParseDate validates raw text against YYYY-MM-DD, substituting def for
// sentinels. Valid text is returned unchanged.
func ParseDate(value string, def string) (string, error) {
	if IsSentinel(value) {
		return def, nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", apperrors.NewConversionError(value, "date", err)
	}
	return value, nil
}

// ParseString substitutes def for sentinels and otherwise returns the text
// unchanged. String parsing cannot fail.
func ParseString(value string, def string) string {
	if IsSentinel(value) {
		return def
	}
	return value
}
