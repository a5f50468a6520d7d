package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Confidence bands
const (
	ConfidenceHigh   = 0.9
	ConfidenceMedium = 0.7
	ConfidenceLow    = 0.5
)

// ConfidenceLevel returns the label for a confidence value
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= ConfidenceHigh:
		return "high"
	case confidence >= ConfidenceMedium:
		return "medium"
	case confidence >= ConfidenceLow:
		return "low"
	default:
		return "unknown"
	}
}

// Money formats a monthly or total amount to cents
func Money(v float64) string {
	return currency(v, 2)
}

// Rate formats a per-hour or per-GB price to four places
func Rate(v float64) string {
	return currency(v, 4)
}

// Percent formats a percentage value to one place
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(1) + "%"
}

// Score formats a 0-10 criterion score
func Score(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Size formats a storage volume in GB or TB
func Size(gb float64) string {
	if gb >= 1024 && math.Mod(gb, 1024) == 0 {
		return fmt.Sprintf("%s TB", decimal.NewFromFloat(gb/1024).String())
	}
	return fmt.Sprintf("%s GB", decimal.NewFromFloat(gb).String())
}

func currency(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	d := decimal.NewFromFloat(v).Round(places)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(places)
	}
	return "$" + d.StringFixed(places)
}
