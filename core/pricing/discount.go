package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	cerrors "cloud-cost/internal/errors"
)

// Sustained-use discount parameters
const (
	// DiscountThreshold is the monthly usage share below which no discount applies
	DiscountThreshold = 0.25
	// MaxDiscountRate caps the discount rate
	MaxDiscountRate = 0.30
)

// Discount is the result of the sustained-use heuristic
type Discount struct {
	HourlyRate     float64 `json:"hourly_rate" yaml:"hourly_rate"`
	HoursPerMonth  float64 `json:"hours_per_month" yaml:"hours_per_month"`
	UsageShare     float64 `json:"usage_share" yaml:"usage_share"`
	Rate           float64 `json:"discount_rate" yaml:"discount_rate"`
	OriginalCost   float64 `json:"original_cost" yaml:"original_cost"`
	DiscountedCost float64 `json:"discounted_cost" yaml:"discounted_cost"`
	MonthlySavings float64 `json:"monthly_savings" yaml:"monthly_savings"`
	AnnualSavings  float64 `json:"annual_savings" yaml:"annual_savings"`
	Eligible       bool    `json:"eligible" yaml:"eligible"`
}

// SustainedUseDiscount estimates the automatic discount for running an
// instance hoursPerMonth hours. Usage is capped at a full 720 hour month;
// from a quarter month up the rate grows linearly to 30%.
func SustainedUseDiscount(hourly, hoursPerMonth float64) (*Discount, error) {
	if math.IsNaN(hourly) || math.IsInf(hourly, 0) || hourly < 0 {
		return nil, cerrors.Validation("hourly_rate", "must be a finite number >= 0, got %v", hourly)
	}
	if math.IsNaN(hoursPerMonth) || math.IsInf(hoursPerMonth, 0) || hoursPerMonth < 0 {
		return nil, cerrors.Validation("hours_per_month", "must be a finite number >= 0, got %v", hoursPerMonth)
	}

	usage := math.Min(hoursPerMonth/HoursPerMonth, 1)
	rate := 0.0
	if usage >= DiscountThreshold {
		rate = math.Min(MaxDiscountRate, usage*MaxDiscountRate)
	}

	original := decimal.NewFromFloat(hourly).Mul(decimal.NewFromFloat(hoursPerMonth))
	discounted := original.Mul(decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate)))
	saved := original.Sub(discounted)

	return &Discount{
		HourlyRate:     hourly,
		HoursPerMonth:  hoursPerMonth,
		UsageShare:     usage,
		Rate:           rate,
		OriginalCost:   original.InexactFloat64(),
		DiscountedCost: discounted.InexactFloat64(),
		MonthlySavings: saved.InexactFloat64(),
		AnnualSavings:  saved.Mul(decimal.NewFromInt(12)).InexactFloat64(),
		Eligible:       rate > 0,
	}, nil
}
