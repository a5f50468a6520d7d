// Package types - Pricing types
package types

// PriceQuote is a normalized price observation for one resource in one region.
// Absent price fields are nil; consumers treat them as zero.
type PriceQuote struct {
	// Provider is the cloud provider that produced the quote
	Provider Provider `json:"provider" yaml:"provider"`

	// Resource is the instance, machine or storage type
	Resource string `json:"resource" yaml:"resource"`

	// Region is the pricing region
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	PricePerHour    *float64 `json:"price_per_hour,omitempty" yaml:"price_per_hour,omitempty"`
	PricePerMonth   *float64 `json:"price_per_month,omitempty" yaml:"price_per_month,omitempty"`
	PricePerGBMonth *float64 `json:"price_per_gb_month,omitempty" yaml:"price_per_gb_month,omitempty"`

	// Currency is the price currency
	Currency Currency `json:"currency,omitempty" yaml:"currency,omitempty"`

	// PricingModel is e.g. "On-Demand"
	PricingModel string `json:"pricing_model,omitempty" yaml:"pricing_model,omitempty"`

	// Note carries source caveats such as "static fallback table"
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// HourlyCost returns the hourly price, or 0 if absent
func (q PriceQuote) HourlyCost() float64 {
	return deref(q.PricePerHour)
}

// MonthlyCost returns the monthly price, or 0 if absent
func (q PriceQuote) MonthlyCost() float64 {
	return deref(q.PricePerMonth)
}

// GBMonthCost returns the per GB-month price, or 0 if absent
func (q PriceQuote) GBMonthCost() float64 {
	return deref(q.PricePerGBMonth)
}

// HasPrice reports whether at least one price field is set
func (q PriceQuote) HasPrice() bool {
	return q.PricePerHour != nil || q.PricePerMonth != nil || q.PricePerGBMonth != nil
}

// Price returns a pointer to v, for building quotes literally
func Price(v float64) *float64 {
	return &v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
