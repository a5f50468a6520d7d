package compare

import (
	"math"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// validateQuote rejects negative or non-finite prices and a quote that
// names the wrong provider for its side. An empty provider is accepted.
func (e *Engine) validateQuote(side string, want types.Provider, q types.PriceQuote) error {
	if q.Provider != "" && q.Provider != want {
		return cerrors.Validation(side+".provider", "expected %s, got %q", want, q.Provider)
	}
	prices := []struct {
		name string
		v    *float64
	}{
		{"price_per_hour", q.PricePerHour},
		{"price_per_month", q.PricePerMonth},
		{"price_per_gb_month", q.PricePerGBMonth},
	}
	for _, p := range prices {
		if p.v == nil {
			continue
		}
		if err := checkAmount(side+"."+p.name, *p.v); err != nil {
			return err
		}
	}
	return nil
}

// validateCosts checks the A and B entries of a cost map. Other keys are
// ignored; missing keys are zero.
func (e *Engine) validateCosts(field string, costs types.CostsByProvider) error {
	for _, pr := range []types.Provider{e.policy.ProviderA, e.policy.ProviderB} {
		if err := checkAmount(field+"."+string(pr), costs[pr]); err != nil {
			return err
		}
	}
	return nil
}

func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cerrors.Validation(field, "must be a finite number")
	}
	if v < 0 {
		return cerrors.Validation(field, "must be >= 0, got %v", v)
	}
	return nil
}

func checkProvider(field string, p types.Provider, known func(types.Provider) bool) error {
	if !known(p) {
		return cerrors.Validation(field, "unknown provider %q", p)
	}
	return nil
}
