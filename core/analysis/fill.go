package analysis

import (
	"context"

	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// FillCompute prices compute quotes that name a resource but carry no
// price. Priced quotes are normalized and passed through unchanged.
func (a *Analyzer) FillCompute(ctx context.Context, qa, qb types.PriceQuote) (types.PriceQuote, types.PriceQuote, error) {
	return a.fill(ctx, pricing.KindCompute, qa, qb)
}

// FillStorage is FillCompute for storage classes
func (a *Analyzer) FillStorage(ctx context.Context, qa, qb types.PriceQuote) (types.PriceQuote, types.PriceQuote, error) {
	return a.fill(ctx, pricing.KindStorage, qa, qb)
}

func (a *Analyzer) fill(ctx context.Context, kind string, qa, qb types.PriceQuote) (types.PriceQuote, types.PriceQuote, error) {
	pa, pb := a.engine.Policy().Providers()
	if qa.Provider == "" {
		qa.Provider = pa
	}
	if qb.Provider == "" {
		qb.Provider = pb
	}

	needA, needB := !qa.HasPrice(), !qb.HasPrice()
	if needA && qa.Resource == "" {
		return qa, qb, cerrors.Validation("a.resource", "required when no price is given")
	}
	if needB && qb.Resource == "" {
		return qa, qb, cerrors.Validation("b.resource", "required when no price is given")
	}

	reqA := pricing.Request{Resource: qa.Resource, Region: orDefault(qa.Region, a.regionA)}
	reqB := pricing.Request{Resource: qb.Resource, Region: orDefault(qb.Region, a.regionB)}

	var err error
	switch {
	case needA && needB:
		if kind == pricing.KindCompute {
			qa, qb, err = a.resolver.Compute(ctx, reqA, reqB)
		} else {
			qa, qb, err = a.resolver.Storage(ctx, reqA, reqB)
		}
	case needA:
		qa, err = a.resolver.Single(ctx, kind, qa.Provider, reqA)
	case needB:
		qb, err = a.resolver.Single(ctx, kind, qb.Provider, reqB)
	}
	if err != nil {
		return qa, qb, err
	}
	return pricing.Normalize(qa), pricing.Normalize(qb), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
