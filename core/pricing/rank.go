package pricing

import (
	"context"
	"sort"

	"cloud-cost/core/types"
)

// RankedQuote is a quote with its savings against the most expensive one
type RankedQuote struct {
	types.PriceQuote `yaml:",inline"`
	SavingsVsMax float64 `json:"savings_vs_max" yaml:"savings_vs_max"`
}

// RankByPrice orders quotes by ascending hourly price. Quotes with only a
// monthly price are ranked by monthly / 720. Equal prices keep input order.
func RankByPrice(quotes []types.PriceQuote) []RankedQuote {
	ranked := make([]RankedQuote, len(quotes))
	hi := 0.0
	for i, q := range quotes {
		ranked[i] = RankedQuote{PriceQuote: q}
		if h := hourlyOf(q); h > hi {
			hi = h
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return hourlyOf(ranked[i].PriceQuote) < hourlyOf(ranked[j].PriceQuote)
	})

	if hi > 0 {
		for i := range ranked {
			ranked[i].SavingsVsMax = (hi - hourlyOf(ranked[i].PriceQuote)) / hi * 100
		}
	}
	return ranked
}

// RankCompute prices each resource in region with src and ranks the result
func RankCompute(ctx context.Context, src QuoteSource, region string, resources []string) ([]RankedQuote, error) {
	quotes := make([]types.PriceQuote, 0, len(resources))
	for _, res := range resources {
		q, err := src.ComputeQuote(ctx, res, region)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return RankByPrice(quotes), nil
}

// Normalize fills a missing monthly price from the hourly price
func Normalize(q types.PriceQuote) types.PriceQuote {
	if q.PricePerMonth == nil && q.PricePerHour != nil {
		q.PricePerMonth = types.Price(*q.PricePerHour * HoursPerMonth)
	}
	return q
}

func hourlyOf(q types.PriceQuote) float64 {
	if q.PricePerHour != nil {
		return *q.PricePerHour
	}
	return q.MonthlyCost() / HoursPerMonth
}
