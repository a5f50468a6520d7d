package compare

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cloud-cost/core/types"
)

// FullConfidenceSavings is the savings percentage at which storage
// confidence reaches 1
const FullConfidenceSavings = 20.0

// ProjectionSizesGB are the volumes reported in storage projections
var ProjectionSizesGB = []float64{100, 1024, 10240}

// CompareStorage compares two storage quotes on per GB-month cost.
// There is no weighted score: the cheaper side wins (B on a tie) and
// confidence grows linearly with the savings percentage.
func (e *Engine) CompareStorage(a, b types.PriceQuote) (*types.StorageComparison, error) {
	pa, pb := e.policy.Providers()
	if err := e.validateQuote("a", pa, a); err != nil {
		return nil, err
	}
	if err := e.validateQuote("b", pb, b); err != nil {
		return nil, err
	}

	costA, costB := a.GBMonthCost(), b.GBMonthCost()
	diff, saver, pct := savings(costA, costB, pa, pb)

	reasoning := fmt.Sprintf("%s offers %.1f%% savings", saver.DisplayName(), pct)
	if diff == 0 {
		reasoning = "Both options cost the same per GB-month"
	}

	projections := make([]types.StorageProjection, 0, len(ProjectionSizesGB))
	for _, gb := range ProjectionSizesGB {
		p := types.StorageProjection{
			SizeGB: gb,
			CostA:  costA * gb,
			CostB:  costB * gb,
		}
		if err := checkAmount("a.price_per_gb_month", p.CostA); err != nil {
			return nil, err
		}
		if err := checkAmount("b.price_per_gb_month", p.CostB); err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}

	result := &types.StorageComparison{
		ComparisonType: types.ComparisonStorage,
		A: types.StorageSide{
			Provider:       pa,
			StorageType:    a.Resource,
			Region:         a.Region,
			CostPerGBMonth: costA,
		},
		B: types.StorageSide{
			Provider:       pb,
			StorageType:    b.Resource,
			Region:         b.Region,
			CostPerGBMonth: costB,
		},
		CostDifference:        diff,
		CostSavingsProvider:   saver,
		CostSavingsPercentage: pct,
		Analysis:              e.analyzeStorage(a.Resource, b.Resource),
		Projections:           projections,
		Recommendation: types.Recommendation{
			Winner:     saver,
			Confidence: math.Min(pct/FullConfidenceSavings, 1),
			Reasoning:  reasoning,
		},
	}

	e.logger.Debug("compared storage",
		zap.String("type_a", a.Resource),
		zap.String("type_b", b.Resource),
		zap.Float64("savings_pct", pct),
	)
	return result, nil
}

func (e *Engine) analyzeStorage(typeA, typeB string) types.StorageAnalysis {
	descA := e.policy.StorageClass(typeA)
	descB := e.policy.StorageClass(typeB)

	analysis := types.StorageAnalysis{
		A:            descA,
		B:            descB,
		Durability:   types.VerdictUnknown,
		Availability: types.VerdictUnknown,
	}

	if descA.Durability != "" && descB.Durability != "" {
		analysis.Durability = types.VerdictDifferent
		if descA.Durability == descB.Durability {
			analysis.Durability = types.VerdictEquivalent
		}
	}

	availA, okA := ParsePercent(descA.Availability)
	availB, okB := ParsePercent(descB.Availability)
	if okA && okB {
		switch {
		case availA == availB:
			analysis.Availability = types.VerdictEquivalent
		case availA > availB:
			analysis.Availability = types.VerdictSuperior
			analysis.AvailabilityLeader = e.policy.ProviderA
		default:
			analysis.Availability = types.VerdictSuperior
			analysis.AvailabilityLeader = e.policy.ProviderB
		}
	}
	return analysis
}

// ParsePercent parses strings such as "99.95%" into 99.95.
// Empty strings and values such as "N/A" report false.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
