package compare

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"cloud-cost/core/types"
)

// Primary reason strings, in evaluation order
const (
	ReasonCost        = "Better cost-effectiveness"
	ReasonPerformance = "Superior performance"
	ReasonScalability = "Better scalability"
)

// MaxPrimaryReasons caps Recommendation.PrimaryReasons
const MaxPrimaryReasons = 3

// NeutralCostScore is given to both sides when neither has cost data
const NeutralCostScore = 5.0

// CostScores returns the zero-sum cost scores of two monthly costs.
// Each side receives the other side's share of the total, scaled to 10,
// so the cheaper side scores higher and the two scores sum to 10.
// Costs are scaled by the larger one first so the sum cannot overflow.
func CostScores(costA, costB float64) (float64, float64) {
	hi := math.Max(costA, costB)
	if hi == 0 {
		return NeutralCostScore, NeutralCostScore
	}
	a, b := costA/hi, costB/hi
	total := a + b
	return b / total * 10, a / total * 10
}

// CompareCompute scores two compute quotes for a workload and picks a winner.
// a is priced for the policy's provider A and b for provider B. Missing
// monthly prices count as zero. Exact score ties go to provider B.
func (e *Engine) CompareCompute(a, b types.PriceQuote, w types.WorkloadRequirements) (*types.ComputeComparison, error) {
	pa, pb := e.policy.Providers()
	if err := e.validateQuote("a", pa, a); err != nil {
		return nil, err
	}
	if err := e.validateQuote("b", pb, b); err != nil {
		return nil, err
	}

	workload := w.TypeOrDefault()
	costA, costB := a.MonthlyCost(), b.MonthlyCost()
	costScoreA, costScoreB := CostScores(costA, costB)
	perf := e.policy.PerformanceFor(workload)

	scoresA := e.criterionScores(pa, costScoreA, perf.A)
	scoresB := e.criterionScores(pb, costScoreB, perf.B)

	winner, winning, losing := pb, scoresB, scoresA
	if scoresA.Final > scoresB.Final {
		winner, winning, losing = pa, scoresA, scoresB
	}

	diff, saver, pct := savings(costA, costB, pa, pb)

	result := &types.ComputeComparison{
		ComparisonType: types.ComparisonCompute,
		WorkloadType:   workload,
		A: types.ComputeSide{
			Provider:    pa,
			Resource:    a.Resource,
			Region:      a.Region,
			MonthlyCost: costA,
			Scores:      scoresA,
		},
		B: types.ComputeSide{
			Provider:    pb,
			Resource:    b.Resource,
			Region:      b.Region,
			MonthlyCost: costB,
			Scores:      scoresB,
		},
		CostDifference:        diff,
		CostSavingsProvider:   saver,
		CostSavingsPercentage: pct,
		Recommendation: types.Recommendation{
			Winner:         winner,
			Confidence:     clamp01(math.Abs(scoresA.Final-scoresB.Final) / 10),
			PrimaryReasons: primaryReasons(winning, losing),
			Reasoning: fmt.Sprintf("%s scores %.2f against %.2f",
				winner.DisplayName(), winning.Final, losing.Final),
		},
	}

	e.logger.Debug("compared compute",
		zap.String("workload", string(workload)),
		zap.Float64("final_a", scoresA.Final),
		zap.Float64("final_b", scoresB.Final),
		zap.String("winner", string(winner)),
	)
	return result, nil
}

func (e *Engine) criterionScores(p types.Provider, cost, performance float64) types.CriterionScores {
	ch := e.policy.CharacteristicsOf(p)
	s := types.CriterionScores{
		Cost:        cost,
		Performance: performance,
		Scalability: ch.Scalability,
		Reliability: ch.Reliability,
		Maintenance: ch.Maintenance,
	}
	s.Final = e.policy.Weights.Apply(s)
	return s
}

// primaryReasons lists the criteria where the winner strictly beats the
// loser. Only cost, performance and scalability contribute.
func primaryReasons(winner, loser types.CriterionScores) []string {
	candidates := []struct {
		reason string
		won    bool
	}{
		{ReasonCost, winner.Cost > loser.Cost},
		{ReasonPerformance, winner.Performance > loser.Performance},
		{ReasonScalability, winner.Scalability > loser.Scalability},
	}

	reasons := make([]string, 0, MaxPrimaryReasons)
	for _, c := range candidates {
		if c.won && len(reasons) < MaxPrimaryReasons {
			reasons = append(reasons, c.reason)
		}
	}
	return reasons
}

// savings returns the absolute difference, the cheaper side (B on a tie)
// and the difference as a percentage of the larger cost.
func savings(costA, costB float64, pa, pb types.Provider) (float64, types.Provider, float64) {
	diff := math.Abs(costA - costB)
	saver := pb
	if costA < costB {
		saver = pa
	}
	hi := math.Max(costA, costB)
	if hi == 0 {
		return diff, saver, 0
	}
	return diff, saver, diff / hi * 100
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
