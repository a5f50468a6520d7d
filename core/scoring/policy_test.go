package scoring

import (
	"math"
	"testing"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
	if math.Abs(p.Weights.Sum()-1) > WeightTolerance {
		t.Errorf("weights sum = %v, want 1", p.Weights.Sum())
	}
}

func TestWeightsApply(t *testing.T) {
	w := Default().Weights
	s := types.CriterionScores{Cost: 10, Performance: 10, Scalability: 10, Reliability: 10, Maintenance: 10}
	if got := w.Apply(s); math.Abs(got-10) > 1e-9 {
		t.Errorf("Apply(all 10) = %v, want 10", got)
	}
	for _, c := range Criteria {
		if w.Of(c) <= 0 {
			t.Errorf("weight for %s should be positive", c)
		}
	}
}

func TestPerformanceFor(t *testing.T) {
	p := Default()
	tests := []struct {
		workload types.WorkloadType
		want     PerformancePair
	}{
		{types.WorkloadComputeIntensive, PerformancePair{A: 8.5, B: 9.0}},
		{types.WorkloadDataIntensive, PerformancePair{A: 9.2, B: 8.8}},
		{types.WorkloadGeneral, PerformancePair{A: 8.8, B: 8.9}},
		{types.WorkloadMachineLearning, PerformancePair{A: 8.8, B: 8.9}},
		{"quantum", PerformancePair{A: 8.8, B: 8.9}},
	}
	for _, tt := range tests {
		t.Run(string(tt.workload), func(t *testing.T) {
			if got := p.PerformanceFor(tt.workload); got != tt.want {
				t.Errorf("PerformanceFor(%s) = %+v, want %+v", tt.workload, got, tt.want)
			}
		})
	}
}

func TestComplexityFor(t *testing.T) {
	p := Default()
	tests := []struct {
		score float64
		want  types.ComplexityLevel
	}{
		{0, types.ComplexityLow},
		{1.9, types.ComplexityLow},
		{2, types.ComplexityMedium},
		{2.5, types.ComplexityMedium},
		{4.99, types.ComplexityMedium},
		{5, types.ComplexityHigh},
		{40, types.ComplexityHigh},
	}
	for _, tt := range tests {
		if got := p.ComplexityFor(tt.score).Level; got != tt.want {
			t.Errorf("ComplexityFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestLookupsFallBack(t *testing.T) {
	p := Default()

	if !p.StorageClass("tape_robot").IsZero() {
		t.Error("unknown storage class should yield empty descriptor")
	}
	if p.StorageClass("nearline").UseCase != "Monthly backup" {
		t.Error("nearline descriptor mismatch")
	}
	if got := p.BudgetMultiplier("lavish"); got != 1.0 {
		t.Errorf("unknown budget multiplier = %v, want 1.0", got)
	}
	if got := p.BudgetMultiplier(types.BudgetTight); got != 0.7 {
		t.Errorf("tight multiplier = %v, want 0.7", got)
	}
	if p.Other(types.ProviderAWS) != types.ProviderGCP || p.Other(types.ProviderGCP) != types.ProviderAWS {
		t.Error("Other should swap sides")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Policy)
	}{
		{"weights do not sum to one", func(p *Policy) { p.Weights.Cost = 0.5 }},
		{"negative weight", func(p *Policy) { p.Weights.Cost = -0.1; p.Weights.Performance = 0.7 }},
		{"same provider twice", func(p *Policy) { p.ProviderB = types.ProviderAWS }},
		{"unknown provider", func(p *Policy) { p.ProviderA = "azure" }},
		{"score above ten", func(p *Policy) {
			ch := p.Characteristics[types.ProviderGCP]
			ch.Reliability = 11
			p.Characteristics[types.ProviderGCP] = ch
		}},
		{"missing general workload", func(p *Policy) { delete(p.Performance, types.WorkloadGeneral) }},
		{"unbounded bucket not last", func(p *Policy) { p.Complexity[0].Below = 0 }},
		{"decreasing bounds", func(p *Policy) { p.Complexity[1].Below = 1 }},
		{"zero words per point", func(p *Policy) { p.WordsPerComplexityPoint = 0 }},
		{"negative overhead", func(p *Policy) { p.OperationalOverhead[types.ProviderAWS] = -0.1 }},
		{"negative budget multiplier", func(p *Policy) { p.BudgetMultipliers[types.BudgetTight] = -1 }},
		{"NaN budget multiplier", func(p *Policy) { p.BudgetMultipliers[types.BudgetFlexible] = math.NaN() }},
		{"negative base cost", func(p *Policy) { p.Complexity[1].BaseCost = -15000 }},
		{"infinite base cost", func(p *Policy) { p.Complexity[2].BaseCost = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !cerrors.IsType(err, cerrors.TypeConfig) {
				t.Errorf("expected CONFIG_ERROR, got %v", err)
			}
		})
	}
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.StorageClasses["custom"] = types.StorageDescriptor{UseCase: "x"}

	if !Default().StorageClass("custom").IsZero() {
		t.Error("Default() must not share maps between calls")
	}
}
