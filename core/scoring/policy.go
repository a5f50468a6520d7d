// Package scoring holds the scoring policy: the criterion weights, provider
// characteristics and lookup tables that drive every comparison.
// A Policy is read-only once built; the engine never mutates it.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

// WeightTolerance is the allowed drift of the weight sum from 1.0
const WeightTolerance = 1e-9

// Criterion is one evaluation dimension
type Criterion string

const (
	CriterionCost        Criterion = "cost"
	CriterionPerformance Criterion = "performance"
	CriterionScalability Criterion = "scalability"
	CriterionReliability Criterion = "reliability"
	CriterionMaintenance Criterion = "maintenance"
)

// Criteria lists every criterion in evaluation order
var Criteria = []Criterion{
	CriterionCost,
	CriterionPerformance,
	CriterionScalability,
	CriterionReliability,
	CriterionMaintenance,
}

// Weights is the share of the final score attributed to each criterion
type Weights struct {
	Cost        float64 `json:"cost" yaml:"cost"`
	Performance float64 `json:"performance" yaml:"performance"`
	Scalability float64 `json:"scalability" yaml:"scalability"`
	Reliability float64 `json:"reliability" yaml:"reliability"`
	Maintenance float64 `json:"maintenance" yaml:"maintenance"`
}

// Of returns the weight of one criterion
func (w Weights) Of(c Criterion) float64 {
	switch c {
	case CriterionCost:
		return w.Cost
	case CriterionPerformance:
		return w.Performance
	case CriterionScalability:
		return w.Scalability
	case CriterionReliability:
		return w.Reliability
	case CriterionMaintenance:
		return w.Maintenance
	}
	return 0
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Cost + w.Performance + w.Scalability + w.Reliability + w.Maintenance
}

// Apply returns the weighted final score for s
func (w Weights) Apply(s types.CriterionScores) float64 {
	return s.Cost*w.Cost +
		s.Performance*w.Performance +
		s.Scalability*w.Scalability +
		s.Reliability*w.Reliability +
		s.Maintenance*w.Maintenance
}

// Characteristics are the fixed, provider-intrinsic scores (0-10)
type Characteristics struct {
	PerformanceMultiplier float64 `json:"performance_multiplier" yaml:"performance_multiplier"`
	Scalability           float64 `json:"scalability_score" yaml:"scalability_score"`
	Reliability           float64 `json:"reliability_score" yaml:"reliability_score"`
	Maintenance           float64 `json:"maintenance_score" yaml:"maintenance_score"`
	GlobalPresence        float64 `json:"global_presence" yaml:"global_presence"`
	ServiceMaturity       float64 `json:"service_maturity" yaml:"service_maturity"`
}

// PerformancePair is the hardcoded performance score of both providers
// for one workload type
type PerformancePair struct {
	A float64 `json:"a" yaml:"a"`
	B float64 `json:"b" yaml:"b"`
}

// ComplexityBucket maps a complexity score range to migration estimates.
// Below is the exclusive upper bound; zero means unbounded.
type ComplexityBucket struct {
	Level    types.ComplexityLevel `json:"level" yaml:"level"`
	Below    float64               `json:"below,omitempty" yaml:"below,omitempty"`
	Duration string                `json:"duration" yaml:"duration"`
	Effort   string                `json:"effort" yaml:"effort"`
	BaseCost float64               `json:"base_cost" yaml:"base_cost"`
}

// Policy is the complete scoring configuration
type Policy struct {
	// ProviderA and ProviderB fix which provider plays which side
	ProviderA types.Provider `json:"provider_a" yaml:"provider_a"`
	ProviderB types.Provider `json:"provider_b" yaml:"provider_b"`

	Weights         Weights                                `json:"weights" yaml:"weights"`
	Characteristics map[types.Provider]Characteristics     `json:"characteristics" yaml:"characteristics"`
	Performance     map[types.WorkloadType]PerformancePair `json:"performance" yaml:"performance"`
	StorageClasses  map[string]types.StorageDescriptor     `json:"storage_classes" yaml:"storage_classes"`

	// OperationalOverhead is the fraction of compute+storage added as
	// operational cost in TCO projections
	OperationalOverhead map[types.Provider]float64 `json:"operational_overhead" yaml:"operational_overhead"`

	Complexity              []ComplexityBucket           `json:"complexity" yaml:"complexity"`
	WordsPerComplexityPoint float64                      `json:"words_per_complexity_point" yaml:"words_per_complexity_point"`
	BudgetMultipliers       map[types.BudgetTier]float64 `json:"budget_multipliers" yaml:"budget_multipliers"`
}

const durability11Nines = "99.999999999%"

// Default returns the built-in policy
func Default() *Policy {
	return &Policy{
		ProviderA: types.ProviderAWS,
		ProviderB: types.ProviderGCP,
		Weights: Weights{
			Cost:        0.35,
			Performance: 0.25,
			Scalability: 0.20,
			Reliability: 0.15,
			Maintenance: 0.05,
		},
		Characteristics: map[types.Provider]Characteristics{
			types.ProviderAWS: {
				PerformanceMultiplier: 1.0,
				Scalability:           9.5,
				Reliability:           9.8,
				Maintenance:           8.5,
				GlobalPresence:        9.9,
				ServiceMaturity:       9.8,
			},
			types.ProviderGCP: {
				PerformanceMultiplier: 1.05,
				Scalability:           9.3,
				Reliability:           9.6,
				Maintenance:           9.2,
				GlobalPresence:        8.8,
				ServiceMaturity:       8.9,
			},
		},
		Performance: map[types.WorkloadType]PerformancePair{
			types.WorkloadComputeIntensive: {A: 8.5, B: 9.0},
			types.WorkloadDataIntensive:    {A: 9.2, B: 8.8},
			types.WorkloadGeneral:          {A: 8.8, B: 8.9},
		},
		StorageClasses: map[string]types.StorageDescriptor{
			"s3_standard": {Durability: durability11Nines, Availability: "99.99%", UseCase: "Frequent access"},
			"s3_ia":       {Durability: durability11Nines, Availability: "99.9%", UseCase: "Infrequent access"},
			"s3_glacier":  {Durability: durability11Nines, Availability: "N/A", UseCase: "Archival"},
			"standard":    {Durability: durability11Nines, Availability: "99.95%", UseCase: "Frequent access"},
			"nearline":    {Durability: durability11Nines, Availability: "99.95%", UseCase: "Monthly backup"},
			"coldline":    {Durability: durability11Nines, Availability: "99.95%", UseCase: "Archival"},
			"archive":     {Durability: durability11Nines, Availability: "99.95%", UseCase: "Long-term archival"},
		},
		OperationalOverhead: map[types.Provider]float64{
			types.ProviderAWS: 0.15,
			types.ProviderGCP: 0.12,
		},
		Complexity: []ComplexityBucket{
			{Level: types.ComplexityLow, Below: 2, Duration: "2-4 weeks", Effort: "Low", BaseCost: 5000},
			{Level: types.ComplexityMedium, Below: 5, Duration: "1-3 months", Effort: "Medium", BaseCost: 15000},
			{Level: types.ComplexityHigh, Duration: "3-6 months", Effort: "High", BaseCost: 35000},
		},
		WordsPerComplexityPoint: 10,
		BudgetMultipliers: map[types.BudgetTier]float64{
			types.BudgetTight:    0.7,
			types.BudgetModerate: 1.0,
			types.BudgetFlexible: 1.3,
		},
	}
}

// Providers returns (A, B)
func (p *Policy) Providers() (types.Provider, types.Provider) {
	return p.ProviderA, p.ProviderB
}

// Knows reports whether pr plays a side in this policy
func (p *Policy) Knows(pr types.Provider) bool {
	return pr == p.ProviderA || pr == p.ProviderB
}

// Other returns the opposite side of pr
func (p *Policy) Other(pr types.Provider) types.Provider {
	if pr == p.ProviderA {
		return p.ProviderB
	}
	return p.ProviderA
}

// CharacteristicsOf returns the characteristics of pr (zero if unknown)
func (p *Policy) CharacteristicsOf(pr types.Provider) Characteristics {
	return p.Characteristics[pr]
}

// PerformanceFor returns the performance pair for a workload type.
// Unknown types fall through to general purpose.
func (p *Policy) PerformanceFor(w types.WorkloadType) PerformancePair {
	if pair, ok := p.Performance[w]; ok {
		return pair
	}
	return p.Performance[types.WorkloadGeneral]
}

// StorageClass returns the descriptor for a storage type, or the zero
// descriptor for unknown types
func (p *Policy) StorageClass(name string) types.StorageDescriptor {
	return p.StorageClasses[name]
}

// OverheadOf returns the operational overhead rate of pr
func (p *Policy) OverheadOf(pr types.Provider) float64 {
	return p.OperationalOverhead[pr]
}

// BudgetMultiplier returns the multiplier for a budget tier, 1.0 if unknown
func (p *Policy) BudgetMultiplier(t types.BudgetTier) float64 {
	if m, ok := p.BudgetMultipliers[t]; ok {
		return m
	}
	return 1.0
}

// ComplexityFor returns the first bucket whose bound exceeds score
func (p *Policy) ComplexityFor(score float64) ComplexityBucket {
	for _, b := range p.Complexity {
		if b.Below == 0 || score < b.Below {
			return b
		}
	}
	return p.Complexity[len(p.Complexity)-1]
}

// StorageClassNames returns the known storage types, sorted
func (p *Policy) StorageClassNames() []string {
	names := make([]string, 0, len(p.StorageClasses))
	for name := range p.StorageClasses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the policy invariants
func (p *Policy) Validate() error {
	if !p.ProviderA.IsValid() || !p.ProviderB.IsValid() {
		return cerrors.Newf(cerrors.TypeConfig, "unknown provider in policy: a=%q b=%q", p.ProviderA, p.ProviderB)
	}
	if p.ProviderA == p.ProviderB {
		return cerrors.Newf(cerrors.TypeConfig, "provider a and b must differ, both are %q", p.ProviderA)
	}

	for _, c := range Criteria {
		w := p.Weights.Of(c)
		if w < 0 || w > 1 || math.IsNaN(w) {
			return cerrors.Newf(cerrors.TypeConfig, "weight %s out of range [0,1]: %v", c, w)
		}
	}
	if sum := p.Weights.Sum(); math.Abs(sum-1) > WeightTolerance {
		return cerrors.Newf(cerrors.TypeConfig, "weights must sum to 1, got %v", sum)
	}

	for _, pr := range []types.Provider{p.ProviderA, p.ProviderB} {
		ch, ok := p.Characteristics[pr]
		if !ok {
			return cerrors.Newf(cerrors.TypeConfig, "missing characteristics for %s", pr)
		}
		for name, v := range map[string]float64{
			"scalability": ch.Scalability,
			"reliability": ch.Reliability,
			"maintenance": ch.Maintenance,
		} {
			if err := checkScore(fmt.Sprintf("%s.%s", pr, name), v); err != nil {
				return err
			}
		}
		if err := checkNonNegative(fmt.Sprintf("operational overhead for %s", pr), p.OperationalOverhead[pr]); err != nil {
			return err
		}
	}

	if _, ok := p.Performance[types.WorkloadGeneral]; !ok {
		return cerrors.New(cerrors.TypeConfig, "performance table needs a general entry")
	}
	for w, pair := range p.Performance {
		if err := checkScore(fmt.Sprintf("performance.%s.a", w), pair.A); err != nil {
			return err
		}
		if err := checkScore(fmt.Sprintf("performance.%s.b", w), pair.B); err != nil {
			return err
		}
	}

	if len(p.Complexity) == 0 {
		return cerrors.New(cerrors.TypeConfig, "at least one complexity bucket is required")
	}
	prev := math.Inf(-1)
	for i, b := range p.Complexity {
		last := i == len(p.Complexity)-1
		if b.Below == 0 && !last {
			return cerrors.Newf(cerrors.TypeConfig, "only the last complexity bucket may be unbounded (%s)", b.Level)
		}
		if b.Below != 0 && b.Below <= prev {
			return cerrors.Newf(cerrors.TypeConfig, "complexity bounds must increase (%s)", b.Level)
		}
		if b.Below != 0 {
			prev = b.Below
		}
		if err := checkNonNegative(fmt.Sprintf("base_cost for %s complexity", b.Level), b.BaseCost); err != nil {
			return err
		}
	}
	for tier, m := range p.BudgetMultipliers {
		if err := checkNonNegative(fmt.Sprintf("budget multiplier %s", tier), m); err != nil {
			return err
		}
	}
	if p.WordsPerComplexityPoint <= 0 {
		return cerrors.Newf(cerrors.TypeConfig, "words_per_complexity_point must be positive, got %v", p.WordsPerComplexityPoint)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return cerrors.Newf(cerrors.TypeConfig, "%s must be a finite value >= 0, got %v", name, v)
	}
	return nil
}

func checkScore(name string, v float64) error {
	if v < 0 || v > 10 || math.IsNaN(v) {
		return cerrors.Newf(cerrors.TypeConfig, "score %s out of range [0,10]: %v", name, v)
	}
	return nil
}
