// Package scoring - HCL policy files
//
// A policy file overlays the built-in policy. Every block is optional:
//
//	weights {
//	  cost        = 0.40
//	  performance = 0.20
//	  scalability = 0.20
//	  reliability = 0.15
//	  maintenance = 0.05
//	}
//
//	provider "gcp" {
//	  maintenance          = 9.4
//	  operational_overhead = 0.10
//	}
//
//	workload "machine_learning" {
//	  a = 8.7
//	  b = 9.3
//	}
//
//	storage_class "gp3" {
//	  durability   = "99.8%"
//	  availability = "99.9%"
//	  use_case     = "Block storage"
//	}
//
//	budget "tight" {
//	  multiplier = 0.6
//	}
//
// complexity blocks, when present, replace the whole bucket list.
package scoring

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

type policyFile struct {
	ProviderA *string `hcl:"provider_a,optional"`
	ProviderB *string `hcl:"provider_b,optional"`

	WordsPerComplexityPoint *float64 `hcl:"words_per_complexity_point,optional"`

	Weights        *weightsBlock     `hcl:"weights,block"`
	Providers      []providerBlock   `hcl:"provider,block"`
	Workloads      []workloadBlock   `hcl:"workload,block"`
	StorageClasses []storageBlock    `hcl:"storage_class,block"`
	Budgets        []budgetBlock     `hcl:"budget,block"`
	Complexity     []complexityBlock `hcl:"complexity,block"`
}

type weightsBlock struct {
	Cost        float64 `hcl:"cost"`
	Performance float64 `hcl:"performance"`
	Scalability float64 `hcl:"scalability"`
	Reliability float64 `hcl:"reliability"`
	Maintenance float64 `hcl:"maintenance"`
}

type providerBlock struct {
	Name string `hcl:"name,label"`

	PerformanceMultiplier *float64 `hcl:"performance_multiplier,optional"`
	Scalability           *float64 `hcl:"scalability,optional"`
	Reliability           *float64 `hcl:"reliability,optional"`
	Maintenance           *float64 `hcl:"maintenance,optional"`
	GlobalPresence        *float64 `hcl:"global_presence,optional"`
	ServiceMaturity       *float64 `hcl:"service_maturity,optional"`
	OperationalOverhead   *float64 `hcl:"operational_overhead,optional"`
}

type workloadBlock struct {
	Type string  `hcl:"type,label"`
	A    float64 `hcl:"a"`
	B    float64 `hcl:"b"`
}

type storageBlock struct {
	Name         string `hcl:"name,label"`
	Durability   string `hcl:"durability,optional"`
	Availability string `hcl:"availability,optional"`
	UseCase      string `hcl:"use_case,optional"`
}

type budgetBlock struct {
	Tier       string  `hcl:"tier,label"`
	Multiplier float64 `hcl:"multiplier"`
}

type complexityBlock struct {
	Level    string   `hcl:"level,label"`
	Below    *float64 `hcl:"below,optional"`
	Duration string   `hcl:"duration"`
	Effort   string   `hcl:"effort"`
	BaseCost float64  `hcl:"base_cost"`
}

// LoadFile reads an HCL policy file and overlays it on the defaults.
// An empty path returns the defaults.
func LoadFile(path string) (*Policy, error) {
	if path == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.Config("failed to read policy file", err).WithContext("path", path)
	}
	return Parse(src, path)
}

// Parse decodes HCL policy source and overlays it on the defaults.
// The result is validated.
func Parse(src []byte, filename string) (*Policy, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	var pf policyFile
	if diags := gohcl.DecodeBody(file.Body, nil, &pf); diags.HasErrors() {
		return nil, diagError(filename, diags)
	}

	p := Default()
	pf.apply(p)

	if err := p.Validate(); err != nil {
		return nil, cerrors.Config("invalid policy file", err).WithContext("path", filename)
	}
	return p, nil
}

func (pf *policyFile) apply(p *Policy) {
	if pf.ProviderA != nil {
		p.ProviderA = types.Provider(*pf.ProviderA)
	}
	if pf.ProviderB != nil {
		p.ProviderB = types.Provider(*pf.ProviderB)
	}
	if pf.WordsPerComplexityPoint != nil {
		p.WordsPerComplexityPoint = *pf.WordsPerComplexityPoint
	}

	if w := pf.Weights; w != nil {
		p.Weights = Weights{
			Cost:        w.Cost,
			Performance: w.Performance,
			Scalability: w.Scalability,
			Reliability: w.Reliability,
			Maintenance: w.Maintenance,
		}
	}

	for _, b := range pf.Providers {
		pr := types.Provider(b.Name)
		ch := p.Characteristics[pr]
		setIf(&ch.PerformanceMultiplier, b.PerformanceMultiplier)
		setIf(&ch.Scalability, b.Scalability)
		setIf(&ch.Reliability, b.Reliability)
		setIf(&ch.Maintenance, b.Maintenance)
		setIf(&ch.GlobalPresence, b.GlobalPresence)
		setIf(&ch.ServiceMaturity, b.ServiceMaturity)
		p.Characteristics[pr] = ch

		if b.OperationalOverhead != nil {
			p.OperationalOverhead[pr] = *b.OperationalOverhead
		}
	}

	for _, b := range pf.Workloads {
		p.Performance[types.WorkloadType(b.Type)] = PerformancePair{A: b.A, B: b.B}
	}

	for _, b := range pf.StorageClasses {
		p.StorageClasses[b.Name] = types.StorageDescriptor{
			Durability:   b.Durability,
			Availability: b.Availability,
			UseCase:      b.UseCase,
		}
	}

	for _, b := range pf.Budgets {
		p.BudgetMultipliers[types.BudgetTier(b.Tier)] = b.Multiplier
	}

	if len(pf.Complexity) > 0 {
		buckets := make([]ComplexityBucket, 0, len(pf.Complexity))
		for _, b := range pf.Complexity {
			bucket := ComplexityBucket{
				Level:    types.ComplexityLevel(b.Level),
				Duration: b.Duration,
				Effort:   b.Effort,
				BaseCost: b.BaseCost,
			}
			setIf(&bucket.Below, b.Below)
			buckets = append(buckets, bucket)
		}
		p.Complexity = buckets
	}
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func diagError(filename string, diags hcl.Diagnostics) error {
	return cerrors.Parsing("failed to decode policy file", diags).WithContext("path", filename)
}
