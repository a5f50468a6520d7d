package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

const overridePolicy = `
words_per_complexity_point = 20

weights {
  cost        = 0.40
  performance = 0.20
  scalability = 0.20
  reliability = 0.15
  maintenance = 0.05
}

provider "gcp" {
  maintenance          = 9.4
  operational_overhead = 0.10
}

workload "machine_learning" {
  a = 8.7
  b = 9.3
}

storage_class "gp3" {
  durability   = "99.8%"
  availability = "99.9%"
  use_case     = "Block storage"
}

budget "tight" {
  multiplier = 0.6
}
`

func TestParseOverlaysDefaults(t *testing.T) {
	p, err := Parse([]byte(overridePolicy), "policy.hcl")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Weights.Cost != 0.40 || p.Weights.Performance != 0.20 {
		t.Errorf("weights not applied: %+v", p.Weights)
	}
	if got := p.CharacteristicsOf(types.ProviderGCP).Maintenance; got != 9.4 {
		t.Errorf("gcp maintenance = %v, want 9.4", got)
	}
	if got := p.CharacteristicsOf(types.ProviderGCP).Scalability; got != 9.3 {
		t.Errorf("untouched gcp scalability = %v, want default 9.3", got)
	}
	if got := p.OverheadOf(types.ProviderGCP); got != 0.10 {
		t.Errorf("gcp overhead = %v, want 0.10", got)
	}
	if got := p.OverheadOf(types.ProviderAWS); got != 0.15 {
		t.Errorf("aws overhead = %v, want default 0.15", got)
	}
	if got := p.PerformanceFor(types.WorkloadMachineLearning); got.B != 9.3 {
		t.Errorf("machine_learning performance = %+v", got)
	}
	if p.StorageClass("gp3").UseCase != "Block storage" {
		t.Error("gp3 storage class not added")
	}
	if p.BudgetMultiplier(types.BudgetTight) != 0.6 {
		t.Error("tight budget multiplier not overridden")
	}
	if p.WordsPerComplexityPoint != 20 {
		t.Errorf("words per point = %v, want 20", p.WordsPerComplexityPoint)
	}
	if len(p.Complexity) != 3 {
		t.Errorf("complexity buckets should stay at defaults, got %d", len(p.Complexity))
	}
}

func TestParseReplacesComplexityBuckets(t *testing.T) {
	src := `
complexity "Small" {
  below     = 3
  duration  = "1 week"
  effort    = "Minimal"
  base_cost = 1000
}

complexity "Large" {
  duration  = "1 year"
  effort    = "Huge"
  base_cost = 90000
}
`
	p, err := Parse([]byte(src), "buckets.hcl")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(p.Complexity) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(p.Complexity))
	}
	if got := p.ComplexityFor(2.9); got.Level != "Small" {
		t.Errorf("ComplexityFor(2.9) = %s", got.Level)
	}
	if got := p.ComplexityFor(3); got.Level != "Large" || got.BaseCost != 90000 {
		t.Errorf("ComplexityFor(3) = %+v", got)
	}
}

func TestParseRejectsWeightsNotSummingToOne(t *testing.T) {
	src := `
weights {
  cost        = 0.50
  performance = 0.25
  scalability = 0.20
  reliability = 0.15
  maintenance = 0.05
}
`
	_, err := Parse([]byte(src), "bad.hcl")
	if err == nil {
		t.Fatal("expected error for weights summing to 1.15")
	}
	if !cerrors.IsType(err, cerrors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestParseRejectsSyntaxAndSchemaErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":        `weights {`,
		"unknown block": `discount "x" {}`,
		"missing attr":  `workload "general" { a = 1 }`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), name+".hcl")
			if !cerrors.IsType(err, cerrors.TypeParsing) {
				t.Errorf("expected PARSING_ERROR, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	p, err := LoadFile("")
	if err != nil || p == nil {
		t.Fatalf("LoadFile(\"\") = %v, %v", p, err)
	}

	path := filepath.Join(t.TempDir(), "policy.hcl")
	if err := os.WriteFile(path, []byte(overridePolicy), 0644); err != nil {
		t.Fatal(err)
	}
	p, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if p.Weights.Cost != 0.40 {
		t.Error("file contents not applied")
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	if !cerrors.IsType(err, cerrors.TypeConfig) {
		t.Errorf("missing file should be CONFIG_ERROR, got %v", err)
	}
}
