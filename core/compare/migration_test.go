package compare

import (
	"strings"
	"testing"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("service ", n))
}

func TestRecommendMigrationBuckets(t *testing.T) {
	e := MustNew(nil)

	tests := []struct {
		name     string
		words    int
		budget   types.BudgetTier
		level    types.ComplexityLevel
		duration string
		cost     float64
	}{
		{"short tight", 5, types.BudgetTight, types.ComplexityLow, "2-4 weeks", 3500},
		{"at low bound", 20, types.BudgetModerate, types.ComplexityMedium, "1-3 months", 15000},
		{"medium tight", 25, types.BudgetTight, types.ComplexityMedium, "1-3 months", 10500},
		{"at high bound", 50, types.BudgetFlexible, types.ComplexityHigh, "3-6 months", 45500},
		{"unknown budget", 60, "shoestring", types.ComplexityHigh, "3-6 months", 35000},
		{"empty description", 0, "", types.ComplexityLow, "2-4 weeks", 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := e.RecommendMigration(types.ProviderAWS, types.ProviderGCP, words(tt.words), tt.budget)
			if err != nil {
				t.Fatalf("RecommendMigration: %v", err)
			}
			if plan.ComplexityLevel != tt.level {
				t.Errorf("level = %s, want %s", plan.ComplexityLevel, tt.level)
			}
			if plan.Duration != tt.duration {
				t.Errorf("duration = %s, want %s", plan.Duration, tt.duration)
			}
			if !approx(plan.EstimatedCost, tt.cost) {
				t.Errorf("estimated cost = %v, want %v", plan.EstimatedCost, tt.cost)
			}
		})
	}
}

func TestRecommendMigrationPlanContents(t *testing.T) {
	e := MustNew(nil)

	plan, err := e.RecommendMigration(types.ProviderGCP, types.ProviderAWS, words(25), types.BudgetTight)
	if err != nil {
		t.Fatalf("RecommendMigration: %v", err)
	}
	if plan.ComplexityScore != 2.5 {
		t.Errorf("score = %v, want 2.5", plan.ComplexityScore)
	}
	if !strings.Contains(plan.ComplexityBasis, "approximation") {
		t.Errorf("basis should be labelled an approximation: %q", plan.ComplexityBasis)
	}
	if len(plan.Phases) != 5 {
		t.Fatalf("phases = %d, want 5", len(plan.Phases))
	}
	if plan.Phases[1].Tasks[0] != "Configure AWS environment" {
		t.Errorf("setup task = %q", plan.Phases[1].Tasks[0])
	}
	if !strings.Contains(plan.Recommendations[0], "AWS Migration Hub") {
		t.Errorf("recommendations should target aws: %v", plan.Recommendations)
	}
	if len(plan.Risks) != len(plan.Mitigations) {
		t.Errorf("risks and mitigations should pair up: %d vs %d", len(plan.Risks), len(plan.Mitigations))
	}

	// plans must not share backing arrays with the package tables
	plan.Risks[0] = "changed"
	other, _ := e.RecommendMigration(types.ProviderGCP, types.ProviderAWS, "x", types.BudgetTight)
	if other.Risks[0] == "changed" {
		t.Error("plans share risk slices")
	}
}

func TestRecommendMigrationSameProvider(t *testing.T) {
	e := MustNew(nil)

	plan, err := e.RecommendMigration(types.ProviderAWS, types.ProviderAWS, words(3), types.BudgetModerate)
	if err != nil {
		t.Fatalf("RecommendMigration: %v", err)
	}
	if plan.ComplexityLevel != types.ComplexityLow {
		t.Errorf("level = %s", plan.ComplexityLevel)
	}
}

func TestRecommendMigrationRejectsUnknownProvider(t *testing.T) {
	e := MustNew(nil)

	_, err := e.RecommendMigration("azure", types.ProviderGCP, "web app", types.BudgetTight)
	if !cerrors.IsValidation(err) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
	_, err = e.RecommendMigration(types.ProviderAWS, "", "web app", types.BudgetTight)
	if !cerrors.IsValidation(err) {
		t.Errorf("expected VALIDATION_ERROR for empty target, got %v", err)
	}
}
