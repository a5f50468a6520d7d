package analysis

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"cloud-cost/clouds"
	"cloud-cost/core/compare"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	resolver, err := clouds.GetDefaultRegistry().Resolver(types.ProviderAWS, types.ProviderGCP)
	if err != nil {
		t.Fatalf("Resolver: %v", err)
	}
	return New(resolver, compare.MustNew(nil),
		WithDefaultRegions("us-east-1", "us-central1"),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestAnalyzeStartupTemplate(t *testing.T) {
	a := newTestAnalyzer(t)
	tmpl, err := LookupTemplate("startup_web_app")
	if err != nil {
		t.Fatalf("LookupTemplate: %v", err)
	}

	report, err := a.Analyze(context.Background(), tmpl.Scenario)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if _, err := uuid.Parse(report.ID); err != nil {
		t.Errorf("report ID %q is not a UUID", report.ID)
	}
	if !report.GeneratedAt.Equal(fixedNow) {
		t.Errorf("generated at = %v", report.GeneratedAt)
	}
	if report.Scenario.HorizonMonths != DefaultHorizonMonths {
		t.Errorf("horizon = %d, want default %d", report.Scenario.HorizonMonths, DefaultHorizonMonths)
	}
	if report.Quotes.ComputeA.Region != "us-east-1" || report.Quotes.StorageB.Region != "us-central1" {
		t.Errorf("default regions not applied: %+v", report.Quotes)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"compute a monthly", report.TCO.A.Monthly.Compute, 14.976},
		{"compute b monthly", report.TCO.B.Monthly.Compute, 8.64},
		{"storage a monthly", report.TCO.A.Monthly.Storage, 2.3},
		{"storage b monthly", report.TCO.B.Monthly.Storage, 2.0},
		{"total a", report.TCO.A.Monthly.Total, 19.8674},
		{"total b", report.TCO.B.Monthly.Total, 11.9168},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-6 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if report.Compute.WorkloadType != types.WorkloadWebApplication {
		t.Errorf("workload = %s", report.Compute.WorkloadType)
	}
	if report.Compute.Recommendation.Winner != types.ProviderGCP {
		t.Errorf("compute winner = %s, want gcp", report.Compute.Recommendation.Winner)
	}
	if report.Recommended != types.ProviderGCP {
		t.Errorf("recommended = %s, want gcp", report.Recommended)
	}
	if report.Budget == nil || !report.Budget.WithinA || !report.Budget.WithinB {
		t.Errorf("budget check = %+v", report.Budget)
	}
}

func TestAnalyzeEveryTemplate(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, tmpl := range Templates() {
		t.Run(tmpl.ID, func(t *testing.T) {
			report, err := a.Analyze(context.Background(), tmpl.Scenario)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if report.Scenario.Name != tmpl.ID {
				t.Errorf("scenario name = %q", report.Scenario.Name)
			}
			if report.TCO.SavingsProvider != report.Recommended {
				t.Error("recommendation should follow TCO")
			}
		})
	}
}

func TestAnalyzeRejectsBadScenarios(t *testing.T) {
	a := newTestAnalyzer(t)
	base := Scenario{
		ComputeA: pricing.Request{Resource: "t3.micro"},
		ComputeB: pricing.Request{Resource: "e2-micro"},
		StorageA: pricing.Request{Resource: "s3_standard"},
		StorageB: pricing.Request{Resource: "standard"},
	}

	tests := []struct {
		name   string
		mutate func(s *Scenario)
		want   cerrors.Type
	}{
		{"missing instance", func(s *Scenario) { s.ComputeB.Resource = "" }, cerrors.TypeValidation},
		{"negative volume", func(s *Scenario) { s.StorageGB = -1 }, cerrors.TypeValidation},
		{"negative horizon", func(s *Scenario) { s.HorizonMonths = -6 }, cerrors.TypeValidation},
		{"negative additional", func(s *Scenario) {
			s.Additional = types.CostsByProvider{types.ProviderAWS: -10}
		}, cerrors.TypeValidation},
		{"unknown region", func(s *Scenario) { s.StorageA.Region = "eu-south-9" }, cerrors.TypeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			_, err := a.Analyze(context.Background(), s)
			if !cerrors.IsType(err, tt.want) {
				t.Errorf("expected %s, got %v", tt.want, err)
			}
		})
	}
}

func TestLookupTemplate(t *testing.T) {
	if _, err := LookupTemplate("mainframe"); !cerrors.IsType(err, cerrors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if got := len(Templates()); got != 3 {
		t.Errorf("templates = %d, want 3", got)
	}
}

func TestFillCompute(t *testing.T) {
	a := newTestAnalyzer(t)
	ctx := context.Background()

	t.Run("both sides from the catalog", func(t *testing.T) {
		qa, qb, err := a.FillCompute(ctx, types.PriceQuote{Resource: "t3.medium"}, types.PriceQuote{Resource: "e2-medium"})
		if err != nil {
			t.Fatalf("FillCompute: %v", err)
		}
		if qa.Provider != types.ProviderAWS || qa.Region != "us-east-1" || math.Abs(qa.MonthlyCost()-29.952) > 1e-9 {
			t.Errorf("a = %+v", qa)
		}
		if qb.Provider != types.ProviderGCP || math.Abs(qb.MonthlyCost()-17.28) > 1e-9 {
			t.Errorf("b = %+v", qb)
		}
	})

	t.Run("one side priced by the caller", func(t *testing.T) {
		qa, qb, err := a.FillCompute(ctx,
			types.PriceQuote{Provider: types.ProviderAWS, Resource: "custom", PricePerHour: types.Price(0.1)},
			types.PriceQuote{Resource: "e2-micro"},
		)
		if err != nil {
			t.Fatalf("FillCompute: %v", err)
		}
		if math.Abs(qa.MonthlyCost()-72) > 1e-9 {
			t.Errorf("caller quote not normalized: %+v", qa)
		}
		if math.Abs(qb.MonthlyCost()-4.32) > 1e-9 {
			t.Errorf("b monthly = %v, want 4.32", qb.MonthlyCost())
		}
	})

	t.Run("missing resource", func(t *testing.T) {
		_, _, err := a.FillCompute(ctx, types.PriceQuote{}, types.PriceQuote{Resource: "e2-micro"})
		if !cerrors.IsValidation(err) {
			t.Errorf("expected VALIDATION_ERROR, got %v", err)
		}
	})
}

func TestFillStorageUnknownRegion(t *testing.T) {
	a := newTestAnalyzer(t)
	_, _, err := a.FillStorage(context.Background(),
		types.PriceQuote{Resource: "s3_standard", Region: "mars-1"},
		types.PriceQuote{Resource: "standard"},
	)
	if !cerrors.IsType(err, cerrors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}
