package app

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"cloud-cost/core/analysis"
	"cloud-cost/core/types"
	"cloud-cost/internal/config"
	cerrors "cloud-cost/internal/errors"
)

func TestBuild(t *testing.T) {
	c, err := Build(config.Default(), zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	a, b := c.Policy.Providers()
	if a != types.ProviderAWS || b != types.ProviderGCP {
		t.Errorf("policy providers = %s, %s", a, b)
	}
	if len(c.Registry.Providers()) != 2 {
		t.Errorf("expected 2 registered providers, got %v", c.Registry.Providers())
	}

	report, err := c.Analyzer.Analyze(context.Background(), mustTemplate(t, "ml_training"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if report.Quotes.ComputeA.Region != "us-east-1" || report.Quotes.ComputeB.Region != "us-central1" {
		t.Errorf("default regions not applied: %s / %s", report.Quotes.ComputeA.Region, report.Quotes.ComputeB.Region)
	}
}

func TestBuildErrors(t *testing.T) {
	t.Run("swapped providers", func(t *testing.T) {
		cfg := config.Default()
		cfg.Pricing.ProviderA, cfg.Pricing.ProviderB = types.ProviderGCP, types.ProviderAWS

		_, err := Build(cfg, nil, nil)
		if !cerrors.IsType(err, cerrors.TypeConfig) {
			t.Errorf("expected CONFIG_ERROR, got %v", err)
		}
	})

	t.Run("missing policy file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Policy.File = filepath.Join(t.TempDir(), "missing.hcl")

		if _, err := Build(cfg, nil, nil); err == nil {
			t.Error("expected an error for a missing policy file")
		}
	})
}

func mustTemplate(t *testing.T, id string) analysis.Scenario {
	t.Helper()
	tmpl, err := analysis.LookupTemplate(id)
	if err != nil {
		t.Fatalf("LookupTemplate(%q) error = %v", id, err)
	}
	return tmpl.Scenario
}
