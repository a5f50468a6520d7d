// Package app wires configuration, pricing catalogs, the comparison engine
// and the HTTP API into a runnable service.
package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cloud-cost/api"
	"cloud-cost/clouds"
	"cloud-cost/core/analysis"
	"cloud-cost/core/compare"
	"cloud-cost/core/pricing"
	"cloud-cost/core/scoring"
	"cloud-cost/core/types"
	"cloud-cost/internal/config"
	cerrors "cloud-cost/internal/errors"
	"cloud-cost/internal/logging"
	"cloud-cost/internal/metrics"
)

// Components are the long-lived pieces shared by the CLI and the server
type Components struct {
	Analyzer *analysis.Analyzer
	Registry *clouds.Registry
	Policy   *scoring.Policy
}

// Build loads the scoring policy and pairs the configured providers'
// catalogs. m may be nil.
func Build(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) (*Components, error) {
	logger = logging.OrNop(logger)

	policy, err := scoring.LoadFile(cfg.Policy.File)
	if err != nil {
		return nil, err
	}
	if cfg.Policy.File != "" {
		logger.Info("loaded scoring policy", zap.String("file", cfg.Policy.File))
	}

	a, b := policy.Providers()
	if a != cfg.Pricing.ProviderA || b != cfg.Pricing.ProviderB {
		return nil, cerrors.New(cerrors.TypeConfig, "scoring policy providers do not match pricing.provider_a/provider_b").
			WithContext("policy", string(a)+","+string(b))
	}

	engine, err := compare.New(policy, compare.WithLogger(logger.Named("compare")))
	if err != nil {
		return nil, err
	}

	opts := []pricing.ResolverOption{pricing.WithResolverLogger(logger.Named("pricing"))}
	if m != nil {
		opts = append(opts, pricing.WithObserver(m.ObserveQuote))
	}
	registry, err := clouds.NewRegistryWithRegions(map[types.Provider]string{
		a: cfg.Pricing.RegionA,
		b: cfg.Pricing.RegionB,
	})
	if err != nil {
		return nil, cerrors.Config("failed to register cloud plugins", err)
	}
	resolver, err := registry.Resolver(a, b, opts...)
	if err != nil {
		return nil, cerrors.Config("failed to pair pricing catalogs", err)
	}

	analyzer := analysis.New(resolver, engine,
		analysis.WithDefaultRegions(cfg.Pricing.RegionA, cfg.Pricing.RegionB),
		analysis.WithLogger(logger.Named("analysis")),
	)

	return &Components{
		Analyzer: analyzer,
		Registry: registry,
		Policy:   policy,
	}, nil
}

// Serve runs the HTTP API until ctx is cancelled
func Serve(ctx context.Context, cfg *config.Config, logger *zap.Logger, version string) error {
	logger = logging.OrNop(logger)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	c, err := Build(cfg, logger, m)
	if err != nil {
		return err
	}

	handler := api.NewHandler(c.Analyzer, c.Registry, m, logger.Named("api"), version)
	router := api.NewRouter(handler, logger.Named("http"), api.RouterConfig{
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
		Timeout:     time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	})

	logger.Info("starting cloud-cost API",
		zap.String("version", version),
		zap.String("provider_a", string(cfg.Pricing.ProviderA)),
		zap.String("provider_b", string(cfg.Pricing.ProviderB)),
	)
	return api.NewServer(cfg.Server, router, logger).ListenAndServe(ctx)
}
