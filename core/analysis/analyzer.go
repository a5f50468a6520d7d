// Package analysis runs a whole cost scenario: it resolves quotes for both
// providers, compares compute and storage, and projects TCO.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cloud-cost/core/compare"
	"cloud-cost/core/pricing"
	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
	"cloud-cost/internal/logging"
)

// DefaultHorizonMonths is used when a scenario names no horizon
const DefaultHorizonMonths = 36

// Scenario describes one workload priced on both providers
type Scenario struct {
	Name     string             `json:"name,omitempty" yaml:"name,omitempty"`
	Workload types.WorkloadType `json:"workload_type" yaml:"workload_type"`

	ComputeA pricing.Request `json:"compute_a" yaml:"compute_a"`
	ComputeB pricing.Request `json:"compute_b" yaml:"compute_b"`
	StorageA pricing.Request `json:"storage_a" yaml:"storage_a"`
	StorageB pricing.Request `json:"storage_b" yaml:"storage_b"`

	StorageGB     float64               `json:"storage_size_gb" yaml:"storage_size_gb"`
	Additional    types.CostsByProvider `json:"additional_monthly,omitempty" yaml:"additional_monthly,omitempty"`
	HorizonMonths int                   `json:"time_horizon_months,omitempty" yaml:"time_horizon_months,omitempty"`

	// MonthlyBudget, when positive, is checked against each monthly total
	MonthlyBudget float64 `json:"monthly_budget,omitempty" yaml:"monthly_budget,omitempty"`
}

// Quotes holds the four quotes a scenario resolves
type Quotes struct {
	ComputeA types.PriceQuote `json:"compute_a" yaml:"compute_a"`
	ComputeB types.PriceQuote `json:"compute_b" yaml:"compute_b"`
	StorageA types.PriceQuote `json:"storage_a" yaml:"storage_a"`
	StorageB types.PriceQuote `json:"storage_b" yaml:"storage_b"`
}

// BudgetCheck compares monthly totals against the scenario budget
type BudgetCheck struct {
	MonthlyBudget float64 `json:"monthly_budget" yaml:"monthly_budget"`
	WithinA       bool    `json:"within_a" yaml:"within_a"`
	WithinB       bool    `json:"within_b" yaml:"within_b"`
}

// Report is the result of analyzing a scenario
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Scenario    Scenario  `json:"scenario" yaml:"scenario"`
	Quotes      Quotes    `json:"quotes" yaml:"quotes"`

	Compute *types.ComputeComparison `json:"compute" yaml:"compute"`
	Storage *types.StorageComparison `json:"storage" yaml:"storage"`
	TCO     *types.TCOResult         `json:"tco" yaml:"tco"`
	Budget  *BudgetCheck             `json:"budget,omitempty" yaml:"budget,omitempty"`

	// Recommended is the provider with the lower TCO
	Recommended types.Provider `json:"recommended" yaml:"recommended"`
}

// Analyzer runs scenarios against a resolver and an engine
type Analyzer struct {
	resolver *pricing.Resolver
	engine   *compare.Engine
	logger   *zap.Logger

	regionA, regionB string
	now              func() time.Time
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the analyzer logger
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logging.OrNop(l)
	}
}

// WithDefaultRegions sets the regions used when a request names none
func WithDefaultRegions(regionA, regionB string) Option {
	return func(a *Analyzer) {
		a.regionA, a.regionB = regionA, regionB
	}
}

// WithClock overrides the report timestamp source
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New creates an analyzer
func New(resolver *pricing.Resolver, engine *compare.Engine, opts ...Option) *Analyzer {
	a := &Analyzer{
		resolver: resolver,
		engine:   engine,
		logger:   logging.Named("analysis"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Engine returns the comparison engine
func (a *Analyzer) Engine() *compare.Engine {
	return a.engine
}

// Resolver returns the quote resolver
func (a *Analyzer) Resolver() *pricing.Resolver {
	return a.resolver
}

// Analyze resolves quotes and runs every comparison for s
func (a *Analyzer) Analyze(ctx context.Context, s Scenario) (*Report, error) {
	s = a.withDefaults(s)
	if err := validateScenario(s); err != nil {
		return nil, err
	}

	var q Quotes
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		q.ComputeA, q.ComputeB, err = a.resolver.Compute(gctx, s.ComputeA, s.ComputeB)
		return err
	})
	g.Go(func() error {
		var err error
		q.StorageA, q.StorageB, err = a.resolver.Storage(gctx, s.StorageA, s.StorageB)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	computeCmp, err := a.engine.CompareCompute(q.ComputeA, q.ComputeB, types.WorkloadRequirements{Type: s.Workload})
	if err != nil {
		return nil, err
	}
	storageCmp, err := a.engine.CompareStorage(q.StorageA, q.StorageB)
	if err != nil {
		return nil, err
	}

	pa, pb := a.engine.Policy().Providers()
	tco, err := a.engine.CalculateTCO(
		types.CostsByProvider{pa: q.ComputeA.MonthlyCost(), pb: q.ComputeB.MonthlyCost()},
		types.CostsByProvider{pa: q.StorageA.GBMonthCost() * s.StorageGB, pb: q.StorageB.GBMonthCost() * s.StorageGB},
		s.Additional,
		s.HorizonMonths,
	)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:          uuid.New().String(),
		GeneratedAt: a.now().UTC(),
		Scenario:    s,
		Quotes:      q,
		Compute:     computeCmp,
		Storage:     storageCmp,
		TCO:         tco,
		Recommended: tco.SavingsProvider,
	}
	if s.MonthlyBudget > 0 {
		report.Budget = &BudgetCheck{
			MonthlyBudget: s.MonthlyBudget,
			WithinA:       tco.A.Monthly.Total <= s.MonthlyBudget,
			WithinB:       tco.B.Monthly.Total <= s.MonthlyBudget,
		}
	}

	a.logger.Info("analysis complete",
		zap.String("id", report.ID),
		zap.String("scenario", s.Name),
		zap.String("recommended", string(report.Recommended)),
		zap.Float64("savings", tco.Savings),
	)
	return report, nil
}

func (a *Analyzer) withDefaults(s Scenario) Scenario {
	if s.HorizonMonths == 0 {
		s.HorizonMonths = DefaultHorizonMonths
	}
	if s.Workload == "" {
		s.Workload = types.WorkloadGeneral
	}
	if s.ComputeA.Region == "" {
		s.ComputeA.Region = a.regionA
	}
	if s.StorageA.Region == "" {
		s.StorageA.Region = a.regionA
	}
	if s.ComputeB.Region == "" {
		s.ComputeB.Region = a.regionB
	}
	if s.StorageB.Region == "" {
		s.StorageB.Region = a.regionB
	}
	return s
}

func validateScenario(s Scenario) error {
	if s.ComputeA.Resource == "" || s.ComputeB.Resource == "" {
		return cerrors.Validation("compute", "both instance types are required")
	}
	if s.StorageA.Resource == "" || s.StorageB.Resource == "" {
		return cerrors.Validation("storage", "both storage types are required")
	}
	if s.StorageGB < 0 {
		return cerrors.Validation("storage_size_gb", "must be >= 0, got %v", s.StorageGB)
	}
	if s.MonthlyBudget < 0 {
		return cerrors.Validation("monthly_budget", "must be >= 0, got %v", s.MonthlyBudget)
	}
	return nil
}
