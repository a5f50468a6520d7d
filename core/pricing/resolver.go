// Package pricing supplies normalized price quotes to the comparison engine.
// Quotes come from a QuoteSource per provider; the Resolver fetches both
// sides of a comparison concurrently.
package pricing

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cloud-cost/core/types"
	cerrors "cloud-cost/internal/errors"
	"cloud-cost/internal/logging"
)

// QuoteSource returns price quotes for one provider
type QuoteSource interface {
	// Provider returns the cloud provider
	Provider() types.Provider

	// ComputeQuote prices one instance or machine type in a region
	ComputeQuote(ctx context.Context, resource, region string) (types.PriceQuote, error)

	// StorageQuote prices one storage class in a region
	StorageQuote(ctx context.Context, storageType, region string) (types.PriceQuote, error)

	// SupportedRegions returns the list of supported regions
	SupportedRegions() []string
}

// Request names one resource in one region
type Request struct {
	Resource string `json:"resource" yaml:"resource"`
	Region   string `json:"region" yaml:"region"`
}

// Lookup kinds
const (
	KindCompute = "compute"
	KindStorage = "storage"
)

// Observer is notified after every quote lookup
type Observer func(provider types.Provider, kind string, d time.Duration, err error)

// Resolver resolves the A and B sides of a comparison
type Resolver struct {
	a, b     QuoteSource
	logger   *zap.Logger
	observer Observer
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithResolverLogger sets the resolver logger
func WithResolverLogger(l *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logging.OrNop(l)
	}
}

// WithObserver sets a callback for lookup metrics
func WithObserver(o Observer) ResolverOption {
	return func(r *Resolver) {
		r.observer = o
	}
}

// NewResolver creates a resolver over two sources
func NewResolver(a, b QuoteSource, opts ...ResolverOption) (*Resolver, error) {
	if a == nil || b == nil {
		return nil, cerrors.New(cerrors.TypeConfig, "resolver needs a quote source for both sides")
	}
	if a.Provider() == b.Provider() {
		return nil, cerrors.Newf(cerrors.TypeConfig, "both quote sources are %s", a.Provider())
	}

	r := &Resolver{
		a:      a,
		b:      b,
		logger: logging.Named("pricing"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Sources returns the A and B sources
func (r *Resolver) Sources() (QuoteSource, QuoteSource) {
	return r.a, r.b
}

// Compute resolves compute quotes for both sides concurrently
func (r *Resolver) Compute(ctx context.Context, a, b Request) (types.PriceQuote, types.PriceQuote, error) {
	return r.pair(ctx, KindCompute, a, b, func(s QuoteSource) lookupFunc { return s.ComputeQuote })
}

// Storage resolves storage quotes for both sides concurrently
func (r *Resolver) Storage(ctx context.Context, a, b Request) (types.PriceQuote, types.PriceQuote, error) {
	return r.pair(ctx, KindStorage, a, b, func(s QuoteSource) lookupFunc { return s.StorageQuote })
}

// Single resolves one quote from the source for provider p
func (r *Resolver) Single(ctx context.Context, kind string, p types.Provider, req Request) (types.PriceQuote, error) {
	var src QuoteSource
	switch p {
	case r.a.Provider():
		src = r.a
	case r.b.Provider():
		src = r.b
	default:
		return types.PriceQuote{}, cerrors.Validation("provider", "no quote source for %q", p)
	}

	switch kind {
	case KindCompute:
		return r.lookup(ctx, kind, src, src.ComputeQuote, req)
	case KindStorage:
		return r.lookup(ctx, kind, src, src.StorageQuote, req)
	}
	return types.PriceQuote{}, cerrors.Newf(cerrors.TypeInternal, "unknown lookup kind %q", kind)
}

type lookupFunc func(ctx context.Context, resource, region string) (types.PriceQuote, error)

func (r *Resolver) pair(ctx context.Context, kind string, a, b Request, pick func(QuoteSource) lookupFunc) (types.PriceQuote, types.PriceQuote, error) {
	var qa, qb types.PriceQuote

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		qa, err = r.lookup(gctx, kind, r.a, pick(r.a), a)
		return err
	})
	g.Go(func() error {
		var err error
		qb, err = r.lookup(gctx, kind, r.b, pick(r.b), b)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.PriceQuote{}, types.PriceQuote{}, err
	}
	return qa, qb, nil
}

func (r *Resolver) lookup(ctx context.Context, kind string, src QuoteSource, fn lookupFunc, req Request) (types.PriceQuote, error) {
	start := time.Now()
	q, err := fn(ctx, req.Resource, req.Region)
	if r.observer != nil {
		r.observer(src.Provider(), kind, time.Since(start), err)
	}
	if err != nil {
		r.logger.Warn("quote lookup failed",
			zap.String("provider", string(src.Provider())),
			zap.String("kind", kind),
			zap.String("resource", req.Resource),
			zap.String("region", req.Region),
			zap.Error(err),
		)
		return types.PriceQuote{}, err
	}
	r.logger.Debug("resolved quote",
		zap.String("provider", string(src.Provider())),
		zap.String("kind", kind),
		zap.String("resource", req.Resource),
		zap.String("region", req.Region),
	)
	return q, nil
}
