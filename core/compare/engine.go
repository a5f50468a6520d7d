// Package compare is the comparison engine. It scores compute quotes on five
// weighted criteria, compares storage on cost, projects TCO and estimates
// migrations.
//
// An Engine holds only a read-only scoring policy. Every method is a
// self-contained computation over its inputs, so an Engine is safe for
// concurrent use without locking.
package compare

import (
	"go.uber.org/zap"

	"cloud-cost/core/scoring"
	"cloud-cost/internal/logging"
)

// Engine is the entry point for all comparisons
type Engine struct {
	policy *scoring.Policy
	logger *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logging.OrNop(l)
	}
}

// New creates an engine over p. A nil policy uses the built-in defaults.
// The policy is validated once here and never mutated afterwards.
func New(p *scoring.Policy, opts ...Option) (*Engine, error) {
	if p == nil {
		p = scoring.Default()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		policy: p,
		logger: logging.Named("compare"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// MustNew is New that panics on an invalid policy
func MustNew(p *scoring.Policy, opts ...Option) *Engine {
	e, err := New(p, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Policy returns the scoring policy in use
func (e *Engine) Policy() *scoring.Policy {
	return e.policy
}
