package hecke

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/hecke/core"
	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/laurent"
	"github.com/katalvlaran/hecke/matrix"
	"github.com/katalvlaran/hecke/progress"
)

// Option configures an Algebra at construction.
type Option func(*Algebra)

// WithObserver installs a progress observer for basis, digraph and order
// construction. A nil observer disables reporting.
func WithObserver(obs progress.Observer) Option {
	return func(a *Algebra) {
		if obs == nil {
			obs = progress.Nop
		}
		a.observer = obs
	}
}

// WithContext bounds basis, digraph and order construction by ctx. Once a
// build stops on cancellation its error is cached like any other build
// error, so a canceled Algebra should be discarded.
func WithContext(ctx context.Context) Option {
	return func(a *Algebra) {
		if ctx == nil {
			ctx = context.Background()
		}
		a.ctx = ctx
	}
}

// WithReportInterval sets the minimum gap between two progress reports of
// one stage. Default progress.DefaultInterval.
func WithReportInterval(d time.Duration) Option {
	return func(a *Algebra) { a.interval = d }
}

// Algebra is the Hecke algebra of one Coxeter group.
type Algebra struct {
	group    *coxeter.Group
	ctx      context.Context
	observer progress.Observer
	interval time.Duration

	// q⁻¹ − q, the quadratic-relation coefficient, and q − q⁻¹
	quad    laurent.Poly
	negQuad laurent.Poly

	klOnce sync.Once
	kl     *Basis
	klErr  error

	dualOnce sync.Once
	dual     *Basis
	dualErr  error

	graphOnce sync.Once
	graph     *core.Graph
	graphErr  error

	orderOnce   sync.Once
	left, right *matrix.Bool
	orderErr    error
}

// NewAlgebra returns the Hecke algebra of g.
func NewAlgebra(g *coxeter.Group, opts ...Option) (*Algebra, error) {
	if g == nil {
		return nil, ErrNilGroup
	}

	a := &Algebra{
		group:    g,
		ctx:      context.Background(),
		observer: progress.Nop,
		interval: progress.DefaultInterval,
		quad:     laurent.New(map[int]int64{-1: 1, 1: -1}),
	}
	a.negQuad = a.quad.Neg()
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Group returns the underlying Coxeter group.
func (a *Algebra) Group() *coxeter.Group { return a.group }

// Size returns the dimension of the algebra, |W|.
func (a *Algebra) Size() int { return a.group.Size() }

// lookup resolves name to an element index.
func (a *Algebra) lookup(name string) (int, error) {
	x, err := a.group.Element(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnknownElement, err)
	}

	return x.Index(), nil
}

// canceled wraps the context error of a build stage, if any.
func (a *Algebra) canceled(stage progress.Stage) error {
	if err := a.ctx.Err(); err != nil {
		return fmt.Errorf("hecke: %s: %w", stage, err)
	}

	return nil
}

func (a *Algebra) reporter(stage progress.Stage) *progress.Reporter {
	return progress.NewReporter(a.observer, stage, a.interval)
}
