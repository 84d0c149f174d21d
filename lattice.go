package lattice

import (
	"log/slog"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/internal/runtime"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/rng"
)

// Applier is the high-level entry point for the lattice library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Applier struct {
	runtime *runtime.Applier
	logger  *slog.Logger
	opts    []runtime.Option
}

// Option defines a functional option for configuring the Applier.
type Option func(*Applier)

// WithLogger sets a custom structured logger for the applier.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Applier) {
		a.logger = logger
	}
}

// WithBaseSeed overrides the base seed used when the RNG tracker is first
// installed (default rng.DefaultBaseSeed).
func WithBaseSeed(seed uint64) Option {
	return func(a *Applier) {
		a.opts = append(a.opts, runtime.WithBaseSeed(seed))
	}
}

// WithRNG binds the applier to a specific tracker registry instead of the
// package-wide default. Useful for tests and for hosts that scope RNG
// coordination per subsystem.
func WithRNG(registry *rng.Registry) Option {
	return func(a *Applier) {
		a.opts = append(a.opts, runtime.WithRNG(registry))
	}
}

// WithHooks registers observability callbacks fired on match and replace.
func WithHooks(hooks domain.Hooks) Option {
	return func(a *Applier) {
		a.opts = append(a.opts, runtime.WithHooks(hooks))
	}
}

// New initializes a new Applier.
func New(opts ...Option) *Applier {
	a := &Applier{}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logging.NewNop()
	}

	runtimeOpts := append([]runtime.Option{runtime.WithLogger(a.logger)}, a.opts...)
	a.runtime = runtime.NewApplier(runtimeOpts...)
	return a
}

// Apply resolves plan against the tree rooted at root on the given mesh
// and returns the (possibly replaced) root. See the package documentation
// for plan semantics.
func (a *Applier) Apply(root domain.Module, mesh domain.Mesh, plan domain.Plan) (domain.Module, error) {
	return a.runtime.Apply(root, mesh, plan)
}

// Apply is a convenience for one-off use with default settings, equivalent
// to New().Apply(root, mesh, plan).
func Apply(root domain.Module, mesh domain.Mesh, plan domain.Plan) (domain.Module, error) {
	return New().Apply(root, mesh, plan)
}
