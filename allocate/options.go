// SPDX-License-Identifier: MIT
package allocate

import (
	"errors"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/flow"
)

// DefaultEpsilon is the tolerance below which amounts count as zero.
const DefaultEpsilon = 1e-9

// SignalAllocation names the event emitted for every committed allocation.
const SignalAllocation = "route.allocation"

var (
	// ErrBadEpsilon indicates a non-positive epsilon (panic in WithEpsilon).
	ErrBadEpsilon = errors.New("allocate: epsilon must be positive")

	// ErrBadUntracked indicates a negative untracked capacity (panic in WithUntrackedCapacity).
	ErrBadUntracked = errors.New("allocate: untracked capacity must be non-negative")
)

// Event carries one committed allocation.
type Event struct {
	Asset  string
	Demand string
	Path   []string
	Amount float64
}

// Observer receives allocation events, fire-and-forget.
type Observer interface {
	Allocated(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e Event)

// Allocated implements Observer.
func (f ObserverFunc) Allocated(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Allocated(Event) {}

// Options configures an Allocator.
type Options struct {
	Observer          Observer
	Epsilon           float64
	UntrackedCapacity float64
	ResidualRouting   bool
	Search            []dijkstra.Option
	MaxFlow           flow.Algorithm
}

// Option configures an Allocator.
type Option func(*Options)

// DefaultOptions: no observer, Epsilon 1e-9, untracked edges carry nothing,
// routes ignore residual capacity, UpperBound runs flow.DefaultAlgorithm.
func DefaultOptions() Options {
	return Options{Observer: nopObserver{}, Epsilon: DefaultEpsilon, MaxFlow: flow.DefaultAlgorithm}
}

// WithObserver installs o. A nil o keeps the current observer.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}

// WithEpsilon sets the zero tolerance. Non-positive values panic.
func WithEpsilon(eps float64) Option {
	return func(opts *Options) {
		if eps <= 0 {
			panic(ErrBadEpsilon.Error())
		}
		opts.Epsilon = eps
	}
}

// WithUntrackedCapacity sets the capacity of edges absent from the capacity
// map. The default 0 blocks allocation over them. Negative values panic.
func WithUntrackedCapacity(c float64) Option {
	return func(opts *Options) {
		if c < 0 {
			panic(ErrBadUntracked.Error())
		}
		opts.UntrackedCapacity = c
	}
}

// WithResidualRouting makes every search skip edges whose residual capacity
// is exhausted, so later assets route around saturated edges.
func WithResidualRouting() Option {
	return func(opts *Options) { opts.ResidualRouting = true }
}

// WithSearchOptions forwards dijkstra options to every search.
func WithSearchOptions(o ...dijkstra.Option) Option {
	return func(opts *Options) { opts.Search = append(opts.Search, o...) }
}

// WithMaxFlowAlgorithm selects the algorithm UpperBound runs.
// Allocate and Verify ignore it.
func WithMaxFlowAlgorithm(algo flow.Algorithm) Option {
	return func(opts *Options) { opts.MaxFlow = algo }
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
