// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path search over a core.Graph with a pluggable cost function.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are not expanded.
//	– InfEdgeThreshold: edges whose cost is >= this threshold are treated as impassable.
//	– EdgeFilter:       predicate that can veto individual edges (e.g. saturated capacity).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNilCost         if the provided cost function is nil.
//	– ErrEmptyNode       if the start or end ID is empty.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic in WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance assigned to nodes that have not been reached.
// It is the largest finite float64 rather than +Inf so it stays comparable.
const Unreachable = math.MaxFloat64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilCost indicates that a nil cost function was passed.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrEmptyNode indicates that the start or end node ID is empty.
	ErrEmptyNode = errors.New("dijkstra: node ID is empty")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge (including zero-cost edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// EdgeFilter reports whether the edge from→to may be traversed.
type EdgeFilter func(from, to string) bool

// Options configures the behavior of the search.
//
// MaxDistance      – nodes whose distance exceeds this value are not expanded.
//
//	Must be ≥ 0. Default is Unreachable (no cap).
//
// InfEdgeThreshold – edges whose cost is ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (no edge is skipped by cost alone).
//
// Filter           – optional edge veto; nil allows every edge.
type Options struct {
	MaxDistance      float64    // Maximum distance to expand
	InfEdgeThreshold float64    // Cost threshold above which edges are non-traversable
	Filter           EdgeFilter // Optional per-edge veto
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are never expanded,
// so targets beyond it are reported unreachable.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which edges are
// considered non-traversable. Use it together with fitness.Blocked to turn
// "very expensive" into "absent".
// Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithEdgeFilter installs an edge veto. Several filters compose with AND.
func WithEdgeFilter(f EdgeFilter) Option {
	return func(o *Options) {
		if f == nil {
			return
		}
		prev := o.Filter
		if prev == nil {
			o.Filter = f
			return
		}
		o.Filter = func(from, to string) bool { return prev(from, to) && f(from, to) }
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxDistance:      Unreachable (no distance limit).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Filter:           nil (all edges allowed).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Unreachable,
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the outcome of a full single-source Search.
type Result struct {
	// Source is the start node of the search.
	Source string

	// Dist maps every known node to its distance from Source
	// (Unreachable if it was never reached).
	Dist map[string]float64

	// Prev maps each reached node (except Source) to its predecessor.
	Prev map[string]string
}

// Reachable reports whether id was reached from Source.
func (r *Result) Reachable(id string) bool {
	d, ok := r.Dist[id]

	return ok && d < Unreachable
}

// PathTo rebuilds the path Source→…→id. It returns nil when id was not reached.
func (r *Result) PathTo(id string) []string {
	if id == r.Source {
		return []string{id}
	}
	if !r.Reachable(id) {
		return nil
	}

	return reconstruct(r.Prev, r.Source, id)
}
