// SPDX-License-Identifier: MIT
package allocate

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/fitness"
)

// Allocator greedily routes asset supply to prioritized demands over shared
// edge capacities. It holds only the graph, the cost function and options;
// all per-run state lives inside Allocate, so one Allocator may serve
// concurrent calls.
type Allocator[A any] struct {
	g    *core.Graph[A]
	cost fitness.Func[A]
	opts Options
}

// New binds a graph and a cost function.
func New[A any](g *core.Graph[A], cost fitness.Func[A], opts ...Option) (*Allocator[A], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil {
		return nil, ErrNilCost
	}

	return &Allocator[A]{g: g, cost: cost, opts: buildOptions(opts)}, nil
}

// Options returns the effective configuration.
func (a *Allocator[A]) Options() Options { return a.opts }

// run is the per-call ledger.
type run struct {
	caps      Capacities
	used      map[EdgeKey]float64
	untracked float64
}

// residual is what e may still carry. A NaN capacity carries nothing.
func (r *run) residual(e EdgeKey) float64 {
	c, ok := r.caps[e]
	if !ok {
		c = r.untracked
	}
	free := c - r.used[e]
	if !(free > 0) {
		return 0
	}

	return free
}

// pathResidual is the minimum residual over the edges of path.
// A single-node path has no edge constraint.
func (r *run) pathResidual(path []string) float64 {
	best := math.Inf(1)
	for _, e := range pathEdges(path) {
		best = math.Min(best, r.residual(e))
	}

	return best
}

func (r *run) commit(path []string, amount float64) {
	for _, e := range pathEdges(path) {
		r.used[e] += amount
	}
}

// Allocate serves demands from assets and returns the committed allocations
// in production order.
//
// Implementation:
//   - Stage 1: copy assets, demands and caps; caller data is never mutated.
//   - Stage 2: stable-sort demands by descending Priority.
//   - Stage 3: for each demand, try assets in input order. For each asset
//     with remaining capacity, find the shortest path origin→demand node,
//     take min(demand left, asset left, path residual), record and commit it.
//     Entities with empty node IDs, or with amounts that are non-positive,
//     NaN or infinite, are skipped. A NaN Priority ranks below every number.
//   - Stage 4: with residual routing, repeat stage 3 for the same demand
//     while a pass made progress and the demand is still unmet.
//
// Nothing here is an error: unreachable demands, exhausted capacity and
// malformed entities simply yield fewer allocations.
//
// Complexity: O(D · A · P · S) where S is one shortest-path search and P
// the number of passes (1 without residual routing).
func (a *Allocator[A]) Allocate(assets []Asset, demands []Demand, caps Capacities) []Allocation {
	eps := a.opts.Epsilon

	// Stage 1: private copies.
	left := make([]float64, len(assets))
	for i, as := range assets {
		if usable(as.Capacity, eps) {
			left[i] = as.Capacity
		}
	}
	ordered := make([]Demand, len(demands))
	copy(ordered, demands)
	r := &run{caps: caps.Clone(), used: make(map[EdgeKey]float64), untracked: a.opts.UntrackedCapacity}

	// Stage 2: priority order, ties keep input order.
	sort.SliceStable(ordered, func(i, j int) bool { return rank(ordered[i].Priority) > rank(ordered[j].Priority) })

	search := a.opts.Search
	if a.opts.ResidualRouting {
		search = append(append([]dijkstra.Option(nil), search...),
			dijkstra.WithEdgeFilter(func(from, to string) bool {
				return r.residual(EdgeKey{From: from, To: to}) > eps
			}))
	}

	var out []Allocation
	for _, d := range ordered {
		if !usable(d.Amount, eps) || d.Node == "" {
			continue
		}
		remaining := d.Amount

		// Stages 3 and 4.
		for {
			progress := false
			for i, as := range assets {
				if remaining <= eps {
					break
				}
				if left[i] <= eps || as.Origin == "" {
					continue
				}

				path, err := dijkstra.ShortestPath(a.g, as.Origin, d.Node, a.cost, search...)
				if err != nil || len(path) == 0 {
					continue
				}

				amount := math.Min(math.Min(remaining, left[i]), r.pathResidual(path))
				if !(amount > eps) {
					continue
				}

				out = append(out, Allocation{AssetID: as.ID, DemandID: d.ID, Path: path, Amount: amount})
				r.commit(path, amount)
				remaining -= amount
				left[i] -= amount
				progress = true

				a.opts.Observer.Allocated(Event{
					Asset:  as.ID,
					Demand: d.ID,
					Path:   append([]string(nil), path...),
					Amount: amount,
				})
			}
			if !a.opts.ResidualRouting || !progress || remaining <= eps {
				break
			}
		}
	}

	return out
}

// usable reports whether x is a finite amount above eps.
func usable(x, eps float64) bool {
	return x > eps && !math.IsInf(x, 1)
}

// rank maps a NaN priority to -Inf, keeping the sort comparator a strict
// weak ordering.
func rank(p float64) float64 {
	if math.IsNaN(p) {
		return math.Inf(-1)
	}

	return p
}
