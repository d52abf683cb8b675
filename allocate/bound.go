// SPDX-License-Identifier: MIT
package allocate

import (
	"context"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/flow"
)

// Reserved node IDs of the bound network. Graph IDs never contain NUL.
const (
	superSource = "\x00source"
	superSink   = "\x00sink"
)

// UpperBound returns the maximum total amount any capacity-respecting
// allocation could deliver: a max flow from a super-source feeding every
// asset origin (asset capacity) through the graph edges (edge capacity) to a
// super-sink fed by every demand node (demand amount).
//
// The greedy Allocate total never exceeds this value. It ignores costs and
// priorities and never changes an allocation. The max-flow algorithm is
// chosen with WithMaxFlowAlgorithm; an unknown one yields
// flow.ErrUnknownAlgorithm.
func UpperBound[A any](
	ctx context.Context,
	g *core.Graph[A],
	assets []Asset,
	demands []Demand,
	caps Capacities,
	opts ...Option,
) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	cfg := buildOptions(opts)

	// 1) Skeleton: both terminals always exist.
	n := flow.NewNetwork()
	n.AddNode(superSource)
	n.AddNode(superSink)

	// 2) Supply and demand arcs, skipping what Allocate would skip.
	for _, as := range assets {
		if as.Origin == "" || !usable(as.Capacity, cfg.Epsilon) {
			continue
		}
		n.AddArc(superSource, as.Origin, as.Capacity)
	}
	for _, d := range demands {
		if d.Node == "" || !usable(d.Amount, cfg.Epsilon) {
			continue
		}
		n.AddArc(d.Node, superSink, d.Amount)
	}

	// 3) Graph edges with their capacity; NaN and non-positive ones are dropped.
	for from, row := range g.Adjacency() {
		for to := range row {
			c, ok := caps[EdgeKey{From: from, To: to}]
			if !ok {
				c = cfg.UntrackedCapacity
			}
			if c > cfg.Epsilon {
				n.AddArc(from, to, c)
			}
		}
	}

	return flow.MaxFlow(ctx, cfg.MaxFlow, n, superSource, superSink, &flow.Options{Epsilon: cfg.Epsilon})
}
