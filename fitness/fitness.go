// SPDX-License-Identifier: MIT
// Package fitness defines the edge-cost function contract and stock cost
// functions over core.Attrs.
//
// A cost function maps one edge attribute record to a non-negative scalar.
// The same function must be used for planning and allocation within one
// planner/allocator instance. Blocked edges are not removed from the graph;
// they are priced at the Blocked sentinel instead, so a search only uses them
// when nothing else reaches the destination.
package fitness

import "github.com/katalvlaran/lvroute/core"

// Blocked is the "effectively infinite" cost assigned to impassable edges.
// It is large enough to dominate any realistic path yet far from
// math.MaxFloat64, so sums of a few blocked edges stay comparable.
const Blocked = 1e12

// Func maps an edge attribute record to a non-negative cost.
// Negative results are a precondition violation: shortest-path behavior is
// undefined for them.
type Func[A any] func(attrs A) float64

// TimeRisk returns cost = time + riskWeight*risk, or Blocked for blocked edges.
func TimeRisk(riskWeight float64) Func[core.Attrs] {
	return func(a core.Attrs) float64 {
		if a.Blocked {
			return Blocked
		}

		return a.Time + riskWeight*a.Risk
	}
}

// Time prices an edge by its traversal time alone.
func Time() Func[core.Attrs] {
	return TimeRisk(0)
}

// Distance prices an edge by its physical length, or Blocked.
func Distance() Func[core.Attrs] {
	return func(a core.Attrs) float64 {
		if a.Blocked {
			return Blocked
		}

		return a.Distance
	}
}

// Constant prices every edge at c (hop counting when c == 1).
func Constant[A any](c float64) Func[A] {
	return func(A) float64 { return c }
}

// Penalize wraps base so that edges matching blocked cost Blocked.
// Use it to close edges for one planning session without mutating the graph.
func Penalize[A any](base Func[A], blocked func(A) bool) Func[A] {
	return func(a A) float64 {
		if blocked(a) {
			return Blocked
		}

		return base(a)
	}
}
