// Package dijkstra provides Dijkstra's shortest-path search on core.Graph
// values whose edge costs are computed by a pluggable fitness function.
//
// Overview:
//
//   - ShortestPath(g, start, end, cost, opts...) returns the least-cost node
//     sequence start→end (both included), or an empty slice when end is unreachable.
//   - Search(g, source, cost, opts...) returns distances to every known node
//     and a predecessor map for path reconstruction.
//
// Distances are float64. Nodes that have not been reached carry Unreachable
// (math.MaxFloat64) rather than +Inf, so they remain comparable.
//
// Tie-breaking:
//
//   - The heap orders entries by (distance, node ID): among equally distant
//     frontier nodes the lexicographically smallest ID is finalized first.
//   - Neighbors are relaxed in ascending ID order with a strict "<" test, so the
//     first predecessor that reaches a node at a given distance keeps it.
//   - Together these make every result reproducible for a fixed graph and cost.
//
// Key options:
//
//   - WithMaxDistance(d):        do not expand nodes farther than d.
//   - WithInfEdgeThreshold(t):   skip edges whose cost is ≥ t (e.g. fitness.Blocked).
//   - WithEdgeFilter(f):         skip edges vetoed by f(from, to).
//
// Preconditions:
//
//   - Costs must be non-negative. This is documented, not validated: checking
//     would require evaluating every edge up front. With negative costs the
//     search still terminates, but the returned path is unspecified.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrNilCost, ErrEmptyNode: programmer errors only.
//     Unreachable destinations and unknown endpoints are NOT errors.
//
// Thread safety:
//
//   - Searches only read the graph. Concurrent searches over a graph that is
//     no longer being mutated are safe.
package dijkstra
