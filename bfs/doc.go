// Package bfs grows fewest-hop trees over a core.Graph.
//
// Walk(ctx, g, root) visits every node reachable from root in non-decreasing
// hop count and records, per node, its hop depth and its parent in the tree.
// Edge attributes are ignored: every edge is one hop.
//
// Scenario lint builds one tree per asset origin. Depth answers "can any
// asset reach this demand", Order fixes the order in which reachable edges
// are reported, and PathTo prints the hop path that makes an edge relevant.
//
// Determinism: core.Graph.Neighbors is sorted ascending and Walk enqueues in
// that order, so Order, Depth and Parent are reproducible for a fixed graph.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors: ErrGraphNil, ErrRootNotFound, or ctx.Err() when ctx is cancelled
// mid-walk.
package bfs
