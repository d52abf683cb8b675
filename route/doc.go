// SPDX-License-Identifier: MIT

// Package route plans priced routes over a core.Graph.
//
// A Planner binds a graph and a fitness function. Plan runs
// dijkstra.ShortestPath, sums the edge costs along the result and returns an
// immutable Route. Failure to find a path is reported through the Observer
// (signal "route.unreachable") and the boolean result, never as an error.
//
// PlanAll fans a batch of pairs out over an errgroup; it relies on concurrent
// read-only graph access being safe.
package route
