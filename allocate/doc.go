// SPDX-License-Identifier: MIT

// Package allocate assigns limited transport capacity from supply assets to
// prioritized demands along least-cost routes.
//
// The Allocator is greedy: demands are served in descending priority order
// (stable), assets are tried in input order, and each (demand, asset) pair
// commits as much as the demand, the asset and the path's residual edge
// capacity allow. It is not a global optimizer; UpperBound computes the
// max-flow ceiling for comparison.
//
// Edge capacities are keyed by EdgeKey{From, To}. An edge missing from the
// capacity map carries WithUntrackedCapacity (0 by default), so untracked
// edges block allocation unless configured otherwise. A demand located at the
// asset origin is served without touching any edge.
//
// Verify and Summarize check and report an allocation after the fact.
package allocate
