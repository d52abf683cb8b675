// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade used by the search packages.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import "sort"

// Edge is one outgoing edge as seen from its source node.
type Edge[A any] struct {
	// To is the target node ID.
	To string

	// Attrs is the edge attribute record passed to cost functions.
	Attrs A
}

// OutEdges returns the outgoing edges of id sorted by target ID ascending.
//
// Implementation:
//   - Stage 1: Acquire the read lock and copy adjacency[id] into a slice.
//   - Stage 2: Release the lock, then sort by To.
//
// Behavior highlights:
//   - Unknown and terminal nodes yield an empty (nil) slice, never an error.
//   - The fixed order is what makes shortest-path tie-breaking reproducible.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph[A]) OutEdges(id string) []Edge[A] {
	g.mu.RLock()
	row := g.adjacency[id]
	if len(row) == 0 {
		g.mu.RUnlock()
		return nil
	}
	out := make([]Edge[A], 0, len(row))
	for to, attrs := range row {
		out = append(out, Edge[A]{To: to, Attrs: attrs})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount     int // registered nodes
	KnownCount    int // registered nodes plus unregistered edge targets
	EdgeCount     int // directed edges
	TerminalCount int // known nodes without outgoing edges
}

// Stats produces a snapshot of catalog sizes under a single read lock.
// Complexity: O(V+T).
func (g *Graph[A]) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
	}
	st.KnownCount = len(g.nodes)
	for id := range g.targets {
		if _, registered := g.nodes[id]; !registered {
			st.KnownCount++
			st.TerminalCount++ // unregistered targets never have edges
		}
	}
	for id := range g.nodes {
		if len(g.adjacency[id]) == 0 {
			st.TerminalCount++
		}
	}

	return st
}
