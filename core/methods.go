// SPDX-License-Identifier: MIT
// Package core: Graph method implementations
//
// This file provides the thread-safe node and edge operations on the Graph
// type defined in types.go. Adjacency is stored as a nested map:
// adjacency[from][to] = attrs, allowing constant-time lookup of any edge.

package core

import "sort"

// AddNode inserts n into the graph, replacing any node with the same ID,
// and refreshes the adjacency entry of n.ID from n.Edges.
//
// Implementation:
//   - Stage 1: Validate n (ErrNilNode, ErrEmptyNodeID, ErrEmptyNeighborID).
//   - Stage 2: Copy the edge map so later caller mutations do not leak in.
//   - Stage 3: Under the write lock, drop the previous adjacency of n.ID and install the new one.
//
// Behavior highlights:
//   - Neighbor IDs are NOT required to be registered; they become "known" targets.
//   - Overwriting a node replaces its outgoing edges entirely.
//
// Errors:
//   - ErrNilNode, ErrEmptyNodeID, ErrEmptyNeighborID.
//
// Complexity:
//   - Time O(deg(n)), Space O(deg(n)).
func (g *Graph[A]) AddNode(n *Node[A]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	// Copy edges up front, outside the lock.
	edges := make(map[string]A, len(n.Edges))
	for to, attrs := range n.Edges {
		if to == "" {
			return ErrEmptyNeighborID
		}
		edges[to] = attrs
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[n.ID] = &Node[A]{ID: n.ID, Edges: edges}
	g.refreshAdjacency(n.ID, edges)

	return nil
}

// AddEdge sets the single edge from→to, registering from if it is absent.
// Existing edges of from are kept; an existing from→to edge is overwritten.
//
// Errors:
//   - ErrEmptyNodeID if from is empty, ErrEmptyNeighborID if to is empty.
//
// Complexity: O(deg(from)) because the adjacency row is rebuilt.
func (g *Graph[A]) AddEdge(from, to string, attrs A) error {
	if from == "" {
		return ErrEmptyNodeID
	}
	if to == "" {
		return ErrEmptyNeighborID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[from]
	if !ok {
		n = &Node[A]{ID: from, Edges: make(map[string]A)}
		g.nodes[from] = n
	}
	n.Edges[to] = attrs
	g.refreshAdjacency(from, n.Edges)

	return nil
}

// EdgeAttributes returns the attributes of the edge from→to.
// The second result is false when no such edge exists. No traversal happens.
// Complexity: O(1).
func (g *Graph[A]) EdgeAttributes(from, to string) (A, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	attrs, ok := g.adjacency[from][to]

	return attrs, ok
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph[A]) HasEdge(from, to string) bool {
	_, ok := g.EdgeAttributes(from, to)

	return ok
}

// HasNode reports whether a node with the given ID was registered via AddNode/AddEdge.
// Complexity: O(1).
func (g *Graph[A]) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Known reports whether id is registered or is the target of at least one edge.
// Searches treat every known ID as a legal vertex; unregistered targets simply
// have no outgoing edges.
// Complexity: O(1).
func (g *Graph[A]) Known(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.knownLocked(id)
}

// Node returns a copy of the registered node id.
func (g *Graph[A]) Node(id string) (*Node[A], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	edges := make(map[string]A, len(n.Edges))
	for to, attrs := range n.Edges {
		edges[to] = attrs
	}

	return &Node[A]{ID: n.ID, Edges: edges}, true
}

// Nodes returns the IDs of all registered nodes, sorted ascending.
// Complexity: O(V log V).
func (g *Graph[A]) Nodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// KnownNodes returns registered nodes plus every edge target, sorted ascending.
// Complexity: O((V+T) log (V+T)).
func (g *Graph[A]) KnownNodes() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes)+len(g.targets))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	for id := range g.targets {
		if _, registered := g.nodes[id]; !registered {
			ids = append(ids, id)
		}
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Neighbors returns the IDs reachable by one outgoing edge from id, sorted ascending.
// Unknown or terminal nodes yield an empty slice.
// Complexity: O(d log d).
func (g *Graph[A]) Neighbors(id string) []string {
	g.mu.RLock()
	row := g.adjacency[id]
	out := make([]string, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph[A]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of directed edges.
func (g *Graph[A]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Adjacency returns a deep snapshot of the adjacency view:
// node ID → {neighbor ID → attributes}. Mutating it does not affect g.
// Complexity: O(V+E).
func (g *Graph[A]) Adjacency() map[string]map[string]A {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]A, len(g.adjacency))
	for from, row := range g.adjacency {
		cp := make(map[string]A, len(row))
		for to, attrs := range row {
			cp[to] = attrs
		}
		out[from] = cp
	}

	return out
}

// refreshAdjacency replaces adjacency[from] with edges and keeps the
// target counters and edge count consistent. Caller holds the write lock.
func (g *Graph[A]) refreshAdjacency(from string, edges map[string]A) {
	// 1) Retire the previous row.
	for to := range g.adjacency[from] {
		g.targets[to]--
		if g.targets[to] == 0 {
			delete(g.targets, to)
		}
		g.edgeCount--
	}

	// 2) Install the new row (always present, even if empty).
	row := make(map[string]A, len(edges))
	for to, attrs := range edges {
		row[to] = attrs
		g.targets[to]++
		g.edgeCount++
	}
	g.adjacency[from] = row
}

// knownLocked is Known without locking. Caller holds at least the read lock.
func (g *Graph[A]) knownLocked(id string) bool {
	if _, ok := g.nodes[id]; ok {
		return true
	}
	_, ok := g.targets[id]

	return ok
}
