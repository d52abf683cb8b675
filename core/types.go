// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Node types and provides
// thread-safe primitives for building and querying directed, attributed graphs.
//
// All core APIs share one sync.RWMutex: writers (AddNode, AddEdge) take the
// write lock, queries take the read lock, so a graph that is no longer being
// mutated can serve any number of concurrent shortest-path searches.
//
// This file declares Node, Attrs, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNilNode         - node pointer is nil.
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrEmptyNeighborID - an edge map contains an empty target ID.
//	ErrNodeNotFound    - requested node is not registered.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that a nil *Node was passed to AddNode.
	ErrNilNode = errors.New("core: node is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrEmptyNeighborID indicates that an edge points at an empty node ID.
	ErrEmptyNeighborID = errors.New("core: neighbor ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node that was never registered.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is a vertex together with its outgoing edges.
//
// ID uniquely identifies this Node within its Graph.
// Edges maps a neighbor ID to the attribute record of the edge ID→neighbor.
// Edges are directional: an entry A→B says nothing about B→A.
type Node[A any] struct {
	// ID is the unique identifier for this Node.
	ID string

	// Edges maps neighbor ID → edge attributes.
	Edges map[string]A
}

// NewNode returns a Node with an empty, non-nil edge map.
func NewNode[A any](id string) *Node[A] {
	return &Node[A]{ID: id, Edges: make(map[string]A)}
}

// Connect sets the edge n.ID→to and returns n for chaining.
func (n *Node[A]) Connect(to string, attrs A) *Node[A] {
	if n.Edges == nil {
		n.Edges = make(map[string]A)
	}
	n.Edges[to] = attrs

	return n
}

// Attrs is the concrete edge record used by the stock cost functions,
// scenario files and the HTTP/CLI surfaces.
//
// Generic graph code never looks inside an Attrs; only cost functions do.
type Attrs struct {
	// Time is the traversal time of the edge (minutes, by convention).
	Time float64 `yaml:"time" json:"time" validate:"gte=0,finite"`

	// Risk is a dimensionless hazard score.
	Risk float64 `yaml:"risk" json:"risk" validate:"gte=0,finite"`

	// Distance is an optional physical length.
	Distance float64 `yaml:"distance,omitempty" json:"distance,omitempty" validate:"gte=0,finite"`

	// Blocked marks the edge as impassable; cost functions map it to a sentinel.
	Blocked bool `yaml:"blocked,omitempty" json:"blocked,omitempty"`
}

// Graph is the core in-memory directed graph.
//
// nodes holds every registered Node; adjacency is the derived view
// node ID → {neighbor ID → attributes}, refreshed per node on insertion.
// targets counts, for every node ID, how many registered nodes point at it,
// so Known() can answer for edge targets that were never registered.
type Graph[A any] struct {
	mu sync.RWMutex // guards every field below

	nodes     map[string]*Node[A]     // node ID → Node (owned copies)
	adjacency map[string]map[string]A // from → to → attributes
	targets   map[string]int          // to → number of inbound adjacency entries
	edgeCount int                     // total number of adjacency entries
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[A any]() *Graph[A] {
	return &Graph[A]{
		nodes:     make(map[string]*Node[A]),
		adjacency: make(map[string]map[string]A),
		targets:   make(map[string]int),
	}
}
