package flow

import (
	"errors"
	"fmt"
	"sort"
)

// ErrSourceNotFound is returned when the specified source node is missing.
var ErrSourceNotFound = errors.New("flow: source node not found")

// ErrSinkNotFound is returned when the specified sink node is missing.
var ErrSinkNotFound = errors.New("flow: sink node not found")

// EdgeError is returned when an arc has a negative or NaN capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on arc %q→%q: %g", e.From, e.To, e.Cap)
}

// Network is a directed capacity network: n[u][v] is the capacity of u→v.
// Every node, including pure sinks, has an (possibly empty) inner map.
type Network map[string]map[string]float64

// NewNetwork returns an empty network.
func NewNetwork() Network {
	return make(Network)
}

// AddNode registers id with no arcs. Existing arcs are kept.
func (n Network) AddNode(id string) {
	if _, ok := n[id]; !ok {
		n[id] = make(map[string]float64)
	}
}

// AddArc adds capacity c to from→to, registering both endpoints.
// Parallel arcs aggregate. Self-loops register the node but carry no capacity.
func (n Network) AddArc(from, to string, c float64) {
	n.AddNode(from)
	n.AddNode(to)
	if from == to {
		return
	}
	n[from][to] += c
}

// HasNode reports whether id is registered.
func (n Network) HasNode(id string) bool {
	_, ok := n[id]

	return ok
}

// Nodes returns all node IDs in ascending order.
func (n Network) Nodes() []string {
	ids := make([]string, 0, len(n))
	for id := range n {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Options configures all max-flow algorithms.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type Options struct {
	Epsilon              float64
	LevelRebuildInterval int
}

// DefaultOptions returns Epsilon = 1e-9 and no forced level rebuilds.
func DefaultOptions() *Options {
	return &Options{Epsilon: 1e-9}
}

// normalize fills zero values with defaults. A nil receiver yields defaults.
func (o *Options) normalize() Options {
	if o == nil {
		return *DefaultOptions()
	}
	out := *o
	if out.Epsilon <= 0 {
		out.Epsilon = 1e-9
	}

	return out
}
