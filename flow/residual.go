package flow

import (
	"context"
	"sort"
)

// residual is the mutable working copy used by every algorithm.
// rc[u][v] is the remaining capacity of u→v; reverse arcs are present
// (initially zero) so augmentations can cancel earlier flow.
type residual struct {
	rc   map[string]map[string]float64
	adj  map[string][]string // sorted neighbor lists, forward and reverse
	eps  float64
	size int
}

// buildResidual validates n and copies it into a residual network.
//
// Steps:
//  1. Check ctx for early cancellation.
//  2. For each node u in sorted order, reject capacities < -eps or NaN (EdgeError)
//     and copy capacities > eps, creating zero reverse arcs.
//  3. Sort neighbor lists so traversal order is deterministic.
//
// Complexity: O(V + E log d_max).
func buildResidual(ctx context.Context, n Network, eps float64) (*residual, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &residual{
		rc:   make(map[string]map[string]float64, len(n)),
		adj:  make(map[string][]string, len(n)),
		eps:  eps,
		size: len(n),
	}
	for u := range n {
		r.rc[u] = make(map[string]float64)
	}

	for _, u := range n.Nodes() {
		for v, c := range n[u] {
			if !(c >= -eps) {
				return nil, EdgeError{From: u, To: v, Cap: c}
			}
			if u == v || c <= eps {
				continue
			}
			if _, ok := r.rc[v]; !ok {
				r.rc[v] = make(map[string]float64)
			}
			r.rc[u][v] += c
			if _, ok := r.rc[v][u]; !ok {
				r.rc[v][u] = 0
			}
		}
	}

	for u, inner := range r.rc {
		nbrs := make([]string, 0, len(inner))
		for v := range inner {
			nbrs = append(nbrs, v)
		}
		sort.Strings(nbrs)
		r.adj[u] = nbrs
	}

	return r, nil
}

// push moves amount along u→v.
func (r *residual) push(u, v string, amount float64) {
	r.rc[u][v] -= amount
	r.rc[v][u] += amount
}

// validateEndpoints checks that source and sink are registered in n.
func validateEndpoints(n Network, source, sink string) error {
	if !n.HasNode(source) {
		return ErrSourceNotFound
	}
	if !n.HasNode(sink) {
		return ErrSinkNotFound
	}

	return nil
}
