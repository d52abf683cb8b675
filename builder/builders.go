// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// builders.go: Path, Grid and RandomSparse constructors.
//
// Determinism:
//   • Nodes are created in index order; edges are emitted in a fixed order.
//   • Attributes come from cfg.attrFn(cfg.rng) in emission order, so a fixed
//     seed reproduces the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// File-local constants: method tags, minima, and ID format.
const (
	methodPath         = "Path"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
	minPathVertices    = 1
	minGridDim         = 1
	gridIDFmt          = "%d,%d" // "r,c" coordinate ID scheme
)

// Path builds the directed chain 0→1→…→n-1.
//
// Complexity: O(n).
func Path(n int, opts ...BuilderOption) (*core.Graph[core.Attrs], error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts)
	g := core.NewGraph[core.Attrs]()

	// 1) Register every node so a single-node path is still a graph.
	for i := 0; i < n; i++ {
		if err := g.AddNode(core.NewNode[core.Attrs](cfg.idFn(i))); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", methodPath, i, err)
		}
	}
	// 2) Chain edges in index order.
	for i := 0; i+1 < n; i++ {
		u, v := cfg.idFn(i), cfg.idFn(i+1)
		if err := g.AddEdge(u, v, cfg.attrFn(cfg.rng)); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, u, v, err)
		}
	}

	return g, nil
}

// Grid builds a rows×cols orthogonal grid with IDs "r,c". Every cell links
// to its right and bottom neighbors in both directions; each direction draws
// its own attributes.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...BuilderOption) (*core.Graph[core.Attrs], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts)
	g := core.NewGraph[core.Attrs]()

	// 1) Nodes in row-major order.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddNode(core.NewNode[core.Attrs](fmt.Sprintf(gridIDFmt, r, c))); err != nil {
				return nil, fmt.Errorf("%s: AddNode(%d,%d): %w", methodGrid, r, c, err)
			}
		}
	}

	// 2) For each cell: Right then Bottom, forward arc then mirror.
	link := func(u, v string) error {
		if err := g.AddEdge(u, v, cfg.attrFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, u, v, err)
		}
		if err := g.AddEdge(v, u, cfg.attrFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodGrid, v, u, err)
		}

		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := fmt.Sprintf(gridIDFmt, r, c)
			if c+1 < cols {
				if err := link(u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link(u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomSparse samples a directed Erdős–Rényi-like graph over n nodes: each
// ordered pair (i,j), i≠j, becomes an edge with probability p.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*core.Graph[core.Attrs], error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts)
	g := core.NewGraph[core.Attrs]()

	for i := 0; i < n; i++ {
		if err := g.AddNode(core.NewNode[core.Attrs](cfg.idFn(i))); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", methodRandomSparse, i, err)
		}
	}
	// Fixed trial order: i asc, then j asc.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || cfg.rng.Float64() >= p {
				continue
			}
			u, v := cfg.idFn(i), cfg.idFn(j)
			if err := g.AddEdge(u, v, cfg.attrFn(cfg.rng)); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, u, v, err)
			}
		}
	}

	return g, nil
}
