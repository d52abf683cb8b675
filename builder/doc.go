// Package builder generates deterministic core.Graph[core.Attrs] topologies
// for benchmarks, examples and the "lvroute generate" command.
//
//	g, err := builder.Grid(20, 20, builder.WithSeed(7))
//
// Constructors:
//
//   - Path(n):             0→1→…→n-1
//   - Grid(rows, cols):    "r,c" cells linked to right/bottom neighbors both ways
//   - RandomSparse(n, p):  each ordered pair becomes an edge with probability p
//
// Every build is seeded (WithSeed, WithRand; seed 1 by default) and edge
// attributes come from WithAttrFn (DefaultAttrFn otherwise), so the same
// options always yield the same graph.
package builder
