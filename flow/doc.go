// Package flow implements maximum-flow algorithms over a Network, a plain
// directed capacity map with real-valued capacities.
//
// The algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E) for the residual copy and BFS queue.
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS.
//
//   - Time:   O(V² · E); close to O(E · √V) in practice.
//
//   - Memory: O(V + E) for the residual copy, level and iterator maps.
//
// Both saturate the bottleneck arc of every augmenting path exactly, which
// bounds the augmentation count for real-valued capacities. Plain
// depth-first Ford–Fulkerson has no such bound and is not provided.
//
// # Network
//
//	n := flow.NewNetwork()
//	n.AddArc("s", "a", 3.5) // parallel arcs aggregate, self-loops are ignored
//
// The input network is never modified; each run works on a residual copy
// whose neighbor lists are sorted, so results are reproducible.
//
// # API
//
//	func EdmondsKarp(ctx context.Context, n Network, source, sink string, opts *Options) (float64, error)
//	func Dinic(ctx context.Context, n Network, source, sink string, opts *Options) (float64, error)
//	func MaxFlow(ctx context.Context, algo Algorithm, n Network, source, sink string, opts *Options) (float64, error)
//
// MaxFlow dispatches on an Algorithm name ("dinic" or "edmonds_karp"), which
// lets callers pick the algorithm from configuration. ParseAlgorithm maps
// user input to an Algorithm; the empty string selects DefaultAlgorithm.
//
// A nil *Options means DefaultOptions(): Epsilon = 1e-9, no forced level rebuilds.
//
// # Errors
//
//	ErrSourceNotFound - if the source node is missing.
//	ErrSinkNotFound   - if the sink node is missing.
//	EdgeError         - if a negative (beyond Epsilon) or NaN capacity is encountered.
//	ErrUnknownAlgorithm - if MaxFlow is asked for an algorithm it does not know.
//	context.Canceled / context.DeadlineExceeded - if ctx is done.
//
// The allocate package uses this to compute an upper bound on how much demand
// an allocation could serve under the given edge capacities.
package flow
