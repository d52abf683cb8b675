// Package core provides a thread-safe, in-memory directed graph whose edges
// carry an arbitrary attribute record.
//
// The Graph G = (V,E) is parameterised by the edge attribute type A:
//
//   - Node[A]{ID, Edges}: a vertex and its outgoing edges, keyed by neighbor ID.
//   - Graph[A]: node catalog plus the derived adjacency view
//     adjacency[from][to] = attrs, rebuilt for a node whenever it is added.
//   - Attrs: the stock attribute record {Time, Risk, Distance, Blocked}.
//
// Why a type parameter?
//
//   - Cost functions receive the concrete attribute type, so there are no
//     stringly-typed lookups on the hot path.
//   - The graph itself never interprets attributes; it only stores and returns them.
//
// Known vs. registered nodes:
//
//	An edge may point at an ID that was never added as a Node. Such an ID is
//	"known" (Known, KnownNodes) and can be a search destination; it simply has
//	no outgoing edges. HasNode reports registration only.
//
// Core Methods:
//
//	AddNode(n *Node[A]) error                 // O(deg n), overwrite semantics
//	AddEdge(from, to string, attrs A) error   // O(deg from)
//	EdgeAttributes(from, to) (A, bool)        // O(1)
//	OutEdges(id) []Edge[A]                    // O(d log d), sorted by target
//	Neighbors(id) []string                    // O(d log d), sorted
//	Nodes() / KnownNodes() []string           // sorted
//	Stats() GraphStats                        // O(V+T)
//
// Concurrency:
//
//	One sync.RWMutex guards the graph. Insert every node before the first
//	query; after that, any number of goroutines may search concurrently.
//
// Errors:
//
//	ErrNilNode, ErrEmptyNodeID, ErrEmptyNeighborID, ErrNodeNotFound.
package core
