// Package dijkstra implements Dijkstra's shortest-path search on a core.Graph
// whose edge costs come from a caller-supplied fitness function.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each successful relaxation pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - Costs are evaluated lazily, edge by edge, as the frontier reaches them.
//   - Negative costs are NOT validated: they are a documented precondition
//     violation and the result is undefined (but the search always terminates).
//   - Ties are broken by node ID: the heap orders by (distance, ID), and
//     neighbors are relaxed in ascending ID order with a strict "<" test.
//   - We use a "lazy" decrease-key strategy: duplicates are pushed and stale
//     entries are ignored when popped.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/fitness"
)

// ShortestPath returns the least-cost node sequence start→…→end, both
// endpoints included. It returns an empty (nil) slice when end cannot be
// reached, when either endpoint is unknown to g, or when every path exceeds
// the configured MaxDistance. start == end yields the single-node path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. cost must be non-nil (ErrNilCost).
//  3. start and end must be non-empty (ErrEmptyNode).
//
// Unreachability is not an error.
func ShortestPath[A any](
	g *core.Graph[A],
	start, end string,
	cost fitness.Func[A],
	opts ...Option,
) ([]string, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if start == "" || end == "" {
		return nil, ErrEmptyNode
	}

	// 2) Unknown endpoints can never be connected.
	if !g.Known(start) || !g.Known(end) {
		return nil, nil
	}

	// 3) Degenerate route.
	if start == end {
		return []string{start}, nil
	}

	// 4) Run the search, stopping as soon as end is finalized.
	r := newRunner(g, start, cost, opts)
	if !r.run(end) {
		return nil, nil
	}

	return reconstruct(r.prev, start, end), nil
}

// Search computes shortest distances from source to every known node.
// Nodes that cannot be reached keep distance Unreachable.
//
// Errors: ErrNilGraph, ErrNilCost, ErrEmptyNode. An unknown source is not an
// error; every distance other than the source's own is then Unreachable.
func Search[A any](
	g *core.Graph[A],
	source string,
	cost fitness.Func[A],
	opts ...Option,
) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil {
		return nil, ErrNilCost
	}
	if source == "" {
		return nil, ErrEmptyNode
	}

	r := newRunner(g, source, cost, opts)
	r.run("")

	// Fill in the unreached nodes so callers see every known ID.
	known := g.KnownNodes()
	dist := make(map[string]float64, len(known))
	for _, id := range known {
		dist[id] = Unreachable
	}
	for id, d := range r.dist {
		dist[id] = d
	}

	return &Result{Source: source, Dist: dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single search execution.
type runner[A any] struct {
	g       *core.Graph[A]     // The input graph; read-only within the search.
	cost    fitness.Func[A]    // Edge cost function.
	options Options            // Thresholds and filters.
	dist    map[string]float64 // Best-known distance; absent means Unreachable.
	prev    map[string]string  // Predecessor on the best-known path.
	visited map[string]bool    // Finalized nodes.
	pq      nodePQ             // Min-heap of *nodeItem.
}

// newRunner applies options and seeds the heap with the source at distance 0.
func newRunner[A any](g *core.Graph[A], source string, cost fitness.Func[A], opts []Option) *runner[A] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[A]{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})

	return r
}

// run is the core loop. It repeatedly finalizes the closest unvisited node and
// relaxes its outgoing edges. If target is non-empty it returns true as soon as
// target is finalized; otherwise it drains the reachable region and returns false.
//
// Loop termination conditions:
//
//   - The heap becomes empty (every remaining node is Unreachable).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - target is finalized.
func (r *runner[A]) run(target string) bool {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (distance, ID) item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 2) Skip stale heap entries.
		if r.visited[u] || d > r.distOf(u) {
			continue
		}

		// 3) Nothing closer is left than the cap: stop.
		if d > r.options.MaxDistance {
			return false
		}

		// 4) Finalize u.
		r.visited[u] = true
		if u == target {
			return true
		}

		// 5) Relax outgoing edges.
		r.relax(u, d)
	}

	return false
}

// relax tries to improve the distance of every unvisited neighbor of u.
func (r *runner[A]) relax(u string, du float64) {
	for _, e := range r.g.OutEdges(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		if r.options.Filter != nil && !r.options.Filter(u, v) {
			continue
		}

		w := r.cost(e.Attrs)
		// Impassable by threshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Strict "<" keeps the first (smallest-ID) predecessor on ties.
		alt := du + w
		if !(alt < r.distOf(v)) {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: alt})
	}
}

// distOf returns the best-known distance of id, or Unreachable.
func (r *runner[A]) distOf(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return Unreachable
}

// reconstruct walks prev back from end to start and returns start→end order.
func reconstruct(prev map[string]string, start, end string) []string {
	path := []string{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string  // node ID
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by ID for a deterministic tie-break.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
