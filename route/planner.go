// SPDX-License-Identifier: MIT
package route

import (
	"errors"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/fitness"
)

// Sentinel errors returned by NewPlanner.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNilCost indicates that a nil cost function was passed.
	ErrNilCost = errors.New("route: cost function is nil")
)

// defaultConcurrency bounds PlanAll when WithConcurrency is not given.
const defaultConcurrency = 8

// PlannerOptions holds Planner configuration.
type PlannerOptions struct {
	Observer    Observer          // receives route.planned / route.unreachable
	Concurrency int               // PlanAll worker limit, > 0
	Search      []dijkstra.Option // forwarded to every ShortestPath call
}

// PlannerOption configures a Planner.
type PlannerOption func(*PlannerOptions)

// WithObserver installs o. A nil o keeps the current observer.
func WithObserver(o Observer) PlannerOption {
	return func(p *PlannerOptions) {
		if o != nil {
			p.Observer = o
		}
	}
}

// WithConcurrency limits the number of PlanAll workers. n must be > 0.
func WithConcurrency(n int) PlannerOption {
	return func(p *PlannerOptions) {
		if n <= 0 {
			panic("route: concurrency must be positive")
		}
		p.Concurrency = n
	}
}

// WithSearchOptions forwards dijkstra options to every search.
func WithSearchOptions(opts ...dijkstra.Option) PlannerOption {
	return func(p *PlannerOptions) {
		p.Search = append(p.Search, opts...)
	}
}

// Planner wraps shortest-path search and prices the result.
// It keeps no state between calls and is safe for concurrent use as long as
// the graph is not mutated concurrently.
type Planner[A any] struct {
	g    *core.Graph[A]
	cost fitness.Func[A]
	opts PlannerOptions
}

// NewPlanner binds a graph and a cost function.
func NewPlanner[A any](g *core.Graph[A], cost fitness.Func[A], opts ...PlannerOption) (*Planner[A], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cost == nil {
		return nil, ErrNilCost
	}

	cfg := PlannerOptions{Observer: nopObserver{}, Concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Planner[A]{g: g, cost: cost, opts: cfg}, nil
}

// Graph returns the bound graph.
func (p *Planner[A]) Graph() *core.Graph[A] { return p.g }

// Plan returns the least-cost route start→end.
//
// When no path exists (unknown endpoint, disconnected, empty id) it reports
// RouteUnreachable and returns (Route{}, false). Otherwise the route cost is the
// sum of the edge costs along the path, negative contributions skipped.
func (p *Planner[A]) Plan(start, end string) (Route, bool) {
	path, err := dijkstra.ShortestPath(p.g, start, end, p.cost, p.opts.Search...)
	if err != nil || len(path) == 0 {
		p.opts.Observer.RouteUnreachable(start, end)
		return Route{}, false
	}

	r := Route{path: path, cost: PathCost(p.g, path, p.cost)}
	p.opts.Observer.RoutePlanned(start, end, r)

	return r, true
}

// PathCost sums cost over consecutive pairs of path. Missing edges and
// negative contributions add nothing.
func PathCost[A any](g *core.Graph[A], path []string, cost fitness.Func[A]) float64 {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		attrs, ok := g.EdgeAttributes(path[i], path[i+1])
		if !ok {
			continue
		}
		if c := cost(attrs); c > 0 {
			total += c
		}
	}

	return total
}
