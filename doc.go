// Package lvroute plans least-cost routes over attributed directed graphs
// and greedily allocates asset capacity to prioritized demands along those
// routes, respecting per-edge capacities.
//
// The library is split into small packages, one concern each:
//
//	core/      Graph[A], Node[A], Attrs: thread-safe directed graph with edge attributes
//	fitness/   cost functions (TimeRisk, Time, Distance) and the Blocked sentinel
//	dijkstra/  single-source shortest paths with deterministic tie-breaking
//	route/     Route values and the Planner (single and batched queries)
//	allocate/  greedy capacitated Allocator, Verify, Summarize, UpperBound
//	flow/      float max-flow (Edmonds–Karp, Dinic) behind UpperBound
//	bfs/       hop reachability used by scenario lint
//	builder/   deterministic path, grid and random graphs
//	observe/   slog, Prometheus and in-memory observers for route signals
//	scenario/  YAML/JSON scenario documents, validation and lint
//	api/       gin HTTP API
//	mcptools/  MCP tool adapter
//	cmd/lvroute  cobra CLI
//
// Quick start:
//
//	g := core.NewGraph[core.Attrs]()
//	_ = g.AddEdge("Hub", "Highway", core.Attrs{Time: 35, Risk: 1})
//	_ = g.AddEdge("Highway", "Hospital", core.Attrs{Time: 10, Risk: 1})
//	p, _ := route.NewPlanner(g, fitness.TimeRisk(20))
//	r, ok := p.Plan("Hub", "Hospital") // Hub → Highway → Hospital (cost 85)
package lvroute
