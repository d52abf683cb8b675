// Package scenario reads routing scenarios from YAML or JSON, validates them,
// and turns them into the graph, cost function and capacity map the planner
// and allocator consume.
//
//	cost: {risk_weight: 20}
//	nodes:
//	  - id: Hub
//	    edges: {Bridge: {time: 20, risk: 4}, Highway: {time: 35, risk: 1}}
//	assets:  [{id: truck-1, origin: Hub, capacity: 4}]
//	demands: [{id: d1, node: Shelter, amount: 6, priority: 1}]
//	capacities: {"Hub|Bridge": 5}
//
// Validation uses go-playground/validator struct tags plus a syntax check of
// capacity keys; every problem is collected into one *ValidationError.
// Lint goes further and reports entities the core would silently skip.
package scenario
