package api

import (
	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/route"
	"github.com/katalvlaran/lvroute/scenario"
)

// Error codes carried by ErrorResponse.Code.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNoScenario      = "NO_SCENARIO"
	CodeInvalidScenario = "INVALID_SCENARIO"
	CodePlanFailed      = "PLAN_FAILED"
	CodeAllocateFailed  = "ALLOCATE_FAILED"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// PlanRequest asks for one route per pair. Routes defaults to the
// scenario's own route list.
type PlanRequest struct {
	Scenario *scenario.Document `json:"scenario,omitempty"`
	Routes   []route.Pair       `json:"routes,omitempty"`
}

// PlanResponse lists results in request order.
type PlanResponse struct {
	Results []route.Result `json:"results"`
}

// AllocateRequest runs the allocator over a scenario.
type AllocateRequest struct {
	Scenario        *scenario.Document `json:"scenario,omitempty"`
	ResidualRouting bool               `json:"residual_routing,omitempty"`
	Bound           bool               `json:"bound,omitempty"`
	// BoundAlgorithm picks the max-flow algorithm for Bound: "dinic"
	// (default) or "edmonds_karp".
	BoundAlgorithm string `json:"bound_algo,omitempty"`
}

// AllocateResponse carries allocations, the per-demand report, lint
// findings and, when requested, the max-flow bound.
type AllocateResponse struct {
	Allocations []allocate.Allocation `json:"allocations"`
	Report      allocate.Report       `json:"report"`
	Findings    []scenario.Finding    `json:"findings,omitempty"`
	Bound       *float64              `json:"bound,omitempty"`
}

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Scenario string `json:"scenario,omitempty"`
}
