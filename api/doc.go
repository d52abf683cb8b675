// Package api exposes the planner and allocator over HTTP with gin.
//
// Routes:
//
//	POST /v1/plan      plan route pairs over a scenario
//	POST /v1/allocate  run the greedy allocator, optionally with its max-flow bound
//	GET  /v1/health    liveness
//	GET  /metrics      Prometheus exposition
//
// Requests may carry a full scenario document; when they do not, the server's
// default scenario (WithScenario) is used. Every response carries an
// X-Request-ID header, echoed from the request when present.
package api
