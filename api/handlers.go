package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/flow"
	"github.com/katalvlaran/lvroute/route"
	"github.com/katalvlaran/lvroute/scenario"
)

const tracerName = "github.com/katalvlaran/lvroute/api"

// HandleHealth handles GET /v1/health.
func (s *Server) HandleHealth(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if s.doc != nil {
		resp.Scenario = s.doc.Name
	}
	c.JSON(http.StatusOK, resp)
}

// HandlePlan handles POST /v1/plan.
//
// Response:
//
//	200 OK: PlanResponse
//	400 Bad Request: malformed body, missing or invalid scenario
//	500 Internal Server Error: planning aborted
func (s *Server) HandlePlan(c *gin.Context) {
	logger := s.requestLogger(c, "HandlePlan")
	ctx, span := otel.Tracer(tracerName).Start(c.Request.Context(), "api.Plan")
	defer span.End()

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: CodeInvalidRequest})
		return
	}

	doc, ok := s.resolve(c, req.Scenario, span)
	if !ok {
		return
	}
	pairs := req.Routes
	if len(pairs) == 0 {
		pairs = doc.Routes
	}

	var popts []route.PlannerOption
	popts = append(popts, route.WithObserver(s.observer(logger)))
	if s.concurrency > 0 {
		popts = append(popts, route.WithConcurrency(s.concurrency))
	}
	p, err := doc.Planner(popts...)
	if err != nil {
		s.fail(c, span, http.StatusBadRequest, CodeInvalidScenario, err)
		return
	}

	results, err := p.PlanAll(ctx, pairs)
	if err != nil {
		logger.Error("Plan failed", "error", err)
		s.fail(c, span, http.StatusInternalServerError, CodePlanFailed, err)
		return
	}

	reached := 0
	for _, r := range results {
		if r.OK {
			reached++
		}
	}
	span.SetAttributes(
		attribute.Int("routes.requested", len(pairs)),
		attribute.Int("routes.reached", reached),
	)
	span.SetStatus(codes.Ok, "")
	logger.Info("Planned routes", "requested", len(pairs), "reached", reached)

	c.JSON(http.StatusOK, PlanResponse{Results: results})
}

// HandleAllocate handles POST /v1/allocate.
//
// Response:
//
//	200 OK: AllocateResponse
//	400 Bad Request: malformed body, missing or invalid scenario
//	500 Internal Server Error: bound computation failed
func (s *Server) HandleAllocate(c *gin.Context) {
	logger := s.requestLogger(c, "HandleAllocate")
	ctx, span := otel.Tracer(tracerName).Start(c.Request.Context(), "api.Allocate")
	defer span.End()

	var req AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: CodeInvalidRequest})
		return
	}

	algo, err := flow.ParseAlgorithm(req.BoundAlgorithm)
	if err != nil {
		logger.Warn("Invalid bound algorithm", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: CodeInvalidRequest, Details: []string{err.Error()}})
		return
	}

	doc, ok := s.resolve(c, req.Scenario, span)
	if !ok {
		return
	}

	aopts := []allocate.Option{allocate.WithObserver(s.observer(logger))}
	if req.ResidualRouting {
		aopts = append(aopts, allocate.WithResidualRouting())
	}
	allocs, err := doc.Allocate(aopts...)
	if err != nil {
		s.fail(c, span, http.StatusBadRequest, CodeInvalidScenario, err)
		return
	}
	if allocs == nil {
		allocs = []allocate.Allocation{}
	}

	resp := AllocateResponse{
		Allocations: allocs,
		Report:      allocate.Summarize(allocs, doc.Demands),
	}
	if g, err := doc.Graph(); err == nil {
		findings, err := scenario.Lint(ctx, doc, g)
		if err != nil {
			logger.Error("Lint failed", "error", err)
			s.fail(c, span, http.StatusInternalServerError, CodeAllocateFailed, err)
			return
		}
		resp.Findings = findings
	}

	if req.Bound {
		bound, err := doc.UpperBound(ctx, allocate.WithMaxFlowAlgorithm(algo))
		if err != nil {
			logger.Error("Bound failed", "error", err)
			s.fail(c, span, http.StatusInternalServerError, CodeAllocateFailed, err)
			return
		}
		resp.Bound = &bound
		span.SetAttributes(
			attribute.Float64("allocate.bound", bound),
			attribute.String("allocate.bound_algorithm", string(algo)),
		)
	}

	span.SetAttributes(
		attribute.Int("allocate.count", len(allocs)),
		attribute.Float64("allocate.total", resp.Report.Allocated),
		attribute.Float64("allocate.shortfall", resp.Report.Shortfall),
	)
	span.SetStatus(codes.Ok, "")
	logger.Info("Allocated",
		"allocations", len(allocs),
		"allocated", resp.Report.Allocated,
		"shortfall", resp.Report.Shortfall)

	c.JSON(http.StatusOK, resp)
}

// resolve picks the request scenario or the server default and validates
// the former. It writes the error response itself and reports false.
func (s *Server) resolve(c *gin.Context, doc *scenario.Document, span trace.Span) (*scenario.Document, bool) {
	if doc == nil {
		if s.doc == nil {
			s.fail(c, span, http.StatusBadRequest, CodeNoScenario, errors.New("no scenario in request and no default configured"))
			return nil, false
		}
		return s.doc, true
	}

	if err := doc.Validate(); err != nil {
		resp := ErrorResponse{Error: err.Error(), Code: CodeInvalidScenario}
		var verr *scenario.ValidationError
		if errors.As(err, &verr) {
			resp.Error = scenario.ErrInvalid.Error()
			resp.Details = verr.Problems
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, CodeInvalidScenario)
		c.JSON(http.StatusBadRequest, resp)
		return nil, false
	}
	span.SetAttributes(attribute.String("scenario.name", doc.Name))

	return doc, true
}

func (s *Server) fail(c *gin.Context, span trace.Span, status int, code string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, code)
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
