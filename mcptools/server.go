// Package mcptools exposes a loaded scenario to agents over the Model
// Context Protocol: a plan_route tool, an allocate_flow tool and the
// scenario itself as a resource.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/katalvlaran/lvroute/allocate"
	"github.com/katalvlaran/lvroute/flow"
	"github.com/katalvlaran/lvroute/observe"
	"github.com/katalvlaran/lvroute/route"
	"github.com/katalvlaran/lvroute/scenario"
)

// ScenarioURI names the scenario resource.
const ScenarioURI = "lvroute://scenario"

// Server adapts a scenario document to MCP.
type Server struct {
	mcpServer *server.MCPServer
	doc       *scenario.Document
	obs       observe.Observer
}

// NewServer registers the tools and resource for doc. A nil logger means
// slog.Default.
func NewServer(doc *scenario.Document, version string, logger *slog.Logger) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("lvroute", version),
		doc:       doc,
		obs:       observe.NewLogger(logger),
	}
	s.registerResources()
	s.registerTools()

	return s
}

// Serve runs the server on stdio until stdin closes.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// MCPServer returns the underlying server, e.g. for an SSE transport.
func (s *Server) MCPServer() *server.MCPServer { return s.mcpServer }

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		ScenarioURI,
		"Routing scenario",
		mcp.WithResourceDescription("The graph, assets, demands and capacities the tools operate on"),
		mcp.WithMIMEType("application/yaml"),
	), s.handleReadScenario)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"plan_route",
		mcp.WithDescription("Find the least-cost route between two nodes of the scenario graph."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start node ID")),
		mcp.WithString("end", mcp.Required(), mcp.Description("Destination node ID")),
	), s.handlePlanRoute)

	s.mcpServer.AddTool(mcp.NewTool(
		"allocate_flow",
		mcp.WithDescription("Assign asset capacity to demands along least-cost routes, highest priority first. Returns allocations and per-demand shortfall as JSON."),
		mcp.WithBoolean("residual_routing", mcp.Description("Route around saturated edges and run repeated passes (default false)")),
		mcp.WithBoolean("bound", mcp.Description("Also report the max-flow upper bound (default false)")),
		mcp.WithString("bound_algo",
			mcp.Description("Max-flow algorithm for the bound"),
			mcp.Enum(string(flow.AlgorithmDinic), string(flow.AlgorithmEdmondsKarp)),
			mcp.DefaultString(string(flow.DefaultAlgorithm)),
		),
	), s.handleAllocateFlow)
}

func (s *Server) handleReadScenario(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := scenario.Marshal(s.doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/yaml",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handlePlanRoute(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := mcp.ParseString(request, "start", "")
	end := mcp.ParseString(request, "end", "")
	if start == "" || end == "" {
		return mcp.NewToolResultError("start and end are required"), nil
	}

	p, err := s.doc.Planner(route.WithObserver(s.obs))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scenario error: %v", err)), nil
	}
	r, ok := p.Plan(start, end)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no route from %s to %s", start, end)), nil
	}

	return mcp.NewToolResultText(r.String()), nil
}

// allocationResult is the JSON body of allocate_flow.
type allocationResult struct {
	Allocations []allocate.Allocation `json:"allocations"`
	Report      allocate.Report       `json:"report"`
	Bound       *float64              `json:"bound,omitempty"`
}

func (s *Server) handleAllocateFlow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	algo, err := flow.ParseAlgorithm(mcp.ParseString(request, "bound_algo", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := []allocate.Option{allocate.WithObserver(s.obs)}
	if mcp.ParseBoolean(request, "residual_routing", false) {
		opts = append(opts, allocate.WithResidualRouting())
	}

	allocs, err := s.doc.Allocate(opts...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scenario error: %v", err)), nil
	}
	if allocs == nil {
		allocs = []allocate.Allocation{}
	}
	res := allocationResult{Allocations: allocs, Report: allocate.Summarize(allocs, s.doc.Demands)}

	if mcp.ParseBoolean(request, "bound", false) {
		bound, err := s.doc.UpperBound(ctx, allocate.WithMaxFlowAlgorithm(algo))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("bound error: %v", err)), nil
		}
		res.Bound = &bound
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal allocations: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}
