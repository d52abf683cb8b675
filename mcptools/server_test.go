package mcptools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/scenario"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	doc, err := scenario.Load(filepath.Join("..", "scenario", "testdata", "hospital.yaml"))
	require.NoError(t, err)

	return NewServer(doc, "test", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func callTool(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", res.Content[0])

	return text.Text
}

func TestPlanRoute(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handlePlanRoute(context.Background(), callTool("plan_route", map[string]interface{}{
		"start": "Hub",
		"end":   "Hospital",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Hub → Highway → Hospital (cost 85)", resultText(t, res))
}

func TestPlanRoute_Unreachable(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handlePlanRoute(context.Background(), callTool("plan_route", map[string]interface{}{
		"start": "Hospital",
		"end":   "Hub",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "no route from Hospital to Hub")
}

func TestPlanRoute_MissingArgs(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handlePlanRoute(context.Background(), callTool("plan_route", map[string]interface{}{"start": "Hub"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestAllocateFlow(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleAllocateFlow(context.Background(), callTool("allocate_flow", map[string]interface{}{
		"bound": true,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out allocationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.Len(t, out.Allocations, 2)
	assert.Equal(t, "truck-1", out.Allocations[0].AssetID)
	assert.InDelta(t, 4.5, out.Report.Allocated, 1e-9)
	require.NotNil(t, out.Bound)
	assert.InDelta(t, 4.5, *out.Bound, 1e-9)
}

func TestAllocateFlow_BoundAlgorithm(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleAllocateFlow(context.Background(), callTool("allocate_flow", map[string]interface{}{
		"bound":      true,
		"bound_algo": "edmonds_karp",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	var out allocationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.NotNil(t, out.Bound)
	assert.InDelta(t, 4.5, *out.Bound, 1e-9)

	res, err = s.handleAllocateFlow(context.Background(), callTool("allocate_flow", map[string]interface{}{
		"bound":      true,
		"bound_algo": "simplex",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "unknown algorithm")
}

func TestReadScenario(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.handleReadScenario(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: ScenarioURI},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/yaml", text.MIMEType)

	back, err := scenario.Parse([]byte(text.Text))
	require.NoError(t, err)
	assert.Equal(t, "hospital", back.Name)
	assert.Len(t, back.Assets, 2)
}
