package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/api"
	"github.com/katalvlaran/lvroute/observe"
	"github.com/katalvlaran/lvroute/scenario"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func hospital(t *testing.T) *scenario.Document {
	t.Helper()
	d, err := scenario.Load(filepath.Join("..", "scenario", "testdata", "hospital.yaml"))
	require.NoError(t, err)

	return d
}

func newServer(t *testing.T, opts ...api.Option) (*gin.Engine, *api.Server) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := api.NewServer(append([]api.Option{api.WithRegistry(prometheus.NewRegistry()), api.WithLogger(logger)}, opts...)...)

	return s.Router(), s
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHealth(t *testing.T) {
	r, _ := newServer(t, api.WithScenario(hospital(t)))
	w := do(t, r, http.MethodGet, "/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, api.HealthResponse{Status: "ok", Scenario: "hospital"}, resp)
	assert.NotEmpty(t, w.Header().Get(api.RequestIDHeader))
}

func TestRequestIDEchoed(t *testing.T) {
	r, _ := newServer(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set(api.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(api.RequestIDHeader))
}

func TestPlan_DefaultScenario(t *testing.T) {
	r, s := newServer(t, api.WithScenario(hospital(t)), api.WithConcurrency(2))
	w := do(t, r, http.MethodPost, "/v1/plan", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Results []struct {
			Pair  struct{ Start, End string } `json:"pair"`
			Route struct {
				Path []string `json:"path"`
				Cost float64  `json:"cost"`
			} `json:"route"`
			OK bool `json:"ok"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	first := resp.Results[0]
	assert.True(t, first.OK)
	assert.Equal(t, []string{"Hub", "Highway", "Hospital"}, first.Route.Path)
	assert.InDelta(t, 85.0, first.Route.Cost, 1e-9)

	second := resp.Results[1]
	assert.False(t, second.OK)
	assert.Empty(t, second.Route.Path)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().RoutesPlanned))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Metrics().RoutesUnreachable))
}

func TestPlan_InlineScenario(t *testing.T) {
	r, _ := newServer(t)
	body := map[string]any{
		"scenario": map[string]any{
			"cost":  map[string]any{"kind": "time"},
			"nodes": []any{map[string]any{"id": "A", "edges": map[string]any{"B": map[string]any{"time": 4}}}},
		},
		"routes": []any{map[string]any{"start": "A", "end": "B"}},
	}
	w := do(t, r, http.MethodPost, "/v1/plan", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"path":["A","B"]`)
	assert.Contains(t, w.Body.String(), `"cost":4`)
}

func TestPlan_InlineScenarioMaxCost(t *testing.T) {
	r, _ := newServer(t)
	body := map[string]any{
		"scenario": map[string]any{
			"cost":  map[string]any{"kind": "time", "max_cost": 3},
			"nodes": []any{map[string]any{"id": "A", "edges": map[string]any{"B": map[string]any{"time": 4}}}},
		},
		"routes": []any{map[string]any{"start": "A", "end": "B"}},
	}
	w := do(t, r, http.MethodPost, "/v1/plan", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.False(t, resp.Results[0].OK)
}

func TestPlan_Errors(t *testing.T) {
	r, _ := newServer(t)

	cases := []struct {
		name string
		body string
		code string
	}{
		{"malformed", `{"routes":`, api.CodeInvalidRequest},
		{"no scenario", `{}`, api.CodeNoScenario},
		{"invalid scenario", `{"scenario":{"nodes":[]}}`, api.CodeInvalidScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/plan", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code)
		})
	}
}

func TestPlan_InvalidScenarioDetails(t *testing.T) {
	r, _ := newServer(t)
	w := do(t, r, http.MethodPost, "/v1/plan", map[string]any{
		"scenario": map[string]any{
			"nodes": []any{map[string]any{"id": "A"}},
			"capacities": map[string]any{"A-B": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, scenario.ErrInvalid.Error(), resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Contains(t, resp.Details[0], "A-B")
}

func TestAllocate(t *testing.T) {
	r, s := newServer(t, api.WithScenario(hospital(t)))
	w := do(t, r, http.MethodPost, "/v1/allocate", map[string]any{"bound": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.AllocateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Allocations, 2)
	assert.Equal(t, "truck-1", resp.Allocations[0].AssetID)
	assert.Equal(t, []string{"Hub", "Highway", "Hospital"}, resp.Allocations[0].Path)
	assert.InDelta(t, 3.0, resp.Allocations[0].Amount, 1e-9)
	assert.InDelta(t, 1.5, resp.Allocations[1].Amount, 1e-9)

	assert.InDelta(t, 4.5, resp.Report.Allocated, 1e-9)
	assert.InDelta(t, 0.0, resp.Report.Shortfall, 1e-9)
	require.NotNil(t, resp.Bound)
	assert.InDelta(t, 4.5, *resp.Bound, 1e-9)
	assert.Len(t, resp.Findings, 2)

	assert.Equal(t, 2, testutil.CollectAndCount(s.Metrics().Allocations))
	assert.InDelta(t, 4.5, testutil.ToFloat64(s.Metrics().AllocatedAmount.WithLabelValues("beds")), 1e-9)
}

func TestAllocate_BoundAlgorithm(t *testing.T) {
	r, _ := newServer(t, api.WithScenario(hospital(t)))
	w := do(t, r, http.MethodPost, "/v1/allocate", map[string]any{"bound": true, "bound_algo": "edmonds_karp"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp api.AllocateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Bound)
	assert.InDelta(t, 4.5, *resp.Bound, 1e-9)

	w = do(t, r, http.MethodPost, "/v1/allocate", map[string]any{"bound": true, "bound_algo": "simplex"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var er api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &er))
	assert.Equal(t, api.CodeInvalidRequest, er.Code)
	require.Len(t, er.Details, 1)
	assert.Contains(t, er.Details[0], "simplex")
}

// Inline scenarios name their own assets, so exported label values are capped.
func TestAllocate_MetricLabelsCapped(t *testing.T) {
	r, s := newServer(t, api.WithMetricLabelLimit(1))
	for i := 0; i < 5; i++ {
		doc := hospital(t)
		for j := range doc.Assets {
			doc.Assets[j].ID = fmt.Sprintf("truck-%d-%d", i, j)
		}
		w := do(t, r, http.MethodPost, "/v1/allocate", map[string]any{"scenario": doc})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	assert.Equal(t, 2, testutil.CollectAndCount(s.Metrics().Allocations))
	assert.Equal(t, 9.0, testutil.ToFloat64(s.Metrics().Allocations.WithLabelValues(observe.OverflowLabel)))
}

func TestAllocate_NoBoundByDefault(t *testing.T) {
	r, _ := newServer(t, api.WithScenario(hospital(t)))
	w := do(t, r, http.MethodPost, "/v1/allocate", map[string]any{"residual_routing": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"bound"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newServer(t, api.WithScenario(hospital(t)))
	_ = do(t, r, http.MethodPost, "/v1/plan", map[string]any{})

	w := do(t, r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lvroute_routes_planned_total 1")
}
