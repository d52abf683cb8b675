package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/scenario"
)

var hospitalPath = filepath.Join("..", "..", "scenario", "testdata", "hospital.yaml")

// clearEnv hides LVROUTE_* variables from the test process.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{envConfig, envLogLevel, envLogFormat, envAddr, envConcurrency} {
		t.Setenv(k, "")
	}
}

// execute runs the CLI and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	clearEnv(t)

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestPlanCommand_ScenarioRoutes(t *testing.T) {
	out, _, err := execute(t, "plan", "-s", hospitalPath, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t,
		"Hub → Hospital: Hub → Highway → Hospital (cost 85)\n"+
			"Hospital → Hub: <no route>\n",
		out)
}

func TestPlanCommand_Pair(t *testing.T) {
	out, _, err := execute(t, "plan", "-s", hospitalPath, "Hub", "Bridge")
	require.NoError(t, err)
	assert.Equal(t, "Hub → Bridge: Hub → Bridge (cost 100)\n", out)
}

func TestPlanCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "plan", "-s", hospitalPath, "--json", "Hub", "Hospital")
	require.NoError(t, err)

	var results []struct {
		Route struct {
			Path []string `json:"path"`
		} `json:"route"`
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].OK)
	assert.Equal(t, []string{"Hub", "Highway", "Hospital"}, results[0].Route.Path)
}

func TestPlanCommand_BadArgs(t *testing.T) {
	_, _, err := execute(t, "plan", "-s", hospitalPath, "Hub")
	require.Error(t, err)

	_, _, err = execute(t, "plan")
	require.Error(t, err, "scenario flag is required")
}

func TestAllocateCommand(t *testing.T) {
	out, _, err := execute(t, "allocate", "-s", hospitalPath)
	require.NoError(t, err)
	assert.Contains(t, out, "truck-1")
	assert.Contains(t, out, "Hub → Highway → Hospital")
	assert.Contains(t, out, "allocated 4.5 of 4.5 (shortfall 0)")
}

func TestAllocateCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "allocate", "-s", hospitalPath, "--json", "--bound", "--verify", "--residual")
	require.NoError(t, err)

	var res allocateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Allocations, 2)
	assert.InDelta(t, 4.5, res.Report.Allocated, 1e-9)
	require.NotNil(t, res.Bound)
	assert.InDelta(t, 4.5, *res.Bound, 1e-9)
}

func TestAllocateCommand_BoundAlgorithm(t *testing.T) {
	out, _, err := execute(t, "allocate", "-s", hospitalPath, "--bound", "--bound-algo", "edmonds-karp")
	require.NoError(t, err)
	assert.Contains(t, out, "upper bound 4.5")

	_, _, err = execute(t, "allocate", "-s", hospitalPath, "--bound", "--bound-algo", "simplex")
	require.ErrorContains(t, err, "unknown algorithm")
}

func TestLintCommand(t *testing.T) {
	out, _, err := execute(t, "lint", "-s", hospitalPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "untracked_edge"))

	_, _, err = execute(t, "lint", "-s", hospitalPath, "--strict")
	require.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	out, _, err := execute(t, "generate", "--kind", "path", "--n", "3", "--cost", "time")
	require.NoError(t, err)

	doc, err := scenario.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "path-1", doc.Name)
	assert.Len(t, doc.Nodes, 3)
	assert.Equal(t, scenario.CostTime, doc.Cost.Kind)

	g, err := doc.Graph()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGenerateCommand_Deterministic(t *testing.T) {
	a, _, err := execute(t, "generate", "--kind", "grid", "--rows", "2", "--cols", "3", "--seed", "9")
	require.NoError(t, err)
	b, _, err := execute(t, "generate", "--kind", "grid", "--rows", "2", "--cols", "3", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateCommand_UnknownKind(t *testing.T) {
	_, _, err := execute(t, "generate", "--kind", "torus")
	require.ErrorContains(t, err, "unknown kind")
}

func TestLogging_JSONWithRunID(t *testing.T) {
	_, errOut, err := execute(t, "lint", "-s", hospitalPath, "--log-format", "json")
	require.NoError(t, err)

	line := strings.TrimSpace(errOut)
	require.NotEmpty(t, line)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Split(line, "\n")[0]), &rec))
	assert.Equal(t, "Lint finished", rec["msg"])
	assert.NotEmpty(t, rec["run_id"])
	assert.Equal(t, "lint", rec["command"])
	assert.Equal(t, 4.0, rec["nodes"])
	assert.Equal(t, 4.0, rec["edges"])
}

func TestLogging_BadFlags(t *testing.T) {
	_, _, err := execute(t, "lint", "-s", hospitalPath, "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "lint", "-s", hospitalPath, "--log-format", "xml")
	require.Error(t, err)
}

func TestConfigPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nlog_level: debug\nconcurrency: 3\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: ":9000", LogLevel: "debug", LogFormat: "text", Concurrency: 3}, cfg)

	t.Setenv(envAddr, ":7000")
	t.Setenv(envConcurrency, "5")
	require.NoError(t, applyEnv(&cfg))
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, 5, cfg.Concurrency)

	t.Setenv(envConcurrency, "zero")
	require.Error(t, applyEnv(&cfg))
}

func TestConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("concurrency: -1\n"), 0o600))
	_, err = loadConfig(path)
	require.ErrorContains(t, err, "concurrency must be positive")
}

func TestConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "lvroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: json\n"), 0o600))
	t.Setenv(envConfig, path)

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"lint", "-s", hospitalPath})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(errOut.String(), "{"), errOut.String())
}
