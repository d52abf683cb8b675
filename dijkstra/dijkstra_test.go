// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checks, basic path correctness, directed edges,
// deterministic tie-breaking, thresholds, filters, and the routing scenarios
// the planner and allocator rely on.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/fitness"
)

// hospitalGraph builds the two-route network used across routing tests:
//
//	Hub→Bridge(20,4)→Hospital(5,4)
//	Hub→Highway(35,1)→Hospital(10,1)
func hospitalGraph(t *testing.T) *core.Graph[core.Attrs] {
	t.Helper()
	g := core.NewGraph[core.Attrs]()
	require.NoError(t, g.AddNode(core.NewNode[core.Attrs]("Hub").
		Connect("Bridge", core.Attrs{Time: 20, Risk: 4}).
		Connect("Highway", core.Attrs{Time: 35, Risk: 1})))
	require.NoError(t, g.AddNode(core.NewNode[core.Attrs]("Bridge").
		Connect("Hospital", core.Attrs{Time: 5, Risk: 4})))
	require.NoError(t, g.AddNode(core.NewNode[core.Attrs]("Highway").
		Connect("Hospital", core.Attrs{Time: 10, Risk: 1})))
	require.NoError(t, g.AddNode(core.NewNode[core.Attrs]("Hospital")))

	return g
}

// weight uses the float64 edge attribute itself as the cost.
func weight(w float64) float64 { return w }

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath[core.Attrs](nil, "A", "B", fitness.Time())
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_NilCost(t *testing.T) {
	g := core.NewGraph[core.Attrs]()
	_, err := dijkstra.ShortestPath(g, "A", "B", nil)
	require.ErrorIs(t, err, dijkstra.ErrNilCost)
}

func TestShortestPath_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph[core.Attrs]()
	_, err := dijkstra.ShortestPath(g, "", "B", fitness.Time())
	require.ErrorIs(t, err, dijkstra.ErrEmptyNode)
	_, err = dijkstra.ShortestPath(g, "A", "", fitness.Time())
	require.ErrorIs(t, err, dijkstra.ErrEmptyNode)
}

func TestOptions_PanicOnInvalidValues(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	require.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: path shape, unreachable targets, degenerate routes.
// ------------------------------------------------------------------------

func TestShortestPath_SafeRoutePreference(t *testing.T) {
	g := hospitalGraph(t)

	path, err := dijkstra.ShortestPath(g, "Hub", "Hospital", fitness.TimeRisk(20))
	require.NoError(t, err)
	require.Equal(t, []string{"Hub", "Highway", "Hospital"}, path)
}

func TestShortestPath_BlockedReroute(t *testing.T) {
	g := hospitalGraph(t)
	viaHighway := func(a core.Attrs) bool { return a.Time == 35 || a.Time == 10 }
	cost := fitness.Penalize(fitness.TimeRisk(20), viaHighway)

	path, err := dijkstra.ShortestPath(g, "Hub", "Hospital", cost)
	require.NoError(t, err)
	require.Equal(t, []string{"Hub", "Bridge", "Hospital"}, path)
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "A", 1))
	require.NoError(t, g.AddEdge("C", "A", 1)) // C only has outbound edges

	path, err := dijkstra.ShortestPath(g, "A", "C", weight)
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestShortestPath_UnknownEndpoints(t *testing.T) {
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("A", "B", 1))

	path, err := dijkstra.ShortestPath(g, "A", "Z", weight)
	require.NoError(t, err)
	require.Empty(t, path)

	path, err = dijkstra.ShortestPath(g, "Z", "A", weight)
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("A", "B", 1))

	path, err := dijkstra.ShortestPath(g, "A", "A", weight)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
}

func TestShortestPath_UnregisteredTargetIsDestination(t *testing.T) {
	// "Shelter" is never added as a node; it is only an edge target.
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("Hub", "Depot", 2))
	require.NoError(t, g.AddEdge("Depot", "Shelter", 3))

	path, err := dijkstra.ShortestPath(g, "Hub", "Shelter", weight)
	require.NoError(t, err)
	require.Equal(t, []string{"Hub", "Depot", "Shelter"}, path)
}

// ------------------------------------------------------------------------
// 3. Directed edges and determinism.
// ------------------------------------------------------------------------

func TestShortestPath_RespectsDirection(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5)
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 3))
	require.NoError(t, g.AddEdge("C", "D", 5))

	path, err := dijkstra.ShortestPath(g, "A", "D", weight)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, path) // ties A→C→B→D; prev[B] stays A

	back, err := dijkstra.ShortestPath(g, "D", "A", weight)
	require.NoError(t, err)
	require.Empty(t, back, "no edge leaves D")
}

func TestShortestPath_TieBreaksBySmallestID(t *testing.T) {
	// Two equal-cost routes: S→a→T and S→b→T. Insertion order puts b first.
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("S", "b", 1))
	require.NoError(t, g.AddEdge("S", "a", 1))
	require.NoError(t, g.AddEdge("b", "T", 1))
	require.NoError(t, g.AddEdge("a", "T", 1))

	for i := 0; i < 20; i++ {
		path, err := dijkstra.ShortestPath(g, "S", "T", weight)
		require.NoError(t, err)
		require.Equal(t, []string{"S", "a", "T"}, path, "run %d", i)
	}
}

func TestShortestPath_PathValidity(t *testing.T) {
	g := hospitalGraph(t)
	cost := fitness.TimeRisk(20)
	for _, from := range g.KnownNodes() {
		for _, to := range g.KnownNodes() {
			path, err := dijkstra.ShortestPath(g, from, to, cost)
			require.NoError(t, err)
			if len(path) == 0 {
				continue
			}
			require.Equal(t, from, path[0])
			require.Equal(t, to, path[len(path)-1])
			for i := 0; i+1 < len(path); i++ {
				require.True(t, g.HasEdge(path[i], path[i+1]), "%s→%s", path[i], path[i+1])
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Thresholds and filters.
// ------------------------------------------------------------------------

func TestShortestPath_MaxDistance(t *testing.T) {
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 5))

	path, err := dijkstra.ShortestPath(g, "A", "C", weight, dijkstra.WithMaxDistance(7))
	require.NoError(t, err)
	require.Empty(t, path)

	path, err = dijkstra.ShortestPath(g, "A", "B", weight, dijkstra.WithMaxDistance(7))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, path)
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	g := hospitalGraph(t)
	allBlocked := fitness.Penalize(fitness.TimeRisk(20), func(a core.Attrs) bool { return a.Time != 20 })

	// Without a threshold the blocked sentinel is merely expensive.
	path, err := dijkstra.ShortestPath(g, "Hub", "Hospital", allBlocked)
	require.NoError(t, err)
	require.Equal(t, []string{"Hub", "Bridge", "Hospital"}, path)

	// With a threshold it is absent.
	path, err = dijkstra.ShortestPath(g, "Hub", "Hospital", allBlocked,
		dijkstra.WithInfEdgeThreshold(fitness.Blocked))
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestShortestPath_EdgeFilter(t *testing.T) {
	g := hospitalGraph(t)
	noHighway := func(from, to string) bool { return to != "Highway" }

	path, err := dijkstra.ShortestPath(g, "Hub", "Hospital", fitness.TimeRisk(20),
		dijkstra.WithEdgeFilter(noHighway))
	require.NoError(t, err)
	require.Equal(t, []string{"Hub", "Bridge", "Hospital"}, path)

	noBridge := func(from, to string) bool { return to != "Bridge" }
	path, err = dijkstra.ShortestPath(g, "Hub", "Hospital", fitness.TimeRisk(20),
		dijkstra.WithEdgeFilter(noHighway), dijkstra.WithEdgeFilter(noBridge))
	require.NoError(t, err)
	require.Empty(t, path, "filters compose with AND")
}

func TestShortestPath_NegativeCostsTerminate(t *testing.T) {
	g := core.NewGraph[float64]()
	require.NoError(t, g.AddEdge("A", "B", -1))
	require.NoError(t, g.AddEdge("B", "A", -1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	// The result is unspecified, but the call must return.
	_, err := dijkstra.ShortestPath(g, "A", "Z", weight)
	require.NoError(t, err)
}

// ------------------------------------------------------------------------
// 5. Full single-source search.
// ------------------------------------------------------------------------

func TestSearch_DistancesAndPaths(t *testing.T) {
	g := hospitalGraph(t)
	require.NoError(t, g.AddNode(core.NewNode[core.Attrs]("Island")))

	res, err := dijkstra.Search(g, "Hub", fitness.TimeRisk(20))
	require.NoError(t, err)

	require.Equal(t, 0.0, res.Dist["Hub"])
	require.Equal(t, 100.0, res.Dist["Bridge"])
	require.Equal(t, 55.0, res.Dist["Highway"])
	require.Equal(t, 85.0, res.Dist["Hospital"])
	require.Equal(t, dijkstra.Unreachable, res.Dist["Island"])
	require.False(t, res.Reachable("Island"))

	require.Equal(t, []string{"Hub", "Highway", "Hospital"}, res.PathTo("Hospital"))
	require.Equal(t, []string{"Hub"}, res.PathTo("Hub"))
	require.Nil(t, res.PathTo("Island"))
}

func TestSearch_Validation(t *testing.T) {
	_, err := dijkstra.Search[float64](nil, "A", weight)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.Search(core.NewGraph[float64](), "A", nil)
	require.ErrorIs(t, err, dijkstra.ErrNilCost)
	_, err = dijkstra.Search(core.NewGraph[float64](), "", weight)
	require.ErrorIs(t, err, dijkstra.ErrEmptyNode)
}
