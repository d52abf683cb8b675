package flow_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/flow"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]flow.Algorithm{
		"":             flow.DefaultAlgorithm,
		"dinic":        flow.AlgorithmDinic,
		" Dinic ":      flow.AlgorithmDinic,
		"edmonds_karp": flow.AlgorithmEdmondsKarp,
		"edmonds-karp": flow.AlgorithmEdmondsKarp,
	}
	for in, want := range cases {
		got, err := flow.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := flow.ParseAlgorithm("push_relabel")
	require.ErrorIs(t, err, flow.ErrUnknownAlgorithm)
}

func TestMaxFlowDispatch(t *testing.T) {
	n := flow.NewNetwork()
	n.AddArc("s", "a", 2.5)
	n.AddArc("s", "b", 1.5)
	n.AddArc("a", "t", 1)
	n.AddArc("b", "t", 3)
	n.AddArc("a", "b", 1)

	for _, algo := range append(flow.Algorithms(), "") {
		mf, err := flow.MaxFlow(context.Background(), algo, n, "s", "t", nil)
		require.NoError(t, err, algo)
		assert.InDelta(t, 3.5, mf, 1e-9, algo)
	}

	_, err := flow.MaxFlow(context.Background(), "simplex", n, "s", "t", nil)
	require.ErrorIs(t, err, flow.ErrUnknownAlgorithm)
}

// A NaN capacity must not leak into the flow value.
func TestNaNCapacityRejected(t *testing.T) {
	n := flow.NewNetwork()
	n.AddArc("s", "m", math.NaN())
	n.AddArc("m", "t", 1)

	for _, algo := range flow.Algorithms() {
		_, err := flow.MaxFlow(context.Background(), algo, n, "s", "t", nil)
		var ee flow.EdgeError
		require.True(t, errors.As(err, &ee), "%s: %v", algo, err)
		assert.Equal(t, "s", ee.From)
		assert.True(t, math.IsNaN(ee.Cap))
	}
}
