package flow_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvroute/flow"
)

// buildRandomNetwork constructs a network with V nodes and roughly p
// probability of an arc between any ordered pair u→v.
// Capacities are uniform in [1, maxCap+1).
func buildRandomNetwork(V int, p float64, maxCap float64, seed int64) flow.Network {
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	n := flow.NewNetwork()
	for i := 0; i < V; i++ {
		n.AddNode(strconv.Itoa(i))
	}
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				n.AddArc(strconv.Itoa(u), strconv.Itoa(v), r.Float64()*maxCap+1.0)
			}
		}
	}

	return n
}

// BenchmarkFlowAlgorithms measures Edmonds–Karp and Dinic on networks of
// increasing size and density.
func BenchmarkFlowAlgorithms(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		arcProb  float64
		maxCap   float64
		seed     int64
	}{
		{"Small", 200, 0.05, 10.0, 42},
		{"Medium", 500, 0.02, 20.0, 4242},
	}

	ctx := context.Background()
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			n := buildRandomNetwork(tc.vertices, tc.arcProb, tc.maxCap, tc.seed)
			src, dst := "0", strconv.Itoa(tc.vertices-1)

			b.Run("EdmondsKarp", func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.EdmondsKarp(ctx, n, src, dst, nil)
				}
			})

			b.Run("Dinic", func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					_, _ = flow.Dinic(ctx, n, src, dst, nil)
				}
			})
		})
	}
}
