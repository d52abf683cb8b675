// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkAddEdge measures inserting edges from a single hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[core.Attrs]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i%1000), core.Attrs{Time: float64(i)})
	}
}

// BenchmarkOutEdges measures the sorted neighbor snapshot on a 1000-leaf star.
func BenchmarkOutEdges(b *testing.B) {
	g := core.NewGraph[core.Attrs]()
	n := core.NewNode[core.Attrs]("Center")
	for i := 0; i < 1000; i++ {
		n.Connect(fmt.Sprintf("Node%d", i), core.Attrs{Time: 1})
	}
	_ = g.AddNode(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.OutEdges("Center")
	}
}
