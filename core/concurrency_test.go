// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from one source
// are safe and all edges appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[core.Attrs]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id), core.Attrs{Time: float64(id)})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReadersAndWriter mixes OutEdges/Known readers with node
// overwrites to verify no races or panics occur.
func TestConcurrentReadersAndWriter(t *testing.T) {
	g := core.NewGraph[core.Attrs]()
	require.NoError(t, g.AddEdge("Base", "T", core.Attrs{}))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			n := core.NewNode[core.Attrs]("Base").Connect(fmt.Sprintf("V%d", id), core.Attrs{})
			_ = g.AddNode(n)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.OutEdges("Base")
			_ = g.Known("T")
			_ = g.Stats()
		}()
	}
	wg.Wait()

	// Whatever the interleaving, Base ends with exactly one edge.
	require.Len(t, g.OutEdges("Base"), 1)
}
