// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/core"
)

// TestConcurrentAddEdges adds a star's spokes from many goroutines.
func TestConcurrentAddEdges(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdges(core.Edge{U: 0, V: id})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, num, g.Degree(0))
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs snapshots and queries alongside writers.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdges(core.Edge{U: id, V: id + 1})
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Adjacency()
			_ = g.Stats()
			_ = g.Vertices()
		}()
	}
	wg.Wait()

	require.Equal(t, rounds+1, g.VertexCount())
}
