package dfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hecke/core"
	"github.com/katalvlaran/hecke/dfs"
)

// buildRing returns a directed cycle N0 → N1 → … → N(n-1) → N0.
func buildRing(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+1)%n), 0)
	}

	return g
}

// BenchmarkDFS_Chain10000 measures DFS on a linear chain of 10,001 vertices.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10001)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}

// BenchmarkClosure_Ring200 measures the quadratic closure on a strongly
// connected ring, where every column is full.
func BenchmarkClosure_Ring200(b *testing.B) {
	g := buildRing(200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Closure(g, nil)
	}
}
