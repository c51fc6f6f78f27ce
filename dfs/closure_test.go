package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hecke/core"
	"github.com/katalvlaran/hecke/dfs"
)

func TestClosure_Errors(t *testing.T) {
	_, err := dfs.Closure(nil, nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	_, err = dfs.Closure(g, []string{"A", "X"})
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)

	_, err = dfs.Closure(g, []string{"A", "A"})
	assert.ErrorIs(t, err, dfs.ErrDuplicateVertex)
}

func TestClosure_ReflexiveTransitive(t *testing.T) {
	g := buildChain(4) // N0 → N1 → N2 → N3
	r, err := dfs.Closure(g, nil)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := r.At(i, j)
			require.NoError(t, err)
			// N_i reachable from N_j iff i ≥ j
			assert.Equal(t, i >= j, v, "R[%d][%d]", i, j)
		}
	}
}

func TestClosure_CustomOrderAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("x", "x", 0)
	_, _ = g.AddEdge("x", "y", 0)
	_ = g.AddVertex("z")

	// reversed order
	r, err := dfs.Closure(g, []string{"z", "y", "x"})
	require.NoError(t, err)
	assert.Equal(t, "[1 0 0]\n[0 1 1]\n[0 0 1]\n", r.String())
}

func TestClosure_Canceled(t *testing.T) {
	g := buildChain(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.Closure(g, nil, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClosure_Progress(t *testing.T) {
	g := buildChain(5)
	var ticks [][2]int
	_, err := dfs.Closure(g, nil, dfs.WithProgress(func(done, total int) {
		ticks = append(ticks, [2]int{done, total})
	}))
	require.NoError(t, err)
	require.Len(t, ticks, 5)
	assert.Equal(t, [2]int{1, 5}, ticks[0])
	assert.Equal(t, [2]int{5, 5}, ticks[4])
}
