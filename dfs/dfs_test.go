package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hecke/core"
	"github.com/katalvlaran/hecke/dfs"
)

// buildChain creates a directed chain N0 → N1 → … → N(n-1).
func buildChain(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 0)
	}

	return g
}

// digraph builds a directed graph from "u>v" edge specs, in order.
func digraph(t testing.TB, edges ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, spec := range edges {
		u, v, ok := strings.Cut(spec, ">")
		require.True(t, ok, spec)
		_, err := g.AddEdge(u, v, 0)
		require.NoError(t, err)
	}

	return g
}

// weakOrder is the right weak order of S3 as a Hasse diagram.
func weakOrder(t testing.TB) *core.Graph {
	return digraph(t, "e>r", "e>s", "r>rs", "s>sr", "rs>rsr", "sr>rsr")
}

func TestDFS_Traversal(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		opts    []dfs.Option
		order   []string
		skipped int
	}{
		{name: "from identity", start: "e", order: []string{"rsr", "rs", "r", "sr", "s", "e"}},
		{name: "from middle", start: "s", order: []string{"rsr", "sr", "s"}},
		{name: "from top", start: "rsr", order: []string{"rsr"}},
		{name: "max depth", start: "e", opts: []dfs.Option{dfs.WithMaxDepth(1)}, order: []string{"r", "s", "e"}},
		{name: "max depth zero", start: "e", opts: []dfs.Option{dfs.WithMaxDepth(0)}, order: []string{"e"}},
		{
			name:    "filtered top",
			start:   "e",
			opts:    []dfs.Option{dfs.WithFilterNeighbor(func(id string) bool { return id != "rsr" })},
			order:   []string{"rs", "r", "sr", "s", "e"},
			skipped: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dfs.DFS(weakOrder(t), tc.start, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.order, res.Order)
			assert.Equal(t, tc.skipped, res.SkippedNeighbors)
			for _, id := range tc.order {
				assert.True(t, res.Visited[id], id)
			}
		})
	}
}

func TestDFS_DepthAndParent(t *testing.T) {
	res, err := dfs.DFS(weakOrder(t), "e")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Depth["e"])
	assert.Equal(t, 3, res.Depth["rsr"])
	assert.Equal(t, "rs", res.Parent["rsr"])
	assert.Equal(t, "s", res.Parent["sr"])
	_, hasParent := res.Parent["e"]
	assert.False(t, hasParent)
}

func TestDFS_Errors(t *testing.T) {
	res, err := dfs.DFS(nil, "e")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(weakOrder(t), "x")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SelfLoopAndIsolated(t *testing.T) {
	g := digraph(t, "r>r")
	require.NoError(t, g.AddVertex("s"))

	res, err := dfs.DFS(g, "r")
	require.NoError(t, err)
	assert.Equal(t, []string{"r"}, res.Order)
	assert.False(t, res.Visited["s"])
}

func TestDFS_Hooks(t *testing.T) {
	halt := errors.New("halt")

	var pre, post []string
	res, err := dfs.DFS(weakOrder(t), "e",
		dfs.WithOnVisit(func(id string) error {
			pre = append(pre, id)
			if id == "s" {
				return halt
			}
			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			post = append(post, id)
			return nil
		}),
	)
	require.NotNil(t, res)
	assert.ErrorIs(t, err, halt)
	assert.ErrorContains(t, err, `OnVisit hook for "s"`)
	assert.Equal(t, []string{"e", "r", "rs", "rsr", "s"}, pre)
	assert.Equal(t, []string{"rsr", "rs", "r"}, post)
	assert.Empty(t, res.Order)

	res, err = dfs.DFS(weakOrder(t), "e", dfs.WithOnExit(func(id string) error {
		if id == "rs" {
			return halt
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorContains(t, err, `OnExit hook for "rs"`)
	assert.Empty(t, res.Order)
}

func TestDFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(buildChain(100), "N0", dfs.WithContext(ctx))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

func TestDFS_LongChain(t *testing.T) {
	const n = 10
	res, err := dfs.DFS(buildChain(n), "N0")
	require.NoError(t, err)

	require.Len(t, res.Order, n)
	for i, id := range res.Order {
		assert.Equal(t, "N"+strconv.Itoa(n-1-i), id)
	}
	assert.Equal(t, n-1, res.Depth["N9"])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := digraph(t, "a>b", "c>d")

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "d", "c"}, res.Order)
	assert.Equal(t, 0, res.Depth["c"])
}
