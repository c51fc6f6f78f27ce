package dfs

import (
	"fmt"

	"github.com/katalvlaran/hecke/core"
	"github.com/katalvlaran/hecke/matrix"
)

// Closure computes the reflexive-transitive reachability relation of g,
// indexed by order (g.Vertices() when order is nil):
//
//	R[i][j] == true  iff  order[i] is reachable from order[j].
//
// Vertices of g absent from order are still traversed but not reported.
//
// Steps:
//  1. Validate graph and order (ErrStartVertexNotFound, ErrDuplicateVertex).
//  2. Walk order from last to first and run a DFS from each source.
//  3. Mark every reached vertex in the source's column.
//
// Hooks, depth limits and filters from opts apply to every inner DFS;
// WithFullTraversal is ignored.
//
// Complexity: O(V·(V+E)) time, O(V²) memory.
func Closure(g *core.Graph, order []string, opts ...Option) (*matrix.Bool, error) {
	// 1. Validate
	if g == nil {
		return nil, ErrGraphNil
	}
	if order == nil {
		order = g.Vertices()
	}
	index := make(map[string]int, len(order))
	for i, id := range order {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("dfs: closure order %q: %w", id, ErrStartVertexNotFound)
		}
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("dfs: closure order %q: %w", id, ErrDuplicateVertex)
		}
		index[id] = i
	}
	r, err := matrix.NewBool(len(order), len(order))
	if err != nil {
		return nil, err
	}

	// 2. One DFS per source
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	base := append(make([]Option, 0, len(opts)+1), opts...)
	base = append(base, func(o *DFSOptions) { o.FullTraversal = false })
	for j := len(order) - 1; j >= 0; j-- {
		res, err := DFS(g, order[j], base...)
		if err != nil {
			return nil, fmt.Errorf("dfs: closure from %q: %w", order[j], err)
		}

		// 3. Record column j
		for id := range res.Visited {
			if i, ok := index[id]; ok {
				_ = r.Set(i, j, true)
			}
		}
		if dopts.Progress != nil {
			dopts.Progress(len(order)-j, len(order))
		}
	}

	return r, nil
}
