package hecke

import (
	"fmt"

	"github.com/katalvlaran/hecke/core"
	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/dfs"
	"github.com/katalvlaran/hecke/matrix"
	"github.com/katalvlaran/hecke/progress"
)

// Digraph returns the KL digraph, built on first use: one vertex per
// element name in canonical order and an edge x → y labelled s whenever
// C_y has a nonzero coefficient in C_x·C_s. The edge weight is that
// coefficient at q = 1. Parallel edges (one per generator) and self-loops
// are kept.
func (a *Algebra) Digraph() (*core.Graph, error) {
	a.graphOnce.Do(func() {
		a.graph, a.graphErr = a.buildDigraph()
	})

	return a.graph, a.graphErr
}

func (a *Algebra) buildDigraph() (*core.Graph, error) {
	kl, err := a.KLBasis()
	if err != nil {
		return nil, err
	}

	g := a.group
	n := g.Size()
	labels := g.Labels()
	graph := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	for _, x := range g.Elements() {
		if err = graph.AddVertex(x.Name()); err != nil {
			return nil, err
		}
	}

	rep := a.reporter(progress.StageDigraph)
	for x := 0; x < n; x++ {
		if err = a.canceled(progress.StageDigraph); err != nil {
			return nil, err
		}
		from := g.At(x).Name()
		for s, gen := range g.Generators() {
			prod := kl.elems[x].mul(kl.elems[gen.Index()])
			coords, err := prod.InBasis(kl)
			if err != nil {
				return nil, fmt.Errorf("hecke: digraph at %s·C_%s: %w", from, labels[s], err)
			}
			for _, y := range coords.Support() {
				w := coords[y].Eval(1)
				if !w.IsInt64() {
					return nil, fmt.Errorf("hecke: digraph weight %s → %s: %s overflows int64", from, g.At(y), w)
				}
				if _, err = graph.AddEdge(from, g.At(y).Name(), w.Int64(), core.WithEdgeLabel(labels[s])); err != nil {
					return nil, err
				}
			}
		}
		rep.Tick(x+1, n)
	}
	rep.Done()

	return graph, nil
}

// Orders returns the left and right KL preorders as |W|×|W| matrices in
// canonical order, built on first use.
//
// right[y][x] is true iff y is reachable from x in the KL digraph (so the
// diagonal is always set); left[x][y] = right[x⁻¹][y⁻¹].
func (a *Algebra) Orders() (left, right *matrix.Bool, err error) {
	a.orderOnce.Do(func() {
		a.left, a.right, a.orderErr = a.buildOrders()
	})

	return a.left, a.right, a.orderErr
}

func (a *Algebra) buildOrders() (*matrix.Bool, *matrix.Bool, error) {
	graph, err := a.Digraph()
	if err != nil {
		return nil, nil, err
	}

	rep := a.reporter(progress.StageOrder)
	right, err := dfs.Closure(graph, a.group.Names(), dfs.WithContext(a.ctx), dfs.WithProgress(rep.Tick))
	if err != nil {
		return nil, nil, fmt.Errorf("hecke: right order: %w", err)
	}
	rep.Done()

	n := a.group.Size()
	left, err := matrix.NewBool(n, n)
	if err != nil {
		return nil, nil, err
	}
	for x := 0; x < n; x++ {
		xi := a.group.At(x).Inverse().Index()
		for y := 0; y < n; y++ {
			yi := a.group.At(y).Inverse().Index()
			v, _ := right.At(xi, yi)
			_ = left.Set(x, y, v)
		}
	}

	return left, right, nil
}

// RightCells partitions the group into the equivalence classes of the right
// preorder: x ~ y iff each is reachable from the other. Cells and their
// members are listed in canonical order of their first element.
func (a *Algebra) RightCells() ([][]coxeter.Element, error) {
	_, right, err := a.Orders()
	if err != nil {
		return nil, err
	}

	return a.cells(right), nil
}

// LeftCells is RightCells for the left preorder.
func (a *Algebra) LeftCells() ([][]coxeter.Element, error) {
	left, _, err := a.Orders()
	if err != nil {
		return nil, err
	}

	return a.cells(left), nil
}

func (a *Algebra) cells(order *matrix.Bool) [][]coxeter.Element {
	n := a.group.Size()
	assigned := make([]bool, n)
	var out [][]coxeter.Element
	for x := 0; x < n; x++ {
		if assigned[x] {
			continue
		}
		cell := []coxeter.Element{a.group.At(x)}
		assigned[x] = true
		for y := x + 1; y < n; y++ {
			up, _ := order.At(y, x)
			down, _ := order.At(x, y)
			if up && down {
				cell = append(cell, a.group.At(y))
				assigned[y] = true
			}
		}
		out = append(out, cell)
	}

	return out
}
