package hecke_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/hecke"
	"github.com/katalvlaran/hecke/laurent"
	"github.com/katalvlaran/hecke/permutation"
)

// a2 builds the Hecke algebra of S3 from r = (1 2), s = (2 3).
func a2(t testing.TB) *hecke.Algebra {
	t.Helper()
	g, err := coxeter.Generate(map[string]permutation.Permutation{
		"r": permutation.MustNew(2, 1, 3),
		"s": permutation.MustNew(1, 3, 2),
	})
	require.NoError(t, err)
	a, err := hecke.NewAlgebra(g)
	require.NoError(t, err)

	return a
}

// catalog builds the Hecke algebra of a named catalog group.
func catalog(t testing.TB, name string, opts ...hecke.Option) *hecke.Algebra {
	t.Helper()
	d, err := coxeter.Lookup(name)
	require.NoError(t, err)
	g, err := d.Generate()
	require.NoError(t, err)
	a, err := hecke.NewAlgebra(g, opts...)
	require.NoError(t, err)

	return a
}

func h(t testing.TB, a *hecke.Algebra, name string) *hecke.Element {
	t.Helper()
	e, err := a.StandardBasisElement(name)
	require.NoError(t, err)

	return e
}

func mul(t testing.TB, x, y *hecke.Element) *hecke.Element {
	t.Helper()
	p, err := x.Mul(y)
	require.NoError(t, err)

	return p
}

func add(t testing.TB, x, y *hecke.Element) *hecke.Element {
	t.Helper()
	p, err := x.Add(y)
	require.NoError(t, err)

	return p
}

func poly(coef map[int]int64) laurent.Poly { return laurent.New(coef) }
