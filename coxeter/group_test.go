package coxeter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/permutation"
)

// a2 builds A2 with r = (1 2) and s = (2 3).
func a2(t *testing.T) *coxeter.Group {
	t.Helper()
	g, err := coxeter.Generate(map[string]permutation.Permutation{
		"r": permutation.MustNew(2, 1, 3),
		"s": permutation.MustNew(1, 3, 2),
	})
	require.NoError(t, err)

	return g
}

// get fetches an element by name or fails the test.
func get(t *testing.T, g *coxeter.Group, name string) coxeter.Element {
	t.Helper()
	x, err := g.Element(name)
	require.NoError(t, err)

	return x
}

// mul multiplies two elements or fails the test.
func mul(t *testing.T, x, y coxeter.Element) coxeter.Element {
	t.Helper()
	z, err := x.Mul(y)
	require.NoError(t, err)

	return z
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name string
		gens map[string]permutation.Permutation
		want error
	}{
		{"empty", nil, coxeter.ErrNoGenerators},
		{"arity", map[string]permutation.Permutation{
			"a": permutation.MustNew(1),
			"b": permutation.MustNew(2, 1),
		}, coxeter.ErrArityMismatch},
		{"longLabel", map[string]permutation.Permutation{
			"ab": permutation.MustNew(2, 1),
		}, coxeter.ErrInvalidLabel},
		{"identityLabel", map[string]permutation.Permutation{
			"e": permutation.MustNew(2, 1),
		}, coxeter.ErrInvalidLabel},
		{"notInvolution", map[string]permutation.Permutation{
			"r": permutation.MustNew(2, 3, 1),
		}, coxeter.ErrNotInvolution},
		{"identityGenerator", map[string]permutation.Permutation{
			"r": permutation.MustNew(1, 2),
		}, coxeter.ErrDuplicateGenerator},
		{"duplicate", map[string]permutation.Permutation{
			"r": permutation.MustNew(2, 1, 3),
			"s": permutation.MustNew(2, 1, 3),
		}, coxeter.ErrDuplicateGenerator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := coxeter.Generate(tc.gens)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerate_A1(t *testing.T) {
	g, err := coxeter.Generate(map[string]permutation.Permutation{"s": permutation.MustNew(2, 1)})
	require.NoError(t, err)

	assert.Equal(t, []string{"e", "s"}, g.Names())
	e, ok := g.Lookup(permutation.MustNew(1, 2))
	require.True(t, ok)
	assert.Equal(t, "e", e.Name())
	s, ok := g.Lookup(permutation.MustNew(2, 1))
	require.True(t, ok)
	assert.Equal(t, "s", s.Name())

	ss := mul(t, s, s)
	assert.Equal(t, g.Identity(), ss)
	assert.NotEqual(t, s, ss)
}

func TestGenerate_A2(t *testing.T) {
	g := a2(t)

	assert.Equal(t, 6, g.Size())
	assert.Equal(t, 2, g.Rank())
	assert.Equal(t, 3, g.Arity())
	assert.Equal(t, []string{"e", "r", "s", "rs", "sr", "rsr"}, g.Names())
	assert.Equal(t, "rsr", g.Longest().Name())
	assert.True(t, g.Identity().IsIdentity())

	lookup := map[string][]int{
		"e":   {1, 2, 3},
		"r":   {2, 1, 3},
		"s":   {1, 3, 2},
		"rs":  {2, 3, 1},
		"sr":  {3, 1, 2},
		"rsr": {3, 2, 1},
	}
	for name, values := range lookup {
		x, ok := g.Lookup(permutation.MustNew(values...))
		require.True(t, ok, name)
		assert.Equal(t, name, x.Name())
		assert.True(t, g.Permutation(x).Equal(permutation.MustNew(values...)))
	}
}

func TestMultiplication_A2(t *testing.T) {
	g := a2(t)
	e, r, s := get(t, g, "e"), get(t, g, "r"), get(t, g, "s")
	rs, sr, rsr := get(t, g, "rs"), get(t, g, "sr"), get(t, g, "rsr")

	products := []struct {
		x, y, want coxeter.Element
	}{
		{r, r, e}, {s, s, e}, {r, s, rs}, {s, r, sr},
		{sr, r, s}, {rs, s, r}, {s, sr, r}, {r, rs, s},
		{rs, r, rsr}, {r, sr, rsr}, {s, rs, rsr}, {sr, s, rsr},
	}
	for _, p := range products {
		assert.Equal(t, p.want, mul(t, p.x, p.y), "%s·%s", p.x, p.y)
	}

	// braid relation
	assert.Equal(t, mul(t, mul(t, r, s), r), mul(t, mul(t, s, r), s))
	assert.Equal(t, rsr, mul(t, mul(t, r, s), r))
}

func TestLength_A2(t *testing.T) {
	g := a2(t)
	want := map[string]int{"e": 0, "r": 1, "s": 1, "rs": 2, "sr": 2, "rsr": 3}
	for name, l := range want {
		assert.Equal(t, l, get(t, g, name).Length(), name)
	}
}

func TestInverse(t *testing.T) {
	for _, def := range []string{"A2", "A3", "B3", "G2"} {
		d, err := coxeter.Lookup(def)
		require.NoError(t, err)
		g, err := d.Generate()
		require.NoError(t, err)

		for _, x := range g.Elements() {
			assert.Equal(t, g.Identity(), mul(t, x, x.Inverse()), "%s %s", def, x)
			assert.Equal(t, g.Identity(), mul(t, x.Inverse(), x), "%s %s", def, x)
			assert.Equal(t, x.Length(), x.Inverse().Length())
		}
	}
	g := a2(t)
	assert.Equal(t, "sr", get(t, g, "rs").Inverse().Name())
	assert.Equal(t, "rsr", g.Longest().Inverse().Name())
}

func TestElement_UnknownAndMismatch(t *testing.T) {
	g := a2(t)
	_, err := g.Element("srs")
	assert.ErrorIs(t, err, coxeter.ErrUnknownElement)
	assert.False(t, g.Has("srs"))

	other := a2(t)
	_, err = g.Identity().Mul(other.Identity())
	assert.ErrorIs(t, err, coxeter.ErrGroupMismatch)
}

func TestEvaluate(t *testing.T) {
	g := a2(t)

	x, err := g.Evaluate("srs")
	require.NoError(t, err)
	assert.Equal(t, "rsr", x.Name())

	x, err = g.Evaluate("rrss")
	require.NoError(t, err)
	assert.True(t, x.IsIdentity())

	x, err = g.Evaluate("e")
	require.NoError(t, err)
	assert.True(t, x.IsIdentity())

	_, err = g.Evaluate("rx")
	assert.ErrorIs(t, err, coxeter.ErrUnknownGenerator)
}

func TestCanonicalOrder(t *testing.T) {
	d, err := coxeter.A(3)
	require.NoError(t, err)
	g, err := d.Generate()
	require.NoError(t, err)

	elems := g.Elements()
	require.Len(t, elems, 24)
	for i, x := range elems {
		assert.Equal(t, i, x.Index())
		if i == 0 {
			continue
		}
		prev := elems[i-1]
		if prev.Length() == x.Length() {
			assert.Less(t, prev.Name(), x.Name())
		} else {
			assert.Less(t, prev.Length(), x.Length())
		}
	}
	assert.Equal(t, []string{"e", "r", "s", "t", "rs", "rt", "sr", "st", "ts"}, g.Names()[:9])
	assert.Equal(t, 6, g.Longest().Length())
}

func TestGenerators(t *testing.T) {
	g := a2(t)
	assert.Equal(t, []string{"r", "s"}, g.Labels())

	gens := g.Generators()
	require.Len(t, gens, 2)
	assert.Equal(t, "r", gens[0].Name())
	assert.Equal(t, "s", gens[1].Name())

	s, err := g.GeneratorIndex("s")
	require.NoError(t, err)
	assert.Equal(t, 1, s)
	_, err = g.GeneratorIndex("x")
	assert.ErrorIs(t, err, coxeter.ErrUnknownGenerator)

	rs := get(t, g, "rs")
	assert.True(t, rs.DescentRight(1))
	assert.False(t, rs.DescentRight(0))
	assert.Equal(t, []int{0, 1}, rs.Word())
}
