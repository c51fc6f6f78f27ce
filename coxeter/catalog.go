package coxeter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/hecke/permutation"
)

// ErrUnsupportedType indicates a catalog request for a type or rank that
// has no generator table.
var ErrUnsupportedType = errors.New("coxeter: unsupported Coxeter type")

// labelAlphabet supplies generator labels in order; 'e' is reserved.
const labelAlphabet = "rstuvwxyzabcdfghijklmnopq"

// Definition is a named generator set for one of the classical types.
type Definition struct {
	Name       string // e.g. "A3", "B2", "G2"
	Generators map[string]permutation.Permutation
}

// Generate builds the group of the definition.
func (d Definition) Generate() (*Group, error) {
	g, err := Generate(d.Generators)
	if err != nil {
		return nil, fmt.Errorf("coxeter: generate %s: %w", d.Name, err)
	}

	return g, nil
}

// A returns type A_n: the symmetric group on n+1 points generated by the
// adjacent transpositions (i i+1).
func A(n int) (Definition, error) {
	if n < 1 || n > len(labelAlphabet) {
		return Definition{}, fmt.Errorf("%w: A%d", ErrUnsupportedType, n)
	}

	gens := make(map[string]permutation.Permutation, n)
	for i := 0; i < n; i++ {
		gens[label(i)] = transposition(n+1, i)
	}

	return Definition{Name: "A" + strconv.Itoa(n), Generators: gens}, nil
}

// B returns type B_n on n points: the sign flip of 1 followed by the
// adjacent transpositions.
func B(n int) (Definition, error) {
	if n < 2 || n > len(labelAlphabet) {
		return Definition{}, fmt.Errorf("%w: B%d", ErrUnsupportedType, n)
	}

	gens := make(map[string]permutation.Permutation, n)
	flip := permutation.Identity(n).Values()
	flip[0] = -1
	gens[label(0)] = permutation.MustNew(flip...)
	for i := 1; i < n; i++ {
		gens[label(i)] = transposition(n, i-1)
	}

	return Definition{Name: "B" + strconv.Itoa(n), Generators: gens}, nil
}

// D returns type D_n on n points: 1 ↦ -2, 2 ↦ -1 followed by the adjacent
// transpositions.
func D(n int) (Definition, error) {
	if n < 4 || n > len(labelAlphabet) {
		return Definition{}, fmt.Errorf("%w: D%d", ErrUnsupportedType, n)
	}

	gens := make(map[string]permutation.Permutation, n)
	swap := permutation.Identity(n).Values()
	swap[0], swap[1] = -2, -1
	gens[label(0)] = permutation.MustNew(swap...)
	for i := 1; i < n; i++ {
		gens[label(i)] = transposition(n, i-1)
	}

	return Definition{Name: "D" + strconv.Itoa(n), Generators: gens}, nil
}

// G2 returns the dihedral group of order 12 realized as {±1}×S_3 on three
// points: a transposition and a negated transposition.
func G2() Definition {
	return Definition{
		Name: "G2",
		Generators: map[string]permutation.Permutation{
			"r": permutation.MustNew(2, 1, 3),
			"s": permutation.MustNew(-1, -3, -2),
		},
	}
}

// Catalog returns the fixed classical catalog A1–A5, B2–B5, D4–D5, G2.
func Catalog() []Definition {
	out := make([]Definition, 0, 12)
	for n := 1; n <= 5; n++ {
		d, _ := A(n)
		out = append(out, d)
	}
	for n := 2; n <= 5; n++ {
		d, _ := B(n)
		out = append(out, d)
	}
	for n := 4; n <= 5; n++ {
		d, _ := D(n)
		out = append(out, d)
	}

	return append(out, G2())
}

// Lookup returns the catalog definition named like "A3", "B4", "D5" or
// "G2". Only the entries of Catalog are served; larger ranks are reachable
// through A, B and D directly.
func Lookup(name string) (Definition, error) {
	for _, d := range Catalog() {
		if d.Name == name {
			return d, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: %q is not in the catalog", ErrUnsupportedType, name)
}

// label returns the i-th generator label.
func label(i int) string { return string(labelAlphabet[i]) }

// transposition swaps points i+1 and i+2 of an n-point identity.
func transposition(n, i int) permutation.Permutation {
	v := permutation.Identity(n).Values()
	v[i], v[i+1] = v[i+1], v[i]

	return permutation.MustNew(v...)
}
