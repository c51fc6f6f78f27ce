package hecke

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/laurent"
)

// Coordinates holds one coefficient per group element, indexed by
// canonical element index.
type Coordinates []laurent.Poly

// Support returns the indices with nonzero coordinate in ascending order.
func (c Coordinates) Support() []int {
	out := make([]int, 0)
	for i, p := range c {
		if !p.IsZero() {
			out = append(out, i)
		}
	}

	return out
}

// Basis is a family {b_x} of algebra elements indexed by the group.
type Basis struct {
	alg   *Algebra
	name  string
	elems []*Element // by element index
}

// Name returns a short description, e.g. "kl".
func (b *Basis) Name() string { return b.name }

// Len returns the number of basis elements, |W|.
func (b *Basis) Len() int { return len(b.elems) }

// At returns b_x; nil when x belongs to another group.
func (b *Basis) At(x coxeter.Element) *Element {
	if x.Group() != b.alg.group {
		return nil
	}

	return b.elems[x.Index()]
}

// Get returns b_name.
func (b *Basis) Get(name string) (*Element, error) {
	x, err := b.alg.lookup(name)
	if err != nil {
		return nil, err
	}

	return b.elems[x], nil
}

// Elements returns the basis elements in canonical order.
func (b *Basis) Elements() []*Element {
	out := make([]*Element, len(b.elems))
	copy(out, b.elems)

	return out
}

// Combine returns Σ c[x]·b_x.
func (b *Basis) Combine(c Coordinates) (*Element, error) {
	if len(c) != len(b.elems) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCoordinateLength, len(c), len(b.elems))
	}

	acc := b.alg.Zero()
	for x, p := range c {
		if p.IsZero() {
			continue
		}
		for y, v := range b.elems[x].terms {
			addTerm(acc.terms, y, v.Mul(p))
		}
	}

	return acc, nil
}

// StandardBasis returns {H_x}.
func (a *Algebra) StandardBasis() *Basis {
	elems := make([]*Element, a.group.Size())
	for x := range elems {
		elems[x] = a.std(x)
	}

	return &Basis{alg: a, name: "standard", elems: elems}
}

// InBasis decomposes e as Σ c_x·b_x.
//
// Steps:
//  1. Among the remaining terms find the lowest degree d present and the
//     first element x (canonical order) whose coefficient has degree d.
//  2. With c the coefficient of q^d at x, record c·q^d at x and subtract
//     c·q^d·b_x from the remainder.
//  3. Repeat until the remainder is zero.
//
// Each b_x must have coefficient exactly 1 at H_x and strictly positive
// degrees elsewhere (ErrNotTriangular). The standard, KL and dual KL bases
// qualify; every step then removes a lowest term without introducing a
// lower one.
func (e *Element) InBasis(b *Basis) (Coordinates, error) {
	if b.alg != e.alg {
		return nil, ErrAlgebraMismatch
	}

	coords := make(Coordinates, len(b.elems))
	rest := e.clone()
	for !rest.IsZero() {
		// 1. Lowest term
		x, d := -1, math.MaxInt
		for _, y := range rest.indices() {
			if bot, _ := rest.terms[y].Bottom(); bot < d {
				x, d = y, bot
			}
		}

		bx := b.elems[x]
		if !unitriangular(bx, x) {
			return nil, fmt.Errorf("%w: %s at %s", ErrNotTriangular, b.name, e.alg.group.At(x))
		}

		// 2. Record and subtract
		mono := laurent.FromBig(map[int]*big.Int{d: rest.terms[x].Coeff(d)})
		coords[x] = coords[x].Add(mono)
		for y, v := range bx.terms {
			addTerm(rest.terms, y, v.Mul(mono).Neg())
		}
	}

	return coords, nil
}

// unitriangular reports whether b has coefficient 1 at x and strictly
// positive degrees elsewhere.
func unitriangular(b *Element, x int) bool {
	for y, c := range b.terms {
		if (y == x && !c.IsOne()) || (y != x && !c.AllPositiveDegree()) {
			return false
		}
	}

	return b.terms[x].IsOne()
}

// InKLBasis decomposes e in the KL basis.
func (e *Element) InKLBasis() (Coordinates, error) {
	kl, err := e.alg.KLBasis()
	if err != nil {
		return nil, err
	}

	return e.InBasis(kl)
}

// InDualKLBasis decomposes e in the dual KL basis.
func (e *Element) InDualKLBasis() (Coordinates, error) {
	dual, err := e.alg.DualKLBasis()
	if err != nil {
		return nil, err
	}

	return e.InBasis(dual)
}
