package hecke

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/hecke/coxeter"
	"github.com/katalvlaran/hecke/laurent"
)

// Element is Σ c_x·H_x over the standard basis. Zero coefficients are never
// stored. Elements are immutable; every operation returns a new value.
type Element struct {
	alg   *Algebra
	terms map[int]laurent.Poly // element index → nonzero coefficient
}

// Element builds Σ coefs[name]·H_name. Zero coefficients are dropped.
func (a *Algebra) Element(coefs map[string]laurent.Poly) (*Element, error) {
	terms := make(map[int]laurent.Poly, len(coefs))
	for name, c := range coefs {
		x, err := a.lookup(name)
		if err != nil {
			return nil, err
		}
		if !c.IsZero() {
			terms[x] = c
		}
	}

	return &Element{alg: a, terms: terms}, nil
}

// StandardBasisElement returns H_name.
func (a *Algebra) StandardBasisElement(name string) (*Element, error) {
	x, err := a.lookup(name)
	if err != nil {
		return nil, err
	}

	return a.std(x), nil
}

// Standard returns H_x for a group element x.
func (a *Algebra) Standard(x coxeter.Element) (*Element, error) {
	if x.Group() != a.group {
		return nil, fmt.Errorf("%w: %s is not in this algebra's group", ErrAlgebraMismatch, x)
	}

	return a.std(x.Index()), nil
}

// Zero returns the zero element.
func (a *Algebra) Zero() *Element { return &Element{alg: a, terms: map[int]laurent.Poly{}} }

// One returns H_e, the multiplicative identity.
func (a *Algebra) One() *Element { return a.std(0) }

func (a *Algebra) std(x int) *Element {
	return &Element{alg: a, terms: map[int]laurent.Poly{x: laurent.One()}}
}

// addTerm adds c to terms[x], deleting the entry if it cancels.
func addTerm(terms map[int]laurent.Poly, x int, c laurent.Poly) {
	if c.IsZero() {
		return
	}
	sum := terms[x].Add(c)
	if sum.IsZero() {
		delete(terms, x)
		return
	}
	terms[x] = sum
}

// Algebra returns the owning algebra.
func (e *Element) Algebra() *Algebra { return e.alg }

func (e *Element) compatible(o *Element) error {
	if e.alg != o.alg {
		return ErrAlgebraMismatch
	}

	return nil
}

// Add returns e + o.
func (e *Element) Add(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}

	return e.add(o), nil
}

func (e *Element) add(o *Element) *Element {
	terms := maps.Clone(e.terms)
	for x, c := range o.terms {
		addTerm(terms, x, c)
	}

	return &Element{alg: e.alg, terms: terms}
}

// Sub returns e − o.
func (e *Element) Sub(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}

	return e.sub(o), nil
}

func (e *Element) sub(o *Element) *Element {
	terms := maps.Clone(e.terms)
	for x, c := range o.terms {
		addTerm(terms, x, c.Neg())
	}

	return &Element{alg: e.alg, terms: terms}
}

// Neg returns −e.
func (e *Element) Neg() *Element { return e.Scale(-1) }

// Scale returns k·e.
func (e *Element) Scale(k int64) *Element { return e.ScalePoly(laurent.Constant(k)) }

// ScalePoly returns p·e.
func (e *Element) ScalePoly(p laurent.Poly) *Element {
	terms := make(map[int]laurent.Poly, len(e.terms))
	if p.IsZero() {
		return &Element{alg: e.alg, terms: terms}
	}
	for x, c := range e.terms {
		terms[x] = c.Mul(p)
	}

	return &Element{alg: e.alg, terms: terms}
}

// Tau returns the coefficient of H_e.
func (e *Element) Tau() laurent.Poly { return e.terms[0] }

// Coeff returns the coefficient of H_x; zero when x belongs to another group.
func (e *Element) Coeff(x coxeter.Element) laurent.Poly {
	if x.Group() != e.alg.group {
		return laurent.Zero()
	}

	return e.terms[x.Index()]
}

// CoeffOf returns the coefficient of H_name.
func (e *Element) CoeffOf(name string) (laurent.Poly, error) {
	x, err := e.alg.lookup(name)
	if err != nil {
		return laurent.Zero(), err
	}

	return e.terms[x], nil
}

// Support returns the elements with nonzero coefficient in canonical order.
func (e *Element) Support() []coxeter.Element {
	out := make([]coxeter.Element, 0, len(e.terms))
	for _, x := range e.indices() {
		out = append(out, e.alg.group.At(x))
	}

	return out
}

func (e *Element) indices() []int {
	return slices.Sorted(maps.Keys(e.terms))
}

// Len returns the number of nonzero terms.
func (e *Element) Len() int { return len(e.terms) }

// IsZero reports whether e has no terms.
func (e *Element) IsZero() bool { return len(e.terms) == 0 }

// Equal reports whether e and o belong to the same algebra and have equal
// coefficients.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.alg != o.alg || len(e.terms) != len(o.terms) {
		return false
	}
	for x, c := range e.terms {
		if !c.Equal(o.terms[x]) {
			return false
		}
	}

	return true
}

// String renders the terms in canonical order, e.g.
// "(q + q^3)·H_e + q·H_r + H_rs".
func (e *Element) String() string {
	if len(e.terms) == 0 {
		return "0"
	}

	parts := make([]string, 0, len(e.terms))
	for _, x := range e.indices() {
		c := e.terms[x]
		name := "H_" + e.alg.group.At(x).Name()
		switch {
		case c.IsOne():
			parts = append(parts, name)
		case c.Len() == 1:
			parts = append(parts, c.String()+"·"+name)
		default:
			parts = append(parts, "("+c.String()+")·"+name)
		}
	}

	return strings.Join(parts, " + ")
}
