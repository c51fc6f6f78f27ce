package hecke

import (
	"maps"

	"github.com/katalvlaran/hecke/laurent"
)

// Mul returns the product e·o.
//
// Steps:
//  1. For every term c_y·H_y of o, right-multiply e by H_y one generator of
//     y's reduced word at a time (mulGenerator).
//  2. Scale the result by c_y and accumulate.
//
// Complexity: O(|e'|·|o|·ℓ(w0)) where |e'| bounds the intermediate support.
func (e *Element) Mul(o *Element) (*Element, error) {
	if err := e.compatible(o); err != nil {
		return nil, err
	}

	return e.mul(o), nil
}

func (e *Element) mul(o *Element) *Element {
	acc := make(map[int]laurent.Poly)
	for _, y := range o.indices() {
		prod := e.mulStandard(y)
		cy := o.terms[y]
		for x, c := range prod.terms {
			addTerm(acc, x, c.Mul(cy))
		}
	}

	return &Element{alg: e.alg, terms: acc}
}

// mulStandard returns e·H_y, peeling y's word from the left.
func (e *Element) mulStandard(y int) *Element {
	out := e
	for _, s := range e.alg.group.At(y).Word() {
		out = out.mulGenerator(s)
	}

	return out
}

// mulGenerator returns e·H_s using the quadratic relation
// H_x·H_s = H_xs if ℓ(xs) > ℓ(x), else H_xs + (q⁻¹ − q)·H_x.
func (e *Element) mulGenerator(s int) *Element {
	g := e.alg.group
	terms := make(map[int]laurent.Poly, len(e.terms)*2)
	for x, c := range e.terms {
		xe := g.At(x)
		xs := xe.MulGenerator(s)
		addTerm(terms, xs.Index(), c)
		if xs.Length() < xe.Length() {
			addTerm(terms, x, c.Mul(e.alg.quad))
		}
	}

	return &Element{alg: e.alg, terms: terms}
}

// mulGeneratorInverse returns e·H_s⁻¹ where H_s⁻¹ = H_s + (q − q⁻¹)·H_e.
func (e *Element) mulGeneratorInverse(s int) *Element {
	out := e.mulGenerator(s)
	for x, c := range e.terms {
		addTerm(out.terms, x, c.Mul(e.alg.negQuad))
	}

	return out
}

// clone returns a copy whose term map may be mutated.
func (e *Element) clone() *Element {
	return &Element{alg: e.alg, terms: maps.Clone(e.terms)}
}
