package hecke

import (
	"fmt"

	"github.com/katalvlaran/hecke/laurent"
)

// GeneratorInverse returns H_s⁻¹ = H_s + (q − q⁻¹)·H_e for the generator
// labelled label.
func (a *Algebra) GeneratorInverse(label string) (*Element, error) {
	s, err := a.group.GeneratorIndex(label)
	if err != nil {
		return nil, fmt.Errorf("hecke: generator inverse: %w", err)
	}

	return a.One().mulGeneratorInverse(s), nil
}

// StandardInverse returns H_name⁻¹, the product of the generator inverses
// of name's reduced word in reverse order.
func (a *Algebra) StandardInverse(name string) (*Element, error) {
	x, err := a.lookup(name)
	if err != nil {
		return nil, err
	}

	return a.standardInverse(x), nil
}

func (a *Algebra) standardInverse(x int) *Element {
	word := a.group.At(x).Word()
	out := a.One()
	for i := len(word) - 1; i >= 0; i-- {
		out = out.mulGeneratorInverse(word[i])
	}

	return out
}

// barStandard returns the bar image of H_x, that is (H_{x⁻¹})⁻¹: the
// product of generator inverses along x's word in order.
func (a *Algebra) barStandard(x int) *Element {
	out := a.One()
	for _, s := range a.group.At(x).Word() {
		out = out.mulGeneratorInverse(s)
	}

	return out
}

// Dual returns the bar involution Σ c̄_x·(H_{x⁻¹})⁻¹ of e, where c̄ is
// c with q ↦ q⁻¹. Dual is a ring involution: e.Dual().Dual() equals e.
func (e *Element) Dual() *Element {
	acc := make(map[int]laurent.Poly)
	for x, c := range e.terms {
		bar := e.alg.barStandard(x)
		ci := c.Involute()
		for y, b := range bar.terms {
			addTerm(acc, y, b.Mul(ci))
		}
	}

	return &Element{alg: e.alg, terms: acc}
}

// AntiInvolution returns Σ c_x·H_{x⁻¹}. It reverses products:
// (a·b).AntiInvolution() equals b.AntiInvolution()·a.AntiInvolution().
func (e *Element) AntiInvolution() *Element {
	terms := make(map[int]laurent.Poly, len(e.terms))
	for x, c := range e.terms {
		terms[e.alg.group.At(x).Inverse().Index()] = c
	}

	return &Element{alg: e.alg, terms: terms}
}
