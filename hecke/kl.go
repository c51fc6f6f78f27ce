package hecke

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/hecke/laurent"
	"github.com/katalvlaran/hecke/progress"
)

// KLBasis returns the Kazhdan–Lusztig basis {C_x}, built on first use.
//
// Steps:
//  1. C_e = H_e and C_s = H_s + q·H_e for every generator s.
//  2. For w in canonical order with w = x·s (s the last letter of w's
//     name), start from C_x·C_s.
//  3. For every y ≠ x in the support of C_x with ys < y, subtract μ·C_y
//     where μ is the coefficient of q¹ in C_x's coefficient at H_y.
//  4. Check the result: coefficient 1 at H_w, strictly positive degrees
//     elsewhere (ErrNotPositive).
//
// Entries already present are never recomputed.
func (a *Algebra) KLBasis() (*Basis, error) {
	a.klOnce.Do(func() {
		a.kl, a.klErr = a.buildKL()
	})

	return a.kl, a.klErr
}

func (a *Algebra) buildKL() (*Basis, error) {
	g := a.group
	n := g.Size()
	elems := make([]*Element, n)
	rep := a.reporter(progress.StageKLBasis)

	// 1. Base cases
	elems[0] = a.One()
	for _, gen := range g.Generators() {
		cs := a.std(gen.Index())
		addTerm(cs.terms, 0, laurent.Q())
		elems[gen.Index()] = cs
	}

	for w := 1; w < n; w++ {
		if err := a.canceled(progress.StageKLBasis); err != nil {
			return nil, err
		}
		if elems[w] != nil {
			continue
		}
		we := g.At(w)
		word := we.Word()
		s := word[len(word)-1]
		x := we.MulGenerator(s).Index()
		cx := elems[x]

		// 2. Candidate C_x·C_s
		cw := cx.mul(elems[g.Generator(s).Index()])

		// 3. μ-corrections
		for _, y := range cx.indices() {
			if y == x || !g.At(y).DescentRight(s) {
				continue
			}
			mu := cx.terms[y].Coeff(1)
			if mu.Sign() == 0 {
				continue
			}
			cy := elems[y]
			if cy == nil {
				return nil, fmt.Errorf("hecke: kl basis: C_%s needed before C_%s", g.At(y), we)
			}
			cw = cw.sub(cy.ScalePoly(laurent.FromBig(map[int]*big.Int{0: mu})))
		}

		// 4. Post-condition
		if !unitriangular(cw, w) {
			return nil, fmt.Errorf("%w: C_%s = %s", ErrNotPositive, we, cw)
		}
		elems[w] = cw
		rep.Tick(w+1, n)
	}
	rep.Done()

	return &Basis{alg: a, name: "kl", elems: elems}, nil
}

// DualKLBasis returns the dual Kazhdan–Lusztig basis {D_x}, built on first
// use. It is characterised by τ(C_x·D_y) = 1 if y = x⁻¹ and 0 otherwise.
//
// Steps:
//  1. Walk w in reverse canonical order starting from D_{w0} = H_{w0}.
//  2. D_w = H_w − Σ_{y>w} p(w⁻¹, y⁻¹)·D_y, where p(z, v) is the
//     coefficient of H_z in C_v and y > w refers to canonical order.
//  3. Check the result: coefficient 1 at H_w, strictly positive degrees
//     elsewhere (ErrNotPositive).
func (a *Algebra) DualKLBasis() (*Basis, error) {
	a.dualOnce.Do(func() {
		a.dual, a.dualErr = a.buildDualKL()
	})

	return a.dual, a.dualErr
}

func (a *Algebra) buildDualKL() (*Basis, error) {
	kl, err := a.KLBasis()
	if err != nil {
		return nil, err
	}

	g := a.group
	n := g.Size()
	inv := make([]int, n)
	for x := range inv {
		inv[x] = g.At(x).Inverse().Index()
	}
	elems := make([]*Element, n)
	rep := a.reporter(progress.StageDualKLBasis)

	// 1. Reverse canonical order
	for w := n - 1; w >= 0; w-- {
		if err = a.canceled(progress.StageDualKLBasis); err != nil {
			return nil, err
		}
		if elems[w] != nil {
			continue
		}

		// 2. Back-substitution
		dw := a.std(w)
		for y := w + 1; y < n; y++ {
			p := kl.elems[inv[y]].terms[inv[w]]
			if p.IsZero() {
				continue
			}
			dw = dw.sub(elems[y].ScalePoly(p))
		}

		// 3. Post-condition
		if !unitriangular(dw, w) {
			return nil, fmt.Errorf("%w: D_%s = %s", ErrNotPositive, g.At(w), dw)
		}
		elems[w] = dw
		rep.Tick(n-w, n)
	}
	rep.Done()

	return &Basis{alg: a, name: "dual-kl", elems: elems}, nil
}
