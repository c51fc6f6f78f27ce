package hecke_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hecke/hecke"
	"github.com/katalvlaran/hecke/laurent"
	"github.com/katalvlaran/hecke/progress"
)

func TestKLBasis_A2Explicit(t *testing.T) {
	a := a2(t)
	kl, err := a.KLBasis()
	require.NoError(t, err)
	assert.Equal(t, 6, kl.Len())
	assert.Equal(t, "kl", kl.Name())

	want := map[string]map[string]laurent.Poly{
		"e":   {"e": laurent.One()},
		"r":   {"r": laurent.One(), "e": laurent.Q()},
		"rs":  {"rs": laurent.One(), "r": laurent.Q(), "s": laurent.Q(), "e": laurent.Monomial(2, 1)},
		"rsr": {"rsr": laurent.One(), "rs": laurent.Q(), "sr": laurent.Q(), "r": laurent.Monomial(2, 1), "s": laurent.Monomial(2, 1), "e": laurent.Monomial(3, 1)},
	}
	for name, coefs := range want {
		exp, err := a.Element(coefs)
		require.NoError(t, err)
		got, err := kl.Get(name)
		require.NoError(t, err)
		assert.True(t, got.Equal(exp), "C_%s = %s", name, got)
	}

	_, err = kl.Get("x")
	assert.ErrorIs(t, err, hecke.ErrUnknownElement)
}

func TestKLBasis_SelfDualAndPositive(t *testing.T) {
	for _, name := range []string{"A1", "A2", "A3", "B2", "B3", "G2"} {
		t.Run(name, func(t *testing.T) {
			a := catalog(t, name)
			kl, err := a.KLBasis()
			require.NoError(t, err)

			for _, x := range a.Group().Elements() {
				c := kl.At(x)
				require.NotNil(t, c)
				assert.True(t, c.Dual().Equal(c), "C_%s is bar-invariant", x)
				for _, y := range c.Support() {
					coef := c.Coeff(y)
					if y == x {
						assert.True(t, coef.IsOne(), "diagonal of C_%s", x)
						continue
					}
					assert.True(t, coef.AllPositiveDegree(), "C_%s at %s: %s", x, y, coef)
					// support lies strictly below in length
					assert.Less(t, y.Length(), x.Length())
				}
			}
		})
	}
}

func TestKLBasis_NontrivialPolynomials(t *testing.T) {
	count := func(name string) int {
		a := catalog(t, name)
		kl, err := a.KLBasis()
		require.NoError(t, err)
		n := 0
		for _, c := range kl.Elements() {
			for _, y := range c.Support() {
				if c.Coeff(y).Len() > 1 {
					n++
					break
				}
			}
		}

		return n
	}
	// every KL polynomial of a dihedral group or of S3 is trivial
	assert.Zero(t, count("A2"))
	assert.Zero(t, count("B2"))
	assert.Zero(t, count("G2"))
	// S4 has exactly two singular Schubert varieties: 3412 and 4231
	assert.Equal(t, 2, count("A3"))
}

func TestDualKLBasis_A1(t *testing.T) {
	a := catalog(t, "A1")
	dual, err := a.DualKLBasis()
	require.NoError(t, err)
	assert.Equal(t, "dual-kl", dual.Name())

	de, err := dual.Get("e")
	require.NoError(t, err)
	want, err := a.Element(map[string]laurent.Poly{"e": laurent.One(), "r": laurent.Monomial(1, -1)})
	require.NoError(t, err)
	assert.True(t, de.Equal(want), "D_e = %s", de)

	dr, err := dual.Get("r")
	require.NoError(t, err)
	assert.True(t, dr.Equal(h(t, a, "r")))
}

func TestDualKLBasis_Unitriangular(t *testing.T) {
	a := catalog(t, "B3")
	dual, err := a.DualKLBasis()
	require.NoError(t, err)
	for _, x := range a.Group().Elements() {
		d := dual.At(x)
		for _, y := range d.Support() {
			if y == x {
				assert.True(t, d.Coeff(y).IsOne())
				continue
			}
			assert.True(t, d.Coeff(y).AllPositiveDegree())
			assert.Greater(t, y.Length(), x.Length(), "D_%s is supported above %s", x, x)
		}
	}
}

func TestKLPairing(t *testing.T) {
	groups := []string{"A1", "A2", "B2", "G2"}
	if !testing.Short() {
		groups = append(groups, "A3")
	}
	for _, name := range groups {
		t.Run(name, func(t *testing.T) {
			a := catalog(t, name)
			kl, err := a.KLBasis()
			require.NoError(t, err)
			dual, err := a.DualKLBasis()
			require.NoError(t, err)

			for _, x := range a.Group().Elements() {
				for _, y := range a.Group().Elements() {
					tau := mul(t, kl.At(x), dual.At(y)).Tau()
					rev := mul(t, dual.At(y), kl.At(x)).Tau()
					if y == x.Inverse() {
						assert.True(t, tau.IsOne(), "τ(C_%s·D_%s) = %s", x, y, tau)
						assert.True(t, rev.IsOne(), "τ(D_%s·C_%s) = %s", y, x, rev)
					} else {
						assert.True(t, tau.IsZero(), "τ(C_%s·D_%s) = %s", x, y, tau)
						assert.True(t, rev.IsZero(), "τ(D_%s·C_%s) = %s", y, x, rev)
					}
				}
			}
		})
	}
}

func TestBases_Memoized(t *testing.T) {
	a := catalog(t, "A3")

	var wg sync.WaitGroup
	kls := make([]*hecke.Basis, 8)
	duals := make([]*hecke.Basis, 8)
	for i := range kls {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			kls[i], _ = a.KLBasis()
			duals[i], _ = a.DualKLBasis()
		}(i)
	}
	wg.Wait()

	for i := range kls {
		require.NotNil(t, kls[i])
		assert.Same(t, kls[0], kls[i])
		assert.Same(t, duals[0], duals[i])
	}
}

func TestBases_ReportProgress(t *testing.T) {
	var mu sync.Mutex
	last := map[progress.Stage]float64{}
	obs := progress.ObserverFunc(func(s progress.Stage, p float64) {
		mu.Lock()
		defer mu.Unlock()
		assert.GreaterOrEqual(t, p, last[s], "monotone %s", s)
		last[s] = p
	})
	a := catalog(t, "A2", hecke.WithObserver(obs), hecke.WithReportInterval(time.Duration(0)))

	_, err := a.DualKLBasis()
	require.NoError(t, err)
	_, _, err = a.Orders()
	require.NoError(t, err)

	for _, s := range []progress.Stage{progress.StageKLBasis, progress.StageDualKLBasis, progress.StageDigraph, progress.StageOrder} {
		assert.Equal(t, float64(100), last[s], s.String())
	}
}

func TestWithObserver_Nil(t *testing.T) {
	a := catalog(t, "A2", hecke.WithObserver(nil))
	_, err := a.KLBasis()
	assert.NoError(t, err)
}
