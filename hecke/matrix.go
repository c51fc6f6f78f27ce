package hecke

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/hecke/matrix"
)

// Vector evaluates every coordinate at q = 1.
func Vector(c Coordinates) []*big.Int {
	out := make([]*big.Int, len(c))
	for i, p := range c {
		out[i] = p.Eval(1)
	}

	return out
}

// BasisMatrix decomposes each row element in target and returns the
// len(rows)×|W| matrix of coordinates at q = 1. Row i holds rows[i].
func (a *Algebra) BasisMatrix(rows []*Element, target *Basis) (*matrix.Int, error) {
	m, err := matrix.NewInt(len(rows), a.group.Size())
	if err != nil {
		return nil, fmt.Errorf("hecke: basis matrix: %w", err)
	}
	for i, e := range rows {
		if e.alg != a {
			return nil, fmt.Errorf("%w: row %d", ErrAlgebraMismatch, i)
		}
		c, err := e.InBasis(target)
		if err != nil {
			return nil, fmt.Errorf("hecke: basis matrix row %d: %w", i, err)
		}
		if err = setRow(m, i, c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ChangeOfBasis returns the |W|×|W| matrix whose row x holds the
// coordinates of from's b_x in to, at q = 1.
func (a *Algebra) ChangeOfBasis(from, to *Basis) (*matrix.Int, error) {
	return a.BasisMatrix(from.Elements(), to)
}

// Matrix returns the |W|×|W| matrix whose row x holds rows[name(x)] at
// q = 1. Names absent from rows give zero rows.
func (a *Algebra) Matrix(rows map[string]Coordinates) (*matrix.Int, error) {
	n := a.group.Size()
	m, err := matrix.NewInt(n, n)
	if err != nil {
		return nil, fmt.Errorf("hecke: matrix: %w", err)
	}
	for name, c := range rows {
		x, err := a.lookup(name)
		if err != nil {
			return nil, err
		}
		if len(c) != n {
			return nil, fmt.Errorf("%w: row %q", ErrCoordinateLength, name)
		}
		if err = setRow(m, x, c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func setRow(m *matrix.Int, i int, c Coordinates) error {
	for j, v := range Vector(c) {
		if err := m.Set(i, j, v); err != nil {
			return err
		}
	}

	return nil
}
