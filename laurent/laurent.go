package laurent

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

var (
	// ErrZeroDivision indicates substituting q = 0 into a polynomial that has
	// negative exponents.
	ErrZeroDivision = errors.New("laurent: evaluation at zero with negative degree")

	// ErrNotIntegral indicates a substitution whose value is not an integer.
	ErrNotIntegral = errors.New("laurent: evaluation is not an integer")
)

// Poly is a Laurent polynomial with big-integer coefficients.
// coef never stores a zero coefficient; a nil map is the zero polynomial.
type Poly struct {
	coef map[int]*big.Int
}

// New builds a polynomial from degree → coefficient pairs.
// Zero coefficients are dropped.
func New(coef map[int]int64) Poly {
	out := make(map[int]*big.Int, len(coef))
	for deg, c := range coef {
		if c != 0 {
			out[deg] = big.NewInt(c)
		}
	}

	return wrap(out)
}

// FromBig builds a polynomial from big-integer coefficients.
// The values are copied and zero coefficients are dropped.
func FromBig(coef map[int]*big.Int) Poly {
	out := make(map[int]*big.Int, len(coef))
	for deg, c := range coef {
		if c != nil && c.Sign() != 0 {
			out[deg] = new(big.Int).Set(c)
		}
	}

	return wrap(out)
}

// Monomial returns c·q^deg.
func Monomial(deg int, c int64) Poly {
	if c == 0 {
		return Poly{}
	}

	return Poly{coef: map[int]*big.Int{deg: big.NewInt(c)}}
}

// Constant returns the degree-0 polynomial c.
func Constant(c int64) Poly { return Monomial(0, c) }

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly { return Monomial(0, 1) }

// Q returns the formal variable q.
func Q() Poly { return Monomial(1, 1) }

// QInv returns q⁻¹.
func QInv() Poly { return Monomial(-1, 1) }

// wrap normalizes an empty map to the nil zero polynomial.
func wrap(coef map[int]*big.Int) Poly {
	if len(coef) == 0 {
		return Poly{}
	}

	return Poly{coef: coef}
}

// Add returns p + o.
func (p Poly) Add(o Poly) Poly {
	if len(o.coef) == 0 {
		return p
	}
	if len(p.coef) == 0 {
		return o
	}

	out := make(map[int]*big.Int, len(p.coef)+len(o.coef))
	for deg, c := range p.coef {
		out[deg] = new(big.Int).Set(c)
	}
	for deg, c := range o.coef {
		if cur, ok := out[deg]; ok {
			cur.Add(cur, c)
			if cur.Sign() == 0 {
				delete(out, deg)
			}
			continue
		}
		out[deg] = new(big.Int).Set(c)
	}

	return wrap(out)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make(map[int]*big.Int, len(p.coef))
	for deg, c := range p.coef {
		out[deg] = new(big.Int).Neg(c)
	}

	return wrap(out)
}

// Sub returns p - o.
func (p Poly) Sub(o Poly) Poly { return p.Add(o.Neg()) }

// Mul returns the product p·o as the convolution of the two coefficient maps.
// Complexity: O(|p|·|o|).
func (p Poly) Mul(o Poly) Poly {
	if len(p.coef) == 0 || len(o.coef) == 0 {
		return Poly{}
	}

	out := make(map[int]*big.Int, len(p.coef)+len(o.coef))
	term := new(big.Int)
	for d1, c1 := range p.coef {
		for d2, c2 := range o.coef {
			term.Mul(c1, c2)
			if cur, ok := out[d1+d2]; ok {
				cur.Add(cur, term)
			} else {
				out[d1+d2] = new(big.Int).Set(term)
			}
		}
	}
	// cancellations can only be detected once every product has landed
	for deg, c := range out {
		if c.Sign() == 0 {
			delete(out, deg)
		}
	}

	return wrap(out)
}

// Scale returns k·p.
func (p Poly) Scale(k int64) Poly { return p.ScaleBig(big.NewInt(k)) }

// ScaleBig returns k·p for an arbitrary-precision scalar.
func (p Poly) ScaleBig(k *big.Int) Poly {
	if k.Sign() == 0 {
		return Poly{}
	}

	out := make(map[int]*big.Int, len(p.coef))
	for deg, c := range p.coef {
		out[deg] = new(big.Int).Mul(c, k)
	}

	return wrap(out)
}

// Involute returns p(q⁻¹), negating every exponent.
func (p Poly) Involute() Poly {
	out := make(map[int]*big.Int, len(p.coef))
	for deg, c := range p.coef {
		out[-deg] = new(big.Int).Set(c)
	}

	return wrap(out)
}

// Shift returns q^n·p, so that Shift(n).Coeff(k) == Coeff(k-n).
func (p Poly) Shift(n int) Poly {
	out := make(map[int]*big.Int, len(p.coef))
	for deg, c := range p.coef {
		out[deg+n] = new(big.Int).Set(c)
	}

	return wrap(out)
}

// Eval substitutes q = v. It is meant for v = ±1 and for polynomials
// without negative exponents, where the value is always an integer; in any
// other case use EvalChecked or EvalRat. A non-integral value is truncated
// toward zero and q = 0 with a negative exponent yields 0.
func (p Poly) Eval(v int64) *big.Int {
	out, _ := p.EvalChecked(v)
	if out == nil {
		return new(big.Int)
	}

	return out
}

// EvalChecked substitutes q = v and returns ErrZeroDivision when v = 0 and
// p has a negative exponent, or ErrNotIntegral when the value is a proper
// fraction. On ErrNotIntegral the truncated value is still returned.
func (p Poly) EvalChecked(v int64) (*big.Int, error) {
	r, err := p.EvalRat(v)
	if err != nil {
		return new(big.Int), err
	}
	out := new(big.Int).Quo(r.Num(), r.Denom())
	if !r.IsInt() {
		return out, fmt.Errorf("%w: %s at q = %d is %s", ErrNotIntegral, p, v, r.RatString())
	}

	return out, nil
}

// EvalRat substitutes q = v over the rationals. It returns ErrZeroDivision
// when v = 0 and p has a negative exponent.
func (p Poly) EvalRat(v int64) (*big.Rat, error) {
	// 1. Guard division by zero.
	if bottom, ok := p.Bottom(); ok && v == 0 && bottom < 0 {
		return new(big.Rat), ErrZeroDivision
	}

	// 2. Accumulate Σ c·v^deg.
	base := big.NewInt(v)
	sum := new(big.Rat)
	pow := new(big.Int)
	for deg, c := range p.coef {
		if deg >= 0 {
			pow.Exp(base, big.NewInt(int64(deg)), nil)
			sum.Add(sum, new(big.Rat).SetInt(new(big.Int).Mul(c, pow)))
			continue
		}
		pow.Exp(base, big.NewInt(int64(-deg)), nil)
		sum.Add(sum, new(big.Rat).SetFrac(c, pow))
	}

	return sum, nil
}

// Top returns the highest degree; ok is false on the zero polynomial.
func (p Poly) Top() (deg int, ok bool) {
	for d := range p.coef {
		if !ok || d > deg {
			deg, ok = d, true
		}
	}

	return deg, ok
}

// Bottom returns the lowest degree; ok is false on the zero polynomial.
func (p Poly) Bottom() (deg int, ok bool) {
	for d := range p.coef {
		if !ok || d < deg {
			deg, ok = d, true
		}
	}

	return deg, ok
}

// AllPositiveDegree reports whether every stored exponent is strictly
// positive. It is vacuously true on the zero polynomial.
func (p Poly) AllPositiveDegree() bool {
	for d := range p.coef {
		if d <= 0 {
			return false
		}
	}

	return true
}

// Has reports whether p has a nonzero coefficient at deg.
func (p Poly) Has(deg int) bool {
	_, ok := p.coef[deg]

	return ok
}

// Coeff returns a copy of the coefficient of q^deg (0 when absent).
func (p Poly) Coeff(deg int) *big.Int {
	if c, ok := p.coef[deg]; ok {
		return new(big.Int).Set(c)
	}

	return new(big.Int)
}

// Degrees returns the degrees with nonzero coefficient in ascending order.
func (p Poly) Degrees() []int {
	out := make([]int, 0, len(p.coef))
	for d := range p.coef {
		out = append(out, d)
	}
	slices.Sort(out)

	return out
}

// Len returns the number of nonzero terms.
func (p Poly) Len() int { return len(p.coef) }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coef) == 0 }

// IsOne reports whether p is the constant 1.
func (p Poly) IsOne() bool {
	if len(p.coef) != 1 {
		return false
	}
	c, ok := p.coef[0]

	return ok && c.IsInt64() && c.Int64() == 1
}

// Equal reports whether p and o have identical coefficients.
func (p Poly) Equal(o Poly) bool {
	if len(p.coef) != len(o.coef) {
		return false
	}
	for deg, c := range p.coef {
		oc, ok := o.coef[deg]
		if !ok || c.Cmp(oc) != 0 {
			return false
		}
	}

	return true
}

// String renders p in ascending degree, e.g. "q^-1 - q" or "2 + 3q^2".
func (p Poly) String() string {
	if len(p.coef) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, deg := range p.Degrees() {
		c := p.coef[deg]
		abs := new(big.Int).Abs(c)
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		unit := abs.IsInt64() && abs.Int64() == 1
		if deg == 0 || !unit {
			sb.WriteString(abs.String())
		}
		switch deg {
		case 0:
		case 1:
			sb.WriteString("q")
		default:
			fmt.Fprintf(&sb, "q^%d", deg)
		}
	}

	return sb.String()
}
