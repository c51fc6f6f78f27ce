package permutation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalid indicates that the absolute values of a sequence do not
	// form a permutation of 1..n (zero, out of range or repeated entries).
	ErrInvalid = errors.New("permutation: values are not a signed permutation")

	// ErrLengthMismatch indicates an operation on two permutations of
	// different length.
	ErrLengthMismatch = errors.New("permutation: length mismatch")
)

// Permutation is an immutable signed permutation of 1..n.
// The zero value is the empty permutation of length 0.
type Permutation struct {
	values []int // signed images of 1..n, never shared with callers
}

// New validates values and returns the permutation they encode.
// The input slice is copied; later mutations by the caller have no effect.
//
// Returns ErrInvalid if some |values[i]| is outside 1..n or repeated.
// Complexity: O(n).
func New(values ...int) (Permutation, error) {
	// 1. Validate the absolute values form a permutation of 1..n.
	n := len(values)
	seen := make([]bool, n)
	var v, a int
	for _, v = range values {
		a = abs(v)
		if a < 1 || a > n {
			return Permutation{}, fmt.Errorf("%w: %d out of range 1..%d", ErrInvalid, v, n)
		}
		if seen[a-1] {
			return Permutation{}, fmt.Errorf("%w: %d repeated", ErrInvalid, a)
		}
		seen[a-1] = true
	}

	// 2. Copy so the permutation stays immutable.
	cp := make([]int, n)
	copy(cp, values)

	return Permutation{values: cp}, nil
}

// MustNew is like New but panics on invalid input.
// It is intended for literal generator tables.
func MustNew(values ...int) Permutation {
	p, err := New(values...)
	if err != nil {
		panic(err)
	}

	return p
}

// Identity returns the identity permutation [1, 2, …, n].
func Identity(n int) Permutation {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}

	return Permutation{values: values}
}

// Len returns n, the number of points acted on.
func (p Permutation) Len() int { return len(p.values) }

// At returns the signed image of i+1 (0-based position i).
// It panics if i is out of range, like a slice index.
func (p Permutation) At(i int) int { return p.values[i] }

// Values returns a copy of the underlying signed sequence.
func (p Permutation) Values() []int {
	out := make([]int, len(p.values))
	copy(out, p.values)

	return out
}

// Mul returns the right composition p·q, applying q first:
//
//	(p·q)[i] = sign(q[i]) · p[|q[i]|-1]
//
// Returns ErrLengthMismatch if p and q act on different numbers of points.
// Complexity: O(n).
func (p Permutation) Mul(q Permutation) (Permutation, error) {
	if len(p.values) != len(q.values) {
		return Permutation{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(p.values), len(q.values))
	}

	out := make([]int, len(q.values))
	for i, v := range q.values {
		if v < 0 {
			out[i] = -p.values[-v-1]
		} else {
			out[i] = p.values[v-1]
		}
	}

	return Permutation{values: out}, nil
}

// Inverse returns p⁻¹. The magnitude i+1 is placed at position |p[i]|-1
// carrying the sign of p[i].
// Complexity: O(n).
func (p Permutation) Inverse() Permutation {
	out := make([]int, len(p.values))
	for i, v := range p.values {
		if v < 0 {
			out[-v-1] = -(i + 1)
		} else {
			out[v-1] = i + 1
		}
	}

	return Permutation{values: out}
}

// IsIdentity reports whether p fixes every point with positive sign.
func (p Permutation) IsIdentity() bool {
	for i, v := range p.values {
		if v != i+1 {
			return false
		}
	}

	return true
}

// Equal reports whether p and q have exactly the same value sequence.
func (p Permutation) Equal(q Permutation) bool {
	if len(p.values) != len(q.values) {
		return false
	}
	for i := range p.values {
		if p.values[i] != q.values[i] {
			return false
		}
	}

	return true
}

// Hash returns an order-sensitive hash of the value sequence.
// Equal permutations always hash equally.
func (p Permutation) Hash() uint64 {
	h := uint64(1)
	for _, v := range p.values {
		h = h*31 + uint64(int64(v))
	}

	return h
}

// Key returns a compact string identifying p, suitable as a map key.
// Two permutations have the same Key iff they are Equal.
func (p Permutation) Key() string {
	var sb strings.Builder
	sb.Grow(len(p.values) * 3)
	for i, v := range p.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// String renders p as "[v1 v2 … vn]".
func (p Permutation) String() string {
	return fmt.Sprint(p.values)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
