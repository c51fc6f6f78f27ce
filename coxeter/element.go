package coxeter

import (
	"fmt"
	"slices"
)

// Element is a handle on one element of a Group.
// Elements are comparable: two handles are == iff they denote the same
// element of the same group. The zero value is not usable.
type Element struct {
	group *Group
	index int
}

// Group returns the owning group.
func (x Element) Group() *Group { return x.group }

// Index returns the canonical (length, name) position of x.
func (x Element) Index() int { return x.index }

// Name returns the reduced word naming x, or "e" for the identity.
func (x Element) Name() string { return x.group.names[x.index] }

// String implements fmt.Stringer.
func (x Element) String() string { return x.Name() }

// Word returns the generator positions spelling x's name.
func (x Element) Word() []int { return slices.Clone(x.group.words[x.index]) }

// Length returns the Coxeter length ℓ(x), 0 for the identity.
func (x Element) Length() int { return len(x.group.words[x.index]) }

// IsIdentity reports whether x is the identity.
func (x Element) IsIdentity() bool { return x.index == 0 }

// Inverse returns x⁻¹.
func (x Element) Inverse() Element {
	return Element{group: x.group, index: x.group.inverse[x.index]}
}

// MulGenerator returns x·s for the generator at position s of Labels().
func (x Element) MulGenerator(s int) Element {
	return Element{group: x.group, index: x.group.rmul[x.index][s]}
}

// Mul returns the group product x·y.
// Returns ErrGroupMismatch when x and y come from different groups.
// Complexity: O(ℓ(y)).
func (x Element) Mul(y Element) (Element, error) {
	if x.group != y.group {
		return Element{}, fmt.Errorf("%w: %s·%s", ErrGroupMismatch, x.Name(), y.Name())
	}

	idx := x.index
	for _, s := range x.group.words[y.index] {
		idx = x.group.rmul[idx][s]
	}

	return Element{group: x.group, index: idx}, nil
}

// Less reports whether x precedes y in canonical (length, name) order.
func (x Element) Less(y Element) bool { return x.index < y.index }

// DescentRight reports whether ℓ(x·s) < ℓ(x).
func (x Element) DescentRight(s int) bool {
	return x.MulGenerator(s).Length() < x.Length()
}

// Equal reports whether x and y denote the same element of the same group.
func (x Element) Equal(y Element) bool { return x == y }
