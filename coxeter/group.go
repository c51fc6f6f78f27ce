package coxeter

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/hecke/permutation"
)

// IdentityName is the name of the identity element.
const IdentityName = "e"

// Sentinel errors for group generation and element access.
var (
	// ErrNoGenerators indicates Generate was called with an empty set.
	ErrNoGenerators = errors.New("coxeter: no generators")

	// ErrInvalidLabel indicates a generator label that is not a single rune,
	// or that collides with the identity name "e".
	ErrInvalidLabel = errors.New("coxeter: invalid generator label")

	// ErrArityMismatch indicates generator permutations of different length.
	ErrArityMismatch = errors.New("coxeter: generators should all have the same length")

	// ErrNotInvolution indicates a generator whose square is not the identity.
	ErrNotInvolution = errors.New("coxeter: generator is not an involution")

	// ErrDuplicateGenerator indicates a generator equal to the identity or to
	// another generator.
	ErrDuplicateGenerator = errors.New("coxeter: duplicate generator")

	// ErrUnknownElement indicates a lookup by a name absent from the group.
	ErrUnknownElement = errors.New("coxeter: unknown element")

	// ErrUnknownGenerator indicates a word letter that is not a generator label.
	ErrUnknownGenerator = errors.New("coxeter: unknown generator")

	// ErrGroupMismatch indicates an operation mixing elements of two groups.
	ErrGroupMismatch = errors.New("coxeter: elements belong to different groups")
)

// Group is a finite Coxeter group produced by Generate.
// It is immutable after construction and safe for concurrent readers.
type Group struct {
	labels   []string                  // generator labels, ascending
	gens     []permutation.Permutation // generator permutations, same order as labels
	genIndex map[rune]int              // label rune → generator position

	// parallel slices indexed by element index (canonical order)
	names   []string
	words   [][]int // generator positions spelling a reduced word
	perms   []permutation.Permutation
	inverse []int
	rmul    [][]int // rmul[x][s] = index of x·s

	byName map[string]int // name → index
	byPerm map[string]int // permutation key → index
}

// node is one element discovered by the breadth-first closure.
type node struct {
	name string
	word []int
	perm permutation.Permutation
}

// Generate builds the group generated by the labelled permutations.
//
// Steps:
//  1. Validate labels, arity, involution property and distinctness.
//  2. Seed with the identity "e" and every generator in label order.
//  3. Breadth-first closure: extend each element of the last layer on the
//     right by each generator; unseen permutations become new elements
//     named parent+label. Stops when a layer adds nothing.
//  4. Number elements in canonical (length, name) order.
//  5. Fill the permutation lookup, inverses and right multiplication table.
//
// The closure always terminates: signed permutations of n points form a
// finite group.
func Generate(generators map[string]permutation.Permutation) (*Group, error) {
	// 1. Validate input.
	labels, err := validate(generators)
	if err != nil {
		return nil, err
	}
	arity := generators[labels[0]].Len()

	g := &Group{
		labels:   labels,
		gens:     make([]permutation.Permutation, len(labels)),
		genIndex: make(map[rune]int, len(labels)),
	}
	for i, l := range labels {
		g.gens[i] = generators[l]
		r, _ := utf8.DecodeRuneInString(l)
		g.genIndex[r] = i
	}

	// 2. Seed identity and generators.
	id := permutation.Identity(arity)
	seen := map[string]struct{}{id.Key(): {}}
	found := []node{{name: IdentityName, perm: id}}
	layer := make([]node, 0, len(labels))
	for i, l := range labels {
		key := g.gens[i].Key()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGenerator, l)
		}
		seen[key] = struct{}{}
		layer = append(layer, node{name: l, word: []int{i}, perm: g.gens[i]})
	}
	found = append(found, layer...)

	// 3. Breadth-first closure under right multiplication.
	for len(layer) > 0 {
		next := make([]node, 0, len(layer)*len(labels))
		for _, parent := range layer {
			for s, gen := range g.gens {
				p, err := parent.perm.Mul(gen)
				if err != nil {
					return nil, err
				}
				key := p.Key()
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				word := make([]int, len(parent.word)+1)
				copy(word, parent.word)
				word[len(parent.word)] = s
				next = append(next, node{name: parent.name + labels[s], word: word, perm: p})
			}
		}
		found = append(found, next...)
		layer = next
	}

	// 4. Canonical numbering. BFS already emits this order; the stable sort
	// keeps it explicit.
	slices.SortStableFunc(found, func(a, b node) int {
		if c := cmp.Compare(len(a.word), len(b.word)); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	n := len(found)
	g.names = make([]string, n)
	g.words = make([][]int, n)
	g.perms = make([]permutation.Permutation, n)
	g.byName = make(map[string]int, n)
	g.byPerm = make(map[string]int, n)
	for i, nd := range found {
		g.names[i] = nd.name
		g.words[i] = nd.word
		g.perms[i] = nd.perm
		g.byName[nd.name] = i
		g.byPerm[nd.perm.Key()] = i
	}

	// 5. Derived tables.
	if err = g.fillTables(); err != nil {
		return nil, err
	}

	return g, nil
}

// validate checks the generator set and returns its labels in ascending order.
func validate(generators map[string]permutation.Permutation) ([]string, error) {
	if len(generators) == 0 {
		return nil, ErrNoGenerators
	}

	labels := make([]string, 0, len(generators))
	for l := range generators {
		if utf8.RuneCountInString(l) != 1 || l == IdentityName {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLabel, l)
		}
		labels = append(labels, l)
	}
	slices.Sort(labels)

	lengths := make(map[int]struct{}, 1)
	for _, l := range labels {
		lengths[generators[l].Len()] = struct{}{}
	}
	if len(lengths) != 1 {
		sizes := make([]int, 0, len(lengths))
		for k := range lengths {
			sizes = append(sizes, k)
		}
		slices.Sort(sizes)
		return nil, fmt.Errorf("%w (lengths: %v)", ErrArityMismatch, sizes)
	}

	for _, l := range labels {
		p := generators[l]
		if p.IsIdentity() {
			return nil, fmt.Errorf("%w: %q is the identity", ErrDuplicateGenerator, l)
		}
		sq, err := p.Mul(p)
		if err != nil {
			return nil, err
		}
		if !sq.IsIdentity() {
			return nil, fmt.Errorf("%w: %q", ErrNotInvolution, l)
		}
	}

	return labels, nil
}

// fillTables computes inverses and the right multiplication table.
func (g *Group) fillTables() error {
	n := len(g.names)
	g.inverse = make([]int, n)
	g.rmul = make([][]int, n)

	var ok bool
	for x := 0; x < n; x++ {
		// x⁻¹ is the product of x's letters in reverse order.
		p := permutation.Identity(g.gens[0].Len())
		word := g.words[x]
		for i := len(word) - 1; i >= 0; i-- {
			p, _ = p.Mul(g.gens[word[i]])
		}
		if g.inverse[x], ok = g.byPerm[p.Key()]; !ok {
			return fmt.Errorf("coxeter: inverse of %q not closed", g.names[x])
		}

		row := make([]int, len(g.gens))
		for s, gen := range g.gens {
			q, _ := g.perms[x].Mul(gen)
			if row[s], ok = g.byPerm[q.Key()]; !ok {
				return fmt.Errorf("coxeter: %s·%s not closed", g.names[x], g.labels[s])
			}
		}
		g.rmul[x] = row
	}

	return nil
}

// Size returns the number of elements.
func (g *Group) Size() int { return len(g.names) }

// Rank returns the number of generators.
func (g *Group) Rank() int { return len(g.gens) }

// Arity returns the number of points the generating permutations act on.
func (g *Group) Arity() int { return g.gens[0].Len() }

// Labels returns the generator labels in ascending order.
func (g *Group) Labels() []string { return slices.Clone(g.labels) }

// Identity returns the identity element "e".
func (g *Group) Identity() Element { return Element{group: g, index: 0} }

// Longest returns the element of maximal (length, name).
func (g *Group) Longest() Element { return Element{group: g, index: len(g.names) - 1} }

// At returns the element with the given canonical index.
// It panics if i is out of range, like a slice index.
func (g *Group) At(i int) Element {
	_ = g.names[i]

	return Element{group: g, index: i}
}

// Element looks an element up by name.
func (g *Group) Element(name string) (Element, error) {
	i, ok := g.byName[name]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}

	return Element{group: g, index: i}, nil
}

// Has reports whether name is the name of an element.
func (g *Group) Has(name string) bool {
	_, ok := g.byName[name]

	return ok
}

// Generator returns the generator at position s of Labels().
func (g *Group) Generator(s int) Element {
	return Element{group: g, index: g.rmul[0][s]}
}

// GeneratorIndex returns the position of label in Labels().
func (g *Group) GeneratorIndex(label string) (int, error) {
	r, size := utf8.DecodeRuneInString(label)
	s, ok := g.genIndex[r]
	if !ok || size != len(label) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGenerator, label)
	}

	return s, nil
}

// Evaluate returns the product of the letters of word, which need not be
// reduced. "" and "e" evaluate to the identity.
func (g *Group) Evaluate(word string) (Element, error) {
	x := 0
	if word == IdentityName {
		return g.Identity(), nil
	}
	for _, r := range word {
		s, ok := g.genIndex[r]
		if !ok {
			return Element{}, fmt.Errorf("%w: %q in %q", ErrUnknownGenerator, r, word)
		}
		x = g.rmul[x][s]
	}

	return Element{group: g, index: x}, nil
}

// Elements returns all elements in canonical (length, name) order.
func (g *Group) Elements() []Element {
	out := make([]Element, len(g.names))
	for i := range out {
		out[i] = Element{group: g, index: i}
	}

	return out
}

// Generators returns the generators in label order.
func (g *Group) Generators() []Element {
	out := make([]Element, len(g.gens))
	for s := range out {
		out[s] = g.Generator(s)
	}

	return out
}

// Names returns every element name in canonical order.
func (g *Group) Names() []string { return slices.Clone(g.names) }

// Permutation returns the permutation representing x.
func (g *Group) Permutation(x Element) permutation.Permutation { return g.perms[x.index] }

// Lookup returns the element represented by p, if any.
func (g *Group) Lookup(p permutation.Permutation) (Element, bool) {
	i, ok := g.byPerm[p.Key()]
	if !ok {
		return Element{}, false
	}

	return Element{group: g, index: i}, true
}
