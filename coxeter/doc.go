// Package coxeter generates finite Coxeter groups from generating
// reflections given as signed permutations, and exposes their elements as
// lightweight handles carrying a reduced word.
//
// What:
//
//   - Generate closes a set of labelled generators under right
//     multiplication, breadth first. Each new permutation is named by its
//     parent's name followed by the generator label, so every name is a
//     reduced word: the first one found in (length, generator order).
//   - The identity is named "e". Generator labels are single runes other
//     than 'e', ordered ascending; that order fixes every name.
//   - Elements are numbered in canonical (length, name) order. Index() is
//     the position in Elements() and the row/column used by every matrix
//     built on top of a group.
//   - Length() is the number of letters of the name, valid because names
//     are reduced. Longest() is the last element in canonical order.
//
// Why:
//
//   - The group holds all derived structure in parallel slices indexed by
//     element index (words, permutations, inverses, right multiplication
//     table); elements are comparable (group, index) pairs, so equality is
//     ==, and no string concatenation happens on the hot path.
//
// Complexity:
//
//   - Generate: O(|W|·r·n) permutation products for |W| elements, r
//     generators acting on n points; memory O(|W|·(n+r)).
//   - Element.Mul: O(ℓ(y)) table lookups. MulGenerator, Inverse: O(1).
//
// Errors:
//
//   - ErrNoGenerators       empty generator set
//   - ErrInvalidLabel       label is not a single rune or is "e"
//   - ErrArityMismatch      generator permutations differ in length
//   - ErrNotInvolution      generator squared is not the identity
//   - ErrDuplicateGenerator generator equals the identity or another one
//   - ErrUnknownElement     lookup by a name that is not in the group
//   - ErrUnknownGenerator   a word contains a letter that is not a label
//   - ErrGroupMismatch      multiplying elements of different groups
//   - ErrUnsupportedType    catalog request outside A_n, B_n, D_n, G_2
package coxeter
