// Package permutation implements signed permutations, the faithful
// representation used to build finite Coxeter groups.
//
// What:
//
//   - Permutation: an immutable sequence p of n signed integers where the
//     absolute values |p[0]|…|p[n-1]| form a permutation of 1..n. Entry i
//     holds the signed image of i+1; a negative entry encodes a sign flip,
//     which realizes the reflections of types B, D and G.
//   - Mul: right composition, (p·q)[i] = sign(q[i]) · p[|q[i]|-1].
//   - Inverse: inv[|p[i]|-1] = sign(p[i]) · (i+1), so that p·p⁻¹ = p⁻¹·p = id.
//
// Equality is structural. Hash combines the entries order-sensitively
// (h = 31·h + v) and is consistent with Equal; Key returns a comparable
// string usable as a map key.
//
// Complexity:
//
//   - New, Mul, Inverse, Equal, Hash, Key: Time O(n), Memory O(n).
//
// Errors:
//
//   - ErrInvalid          values do not form a signed permutation of 1..n
//   - ErrLengthMismatch   composing permutations of different length
package permutation
