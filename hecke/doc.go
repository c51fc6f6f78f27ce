// Package hecke implements the one-parameter Iwahori–Hecke algebra of a
// finite Coxeter group over Laurent polynomials in q, together with its
// Kazhdan–Lusztig (KL) and dual KL bases and the orders derived from them.
//
// What:
//
//   - Algebra: wraps one *coxeter.Group; builds elements, caches bases,
//     the KL digraph and the right/left orders.
//   - Element: a finite sum Σ c_x·H_x with c_x ∈ ℤ[q, q⁻¹], immutable.
//     Multiplication follows the quadratic relation
//     H_x·H_s = H_xs                  if ℓ(xs) > ℓ(x)
//     H_x·H_s = H_xs + (q⁻¹ − q)·H_x  otherwise.
//   - Dual: the bar involution Σ c_x H_x ↦ Σ c̄_x (H_{x⁻¹})⁻¹.
//   - KLBasis: C_e = H_e, C_s = H_s + q·H_e, C_xs = C_x·C_s − Σ μ(y,x)·C_y.
//   - DualKLBasis: D_w = H_w − Σ_{y>w} p_{w⁻¹,y⁻¹}·D_y, the basis paired
//     with KL under τ(C_x·D_y) = δ(y, x⁻¹).
//   - InBasis: unitriangular decomposition into any such basis.
//   - BasisMatrix, Matrix, Vector: coefficient tables evaluated at q = 1.
//   - Filtration: text rendering of coordinates grouped by degree.
//   - Digraph, Orders, RightCells, LeftCells: the KL preorders.
//
// Why:
//   - KL polynomials and cells are the basic combinatorial invariants of a
//     Coxeter group; a symbolic implementation checks them exactly.
//
// Determinism:
//
//   - Every listing follows the canonical (length, name) order of the group.
//
// Concurrency:
//
//   - Elements are immutable. Bases, digraph and orders are built once under
//     sync.Once and are read-only afterwards, so an Algebra may be shared.
//
// Complexity (n = |W|, L = ℓ(w0)):
//
//   - Mul:          O(|a|·|b|·L) term updates.
//   - KLBasis:      O(n) products C_x·C_s plus corrections.
//   - DualKLBasis:  O(n²) coefficient lookups plus subtractions.
//   - Orders:       O(n·|S|) products and decompositions, O(n·(n+E)) closure.
//
// Errors:
//
//   - ErrNilGroup          NewAlgebra without a group
//   - ErrAlgebraMismatch   mixing elements of different algebras
//   - ErrUnknownElement    name not in the group (wraps coxeter.ErrUnknownElement)
//   - ErrNotPositive       basis post-condition violated
//   - ErrNotTriangular     decomposition target without unit diagonal
//   - ErrCoordinateLength  coordinates of the wrong length
package hecke
