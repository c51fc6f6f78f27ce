// Package laurent implements sparse Laurent polynomials Σ c_k q^k in one
// formal variable q with arbitrary-precision integer coefficients and
// possibly negative exponents. They are the coefficient ring of the Hecke
// algebra.
//
// What:
//
//   - Poly keeps only nonzero coefficients (canonical sparse form), so
//     equality is a plain comparison of coefficient maps.
//   - Ring operations: Add, Neg, Sub, Mul (discrete convolution), Scale.
//   - Involute: q ↦ q⁻¹ (degree negation), the coefficient part of the bar
//     involution of the Hecke algebra.
//   - Shift(n): multiplication by the monomial q^n.
//   - Eval(v), EvalChecked(v), EvalRat(v): substitution of an integer for q;
//     EvalChecked rejects non-integral values, EvalRat keeps them exact.
//   - Top/Bottom: highest and lowest degree, absent on the zero polynomial.
//   - AllPositiveDegree: every stored exponent is > 0 (KL positivity).
//
// The zero value of Poly is the zero polynomial and is ready to use.
// Poly values are immutable: every operation returns a fresh value and no
// *big.Int is shared with callers.
//
// Complexity:
//
//   - Add/Sub/Neg/Scale/Involute/Shift: O(|A|+|B|) big-integer operations.
//   - Mul: O(|A|·|B|).
//   - Degrees/String/Top/Bottom: O(|A|·log|A|) or O(|A|).
//
// Errors:
//
//   - ErrZeroDivision   EvalChecked(0) on a polynomial with negative degrees
//   - ErrNotIntegral    EvalChecked whose value is a proper fraction
package laurent
