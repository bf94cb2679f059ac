// Package cf implements exact real arithmetic on continued fractions.
//
// A value of type *CF is the sequence of coefficients [a0; a1, a2, ...] of a
// real number, produced lazily and memoized (see package lazy). Every
// coefficient after a0 is strictly positive and the sequence never ends in a
// bare 1 (canonical form). Two special values exist:
//
//	Infinity   []    (the empty sequence, unsigned)
//	Zero       [0]
//
// What:
//
//   - Factories: FromRational, FromFrac, FromCoefficients, FromGenerator,
//     FromSeq, FromFloat64 and the constants E, Sqrt2, Phi.
//   - Unary operators: Neg, Reciprocal and Transform, driven by the
//     homographic (2×2 matrix) engine.
//   - Binary operators between two continued fractions (Add, Sub, Mul, Div),
//     driven by Gosper's bihomographic (8-coefficient tensor) engine.
//   - Binary operators with a rational operand (AddFrac, FracSub, ...), which
//     only need the homographic engine.
//   - Comparison, convergents, exact and float64 conversion, display.
//
// Laziness:
//
// No operator computes anything up front except the special-value checks,
// which read at most two coefficients of each operand. The result is a new
// value whose coefficients are produced when somebody asks for them (At, Take,
// All, String, comparison). Arithmetic on infinite expansions such as E or
// Sqrt2 is therefore cheap to build and pays only for the terms read.
//
// Special values:
//
//	∞ + x = ∞          ∞ − ∞ → ErrIndeterminate
//	∞ × 0 → ErrIndeterminate    x ÷ 0 → ErrDivisionByZero
//	∞ ÷ ∞ → ErrIndeterminate    x ÷ ∞ = 0
//
// These are settled before an engine is started, so the engines only see
// finite nonzero operands.
//
// Termination:
//
// Gosper's algorithm cannot always decide the next coefficient: √2·√2 is
// exactly 2, yet no finite prefix of √2 proves the product is not slightly
// below 2. The engine therefore carries a safety fuse: after
// Options.FuseRounds consecutive rounds that consumed input without producing
// output it stops and emits the simplest rational consistent with everything
// read so far (or the limit A/E, see WithFuseFinish). Results of this kind are
// exact whenever the true value is a simple rational, and otherwise agree with
// the true value to the precision reached when the fuse fired.
//
// Equality:
//
// Cmp and Equal look at no more than Options.CompareDepth coefficients
// (default 40, about the precision of a float64). Two values that agree on
// that many coefficients compare equal.
//
// Concurrency:
//
// A *CF is not safe for concurrent use: reading coefficients mutates the
// shared memo. Results of operators read their operands lazily, so an operand
// must not be read from another goroutine while a result is being read either.
package cf
