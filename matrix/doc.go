// Package matrix holds the integer matrix algebra behind continued-fraction
// arithmetic.
//
// Two matrix kinds are provided, both over math/big integers and both
// immutable (every operation returns a fresh value):
//
//   - LFT: a 2×2 matrix [[a, b], [c, d]] encoding the linear fractional
//     transform f(x) = (a·x + b)/(c·x + d). Composition is matrix product:
//     f∘g corresponds to F.Mul(G).
//   - Gosper: the 8-coefficient bihomographic tensor encoding
//     Z(x, y) = (A·xy + B·x + C·y + D)/(E·xy + F·x + G·y + H).
//
// Each kind knows how to absorb an input coefficient (the substitution
// x → t + 1/x') and how to emit an output coefficient (Z → 1/(Z − q)).
// The stepping engines that drive these matrices over lazy coefficient
// streams live in package cf.
//
// Term extraction:
//
//	LFT.TryProduceTerm compares floor(a/c) (x → ∞) and floor(b/d) (x → 0).
//	Gosper.TryNextTerm compares the floors of Z at the four corners of
//	[1, ∞]². A term is produced only when every bound agrees.
//
// Complexity: every operation is O(1) big-integer multiplications.
package matrix
