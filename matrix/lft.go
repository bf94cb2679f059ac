// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// LFT is the 2×2 integer matrix [[A, B], [C, D]] of the linear fractional
// transform f(x) = (A·x + B)/(C·x + D).
//
// Values are immutable: methods never modify the receiver's integers, and
// constructors copy their arguments.
type LFT struct {
	A, B, C, D *big.Int
}

// NewLFT builds [[a, b], [c, d]] from machine integers.
func NewLFT(a, b, c, d int64) LFT {
	return LFT{A: big.NewInt(a), B: big.NewInt(b), C: big.NewInt(c), D: big.NewInt(d)}
}

// NewLFTBig builds [[a, b], [c, d]], copying the arguments.
func NewLFTBig(a, b, c, d *big.Int) LFT {
	return LFT{
		A: new(big.Int).Set(a),
		B: new(big.Int).Set(b),
		C: new(big.Int).Set(c),
		D: new(big.Int).Set(d),
	}
}

// Identity returns [[1, 0], [0, 1]], the transform f(x) = x.
func Identity() LFT { return NewLFT(1, 0, 0, 1) }

// Homographic returns [[t, 1], [1, 0]], the transform x → t + 1/x that
// re-attaches coefficient t in front of a continued-fraction tail.
func Homographic(t *big.Int) LFT {
	return LFT{A: new(big.Int).Set(t), B: big.NewInt(1), C: big.NewInt(1), D: big.NewInt(0)}
}

// Mul returns the product m·n, i.e. the composition m∘n.
func (m LFT) Mul(n LFT) LFT {
	return LFT{
		A: addMul(m.A, n.A, m.B, n.C), // a11*b11 + a12*b21
		B: addMul(m.A, n.B, m.B, n.D), // a11*b12 + a12*b22
		C: addMul(m.C, n.A, m.D, n.C), // a21*b11 + a22*b21
		D: addMul(m.C, n.B, m.D, n.D), // a21*b12 + a22*b22
	}
}

// Ingest returns m·Homographic(t) without materializing the right factor:
// [[a·t + b, a], [c·t + d, c]].
func (m LFT) Ingest(t *big.Int) LFT {
	a := new(big.Int).Mul(m.A, t)
	a.Add(a, m.B)
	c := new(big.Int).Mul(m.C, t)
	c.Add(c, m.D)

	return LFT{A: a, B: new(big.Int).Set(m.A), C: c, D: new(big.Int).Set(m.C)}
}

// Emit returns the matrix of 1/(f(x) − q): [[c, d], [a − q·c, b − q·d]].
func (m LFT) Emit(q *big.Int) LFT {
	return LFT{
		A: new(big.Int).Set(m.C),
		B: new(big.Int).Set(m.D),
		C: subMul(m.A, q, m.C),
		D: subMul(m.B, q, m.D),
	}
}

// Det returns a·d − b·c. A zero determinant marks a constant transform.
func (m LFT) Det() *big.Int {
	l := new(big.Int).Mul(m.A, m.D)

	return l.Sub(l, new(big.Int).Mul(m.B, m.C))
}

// IsDegenerate reports whether the transform ignores its argument (det == 0).
func (m LFT) IsDegenerate() bool { return m.Det().Sign() == 0 }

// HasZeroDenominator reports whether the second row is (0, 0).
func (m LFT) HasZeroDenominator() bool { return m.C.Sign() == 0 && m.D.Sign() == 0 }

// HasZeroNumerator reports whether the first row is (0, 0).
func (m LFT) HasZeroNumerator() bool { return m.A.Sign() == 0 && m.B.Sign() == 0 }

// IsZero reports whether all four entries are zero.
func (m LFT) IsZero() bool { return m.HasZeroNumerator() && m.HasZeroDenominator() }

// TryProduceTerm attempts to extract the next output coefficient q of f(x')
// where x' ranges over a continued-fraction tail (x' ≥ 1).
//
// Rules:
//   - c == 0 or d == 0: f is unbounded at one end, no term yet.
//   - sign(c)·sign(d) < 0: the denominator vanishes for some x' > 0, no term.
//   - floor(a/c) == floor(b/d): that floor is q.
//   - the floors differ by one and the larger bound is an exact integer: the
//     larger value is reached only at x' = 0 or x' = ∞, never inside, so the
//     smaller floor is q.
//
// On success it returns q and the remainder matrix m.Emit(q).
// Returns ErrZeroDenominatorRow when (c, d) == (0, 0).
func (m LFT) TryProduceTerm() (q *big.Int, rest LFT, ok bool, err error) {
	if m.HasZeroDenominator() {
		return nil, LFT{}, false, matrixErrorf("TryProduceTerm", ErrZeroDenominatorRow)
	}
	if m.C.Sign() == 0 || m.D.Sign() == 0 {
		return nil, LFT{}, false, nil
	}
	if m.C.Sign()*m.D.Sign() < 0 {
		return nil, LFT{}, false, nil
	}

	floorAC := floorDiv(m.A, m.C) // limit at x' → ∞
	floorBD := floorDiv(m.B, m.D) // value at x' = 0

	switch diff := new(big.Int).Sub(floorAC, floorBD); {
	case diff.Sign() == 0:
		q = floorAC
	case diff.Cmp(bigOne) == 0 && divides(m.A, m.C):
		q = floorBD
	case diff.CmpAbs(bigOne) == 0 && diff.Sign() < 0 && divides(m.B, m.D):
		q = floorAC
	default:
		return nil, LFT{}, false, nil
	}

	return q, m.Emit(q), true, nil
}

// Apply evaluates f at the rational x = num/den, returning the resulting
// numerator and denominator (not reduced). den == 0 evaluates at infinity.
func (m LFT) Apply(num, den *big.Int) (*big.Int, *big.Int) {
	return addMul(m.A, num, m.B, den), addMul(m.C, num, m.D, den)
}

// String renders "[[a b] [c d]]".
func (m LFT) String() string {
	return fmt.Sprintf("[[%v %v] [%v %v]]", m.A, m.B, m.C, m.D)
}

// addMul returns a·b + c·d as a fresh integer.
func addMul(a, b, c, d *big.Int) *big.Int {
	l := new(big.Int).Mul(a, b)

	return l.Add(l, new(big.Int).Mul(c, d))
}

// subMul returns a − q·b as a fresh integer.
func subMul(a, q, b *big.Int) *big.Int {
	l := new(big.Int).Mul(q, b)

	return l.Sub(a, l)
}
