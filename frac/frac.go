// SPDX-License-Identifier: MIT

package frac

import (
	"math"
	"math/big"
)

// Frac is an exact rational number num/den in normal form (see package doc).
// The zero value is not valid; build values with New, NewBig, FromInt or Inf.
type Frac struct {
	num *big.Int
	den *big.Int
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// New returns p/q reduced to normal form.
// Returns ErrZeroDenominator if q == 0.
func New(p, q int64) (Frac, error) {
	return NewBig(big.NewInt(p), big.NewInt(q))
}

// NewBig returns p/q reduced to normal form. The arguments are not retained.
// Returns ErrZeroDenominator if q == 0.
func NewBig(p, q *big.Int) (Frac, error) {
	if q.Sign() == 0 {
		return Frac{}, ErrZeroDenominator
	}

	num := new(big.Int).Set(p)
	den := new(big.Int).Set(q)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Frac{num: num, den: den.SetInt64(1)}, nil
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Frac{num: num, den: den}, nil
}

// FromInt returns n/1.
func FromInt(n int64) Frac {
	return Frac{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBigInt returns n/1. The argument is not retained.
func FromBigInt(n *big.Int) Frac {
	return Frac{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// FromRat converts a *big.Rat (always normalized by math/big).
func FromRat(r *big.Rat) Frac {
	return Frac{num: new(big.Int).Set(r.Num()), den: new(big.Int).Set(r.Denom())}
}

// Inf returns the projective infinity 1/0.
func Inf() Frac {
	return Frac{num: big.NewInt(1), den: big.NewInt(0)}
}

// Num returns a copy of the numerator.
func (f Frac) Num() *big.Int { return new(big.Int).Set(f.num) }

// Den returns a copy of the denominator. It is zero only for Inf.
func (f Frac) Den() *big.Int { return new(big.Int).Set(f.den) }

// IsInf reports whether f is 1/0.
func (f Frac) IsInf() bool { return f.den.Sign() == 0 }

// IsZero reports whether f is 0/1.
func (f Frac) IsZero() bool { return f.num.Sign() == 0 && f.den.Sign() != 0 }

// IsInt reports whether the denominator is 1.
func (f Frac) IsInt() bool { return f.den.Cmp(bigOne) == 0 }

// Sign returns -1, 0 or +1. Inf reports +1.
func (f Frac) Sign() int { return f.num.Sign() }

// Neg returns -f. Inf is its own negation.
func (f Frac) Neg() Frac {
	if f.IsInf() {
		return f
	}

	return Frac{num: new(big.Int).Neg(f.num), den: new(big.Int).Set(f.den)}
}

// Equal reports whether f and g denote the same number.
// Both operands are in normal form, so a component-wise check is exact.
func (f Frac) Equal(g Frac) bool {
	return f.num.Cmp(g.num) == 0 && f.den.Cmp(g.den) == 0
}

// Cmp compares f and g: -1 if f < g, 0 if equal, +1 if f > g.
// Inf is greater than every finite value.
func (f Frac) Cmp(g Frac) int {
	switch {
	case f.IsInf() && g.IsInf():
		return 0
	case f.IsInf():
		return 1
	case g.IsInf():
		return -1
	}
	// a/b ? c/d  <=>  a*d ? c*b   (b, d > 0)
	l := new(big.Int).Mul(f.num, g.den)
	r := new(big.Int).Mul(g.num, f.den)

	return l.Cmp(r)
}

// Rat returns f as a *big.Rat. Returns nil for Inf.
func (f Frac) Rat() *big.Rat {
	if f.IsInf() {
		return nil
	}

	return new(big.Rat).SetFrac(f.num, f.den)
}

// Float64 returns the nearest float64 to f, +Inf for Inf.
func (f Frac) Float64() float64 {
	if f.IsInf() {
		return math.Inf(1)
	}
	v, _ := new(big.Rat).SetFrac(f.num, f.den).Float64()

	return v
}

// String renders "p/q", or "p" when q == 1, or "1/0" for Inf.
func (f Frac) String() string {
	if f.num == nil {
		return "<nil>"
	}
	if f.IsInt() {
		return f.num.String()
	}

	return f.num.String() + "/" + f.den.String()
}

// isNormal is used by tests through export_test.go.
func (f Frac) isNormal() bool {
	if f.den.Sign() == 0 {
		return f.num.Cmp(bigOne) == 0
	}
	if f.den.Sign() < 0 {
		return false
	}
	if f.num.Sign() == 0 {
		return f.den.Cmp(bigOne) == 0
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.num), f.den)

	return g.Cmp(bigOne) == 0 && f.num.Cmp(bigZero) != 0
}
