// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// FloorDiv returns floor(n/d), rounding toward negative infinity.
// Returns ErrDivideByZero if d == 0.
func FloorDiv(n, d *big.Int) (*big.Int, error) {
	if d.Sign() == 0 {
		return nil, matrixErrorf("FloorDiv", ErrDivideByZero)
	}

	return floorDiv(n, d), nil
}

// FloorDivMod returns q = floor(n/d) and r = n − q·d (r has the sign of d).
// Returns ErrDivideByZero if d == 0.
func FloorDivMod(n, d *big.Int) (q, r *big.Int, err error) {
	if d.Sign() == 0 {
		return nil, nil, matrixErrorf("FloorDivMod", ErrDivideByZero)
	}
	q = floorDiv(n, d)
	r = new(big.Int).Mul(q, d)
	r.Sub(n, r)

	return q, r, nil
}

// floorDiv assumes d != 0.
// big.Int.Div is Euclidean (remainder ≥ 0), which differs from floor when d < 0.
func floorDiv(n, d *big.Int) *big.Int {
	q, m := new(big.Int).QuoRem(n, d, new(big.Int))
	if m.Sign() != 0 && (m.Sign() < 0) != (d.Sign() < 0) {
		q.Sub(q, bigOne)
	}

	return q
}

// divides reports whether d divides n exactly (d != 0).
func divides(n, d *big.Int) bool {
	return new(big.Int).Rem(n, d).Sign() == 0
}

var bigOne = big.NewInt(1)
