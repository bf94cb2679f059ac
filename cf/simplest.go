// SPDX-License-Identifier: MIT

package cf

import (
	"math/big"

	"github.com/katalvlaran/contfrac/matrix"
)

// simplestBetween returns the continued fraction of the simplest rational in
// the closed interval [lo, hi] (lo ≤ hi): the one with the smallest
// denominator, and among integers the one closest to zero.
//
// While no integer lies in the interval both ends share the floor fl, which
// is emitted, and the search continues on [1/(hi − fl), 1/(lo − fl)].
func simplestBetween(lo, hi *big.Rat) []*big.Int {
	lo, hi = new(big.Rat).Set(lo), new(big.Rat).Set(hi)
	var out []*big.Int
	for {
		c, f := ceilRat(lo), floorRat(hi)
		if c.Cmp(f) <= 0 {
			switch {
			case lo.Sign() <= 0 && hi.Sign() >= 0:
				return append(out, new(big.Int))
			case lo.Sign() > 0:
				return append(out, c)
			default:
				return append(out, f)
			}
		}

		fl := floorRat(lo)
		out = append(out, fl)
		shift := new(big.Rat).SetInt(fl)
		lo, hi = new(big.Rat).Inv(hi.Sub(hi, shift)), new(big.Rat).Inv(lo.Sub(lo, shift))
	}
}

func floorRat(r *big.Rat) *big.Int {
	q, _ := matrix.FloorDiv(r.Num(), r.Denom()) // Denom() > 0

	return q
}

func ceilRat(r *big.Rat) *big.Int {
	q := floorRat(new(big.Rat).Neg(r))

	return q.Neg(q)
}
