// SPDX-License-Identifier: MIT

package cf

import (
	"math/big"

	"github.com/katalvlaran/contfrac/lazy"
)

// The constructors below return a fresh value on every call, so independent
// callers never share a memo.

// Infinity returns [], the unsigned point at infinity.
func Infinity(opts ...Option) *CF {
	return &CF{terms: lazy.Of(nil), opts: gatherOptions(opts...)}
}

// Zero returns [0].
func Zero(opts ...Option) *CF { return FromInt(0, opts...) }

// One returns [1].
func One(opts ...Option) *CF { return FromInt(1, opts...) }

// E returns Euler's number, [2; 1, 2, 1, 1, 4, 1, 1, 6, ...].
func E(opts ...Option) *CF {
	i := 0

	return newCF(lazy.SourceFunc(func() (*big.Int, bool, error) {
		i++
		switch {
		case i == 1:
			return big.NewInt(2), true, nil
		case i%3 == 0: // 2, 4, 6, ... at positions 2, 5, 8, ...
			return big.NewInt(int64(2 * (i / 3))), true, nil
		default:
			return big.NewInt(1), true, nil
		}
	}), gatherOptions(opts...))
}

// Sqrt2 returns √2, [1; 2, 2, 2, ...].
func Sqrt2(opts ...Option) *CF {
	first := true

	return newCF(lazy.SourceFunc(func() (*big.Int, bool, error) {
		if first {
			first = false
			return big.NewInt(1), true, nil
		}

		return big.NewInt(2), true, nil
	}), gatherOptions(opts...))
}

// Phi returns the golden ratio (1 + √5)/2, [1; 1, 1, 1, ...].
func Phi(opts ...Option) *CF {
	return newCF(lazy.SourceFunc(func() (*big.Int, bool, error) {
		return big.NewInt(1), true, nil
	}), gatherOptions(opts...))
}
