// SPDX-License-Identifier: MIT

package cf

import (
	"iter"
	"math"
	"math/big"

	"github.com/katalvlaran/contfrac/frac"
	"github.com/katalvlaran/contfrac/lazy"
)

// FromRational returns the continued fraction of num/den.
// den == 0 yields Infinity; 0/0 returns ErrIndeterminate.
// The sign may sit on either argument: FromRational(-22, 7) and
// FromRational(22, -7) are both [-4; 1, 6].
func FromRational(num, den int64, opts ...Option) (*CF, error) {
	return FromBigRational(big.NewInt(num), big.NewInt(den), opts...)
}

// FromBigRational is FromRational for arbitrary-precision arguments, which
// are not retained.
func FromBigRational(num, den *big.Int, opts ...Option) (*CF, error) {
	if num == nil || den == nil {
		return nil, cfErrorf("FromBigRational", ErrNilOperand)
	}
	if num.Sign() == 0 && den.Sign() == 0 {
		return nil, cfErrorf("FromRational", ErrIndeterminate)
	}

	return newCF(newEuclid(num, den), gatherOptions(opts...)), nil
}

// FromFrac returns the continued fraction of f. frac.Inf() yields Infinity.
func FromFrac(f frac.Frac, opts ...Option) *CF {
	return fromFrac(f, gatherOptions(opts...))
}

func fromFrac(f frac.Frac, o *Options) *CF {
	return newCF(newEuclid(f.Num(), f.Den()), o)
}

// FromInt returns [n].
func FromInt(n int64, opts ...Option) *CF {
	return newCF(lazy.Ints(n), gatherOptions(opts...))
}

// FromCoefficients returns [terms[0]; terms[1], ...] in canonical form.
// An empty list is Infinity. Returns ErrMalformedCoefficients if a
// coefficient after the first is not strictly positive.
func FromCoefficients(terms []int64, opts ...Option) (*CF, error) {
	bs := make([]*big.Int, len(terms))
	for i, t := range terms {
		bs[i] = big.NewInt(t)
	}

	return FromBigCoefficients(bs, opts...)
}

// FromBigCoefficients is FromCoefficients for arbitrary-precision terms,
// which are copied.
func FromBigCoefficients(terms []*big.Int, opts ...Option) (*CF, error) {
	for i, t := range terms {
		if t == nil {
			return nil, cfErrorf("FromCoefficients", ErrNilOperand)
		}
		if i > 0 && t.Sign() <= 0 {
			return nil, cfErrorf("FromCoefficients", ErrMalformedCoefficients)
		}
	}

	return &CF{terms: lazy.Of(terms), opts: gatherOptions(opts...)}, nil
}

// FromGenerator wraps an arbitrary source. Coefficients are validated as they
// are pulled: a non-positive term after the first makes that pull, and every
// later one, return ErrMalformedCoefficients.
func FromGenerator(src lazy.Source, opts ...Option) *CF {
	return newCF(&checked{src: src}, gatherOptions(opts...))
}

// FromSeq wraps a push iterator, possibly infinite. The iterator is stopped
// once its last needed value has been read or it has ended.
func FromSeq(seq iter.Seq[*big.Int], opts ...Option) *CF {
	return FromGenerator(lazy.Seq(seq), opts...)
}

// FromFloat64 returns the continued fraction of the exact binary value of x,
// so FromFloat64(0.1) is the expansion of 3602879701896397/36028797018963968,
// not of 1/10. ±Inf yields Infinity; NaN returns ErrIndeterminate.
func FromFloat64(x float64, opts ...Option) (*CF, error) {
	switch {
	case math.IsNaN(x):
		return nil, cfErrorf("FromFloat64", ErrIndeterminate)
	case math.IsInf(x, 0):
		return Infinity(opts...), nil
	}
	r := new(big.Rat).SetFloat64(x)

	return newCF(newEuclid(r.Num(), r.Denom()), gatherOptions(opts...)), nil
}
