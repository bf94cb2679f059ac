// SPDX-License-Identifier: MIT

package cf

import (
	"iter"
	"math/big"

	"github.com/katalvlaran/contfrac/lazy"
)

// CF is a lazily evaluated continued fraction. See the package doc.
// Values are immutable from the outside; build them with the factories.
type CF struct {
	terms *lazy.Cache
	opts  *Options
}

func newCF(src lazy.Source, o *Options) *CF {
	return &CF{terms: lazy.New(src), opts: o}
}

// with returns a view of the same coefficients carrying options o.
func (x *CF) with(o *Options) *CF {
	return &CF{terms: x.terms, opts: o}
}

// reader returns a fresh cursor over the coefficients of x.
func (x *CF) reader() lazy.Source { return lazy.From(x.terms, 0) }

// At returns coefficient i. ok is false when the expansion ends before i.
// The error is the one raised by the engine or generator producing x.
func (x *CF) At(i int) (*big.Int, bool, error) {
	return x.terms.At(i)
}

// Take returns up to n leading coefficients, fewer when x is shorter.
func (x *CF) Take(n int) ([]*big.Int, error) {
	return x.terms.Take(n)
}

// TakeInt64 is Take for callers working with machine integers.
// Returns ErrRangeOverflow if a coefficient does not fit in an int64.
func (x *CF) TakeInt64(n int) ([]int64, error) {
	terms, err := x.terms.Take(n)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(terms))
	for i, t := range terms {
		if !t.IsInt64() {
			return nil, cfErrorf("TakeInt64", ErrRangeOverflow)
		}
		out[i] = t.Int64()
	}

	return out, nil
}

// All iterates over the coefficients of x. An error ends the iteration and is
// yielded with a nil coefficient. Breaking out early is fine; iterating again
// starts from the first coefficient and reads the memo.
func (x *CF) All() iter.Seq2[*big.Int, error] {
	return func(yield func(*big.Int, error) bool) {
		for i := 0; ; i++ {
			t, ok, err := x.terms.At(i)
			if err != nil {
				yield(nil, err)
				return
			}
			if !ok || !yield(t, nil) {
				return
			}
		}
	}
}

// IsInfinity reports whether x is the empty expansion.
func (x *CF) IsInfinity() (bool, error) {
	k, err := x.kind()

	return k == kindInf, err
}

// IsZero reports whether x is exactly [0].
func (x *CF) IsZero() (bool, error) {
	k, err := x.kind()

	return k == kindZero, err
}

// IsFinite reports whether the expansion of x ends within limit coefficients.
// A false result says nothing about rationality beyond that bound.
func (x *CF) IsFinite(limit int) (bool, error) {
	_, more, err := x.terms.At(limit)
	if err != nil {
		return false, err
	}

	return !more, nil
}

// kind classifies an operand for the special-value table.
type kind uint8

const (
	kindFinite kind = iota // finite and nonzero
	kindZero
	kindInf
)

func (k kind) String() string {
	switch k {
	case kindZero:
		return "zero"
	case kindInf:
		return "infinity"
	default:
		return "finite"
	}
}

// kind reads at most two coefficients.
func (x *CF) kind() (kind, error) {
	a0, ok, err := x.terms.At(0)
	if err != nil {
		return kindFinite, err
	}
	if !ok {
		return kindInf, nil
	}
	if a0.Sign() != 0 {
		return kindFinite, nil
	}
	_, more, err := x.terms.At(1)
	if err != nil {
		return kindFinite, err
	}
	if more {
		return kindFinite, nil
	}

	return kindZero, nil
}
