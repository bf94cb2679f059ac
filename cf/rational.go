// SPDX-License-Identifier: MIT

package cf

import (
	"math/big"

	"github.com/katalvlaran/contfrac/lazy"
	"github.com/katalvlaran/contfrac/matrix"
)

// euclid emits the continued fraction of num/den by repeated floor division:
//
//	q = ⌊num/den⌋,  (num, den) ← (den, num − q·den)
//
// until den reaches 0. The denominator is made positive first so that only
// the first quotient can be negative. den == 0 from the start is Infinity.
type euclid struct {
	num, den *big.Int
}

func newEuclid(num, den *big.Int) lazy.Source {
	n, d := new(big.Int).Set(num), new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return &euclid{num: n, den: d}
}

func (e *euclid) Next() (*big.Int, bool, error) {
	if e.den.Sign() == 0 {
		return nil, false, nil
	}
	q, r, err := matrix.FloorDivMod(e.num, e.den)
	if err != nil {
		return nil, false, err
	}
	e.num, e.den = e.den, r

	return q, true, nil
}

// ratio emits num/den, failing with ErrIndeterminate on 0/0.
func ratio(tag string, num, den *big.Int) lazy.Source {
	if num.Sign() == 0 && den.Sign() == 0 {
		return failing(cfErrorf(tag, ErrIndeterminate))
	}

	return newEuclid(num, den)
}

// failing returns a source whose first pull reports err.
func failing(err error) lazy.Source {
	return lazy.SourceFunc(func() (*big.Int, bool, error) {
		return nil, false, err
	})
}

// checked rejects a non-positive coefficient after the first one.
type checked struct {
	src lazy.Source
	n   int
}

func (c *checked) Next() (*big.Int, bool, error) {
	t, ok, err := c.src.Next()
	if err != nil || !ok {
		return nil, ok, err
	}
	if c.n > 0 && t.Sign() <= 0 {
		return nil, false, cfErrorf("FromGenerator", ErrMalformedCoefficients)
	}
	c.n++

	return t, true, nil
}

func (c *checked) Stop() {
	if s, ok := c.src.(lazy.Stopper); ok {
		s.Stop()
	}
}
