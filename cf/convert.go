// SPDX-License-Identifier: MIT

package cf

import (
	"iter"
	"math"
	"math/big"

	"github.com/katalvlaran/contfrac/frac"
)

// float64Terms is the prefix length used by Float64; the convergent of 40
// coefficients is well beyond float64 precision for any expansion.
const float64Terms = 40

// convergent tracks p_n/q_n and p_{n-1}/q_{n-1} of the recurrence
//
//	p_n = a_n·p_{n-1} + p_{n-2},  q_n = a_n·q_{n-1} + q_{n-2}
//
// seeded with p_{-1}/q_{-1} = 1/0 and p_{-2}/q_{-2} = 0/1.
type convergent struct {
	p, q, pPrev, qPrev *big.Int
}

func newConvergent() *convergent {
	return &convergent{p: big.NewInt(1), q: new(big.Int), pPrev: new(big.Int), qPrev: big.NewInt(1)}
}

func (c *convergent) push(a *big.Int) {
	p := new(big.Int).Mul(a, c.p)
	p.Add(p, c.pPrev)
	q := new(big.Int).Mul(a, c.q)
	q.Add(q, c.qPrev)
	c.p, c.pPrev = p, c.p
	c.q, c.qPrev = q, c.q
}

// frac returns the current convergent. Consecutive convergents are coprime
// and q > 0 after the first coefficient, so only 1/0 needs special handling.
func (c *convergent) frac() frac.Frac {
	if c.q.Sign() == 0 {
		return frac.Inf()
	}
	f, _ := frac.NewBig(c.p, c.q)

	return f
}

// ConvergentSeq iterates over the convergents p_0/q_0, p_1/q_1, ... of x.
// Infinity yields nothing. An error ends the iteration.
func (x *CF) ConvergentSeq() iter.Seq2[frac.Frac, error] {
	return func(yield func(frac.Frac, error) bool) {
		c := newConvergent()
		for a, err := range x.All() {
			if err != nil {
				yield(frac.Frac{}, err)
				return
			}
			c.push(a)
			if !yield(c.frac(), nil) {
				return
			}
		}
	}
}

// Convergents returns the first n convergents of x, fewer when x is shorter.
// Infinity returns the single convergent 1/0.
func (x *CF) Convergents(n int) ([]frac.Frac, error) {
	terms, err := x.terms.Take(n)
	if err != nil {
		return nil, err
	}
	c := newConvergent()
	if len(terms) == 0 {
		return []frac.Frac{c.frac()}, nil
	}
	out := make([]frac.Frac, 0, len(terms))
	for _, a := range terms {
		c.push(a)
		out = append(out, c.frac())
	}

	return out, nil
}

// Rat returns the exact value of a finite x, frac.Inf() for Infinity.
// Returns ErrInfiniteExpansion if x has more than ExactLimit coefficients.
func (x *CF) Rat() (frac.Frac, error) {
	limit := x.opts.exactLimit
	terms, err := x.terms.Take(limit + 1)
	if err != nil {
		return frac.Frac{}, err
	}
	if len(terms) > limit {
		return frac.Frac{}, cfErrorf("Rat", ErrInfiniteExpansion)
	}
	c := newConvergent()
	for _, a := range terms {
		c.push(a)
	}

	return c.frac(), nil
}

// BigRat is Rat as a *big.Rat. Infinity has no big.Rat form and returns
// ErrDivisionByZero.
func (x *CF) BigRat() (*big.Rat, error) {
	f, err := x.Rat()
	if err != nil {
		return nil, err
	}
	if f.IsInf() {
		return nil, cfErrorf("BigRat", ErrDivisionByZero)
	}

	return f.Rat(), nil
}

// Float64 returns the nearest float64 to the convergent of the first 40
// coefficients, +Inf for Infinity.
func (x *CF) Float64() (float64, error) {
	terms, err := x.terms.Take(float64Terms)
	if err != nil {
		return 0, err
	}
	if len(terms) == 0 {
		return math.Inf(1), nil
	}
	c := newConvergent()
	for _, a := range terms {
		c.push(a)
	}
	v, _ := new(big.Rat).SetFrac(c.p, c.q).Float64()

	return v, nil
}
