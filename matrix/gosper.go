// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Gosper is the bihomographic tensor of
//
//	Z(x, y) = (A·xy + B·x + C·y + D) / (E·xy + F·x + G·y + H).
//
// It is mutated (functionally: every method returns a new value) by three
// operations: IngestX, IngestY and Produce.
type Gosper struct {
	A, B, C, D *big.Int // numerator
	E, F, G, H *big.Int // denominator
}

// NewGosper builds a tensor from machine integers.
func NewGosper(a, b, c, d, e, f, g, h int64) Gosper {
	return Gosper{
		A: big.NewInt(a), B: big.NewInt(b), C: big.NewInt(c), D: big.NewInt(d),
		E: big.NewInt(e), F: big.NewInt(f), G: big.NewInt(g), H: big.NewInt(h),
	}
}

// Addition returns the tensor of x + y.
func Addition() Gosper { return NewGosper(0, 1, 1, 0, 0, 0, 0, 1) }

// Subtraction returns the tensor of x − y.
func Subtraction() Gosper { return NewGosper(0, 1, -1, 0, 0, 0, 0, 1) }

// Multiplication returns the tensor of x·y.
func Multiplication() Gosper { return NewGosper(1, 0, 0, 0, 0, 0, 0, 1) }

// Division returns the tensor of x/y.
func Division() Gosper { return NewGosper(0, 1, 0, 0, 0, 0, 1, 0) }

// IngestX substitutes x = t + 1/x'.
func (g Gosper) IngestX(t *big.Int) Gosper {
	return Gosper{
		A: mulAdd(g.A, t, g.C), B: mulAdd(g.B, t, g.D), C: cp(g.A), D: cp(g.B),
		E: mulAdd(g.E, t, g.G), F: mulAdd(g.F, t, g.H), G: cp(g.E), H: cp(g.F),
	}
}

// IngestY substitutes y = t + 1/y'.
func (g Gosper) IngestY(t *big.Int) Gosper {
	return Gosper{
		A: mulAdd(g.A, t, g.B), B: cp(g.A), C: mulAdd(g.C, t, g.D), D: cp(g.C),
		E: mulAdd(g.E, t, g.F), F: cp(g.E), G: mulAdd(g.G, t, g.H), H: cp(g.G),
	}
}

// Produce replaces Z by 1/(Z − q): the new numerator is the old denominator,
// the new denominator is old numerator − q·old denominator.
func (g Gosper) Produce(q *big.Int) Gosper {
	return Gosper{
		A: cp(g.E), B: cp(g.F), C: cp(g.G), D: cp(g.H),
		E: subMul(g.A, q, g.E), F: subMul(g.B, q, g.F), G: subMul(g.C, q, g.G), H: subMul(g.D, q, g.H),
	}
}

// FixX returns the transform of y' left once x' = ∞ (x has ended):
// Z(∞, y') = (A·y' + B)/(E·y' + F).
func (g Gosper) FixX() LFT { return NewLFTBig(g.A, g.B, g.E, g.F) }

// FixY returns the transform of x' left once y' = ∞ (y has ended):
// Z(x', ∞) = (A·x' + C)/(E·x' + G).
func (g Gosper) FixY() LFT { return NewLFTBig(g.A, g.C, g.E, g.G) }

// Limit returns (A, E): Z as both x' and y' tend to infinity.
func (g Gosper) Limit() (num, den *big.Int) { return cp(g.A), cp(g.E) }

// corner is the limit of Z at one corner of [1, ∞]²; den carries the sign of
// the denominator near that corner.
type corner struct {
	num, den *big.Int
}

// corners returns the values of Z at the four corners of [1, ∞]²:
// (∞, ∞), (∞, 1), (1, ∞) and (1, 1).
//
// A corner whose leading denominator vanishes while its numerator does not is
// a pole: ok is false. A 0/0 leading pair falls back to the next-order pair
// along that edge; at (∞, ∞) it is skipped, since the direction-dependent
// limit there lies between the (∞, 1) and (1, ∞) limits.
func (g Gosper) corners() (cs []corner, ok bool) {
	// Z(x, 1) = ((A+B)·x + (C+D)) / ((E+F)·x + (G+H))
	xEdge := [4]*big.Int{sum(g.A, g.B), sum(g.E, g.F), sum(g.C, g.D), sum(g.G, g.H)}
	// Z(1, y) = ((A+C)·y + (B+D)) / ((E+G)·y + (F+H))
	yEdge := [4]*big.Int{sum(g.A, g.C), sum(g.E, g.G), sum(g.B, g.D), sum(g.F, g.H)}

	cs = make([]corner, 0, 4)

	// (∞, ∞)
	switch {
	case g.E.Sign() != 0:
		cs = append(cs, corner{g.A, g.E})
	case g.A.Sign() != 0:
		return nil, false
	}

	// (∞, 1) and (1, ∞)
	for _, e := range [][4]*big.Int{xEdge, yEdge} {
		lead, leadDen, low, lowDen := e[0], e[1], e[2], e[3]
		switch {
		case leadDen.Sign() != 0:
			cs = append(cs, corner{lead, leadDen})
		case lead.Sign() != 0:
			return nil, false
		case lowDen.Sign() != 0:
			cs = append(cs, corner{low, lowDen})
		default:
			return nil, false
		}
	}

	// (1, 1)
	num, den := sum(g.A, g.B, g.C, g.D), sum(g.E, g.F, g.G, g.H)
	if den.Sign() == 0 {
		return nil, false
	}
	cs = append(cs, corner{num, den})

	return cs, true
}

// Bounds returns the smallest and largest corner values of Z over [1, ∞]²
// as exact rationals. ok is false when a corner is a pole or the corner
// denominators disagree in sign (the denominator has a zero inside the box).
func (g Gosper) Bounds() (lo, hi *big.Rat, ok bool) {
	cs, ok := g.corners()
	if !ok || !sameSign(cs) {
		return nil, nil, false
	}
	for _, c := range cs {
		v := new(big.Rat).SetFrac(c.num, c.den)
		if lo == nil || v.Cmp(lo) < 0 {
			lo = v
		}
		if hi == nil || v.Cmp(hi) > 0 {
			hi = v
		}
	}

	return lo, hi, true
}

// TryNextTerm returns the next output coefficient when the floors of all
// corner values agree and the denominator keeps one sign over [1, ∞]².
func (g Gosper) TryNextTerm() (*big.Int, bool) {
	cs, ok := g.corners()
	if !ok || !sameSign(cs) {
		return nil, false
	}

	var q *big.Int
	for _, c := range cs {
		f := floorDiv(c.num, c.den)
		if q == nil {
			q = f
			continue
		}
		if f.Cmp(q) != 0 {
			return nil, false
		}
	}

	return q, true
}

// String renders "(Axy+Bx+Cy+D)/(Exy+Fx+Gy+H)".
func (g Gosper) String() string {
	return fmt.Sprintf("(%vxy+%vx+%vy+%v)/(%vxy+%vx+%vy+%v)", g.A, g.B, g.C, g.D, g.E, g.F, g.G, g.H)
}

func sameSign(cs []corner) bool {
	s := cs[0].den.Sign()
	for _, c := range cs[1:] {
		if c.den.Sign() != s {
			return false
		}
	}

	return true
}

// mulAdd returns a·t + b as a fresh integer.
func mulAdd(a, t, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, t)

	return r.Add(r, b)
}

func sum(xs ...*big.Int) *big.Int {
	r := new(big.Int)
	for _, x := range xs {
		r.Add(r, x)
	}

	return r
}

func cp(x *big.Int) *big.Int { return new(big.Int).Set(x) }
