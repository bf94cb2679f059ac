// SPDX-License-Identifier: MIT

package cf

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/contfrac/frac"
	"github.com/katalvlaran/contfrac/lazy"
	"github.com/katalvlaran/contfrac/matrix"
)

// operator names a binary operation for errors, logs and engine selection.
type operator struct {
	name   string
	symbol byte
}

var (
	opAdd = operator{"Add", '+'}
	opSub = operator{"Sub", '-'}
	opMul = operator{"Mul", '*'}
	opDiv = operator{"Div", '/'}
)

// tensor returns the initial Gosper tensor of the operator.
func (op operator) tensor() matrix.Gosper {
	switch op.symbol {
	case '+':
		return matrix.Addition()
	case '-':
		return matrix.Subtraction()
	case '*':
		return matrix.Multiplication()
	default:
		return matrix.Division()
	}
}

// transform returns the 2×2 matrix of x op p/q (q > 0), or of p/q op x when
// fracLeft is set.
func (op operator) transform(f frac.Frac, fracLeft bool) matrix.LFT {
	p, q := f.Num(), f.Den()
	zero := new(big.Int)
	neg := func(v *big.Int) *big.Int { return new(big.Int).Neg(v) }

	switch {
	case op.symbol == '+':
		return matrix.NewLFTBig(q, p, zero, q)
	case op.symbol == '-' && fracLeft:
		return matrix.NewLFTBig(neg(q), p, zero, q)
	case op.symbol == '-':
		return matrix.NewLFTBig(q, neg(p), zero, q)
	case op.symbol == '*':
		return matrix.NewLFTBig(p, zero, zero, q)
	case fracLeft: // p/q ÷ x
		return matrix.NewLFTBig(zero, p, q, zero)
	default: // x ÷ p/q
		return matrix.NewLFTBig(q, zero, zero, p)
	}
}

// outcome is the verdict of the special-value table.
type outcome uint8

const (
	runEngine outcome = iota
	giveInf
	giveZero
	giveLeft
	giveRight
	giveNegRight
)

var outcomeNames = [...]string{"engine", "infinity", "zero", "left", "right", "-right"}

func (o outcome) String() string { return outcomeNames[o] }

// shortcut applies the special-value table to the operand kinds.
func shortcut(op operator, kx, ky kind) (outcome, error) {
	xInf, yInf := kx == kindInf, ky == kindInf
	xZero, yZero := kx == kindZero, ky == kindZero

	switch op.symbol {
	case '+':
		switch {
		case xInf || yInf:
			return giveInf, nil
		case xZero:
			return giveRight, nil
		case yZero:
			return giveLeft, nil
		}
	case '-':
		switch {
		case xInf && yInf:
			return 0, ErrIndeterminate
		case xInf || yInf:
			return giveInf, nil
		case yZero:
			return giveLeft, nil
		case xZero:
			return giveNegRight, nil
		}
	case '*':
		switch {
		case (xInf && yZero) || (xZero && yInf):
			return 0, ErrIndeterminate
		case xInf || yInf:
			return giveInf, nil
		case xZero || yZero:
			return giveZero, nil
		}
	case '/':
		switch {
		case yZero:
			return 0, ErrDivisionByZero
		case xInf && yInf:
			return 0, ErrIndeterminate
		case xInf:
			return giveInf, nil
		case yInf, xZero:
			return giveZero, nil
		}
	}

	return runEngine, nil
}

// special settles x op y from the table. done is false when an engine must
// compute the result. Results carry options o.
func special(op operator, x, y *CF, o *Options) (res *CF, done bool, err error) {
	kx, err := x.kind()
	if err != nil {
		return nil, true, err
	}
	ky, err := y.kind()
	if err != nil {
		return nil, true, err
	}
	out, err := shortcut(op, kx, ky)
	if err != nil {
		return nil, true, cfErrorf(op.name, err)
	}

	switch out {
	case runEngine:
		return nil, false, nil
	case giveInf:
		res = Infinity()
	case giveZero:
		res = Zero()
	case giveLeft:
		res = x
	case giveRight:
		res = y
	case giveNegRight:
		res = y.Neg()
	}
	o.logger.Debug("special value short-circuit",
		zap.String("op", op.name),
		zap.Stringer("left", kx),
		zap.Stringer("right", ky),
		zap.Stringer("result", out),
	)

	return res.with(o), true, nil
}

// Add returns x + y.
func (x *CF) Add(y *CF) (*CF, error) { return x.combine(opAdd, y) }

// Sub returns x − y.
func (x *CF) Sub(y *CF) (*CF, error) { return x.combine(opSub, y) }

// Mul returns x · y.
func (x *CF) Mul(y *CF) (*CF, error) { return x.combine(opMul, y) }

// Div returns x ÷ y. Returns ErrDivisionByZero if y is zero.
func (x *CF) Div(y *CF) (*CF, error) { return x.combine(opDiv, y) }

func (x *CF) combine(op operator, y *CF) (*CF, error) {
	if x == nil || y == nil {
		return nil, cfErrorf(op.name, ErrNilOperand)
	}
	if res, done, err := special(op, x, y, x.opts); done || err != nil {
		return res, err
	}

	return newCF(newBihomographic(op.name, op.tensor(), x.reader(), y.reader(), x.opts), x.opts), nil
}

// Bihomographic returns Z(x, y) for an arbitrary tensor g, with the options
// of x. No special values are resolved: Infinity operands are read as the
// empty expansion and a pole of Z surfaces as the corresponding output.
func Bihomographic(x, y *CF, g matrix.Gosper) (*CF, error) {
	if x == nil || y == nil {
		return nil, cfErrorf("Bihomographic", ErrNilOperand)
	}

	return newCF(newBihomographic("Bihomographic", g, x.reader(), y.reader(), x.opts), x.opts), nil
}

// AddFrac returns x + f.
func (x *CF) AddFrac(f frac.Frac) (*CF, error) { return x.scalar(opAdd, f, false) }

// SubFrac returns x − f.
func (x *CF) SubFrac(f frac.Frac) (*CF, error) { return x.scalar(opSub, f, false) }

// MulFrac returns x · f.
func (x *CF) MulFrac(f frac.Frac) (*CF, error) { return x.scalar(opMul, f, false) }

// DivFrac returns x ÷ f. Returns ErrDivisionByZero if f is zero.
func (x *CF) DivFrac(f frac.Frac) (*CF, error) { return x.scalar(opDiv, f, false) }

// FracSub returns f − x.
func (x *CF) FracSub(f frac.Frac) (*CF, error) { return x.scalar(opSub, f, true) }

// FracDiv returns f ÷ x. Returns ErrDivisionByZero if x is zero.
func (x *CF) FracDiv(f frac.Frac) (*CF, error) { return x.scalar(opDiv, f, true) }

// AddInt returns x + n.
func (x *CF) AddInt(n int64) (*CF, error) { return x.scalar(opAdd, frac.FromInt(n), false) }

// MulInt returns x · n.
func (x *CF) MulInt(n int64) (*CF, error) { return x.scalar(opMul, frac.FromInt(n), false) }

// scalar runs the homographic engine for x op f, or f op x when fracLeft.
func (x *CF) scalar(op operator, f frac.Frac, fracLeft bool) (*CF, error) {
	if x == nil {
		return nil, cfErrorf(op.name, ErrNilOperand)
	}
	left, right := x, fromFrac(f, x.opts)
	if fracLeft {
		left, right = right, left
	}
	if res, done, err := special(op, left, right, x.opts); done || err != nil {
		return res, err
	}

	return newCF(newHomographic(op.transform(f, fracLeft), x.reader(), false), x.opts), nil
}

// Neg returns −x. −∞ is ∞.
func (x *CF) Neg() *CF {
	return x.Transform(-1, 0, 0, 1)
}

// Transform returns (a·x + b)/(c·x + d).
// A degenerate transform (ad = bc) is the constant a/c (or b/d when c = 0);
// the all-zero transform fails on first read with ErrIndeterminate.
func (x *CF) Transform(a, b, c, d int64) *CF {
	return x.TransformLFT(matrix.NewLFT(a, b, c, d))
}

// TransformLFT is Transform for an arbitrary-precision matrix.
func (x *CF) TransformLFT(m matrix.LFT) *CF {
	return newCF(newHomographic(m, x.reader(), false), x.opts)
}

// Reciprocal returns 1/x. 1/∞ is 0 and 1/0 is ∞.
//
// Non-negative values take a shortcut on the coefficients:
//
//	1/[0; a1, a2, ...] = [a1; a2, ...]
//	1/[a0; a1, ...]    = [0; a0, a1, ...]   (a0 > 0)
//
// Negative values go through the homographic engine.
func (x *CF) Reciprocal() (*CF, error) {
	if x == nil {
		return nil, cfErrorf("Reciprocal", ErrNilOperand)
	}
	k, err := x.kind()
	if err != nil {
		return nil, err
	}
	switch k {
	case kindInf:
		return Zero().with(x.opts), nil
	case kindZero:
		return Infinity().with(x.opts), nil
	}

	a0, _, err := x.terms.At(0)
	if err != nil {
		return nil, err
	}
	switch a0.Sign() {
	case 0:
		return newCF(lazy.From(x.terms, 1), x.opts), nil
	case 1:
		return newCF(lazy.Prepend(new(big.Int), x.reader()), x.opts), nil
	default:
		return x.Transform(0, 1, 1, 0), nil
	}
}
