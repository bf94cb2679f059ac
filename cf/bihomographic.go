// SPDX-License-Identifier: MIT

package cf

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/contfrac/lazy"
	"github.com/katalvlaran/contfrac/matrix"
)

// bihomographic streams the coefficients of
//
//	Z(x, y) = (A·xy + B·x + C·y + D)/(E·xy + F·x + G·y + H)
//
// using Gosper's algorithm. Every round first emits all coefficients the
// tensor already determines (matrix.Gosper.TryNextTerm), then absorbs one
// coefficient from each input that still has some.
//
// When one input ends the tensor collapses to a 2×2 transform of the other
// and the rest is handed to the homographic engine. When both end, the output
// is finished with the rational A/E.
//
// After opts.fuseRounds consecutive rounds without output the engine gives up
// reading input; see blowFuse.
type bihomographic struct {
	g            matrix.Gosper
	x, y         lazy.Source
	xSeen, ySeen bool
	xDone, yDone bool
	idle         int
	tail         lazy.Source

	name string
	opts *Options
}

func newBihomographic(name string, g matrix.Gosper, x, y lazy.Source, o *Options) lazy.Source {
	return &bihomographic{g: g, x: x, y: y, name: name, opts: o}
}

// ready reports whether every live input has been read at least once, so that
// what remains of each is a tail ≥ 1.
func (b *bihomographic) ready() bool {
	return (b.xSeen || b.xDone) && (b.ySeen || b.yDone)
}

func (b *bihomographic) Next() (*big.Int, bool, error) {
	for {
		if b.tail != nil {
			return b.tail.Next()
		}
		if b.ready() {
			if q, ok := b.g.TryNextTerm(); ok {
				b.g = b.g.Produce(q)
				b.idle = 0
				return q, true, nil
			}
		}
		if b.idle >= b.opts.fuseRounds {
			b.tail = b.blowFuse()
			continue
		}
		b.idle++
		if err := b.consume(); err != nil {
			return nil, false, err
		}
	}
}

// consume absorbs one coefficient from each live input and switches to a
// tail engine once an input has ended.
func (b *bihomographic) consume() error {
	if !b.xDone {
		t, ok, err := b.x.Next()
		if err != nil {
			return err
		}
		if ok {
			b.g = b.g.IngestX(t)
			b.xSeen = true
		} else {
			b.xDone = true
		}
	}
	if !b.yDone {
		t, ok, err := b.y.Next()
		if err != nil {
			return err
		}
		if ok {
			b.g = b.g.IngestY(t)
			b.ySeen = true
		} else {
			b.yDone = true
		}
	}

	switch {
	case b.xDone && b.yDone:
		num, den := b.g.Limit()
		b.tail = ratio(b.name, num, den)
	case b.xDone:
		b.tail = newHomographic(b.g.FixX(), b.y, b.ySeen)
	case b.yDone:
		b.tail = newHomographic(b.g.FixY(), b.x, b.xSeen)
	}

	return nil
}

// blowFuse finishes the output without reading more input.
//
// FinishSimplest emits the simplest rational between the extreme corner
// values of the current tensor. Every real the inputs could still converge to
// maps inside that interval, and an exactly rational result (√2·√2, x − x)
// is the simplest point of it once the interval is narrow. FinishLimit, or an
// unbounded interval, emits A/E.
func (b *bihomographic) blowFuse() lazy.Source {
	b.opts.logger.Warn("bihomographic engine fuse fired",
		zap.String("op", b.name),
		zap.Int("rounds", b.idle),
		zap.String("finish", b.opts.fuseFinish.String()),
		zap.Stringer("tensor", b.g),
	)
	if b.opts.fuseFinish == FinishSimplest {
		if lo, hi, ok := b.g.Bounds(); ok {
			return lazy.Slice(simplestBetween(lo, hi))
		}
	}
	num, den := b.g.Limit()

	return ratio(b.name, num, den)
}
