// SPDX-License-Identifier: MIT

// Package cf: functional options carried by every continued-fraction value.
//
// Options travel with a value: a result inherits the options of its left
// operand (the receiver), so a computation configured once at its leaves keeps
// that configuration all the way up.

package cf

import (
	"fmt"

	"go.uber.org/zap"
)

// ---------- Defaults ----------

const (
	// DefaultCompareDepth is the number of coefficients Cmp and Equal inspect
	// before declaring two values equal. 40 terms is about float64 precision.
	DefaultCompareDepth = 40

	// DefaultDisplayTerms is the number of coefficients String renders.
	DefaultDisplayTerms = 40

	// DefaultFuseRounds is the number of consecutive unproductive rounds after
	// which the bihomographic engine stops reading input.
	DefaultFuseRounds = 50

	// DefaultExactLimit bounds the length of an expansion Rat will convert.
	DefaultExactLimit = 10000

	// DefaultFuseFinish is how the engine completes a value once the fuse fires.
	DefaultFuseFinish = FinishSimplest
)

// FuseFinish selects what the bihomographic engine emits when its safety fuse
// fires.
type FuseFinish uint8

const (
	// FinishSimplest emits the simplest rational between the smallest and the
	// largest value the remaining transform can still take, falling back to
	// FinishLimit when that range is unbounded.
	FinishSimplest FuseFinish = iota

	// FinishLimit emits the limit A/E of the transform as both inputs grow.
	FinishLimit
)

// String returns "simplest" or "limit".
func (f FuseFinish) String() string {
	switch f {
	case FinishSimplest:
		return "simplest"
	case FinishLimit:
		return "limit"
	default:
		return fmt.Sprintf("FuseFinish(%d)", uint8(f))
	}
}

// ParseFuseFinish is the inverse of FuseFinish.String.
func ParseFuseFinish(s string) (FuseFinish, bool) {
	switch s {
	case "simplest":
		return FinishSimplest, true
	case "limit":
		return FinishLimit, true
	default:
		return 0, false
	}
}

const (
	panicCompareDepthInvalid = "cf: WithCompareDepth: depth must be ≥ 1"
	panicDisplayTermsInvalid = "cf: WithDisplayTerms: n must be ≥ 1"
	panicFuseRoundsInvalid   = "cf: WithFuseRounds: rounds must be ≥ 1"
	panicExactLimitInvalid   = "cf: WithExactLimit: limit must be ≥ 1"
	panicFuseFinishInvalid   = "cf: WithFuseFinish: unknown finish mode"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// Options is the effective configuration of a value.
type Options struct {
	compareDepth int
	displayTerms int
	fuseRounds   int
	exactLimit   int
	fuseFinish   FuseFinish
	logger       *zap.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		compareDepth: DefaultCompareDepth,
		displayTerms: DefaultDisplayTerms,
		fuseRounds:   DefaultFuseRounds,
		exactLimit:   DefaultExactLimit,
		fuseFinish:   DefaultFuseFinish,
		logger:       zap.NewNop(),
	}
}

// WithCompareDepth sets how many coefficients comparisons inspect.
func WithCompareDepth(depth int) Option {
	if depth < 1 {
		panic(panicCompareDepthInvalid)
	}

	return func(o *Options) { o.compareDepth = depth }
}

// WithDisplayTerms sets how many coefficients String renders.
func WithDisplayTerms(n int) Option {
	if n < 1 {
		panic(panicDisplayTermsInvalid)
	}

	return func(o *Options) { o.displayTerms = n }
}

// WithFuseRounds sets the safety fuse of the bihomographic engine.
// Larger values resolve more near-rational results exactly at the cost of
// reading more input before giving up.
func WithFuseRounds(rounds int) Option {
	if rounds < 1 {
		panic(panicFuseRoundsInvalid)
	}

	return func(o *Options) { o.fuseRounds = rounds }
}

// WithExactLimit bounds the expansion length accepted by Rat.
func WithExactLimit(limit int) Option {
	if limit < 1 {
		panic(panicExactLimitInvalid)
	}

	return func(o *Options) { o.exactLimit = limit }
}

// WithFuseFinish selects what the engine emits once the fuse fires.
//
// FinishLimit is the reference behavior of Gosper's algorithm: the limit A/E
// of the remaining transform, which may leave a huge spurious coefficient
// (Sqrt2·Sqrt2 reads [2; N] with N near 2.4e37). FinishSimplest, the default,
// emits the simplest rational inside the current bounds instead, so the same
// product reads [2].
func WithFuseFinish(f FuseFinish) Option {
	if f != FinishSimplest && f != FinishLimit {
		panic(panicFuseFinishInvalid)
	}

	return func(o *Options) { o.fuseFinish = f }
}

// WithLogger attaches a logger. The engines log fuse events at Warn level and
// special-value short-circuits at Debug level. A nil logger restores the
// no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &o
}
