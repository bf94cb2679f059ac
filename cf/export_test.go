package cf

import "go.uber.org/zap"

// OptionsSnapshot exposes the effective options to the external test package.
type OptionsSnapshot struct {
	CompareDepth int
	DisplayTerms int
	FuseRounds   int
	ExactLimit   int
	FuseFinish   FuseFinish
	Logger       *zap.Logger
}

func snapshot(o *Options) OptionsSnapshot {
	return OptionsSnapshot{
		CompareDepth: o.compareDepth,
		DisplayTerms: o.displayTerms,
		FuseRounds:   o.fuseRounds,
		ExactLimit:   o.exactLimit,
		FuseFinish:   o.fuseFinish,
		Logger:       o.logger,
	}
}

// OptionsOf returns the options carried by x.
func OptionsOf(x *CF) OptionsSnapshot { return snapshot(x.opts) }

// GatherOptions applies opts over the defaults.
func GatherOptions(opts ...Option) OptionsSnapshot { return snapshot(gatherOptions(opts...)) }

// SimplestBetween exposes the simplest-rational search.
var SimplestBetween = simplestBetween
