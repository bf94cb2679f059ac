// Package lazy implements the memoizing coefficient cache that backs every
// continued-fraction value.
//
// A Cache wraps a Source, a pull-based generator of big-integer terms that may
// be infinite. Terms are pulled only when asked for and remembered forever;
// once the Source reports its end it is released (Stop is called when the
// Source implements Stopper) and the canonical-form rule is applied exactly
// once:
//
//	[..., a, 1] → [..., a+1]    (only when more than one term is held)
//
// Reading index i advances the Source at most two terms beyond i, so that a
// term handed out can never be changed later by that rule.
//
// Concurrency: a Cache is NOT safe for concurrent use. Two goroutines pulling
// from the same Cache race on the memo slice and the Source cursor; callers
// that need shared access must serialize it.
package lazy
