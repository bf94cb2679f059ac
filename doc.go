// Package contfrac is exact real arithmetic on continued fractions.
//
// A value is a (possibly infinite) sequence of integer coefficients
//
//	a0 + 1/(a1 + 1/(a2 + ...))    written [a0; a1, a2, ...]
//
// produced lazily and memoized, so √2, e and the golden ratio are as
// ordinary as 22/7. Arithmetic never rounds: sums, products and quotients
// are themselves lazy expansions driven term by term by Gosper's
// bihomographic algorithm, and unary maps (negation, reciprocal, scaling by
// a rational) by the homographic algorithm.
//
// Packages:
//
//	cf/       the continued-fraction value: factories, arithmetic, comparison, conversion
//	lazy/     coefficient sources and the memoizing Cache behind every value
//	matrix/   the LFT (2×2) and Gosper tensor (2×2×2) state machines
//	frac/     normalized big-integer rational tuples
//	cmd/cfcalc command-line calculator (cobra, koanf, zap)
//
// Quick example:
//
//	x, _ := cf.FromRational(10, 7)      // [1; 2, 3]
//	y, _ := cf.FromRational(1, 2)       // [0; 2]
//	z, _ := x.Add(y)                    // [1; 1, 13] = 27/14
//	p, _ := cf.Sqrt2().Mul(cf.Sqrt2())  // [2]
//
//	go get github.com/katalvlaran/contfrac
package contfrac
