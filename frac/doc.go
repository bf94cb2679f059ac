// Package frac provides Frac, an exact rational number p/q over math/big
// integers.
//
// Frac is the scalar operand of the continued-fraction arithmetic in package
// cf: every "continued fraction op rational" operator takes a Frac. Values are
// immutable; every accessor returns copies of the underlying integers.
//
// Normal form:
//   - the denominator is positive,
//   - numerator and denominator share no common factor,
//   - zero is stored as 0/1.
//
// The single exception is Inf (1/0), the value of the empty continued fraction.
// It can only be obtained from Inf(); New and NewBig reject a zero denominator.
//
//	f, err := frac.New(10, -4) // -5/2
//	if err != nil {
//	  // frac.ErrZeroDenominator
//	}
//	fmt.Println(f) // -5/2
package frac
