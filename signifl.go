// Package signifl stores a measurement and its uncertainty together in a
// single float64, using the bit pattern of the value itself to carry the
// uncertainty.
//
// A measurement x with absolute uncertainty ε is replaced by a nearby
// value y whose lowest set bit encodes the power-of-two bound
// δ = 2^⌊log2 ε⌋. No wrapper struct and no side channel are needed: y
// travels through serialization, columnar storage and network protocols as
// a plain float64, and any consumer can recover the bound from the bits
// alone.
//
// # The Convention
//
// Encoding replaces the measurement with the nearest odd multiple of δ/2:
//
//	y = ±(2·⌊|x|/δ⌋ + 1) · δ/2
//
// Odd multiples of δ/2 are exactly the float64 values whose binary
// expansion ends at position log2(δ/2), so decoding reads the position of
// the lowest set bit and doubles it. The encoded value differs from the
// measurement by at most δ/2, and the bound brackets the uncertainty as
// δ ≤ ε < 2δ. Every step is integer and bit arithmetic on exact powers of
// two; results are identical on every platform.
//
// # Basic Usage
//
// Encoding, decoding and display:
//
//	import "github.com/equaeghe/signifl"
//
//	// Pack the measurement 0.65432 ± 0.05 into one float64.
//	y, err := signifl.Encode(0.65432, 0.05)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(y) // 0.640625
//
//	// Recover the bound and the interval holding the measurement.
//	delta, bounds, _ := signifl.Decode(y)
//	fmt.Println(delta, bounds.Lower, bounds.Upper) // 0.03125 0.625 0.65625
//
//	// Round to the decimal precision the bound warrants.
//	d, _ := signifl.RoundDecimal(y)
//	fmt.Println(d) // 0.64
//
// # Ordering Caveat
//
// Encoding perturbs each value by up to half its bound, so the numeric
// order of two significant values can disagree with the order of the
// measurements behind them when their uncertainties differ. Use
// GreaterThan, LessThan and Incomparable instead of the < and > operators
// whenever the distinction carries meaning.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding
// package, covering the common use cases. The encoding package also
// exports the Interval and Decimal types returned here, along with the
// TieBreak midpoint policy; the errs package holds the sentinel errors for
// errors.Is checks.
package signifl

import (
	"github.com/equaeghe/signifl/encoding"
)

// Encode packs a measurement and its positive uncertainty into a single
// float64 carrying both.
//
// The uncertainty is replaced by the power-of-two bound δ = 2^⌊log2 ε⌋ and
// the value by the nearest odd multiple of δ/2, with ties going away from
// zero. Uncertainties below the representable precision of the value are
// raised to 2·max(2^-1022, |value|·2^-52) first.
//
// Parameters:
//   - value: The measurement to encode. Must be finite; zero is valid.
//   - uncertainty: The measurement's absolute uncertainty. Must be
//     positive and finite.
//
// Returns:
//   - float64: The significant value.
//   - error: errs.ErrInvalidMagnitude, errs.ErrInvalidUncertainty or
//     errs.ErrRangeOverflow.
//
// Example:
//
//	y, err := signifl.Encode(0.65432, 0.05)
//	// y = 0.640625, carrying the bound 0.03125
func Encode(value, uncertainty float64) (float64, error) {
	return encoding.Encode(value, uncertainty)
}

// EncodeSlice encodes values elementwise, with either one uncertainty per
// value or a single uncertainty shared by all of them.
//
// Non-finite values pass through unchanged: in slice data NaN and ±Inf
// mark gaps and saturated readings rather than measurements.
//
// Parameters:
//   - values: The measurements to encode.
//   - uncertainties: One per value, or a single shared uncertainty.
//
// Returns:
//   - []float64: The encoded values, same length as values.
//   - error: errs.ErrLengthMismatch for incompatible lengths, otherwise
//     the first elementwise failure with its index.
//
// Example:
//
//	encoded, err := signifl.EncodeSlice(readings, []float64{0.05})
func EncodeSlice(values, uncertainties []float64) ([]float64, error) {
	return encoding.EncodeSlice(values, uncertainties)
}

// UncertaintyBound recovers the power-of-two uncertainty bound δ carried
// in the bit pattern of a significant value. The uncertainty originally
// encoded satisfies δ ≤ ε < 2δ.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - float64: The bound δ.
//   - error: errs.ErrNotSignificant for zero, non-finite or subnormal
//     input; errs.ErrRangeOverflow for ±2^1023 exactly.
//
// Example:
//
//	delta, err := signifl.UncertaintyBound(0.640625)
//	// delta = 0.03125
func UncertaintyBound(encoded float64) (float64, error) {
	return encoding.UncertaintyBound(encoded)
}

// UncertaintyBoundSlice recovers bounds elementwise. Non-finite inputs map
// to NaN, mirroring the gap convention of EncodeSlice.
//
// Parameters:
//   - encoded: Significant values, possibly with non-finite gaps.
//
// Returns:
//   - []float64: The bounds, NaN where the input was not finite.
//   - error: The first elementwise failure with its index.
func UncertaintyBoundSlice(encoded []float64) ([]float64, error) {
	return encoding.UncertaintyBoundSlice(encoded)
}

// Decode recovers the uncertainty bound δ of a significant value together
// with the closed interval [y−δ/2, y+δ/2] certain to contain the original
// measurement.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - float64: The bound δ.
//   - encoding.Interval: The inner bounds on the measurement.
//   - error: Same failure cases as UncertaintyBound.
//
// Example:
//
//	delta, bounds, err := signifl.Decode(0.640625)
//	// delta = 0.03125, bounds = [0.625, 0.65625]
func Decode(encoded float64) (float64, encoding.Interval, error) {
	return encoding.Decode(encoded)
}

// InnerBounds returns the closed interval [y−δ/2, y+δ/2] certain to
// contain the measurement encoded into y.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - encoding.Interval: The bounds on the original measurement.
//   - error: Same failure cases as UncertaintyBound.
func InnerBounds(encoded float64) (encoding.Interval, error) {
	return encoding.InnerBounds(encoded)
}

// OuterBounds returns the closed interval [y−5δ/2, y+5δ/2] certain to
// contain the whole uncertain range x ± ε behind the encoding.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - encoding.Interval: The bounds on the original uncertain range.
//   - error: Same failure cases as UncertaintyBound.
func OuterBounds(encoded float64) (encoding.Interval, error) {
	return encoding.OuterBounds(encoded)
}

// GreaterThan reports whether a is distinguishably greater than b, meaning
// a's outer interval lies entirely above b's.
//
// Parameters:
//   - a: A value produced by Encode, or following its convention.
//   - b: Another such value.
//
// Returns:
//   - bool: true when every plausible measurement behind a exceeds every
//     plausible measurement behind b.
//   - error: errs.ErrNotSignificant if either argument is invalid.
func GreaterThan(a, b float64) (bool, error) {
	return encoding.GreaterThan(a, b)
}

// LessThan reports whether a is distinguishably less than b. It mirrors
// GreaterThan with the arguments swapped.
func LessThan(a, b float64) (bool, error) {
	return encoding.LessThan(a, b)
}

// Incomparable reports whether neither value is distinguishably greater
// than the other because their outer intervals overlap.
//
// Parameters:
//   - a: A value produced by Encode, or following its convention.
//   - b: Another such value.
//
// Returns:
//   - bool: true when the values cannot be ordered reliably.
//   - error: errs.ErrNotSignificant if either argument is invalid.
func Incomparable(a, b float64) (bool, error) {
	return encoding.Incomparable(a, b)
}

// RoundForDisplay rounds a significant value to the power-of-ten
// granularity γ = 10^⌊log10(δ/2)⌋, the largest power of ten strictly below
// half its bound, with midpoints going away from zero.
//
// The bound is not recoverable from the result; keep (y, δ) and round only
// as the final display step.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//   - delta: The value's bound, as returned by UncertaintyBound.
//
// Returns:
//   - encoding.Decimal: The rounded value with its granularity; its String
//     method renders the short decimal form.
//   - error: errs.ErrNotSignificant, errs.ErrInvalidUncertainty or
//     errs.ErrRangeOverflow.
//
// Example:
//
//	d, err := signifl.RoundForDisplay(0.640625, 0.03125)
//	// d.String() = "0.64"
func RoundForDisplay(encoded, delta float64) (encoding.Decimal, error) {
	return encoding.RoundForDisplay(encoded, delta)
}

// RoundDecimal re-derives the bound from the value itself and rounds for
// display in one call.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - encoding.Decimal: The rounded value with its granularity.
//   - error: Same failure cases as UncertaintyBound and RoundForDisplay.
//
// Example:
//
//	d, err := signifl.RoundDecimal(0.640625)
//	// d.String() = "0.64"
func RoundDecimal(encoded float64) (encoding.Decimal, error) {
	return encoding.RoundDecimal(encoded)
}

// EstimateUncertainty reconstructs an uncertainty that was derived from
// the measurement itself through a function f, sampling f at the encoded
// value and at the inner interval endpoints. estimate + bound is a
// conservative replacement for the unknown original uncertainty.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//   - f: The function that derived the original uncertainty from the
//     measurement. Must not be nil.
//
// Returns:
//   - estimate: f applied to the encoded value.
//   - bound: The largest deviation of f across the inner interval.
//   - err: Same failure cases as UncertaintyBound.
func EstimateUncertainty(encoded float64, f func(float64) float64) (estimate, bound float64, err error) {
	return encoding.EstimateUncertainty(encoded, f)
}

// RelativeUncertainty is the closed form of EstimateUncertainty for a
// relative uncertainty ε = α·|x|: the estimate is α·|y| and the bound is
// exactly α·δ/2.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//   - alpha: The relative uncertainty factor, positive and finite.
//
// Returns:
//   - estimate: alpha times the magnitude of the encoded value.
//   - bound: alpha times half the recovered bound.
//   - err: errs.ErrInvalidUncertainty for a bad alpha, otherwise the
//     failure cases of UncertaintyBound.
func RelativeUncertainty(encoded, alpha float64) (estimate, bound float64, err error) {
	return encoding.RelativeUncertainty(encoded, alpha)
}
