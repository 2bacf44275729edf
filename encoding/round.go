package encoding

import (
	"fmt"
	"math"
	"strconv"

	"github.com/equaeghe/signifl/errs"
	"github.com/equaeghe/signifl/internal/ieee754"
)

// Decimal is the display form of a significant value: the value rounded to
// a power-of-ten granularity sitting strictly below δ/2.
type Decimal struct {
	// Value is the rounded value, round(y/γ)·γ.
	Value float64

	// Granularity is the power of ten γ the value was rounded to.
	Granularity float64

	exp10 int // γ = 10^exp10, kept for rendering
}

// String renders the decimal with exactly the fractional digits the
// granularity warrants: γ = 0.01 gives two digits, γ ≥ 1 gives none.
func (d Decimal) String() string {
	prec := 0
	if d.exp10 < 0 {
		prec = -d.exp10
	}

	return strconv.FormatFloat(d.Value, 'f', prec, 64)
}

// RoundForDisplay rounds a significant value to the power-of-ten
// granularity γ = 10^⌊log10(δ/2)⌋, the largest power of ten strictly below
// δ/2, using round-half-away-from-zero at midpoints.
//
// The granularity exponent comes from δ's binary exponent by integer
// arithmetic and γ from the exact powers-of-ten table, so the boundary
// between granularities is platform-independent. ⌊log10(δ/2)⌋ would equal
// log10(δ/2) exactly when δ/2 = 1; the exponent is lowered by one there,
// keeping γ strictly below δ/2 for every input.
//
// The rounded value stays within γ/2 of the significant value (plus
// vanishing float noise), so with |x − y| ≤ δ/2 the display never drifts
// more than one original uncertainty unit from the measurement:
// |x − z| ≤ γ + δ/2 < δ ≤ ε. The rounding is reversible while δ is
// retained: re-encoding the rounded value with the same bound reproduces
// the significant value exactly.
//
// The bound δ is NOT recoverable from the result: distinct bounds produce
// overlapping or identical decimals (δ/2 of 16, 32, and 64 all display with
// γ = 10). Keep (y, δ) from Decode when the bound is needed later, and
// round only as the final, lossy display step.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//   - delta: The value's uncertainty bound, as returned by
//     UncertaintyBound. Must be a positive finite power of two.
//
// Returns:
//   - Decimal: The rounded value with its granularity; Decimal.String
//     renders the short decimal form.
//   - error: errs.ErrNotSignificant for an invalid encoded value,
//     errs.ErrInvalidUncertainty for a delta that is not a positive finite
//     power of two, errs.ErrRangeOverflow if the granularity or the rounded
//     value falls outside the float64 range.
//
// Example:
//
//	d, err := encoding.RoundForDisplay(0.640625, 0.03125)
//	// d.Value = 0.64, d.Granularity = 0.01, d.String() = "0.64"
func RoundForDisplay(encoded, delta float64) (Decimal, error) {
	if err := validateSignificant(encoded); err != nil {
		return Decimal{}, err
	}
	if !ieee754.IsPowerOfTwo(delta) {
		return Decimal{}, fmt.Errorf("%w: bound %v is not a positive power of two", errs.ErrInvalidUncertainty, delta)
	}

	halfExp := ieee754.FloorLog2(delta) - 1 // δ/2 = 2^halfExp

	exp10 := ieee754.FloorLog10PowTwo(halfExp)
	if halfExp == 0 {
		// 10^0 equals δ/2 = 1; the granularity must sit strictly below.
		exp10 = -1
	}

	granularity := math.Pow10(exp10)
	if granularity == 0 {
		return Decimal{}, fmt.Errorf("%w: display granularity 10^%d", errs.ErrRangeOverflow, exp10)
	}

	// math.Round is round-half-away-from-zero, the documented midpoint
	// policy. Ties are real: 0.25/0.1 divides to exactly 2.5 in binary64.
	value := math.Round(encoded/granularity) * granularity
	if math.IsInf(value, 0) {
		return Decimal{}, fmt.Errorf("%w: rounding %v to granularity %v", errs.ErrRangeOverflow, encoded, granularity)
	}

	return Decimal{Value: value, Granularity: granularity, exp10: exp10}, nil
}

// RoundDecimal re-derives the uncertainty bound from the value itself and
// rounds for display in one call. It is shorthand for UncertaintyBound
// followed by RoundForDisplay.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - Decimal: The rounded value with its granularity.
//   - error: Same failure cases as UncertaintyBound and RoundForDisplay.
func RoundDecimal(encoded float64) (Decimal, error) {
	delta, err := UncertaintyBound(encoded)
	if err != nil {
		return Decimal{}, err
	}

	return RoundForDisplay(encoded, delta)
}
