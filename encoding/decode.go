package encoding

import (
	"fmt"
	"math"

	"github.com/equaeghe/signifl/errs"
	"github.com/equaeghe/signifl/internal/ieee754"
)

// UncertaintyBound recovers the power-of-two uncertainty bound δ carried in
// the bit pattern of a significant value.
//
// A significant value is an odd multiple of δ/2 by construction, so the
// least significant set bit of its exact binary expansion (sign, stored
// exponent, mantissa with the implicit leading one reinstated) sits at
// position log2(δ/2). Reading that position and doubling yields δ. This is
// exact bit inspection of the stored representation; no rounding and no
// iteration are involved.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - float64: The uncertainty bound δ, a power of two. The uncertainty
//     originally supplied to Encode satisfies δ ≤ ε < 2δ.
//   - error: errs.ErrNotSignificant if encoded is zero, NaN, infinite, or
//     subnormal; errs.ErrRangeOverflow if the bound itself has no float64
//     representation, which happens only for ±2^1023 exactly, a value
//     Encode cannot produce.
//
// Example:
//
//	d, err := encoding.UncertaintyBound(0.640625)
//	// d = 0.03125
func UncertaintyBound(encoded float64) (float64, error) {
	if err := validateSignificant(encoded); err != nil {
		return 0, err
	}

	q := ieee754.QuantumExp(encoded)
	if q == ieee754.MaxExp {
		// encoded = ±2^1023, so δ = 2^1024 exceeds the range.
		return 0, fmt.Errorf("%w: uncertainty bound of %v", errs.ErrRangeOverflow, encoded)
	}

	return ieee754.PowTwo(q + 1), nil
}

// Decode recovers the uncertainty bound δ of a significant value together
// with the closed interval [y−δ/2, y+δ/2] that is certain to contain the
// measurement the value was encoded from.
//
// Both interval endpoints are multiples of δ/2 and exact; only within δ/2
// of the very top of the float64 range do they saturate to ±Inf.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - float64: The uncertainty bound δ.
//   - Interval: The inner bounds on the original measurement.
//   - error: Same failure cases as UncertaintyBound.
//
// Example:
//
//	d, bounds, err := encoding.Decode(0.640625)
//	// d = 0.03125, bounds = [0.625, 0.65625]
func Decode(encoded float64) (float64, Interval, error) {
	delta, err := UncertaintyBound(encoded)
	if err != nil {
		return 0, Interval{}, err
	}

	return delta, innerInterval(encoded, delta), nil
}

// UncertaintyBoundSlice recovers uncertainty bounds elementwise.
//
// Non-finite inputs (NaN, ±Inf) map to NaN, mirroring the pass-through of
// EncodeSlice: they mark gaps, not significant values. Zero and subnormal
// inputs fail, with the offending index wrapped into the error.
//
// Parameters:
//   - encoded: Significant values, possibly with non-finite gaps.
//
// Returns:
//   - []float64: The bounds, same length as encoded, NaN where the input
//     was not finite.
//   - error: The first elementwise UncertaintyBound failure.
func UncertaintyBoundSlice(encoded []float64) ([]float64, error) {
	bounds := make([]float64, len(encoded))
	for i, y := range encoded {
		if !ieee754.IsFinite(y) {
			bounds[i] = math.NaN()
			continue
		}

		delta, err := UncertaintyBound(y)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		bounds[i] = delta
	}

	return bounds, nil
}

// validateSignificant rejects values the significance convention cannot
// have produced: zero carries no bit to read, NaN and infinities have no
// exponent, and subnormals lack the implicit leading one.
func validateSignificant(encoded float64) error {
	if encoded == 0 || !ieee754.IsFinite(encoded) {
		return fmt.Errorf("%w: %v", errs.ErrNotSignificant, encoded)
	}
	if ieee754.IsSubnormal(encoded) {
		return fmt.Errorf("%w: %v is subnormal", errs.ErrNotSignificant, encoded)
	}

	return nil
}
