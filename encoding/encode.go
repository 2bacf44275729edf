package encoding

import (
	"fmt"
	"math"

	"github.com/equaeghe/signifl/errs"
	"github.com/equaeghe/signifl/internal/ieee754"
)

// TieBreak identifies the policy applied when a value lies exactly midway
// between the two nearest encodable candidates, which happens when the
// value is an exact multiple of the uncertainty bound δ.
type TieBreak uint8

const (
	// TieLargerMagnitude selects the candidate farther from zero.
	TieLargerMagnitude TieBreak = 0x1
)

func (t TieBreak) String() string {
	switch t {
	case TieLargerMagnitude:
		return "LargerMagnitude"
	default:
		return "Unknown"
	}
}

// TiePolicy is the midpoint policy Encode applies. It is fixed, not
// configurable; the constant exists so the behavior can be referenced and
// tested by name. Flooring the grid index in the positive domain lands on
// the outer candidate for exact multiples, which realizes this policy
// without depending on the platform's rounding mode.
const TiePolicy = TieLargerMagnitude

// Encode packs a measurement and its positive uncertainty into a single
// float64 whose bit pattern carries the uncertainty bound along with the
// value.
//
// The uncertainty ε is first replaced by the power-of-two bound
// δ = 2^⌊log2 ε⌋, which satisfies δ ≤ ε < 2δ. The result is the odd
// multiple of δ/2 nearest to the value:
//
//	y = (2·⌊|x|/δ⌋ + 1) · δ/2
//
// computed on |x| with the sign restored afterwards. It differs from the
// value by at most δ/2, and its exact binary expansion ends at bit position
// log2(δ/2), so UncertaintyBound recovers δ from the result alone. When the
// value is an exact multiple of δ the two nearest odd multiples are equally
// close and TiePolicy picks the one farther from zero.
//
// Uncertainties below the representable precision of the value are raised
// to 2·max(2^-1022, |value|·2^-52) before δ is derived. Keeping δ above
// that floor keeps the grid index below 2^52, which makes every arithmetic
// step here exact in binary64, keeps results out of the subnormal range,
// and is what makes the bound recoverable in all cases.
//
// Parameters:
//   - value: The measurement to encode. Must be finite. A zero value is
//     valid and encodes to ±δ/2.
//   - uncertainty: The measurement's absolute uncertainty. Must be positive
//     and finite.
//
// Returns:
//   - float64: The significant value.
//   - error: errs.ErrInvalidMagnitude if value is NaN or infinite,
//     errs.ErrInvalidUncertainty if uncertainty is zero, negative, NaN, or
//     infinite, errs.ErrRangeOverflow if the result falls outside the
//     float64 range.
//
// Example:
//
//	y, err := encoding.Encode(0.65432, 0.05)
//	// y = 0.640625, carrying the bound δ = 0.03125
func Encode(value, uncertainty float64) (float64, error) {
	if !ieee754.IsFinite(value) {
		return 0, fmt.Errorf("%w: value %v", errs.ErrInvalidMagnitude, value)
	}
	if uncertainty <= 0 || !ieee754.IsFinite(uncertainty) {
		return 0, fmt.Errorf("%w: %v is not positive and finite", errs.ErrInvalidUncertainty, uncertainty)
	}

	neg := math.Signbit(value)
	mag := math.Abs(value)

	// Raise the uncertainty to the maximal meaningful precision of value.
	if maxPrecision := 2 * math.Max(ieee754.MinNormal, mag*ieee754.Epsilon); uncertainty < maxPrecision {
		uncertainty = maxPrecision
	}

	delta := ieee754.PowTwo(ieee754.FloorLog2(uncertainty))
	half := delta / 2

	// The grid index stays below 2^52, so the division, the floor, and the
	// final product are all exact. Flooring realizes TiePolicy when mag is
	// an exact multiple of delta.
	idx := math.Floor(mag / delta)
	encoded := (2*idx + 1) * half

	if math.IsInf(encoded, 0) {
		return 0, fmt.Errorf("%w: encoding %v with bound %v", errs.ErrRangeOverflow, value, delta)
	}
	if neg {
		encoded = -encoded
	}

	return encoded, nil
}

// EncodeSlice encodes values elementwise.
//
// uncertainties either matches values in length (pairwise) or holds a
// single uncertainty applied to every value. Non-finite values (NaN, ±Inf)
// pass through unchanged: in slice data they mark gaps and saturated
// readings rather than encodable measurements. Invalid uncertainties still
// fail, with the offending index wrapped into the error.
//
// Parameters:
//   - values: The measurements to encode.
//   - uncertainties: Either one uncertainty per value or a single shared
//     uncertainty.
//
// Returns:
//   - []float64: The encoded values, same length as values.
//   - error: errs.ErrLengthMismatch for incompatible lengths, otherwise the
//     first elementwise Encode failure.
func EncodeSlice(values, uncertainties []float64) ([]float64, error) {
	if len(uncertainties) != len(values) && len(uncertainties) != 1 {
		return nil, fmt.Errorf("%w: %d values, %d uncertainties",
			errs.ErrLengthMismatch, len(values), len(uncertainties))
	}

	encoded := make([]float64, len(values))
	for i, v := range values {
		if !ieee754.IsFinite(v) {
			encoded[i] = v
			continue
		}

		unc := uncertainties[0]
		if len(uncertainties) > 1 {
			unc = uncertainties[i]
		}

		y, err := Encode(v, unc)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		encoded[i] = y
	}

	return encoded, nil
}
