package encoding

import (
	"fmt"
	"math"

	"github.com/equaeghe/signifl/errs"
	"github.com/equaeghe/signifl/internal/ieee754"
)

// EstimateUncertainty reconstructs an uncertainty that was derived from the
// measurement itself. When the original uncertainty was ε = f(x) for a
// monotone f, the exact x is gone after encoding; f(y) is the natural
// estimate, and sampling f at the inner interval endpoints y ± δ/2 bounds
// how far the estimate can sit from the true ε. estimate + bound is a
// conservative replacement for the unknown ε.
//
// f is called three times, at y and at the inner endpoints. Near the top
// of the float64 range an endpoint can saturate to ±Inf (see InnerBounds);
// f must tolerate whatever the endpoints are. A nil f panics.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//   - f: The function that derived the original uncertainty from the
//     measurement.
//
// Returns:
//   - estimate: f applied to the encoded value.
//   - bound: The largest deviation of f across the inner interval,
//     max(|f(y+δ/2) − f(y)|, |f(y) − f(y−δ/2)|).
//   - err: errs.ErrNotSignificant or errs.ErrRangeOverflow from bound
//     recovery, see UncertaintyBound.
func EstimateUncertainty(encoded float64, f func(float64) float64) (estimate, bound float64, err error) {
	delta, err := UncertaintyBound(encoded)
	if err != nil {
		return 0, 0, err
	}

	in := innerInterval(encoded, delta)
	estimate = f(encoded)
	bound = math.Max(math.Abs(f(in.Upper)-estimate), math.Abs(estimate-f(in.Lower)))

	return estimate, bound, nil
}

// RelativeUncertainty is the closed form of EstimateUncertainty for a
// relative uncertainty ε = α·|x|: the estimate is α·|y| and the deviation
// bound is exactly α·δ/2, no sampling required. estimate + bound is a
// conservative replacement for the unknown ε.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//   - alpha: The relative uncertainty factor, must be positive and finite.
//
// Returns:
//   - estimate: alpha times the magnitude of the encoded value.
//   - bound: alpha times half the recovered uncertainty bound.
//   - err: errs.ErrInvalidUncertainty for a non-positive or non-finite
//     alpha, otherwise the failure cases of UncertaintyBound.
func RelativeUncertainty(encoded, alpha float64) (estimate, bound float64, err error) {
	if alpha <= 0 || !ieee754.IsFinite(alpha) {
		return 0, 0, fmt.Errorf("%w: relative factor %v", errs.ErrInvalidUncertainty, alpha)
	}

	delta, err := UncertaintyBound(encoded)
	if err != nil {
		return 0, 0, err
	}

	return alpha * math.Abs(encoded), alpha * (delta / 2), nil
}
