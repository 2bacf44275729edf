// Package errs defines the sentinel errors returned by the signifl packages.
//
// Failure sites wrap these sentinels with fmt.Errorf("%w: detail", ...) to add
// context; callers match them with errors.Is:
//
//	y, err := signifl.Encode(x, eps)
//	if errors.Is(err, errs.ErrInvalidUncertainty) {
//	    // eps was zero, negative, or not finite
//	}
package errs

import "errors"

var (
	// ErrInvalidUncertainty indicates an uncertainty argument that is zero,
	// negative, or not finite, or an uncertainty bound argument that is not
	// a positive finite power of two. A value with no positive uncertainty
	// cannot be assigned an uncertainty bound.
	ErrInvalidUncertainty = errors.New("invalid uncertainty")

	// ErrInvalidMagnitude indicates a value argument that is NaN or infinite
	// and therefore cannot be encoded.
	ErrInvalidMagnitude = errors.New("invalid magnitude")

	// ErrNotSignificant indicates a value that does not follow the
	// significance convention: zero, NaN, an infinity, or a subnormal.
	// No uncertainty bound can be read out of such a value.
	ErrNotSignificant = errors.New("zero or non-finite significant value")

	// ErrRangeOverflow indicates a result or derived quantity that falls
	// outside the representable float64 range.
	ErrRangeOverflow = errors.New("out of float64 range")

	// ErrLengthMismatch indicates slice arguments whose lengths are not
	// compatible with each other.
	ErrLengthMismatch = errors.New("slice length mismatch")
)
