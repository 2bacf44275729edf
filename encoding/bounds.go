package encoding

// Interval is a closed interval on the real line.
type Interval struct {
	Lower float64
	Upper float64
}

// Contains reports whether v lies inside the interval, endpoints included.
func (iv Interval) Contains(v float64) bool {
	return iv.Lower <= v && v <= iv.Upper
}

// Width returns the length of the interval.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// InnerBounds returns the closed interval [y−δ/2, y+δ/2] certain to contain
// the measurement encoded into y. The interval width is exactly the
// uncertainty bound δ. At the extreme top of the float64 range an endpoint
// can overflow and saturate to ±Inf.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - Interval: The bounds on the original measurement.
//   - error: Same failure cases as UncertaintyBound.
//
// Example:
//
//	bounds, err := encoding.InnerBounds(3.34375)
//	// bounds = [3.3125, 3.375]
func InnerBounds(encoded float64) (Interval, error) {
	delta, err := UncertaintyBound(encoded)
	if err != nil {
		return Interval{}, err
	}

	return innerInterval(encoded, delta), nil
}

// OuterBounds returns the tightest closed interval certain to contain the
// whole uncertain range x ± ε of the measurement encoded into y, namely
// [y−5δ/2, y+5δ/2]: the center is off by at most δ/2 and ε < 2δ. Near the
// top of the float64 range the 5δ/2 radius can overflow, saturating that
// endpoint to ±Inf; the interval still contains the range but is no longer
// the tightest.
//
// Parameters:
//   - encoded: A value produced by Encode, or following its convention.
//
// Returns:
//   - Interval: The bounds on the original uncertain range.
//   - error: Same failure cases as UncertaintyBound.
//
// Example:
//
//	bounds, err := encoding.OuterBounds(3.34375)
//	// bounds = [3.1875, 3.5]
func OuterBounds(encoded float64) (Interval, error) {
	delta, err := UncertaintyBound(encoded)
	if err != nil {
		return Interval{}, err
	}
	half := delta / 2

	return Interval{Lower: encoded - 5*half, Upper: encoded + 5*half}, nil
}

// innerInterval places the inner bounds around an already validated value.
// Both endpoints are even multiples of δ/2, hence exact.
func innerInterval(encoded, delta float64) Interval {
	half := delta / 2

	return Interval{Lower: encoded - half, Upper: encoded + half}
}
