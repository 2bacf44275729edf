package encoding

// GreaterThan reports whether a is distinguishably greater than b: a's
// outer interval lies entirely above b's. Two significant values whose
// outer intervals overlap are not distinguishable in either direction,
// even when a > b numerically.
//
// Parameters:
//   - a: A value produced by Encode, or following its convention.
//   - b: Another such value.
//
// Returns:
//   - bool: true when every plausible measurement behind a exceeds every
//     plausible measurement behind b.
//   - error: errs.ErrNotSignificant if either argument is zero, non-finite
//     or subnormal.
func GreaterThan(a, b float64) (bool, error) {
	ia, err := OuterBounds(a)
	if err != nil {
		return false, err
	}
	ib, err := OuterBounds(b)
	if err != nil {
		return false, err
	}

	return ia.Lower > ib.Upper, nil
}

// LessThan reports whether a is distinguishably less than b. It is the
// mirror of GreaterThan with the arguments swapped.
func LessThan(a, b float64) (bool, error) {
	return GreaterThan(b, a)
}

// Incomparable reports whether neither value is distinguishably greater
// than the other, i.e. their outer intervals overlap. Encoding can reverse
// the numeric order of nearby measurements carrying very different
// uncertainties; Incomparable is the honest answer in that regime.
//
// Parameters:
//   - a: A value produced by Encode, or following its convention.
//   - b: Another such value.
//
// Returns:
//   - bool: true when the outer intervals of a and b overlap.
//   - error: errs.ErrNotSignificant if either argument is zero, non-finite
//     or subnormal.
func Incomparable(a, b float64) (bool, error) {
	gt, err := GreaterThan(a, b)
	if err != nil {
		return false, err
	}
	lt, err := LessThan(a, b)
	if err != nil {
		return false, err
	}

	return !gt && !lt, nil
}
