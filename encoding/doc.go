// Package encoding implements the significance convention for float64
// values: a measurement and its uncertainty packed into a single float64,
// with the uncertainty riding inside the value's own bit pattern.
//
// This package contains the full capability surface. The root signifl
// package re-exports it for convenient top-level use; import this package
// directly when you also need the types (Interval, Decimal, TieBreak).
//
// # The Convention
//
// Encode derives from the uncertainty ε the power-of-two bound δ = 2^⌊log2 ε⌋
// (so δ ≤ ε < 2δ) and snaps the value x to the nearest odd multiple of δ/2:
//
//	y = ±(2·⌊|x|/δ⌋ + 1) · δ/2
//
// Odd multiples of δ/2 are exactly the float64 values whose binary expansion
// ends with a set bit at position log2(δ/2). The position of that lowest set
// bit therefore carries δ through any channel that transports the float64
// bit pattern unchanged, with no side-channel metadata:
//
//	y, _ := encoding.Encode(0.65432, 0.05) // y = 0.640625
//	d, _ := encoding.UncertaintyBound(y)   // d = 0.03125 = 2^⌊log2 0.05⌋
//
// The price is half a δ of precision: |x − y| ≤ δ/2, which is below the
// uncertainty already present in the measurement.
//
// # Determinism
//
// Every operation uses plain IEEE-754 binary64 arithmetic plus exact bit
// inspection of the stored representation. Power-of-two and power-of-ten
// boundaries are found by exponent extraction and integer arithmetic, never
// by transcendental log calls, so results are bit-identical across
// platforms and Go versions. Uncertainties below the representable
// precision of the value are raised first (see Encode), which keeps every
// intermediate step exact.
//
// All functions are pure: no package state, no I/O, no allocation on the
// scalar paths. They are safe for concurrent use.
//
// # Ordering Caveat
//
// Comparing two significant values with plain < and > compares the encoded
// representatives, not the measurements. When the combined uncertainty of
// two measurements is comparable to the gap between them, encoding can
// reverse their order: x¯ < x⁺ with Encode(x¯, ε¯) > Encode(x⁺, ε⁺) is
// possible, because each value snaps to its own δ grid. Use GreaterThan,
// LessThan, and Incomparable to ask the meaningful question: whether two
// measurements are distinguishable at all given their uncertainty.
//
// # Errors
//
// Failures are reported as wrapped sentinels from the errs package
// (errs.ErrInvalidUncertainty, errs.ErrInvalidMagnitude,
// errs.ErrNotSignificant, errs.ErrRangeOverflow, errs.ErrLengthMismatch);
// match them with errors.Is. All checks happen up front and no call leaves
// partial state behind.
package encoding
