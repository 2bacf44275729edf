// Package ieee754 provides exact bit-level inspection of float64 values.
//
// Every function here works on the stored binary64 representation (sign,
// 11-bit exponent, 52-bit mantissa) instead of calling transcendental math
// functions, so results are exact at power-of-two boundaries and
// bit-identical across platforms.
package ieee754

import (
	"math"
	"math/bits"
)

const (
	MantissaWidth = 52
	ExponentWidth = 11

	MantissaMask = 1<<MantissaWidth - 1
	ExponentMask = 1<<ExponentWidth - 1

	// ExponentBias is subtracted from the stored exponent field to obtain
	// the unbiased exponent of a normal value.
	ExponentBias = 1<<(ExponentWidth-1) - 1

	// MaxExp and MinExp bound the unbiased exponent of a normal value.
	MaxExp = (1<<ExponentWidth - 2) - ExponentBias
	MinExp = 1 - ExponentBias

	// MinQuantumExp is the exponent of the lowest representable bit, i.e.
	// the smallest positive subnormal is 2^MinQuantumExp.
	MinQuantumExp = MinExp - MantissaWidth
)

const (
	// MinNormal is the smallest positive normal float64, 2^-1022.
	MinNormal = 0x1p-1022

	// Epsilon is the gap between 1.0 and the next larger float64, 2^-52.
	Epsilon = 0x1p-52
)

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsSubnormal reports whether f is non-zero with a zero exponent field.
func IsSubnormal(f float64) bool {
	b := math.Float64bits(f)

	return b>>MantissaWidth&ExponentMask == 0 && b&MantissaMask != 0
}

// FloorLog2 returns the unbiased exponent ⌊log2|f|⌋ of a finite non-zero f.
//
// For normal values this is the stored exponent minus the bias; for
// subnormals it is recovered from the position of the mantissa's highest
// set bit. No floating-point log is involved, so the result is exact even
// when |f| sits exactly on a power of two.
func FloorLog2(f float64) int {
	b := math.Float64bits(f)
	exp := int(b >> MantissaWidth & ExponentMask)
	if exp == 0 {
		// Subnormal: |f| = mantissa × 2^MinQuantumExp.
		return bits.Len64(b&MantissaMask) - 1 + MinQuantumExp
	}

	return exp - ExponentBias
}

// PowTwo returns 2^k, exactly representable for k in
// [MinQuantumExp, MaxExp]. Outside that range it underflows to 0 or
// overflows to +Inf, following math.Ldexp.
func PowTwo(k int) float64 {
	return math.Ldexp(1, k)
}

// QuantumExp returns the exponent q of the least significant set bit in the
// exact binary expansion of f, so that f is an odd integer multiple of 2^q.
//
// f must be finite, non-zero and normal; the implicit leading one is
// reinstated before the scan, so a power of two yields its own exponent.
func QuantumExp(f float64) int {
	b := math.Float64bits(f)
	exp := int(b>>MantissaWidth&ExponentMask) - ExponentBias
	tz := bits.TrailingZeros64(b&MantissaMask | 1<<MantissaWidth)

	return exp - MantissaWidth + tz
}

// IsPowerOfTwo reports whether f is a positive finite power of two, i.e.
// its exact binary expansion has a single set bit. Subnormal powers of two
// are included.
func IsPowerOfTwo(f float64) bool {
	if f <= 0 || math.IsInf(f, 1) {
		return false
	}
	b := math.Float64bits(f)
	mant := b & MantissaMask
	if b>>MantissaWidth&ExponentMask == 0 {
		return mant&(mant-1) == 0
	}

	return mant == 0
}

// FloorLog10PowTwo returns ⌊log10(2^k)⌋ = ⌊k·log10 2⌋ using integer
// arithmetic only.
//
// log10(2) ≈ 78913/2^18 from below; the approximation error never crosses
// an integer boundary for |k| ≤ 1600, which covers every exponent a float64
// can carry. Right-shifting a negative product keeps the floor semantics.
func FloorLog10PowTwo(k int) int {
	return k * 78913 >> 18
}
