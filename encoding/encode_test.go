package encoding

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equaeghe/signifl/errs"
	"github.com/equaeghe/signifl/internal/ieee754"
)

// TestEncode_WorkedExample verifies the reference case: 0.65432 measured
// with uncertainty 0.05 encodes to 0.640625 carrying the bound 0.03125.
func TestEncode_WorkedExample(t *testing.T) {
	y, err := Encode(0.65432, 0.05)
	require.NoError(t, err)
	require.Equal(t, 0.640625, y)

	delta, err := UncertaintyBound(y)
	require.NoError(t, err)
	require.Equal(t, 0.03125, delta)
}

// TestEncode_GoldenValues verifies hand-computed encodings across signs,
// magnitudes and uncertainty scales. Every expected value is exact.
func TestEncode_GoldenValues(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		uncertainty float64
		want        float64
	}{
		{
			name:        "repeating fraction",
			value:       10.0 / 3.0,
			uncertainty: 0.1,
			want:        3.34375,
		},
		{
			name:        "negative on grid multiple",
			value:       -1234,
			uncertainty: 3,
			want:        -1235,
		},
		{
			name:        "negative off grid",
			value:       -1232.5,
			uncertainty: 3,
			want:        -1233,
		},
		{
			name:        "negative with power of two uncertainty",
			value:       -1204,
			uncertainty: 2,
			want:        -1205,
		},
		{
			name:        "pi at centimeter precision",
			value:       math.Pi,
			uncertainty: 0.01,
			want:        3.14453125,
		},
		{
			name:        "unit value with coarse uncertainty",
			value:       1.0,
			uncertainty: 0.4,
			want:        1.125,
		},
		{
			name:        "uncertainty larger than value",
			value:       1.3,
			uncertainty: 2.0,
			want:        1.0,
		},
		{
			name:        "zero value",
			value:       0.0,
			uncertainty: 0.05,
			want:        0.015625,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Encode(tt.value, tt.uncertainty)
			require.NoError(t, err)
			require.Equal(t, tt.want, y)
		})
	}
}

// TestEncode_SignSymmetry verifies that encoding commutes with negation,
// including the signed zero.
func TestEncode_SignSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 1000 {
		x := rng.Float64() * math.Pow10(rng.Intn(21)-10)
		eps := (1 + rng.Float64()) * math.Pow10(rng.Intn(21)-10)

		pos, err := Encode(x, eps)
		require.NoError(t, err)
		neg, err := Encode(-x, eps)
		require.NoError(t, err)

		require.Equal(t, pos, -neg)
	}

	// A negative zero keeps its sign.
	y, err := Encode(math.Copysign(0, -1), 0.05)
	require.NoError(t, err)
	require.Equal(t, -0.015625, y)
}

// TestEncode_TieRoundsToLargerMagnitude verifies the fixed midpoint policy:
// a value sitting exactly on a multiple of the bound encodes to the
// candidate farther from zero, on both sides of zero.
func TestEncode_TieRoundsToLargerMagnitude(t *testing.T) {
	require.Equal(t, TieLargerMagnitude, TiePolicy)

	tests := []struct {
		name        string
		value       float64
		uncertainty float64
		want        float64
	}{
		{
			name:        "positive tie",
			value:       1.0, // exact multiple of delta = 0.25
			uncertainty: 0.4,
			want:        1.125,
		},
		{
			name:        "just below the tie",
			value:       0.999,
			uncertainty: 0.4,
			want:        0.875,
		},
		{
			name:        "negative tie",
			value:       -1234, // exact multiple of delta = 2
			uncertainty: 3,
			want:        -1235,
		},
		{
			name:        "tie at half the bound scale",
			value:       2.0, // exact multiple of delta = 1
			uncertainty: 1.0,
			want:        2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Encode(tt.value, tt.uncertainty)
			require.NoError(t, err)
			require.Equal(t, tt.want, y)
		})
	}
}

// TestTieBreak_String verifies the policy name rendering.
func TestTieBreak_String(t *testing.T) {
	require.Equal(t, "LargerMagnitude", TieLargerMagnitude.String())
	require.Equal(t, "Unknown", TieBreak(0).String())
}

// TestEncode_BoundProperty verifies the core contract on random inputs:
// the encoded value sits within half the recovered bound of the original,
// and the bound is the power of two floor of the effective uncertainty.
func TestEncode_BoundProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 10000 {
		x := (rng.Float64()*2 - 1) * math.Pow10(rng.Intn(61)-30)
		eps := (1 + rng.Float64()) * math.Pow10(rng.Intn(61)-30)

		y, err := Encode(x, eps)
		require.NoError(t, err)

		delta, err := UncertaintyBound(y)
		require.NoError(t, err)

		epsEff := math.Max(eps, 2*math.Max(ieee754.MinNormal, math.Abs(x)*ieee754.Epsilon))
		require.LessOrEqual(t, delta, epsEff, "x=%v eps=%v", x, eps)
		require.Less(t, epsEff, 2*delta, "x=%v eps=%v", x, eps)
		require.LessOrEqual(t, math.Abs(x-y), delta/2, "x=%v eps=%v y=%v", x, eps, y)
	}
}

// TestEncode_ResultIsOddMultipleOfHalfBound verifies the structural
// invariant the decoder relies on: every encoded value is an odd integer
// multiple of half its bound.
func TestEncode_ResultIsOddMultipleOfHalfBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 10000 {
		x := (rng.Float64()*2 - 1) * math.Pow10(rng.Intn(61)-30)
		eps := (1 + rng.Float64()) * math.Pow10(rng.Intn(61)-30)

		y, err := Encode(x, eps)
		require.NoError(t, err)
		delta, err := UncertaintyBound(y)
		require.NoError(t, err)

		multiple := math.Abs(y) / (delta / 2)
		require.Equal(t, multiple, math.Trunc(multiple), "x=%v eps=%v y=%v", x, eps, y)
		require.Equal(t, 1.0, math.Mod(multiple, 2), "x=%v eps=%v y=%v", x, eps, y)
	}
}

// TestEncode_ExactGridArithmetic verifies that the whole arithmetic chain
// stays exact in binary64 across a thousand binary orders of magnitude:
// rebuilding the encoded value from its recovered grid index reproduces it
// bit for bit.
func TestEncode_ExactGridArithmetic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 10000 {
		x := (rng.Float64()*2 - 1) * math.Ldexp(1, rng.Intn(1001)-500)
		eps := (1 + rng.Float64()) * math.Ldexp(1, rng.Intn(1001)-500)

		y, err := Encode(x, eps)
		require.NoError(t, err)
		delta, err := UncertaintyBound(y)
		require.NoError(t, err)

		// The quotient is an odd integer below 2^53, so the division,
		// the index halving, and the rebuild multiply are all exact.
		half := delta / 2
		multiple := math.Abs(y) / half
		idx := (multiple - 1) / 2
		rebuilt := math.Copysign((2*idx+1)*half, y)
		require.Equal(t, y, rebuilt, "x=%v eps=%v", x, eps)
	}
}

// TestEncode_RaisesUncertaintyToPrecisionFloor verifies that an uncertainty
// below the representable precision of the value is lifted to the floor
// 2·max(2^-1022, |value|·2^-52) before the bound is derived.
func TestEncode_RaisesUncertaintyToPrecisionFloor(t *testing.T) {
	t.Run("relative floor", func(t *testing.T) {
		// For value 1.0 the floor is 2^-51, so delta = 2^-51 and the
		// result is the immediate successor of 1.0.
		y, err := Encode(1.0, 1e-300)
		require.NoError(t, err)
		require.Equal(t, math.Nextafter(1.0, 2.0), y)

		delta, err := UncertaintyBound(y)
		require.NoError(t, err)
		require.Equal(t, 0x1p-51, delta)
	})

	t.Run("absolute floor at zero", func(t *testing.T) {
		// For value 0 the floor is 2^-1021, placing the result at the
		// smallest normal value.
		y, err := Encode(0, 1e-320)
		require.NoError(t, err)
		require.Equal(t, 0x1p-1022, y)

		delta, err := UncertaintyBound(y)
		require.NoError(t, err)
		require.Equal(t, 0x1p-1021, delta)
	})
}

// TestEncode_ExtremeMagnitudes verifies exact behavior at both ends of the
// float64 range, where overflow and subnormal hazards concentrate.
func TestEncode_ExtremeMagnitudes(t *testing.T) {
	t.Run("largest finite value", func(t *testing.T) {
		y, err := Encode(math.MaxFloat64, 1.0)
		require.NoError(t, err)
		require.Equal(t, math.MaxFloat64, y)

		delta, err := UncertaintyBound(y)
		require.NoError(t, err)
		require.Equal(t, 0x1p972, delta)
	})

	t.Run("largest finite uncertainty", func(t *testing.T) {
		y, err := Encode(math.MaxFloat64, math.MaxFloat64)
		require.NoError(t, err)
		require.Equal(t, 0x1.8p1023, y)

		delta, err := UncertaintyBound(y)
		require.NoError(t, err)
		require.Equal(t, 0x1p1023, delta)
	})

	t.Run("deep below one", func(t *testing.T) {
		y, err := Encode(0x1p-1000, 0x1p-1030)
		require.NoError(t, err)
		require.Equal(t, 0x1p-1000+0x1p-1022, y)

		delta, err := UncertaintyBound(y)
		require.NoError(t, err)
		require.Equal(t, 0x1p-1021, delta)
	})
}

// TestEncode_InvalidInputs verifies the error contract for rejected values
// and uncertainties.
func TestEncode_InvalidInputs(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		uncertainty float64
		wantErr     error
	}{
		{
			name:        "nan value",
			value:       math.NaN(),
			uncertainty: 0.1,
			wantErr:     errs.ErrInvalidMagnitude,
		},
		{
			name:        "positive infinite value",
			value:       math.Inf(1),
			uncertainty: 0.1,
			wantErr:     errs.ErrInvalidMagnitude,
		},
		{
			name:        "negative infinite value",
			value:       math.Inf(-1),
			uncertainty: 0.1,
			wantErr:     errs.ErrInvalidMagnitude,
		},
		{
			name:        "zero uncertainty",
			value:       1.0,
			uncertainty: 0,
			wantErr:     errs.ErrInvalidUncertainty,
		},
		{
			name:        "negative uncertainty",
			value:       1.0,
			uncertainty: -0.5,
			wantErr:     errs.ErrInvalidUncertainty,
		},
		{
			name:        "nan uncertainty",
			value:       1.0,
			uncertainty: math.NaN(),
			wantErr:     errs.ErrInvalidUncertainty,
		},
		{
			name:        "infinite uncertainty",
			value:       1.0,
			uncertainty: math.Inf(1),
			wantErr:     errs.ErrInvalidUncertainty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Encode(tt.value, tt.uncertainty)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, 0.0, y)
		})
	}
}

// TestEncodeSlice_PairwiseUncertainties verifies elementwise encoding with
// one uncertainty per value.
func TestEncodeSlice_PairwiseUncertainties(t *testing.T) {
	values := []float64{1.0, 10.0 / 3.0, -1234}
	uncertainties := []float64{0.4, 0.1, 3}

	encoded, err := EncodeSlice(values, uncertainties)
	require.NoError(t, err)
	require.Equal(t, []float64{1.125, 3.34375, -1235}, encoded)
}

// TestEncodeSlice_SharedUncertainty verifies the single shared uncertainty
// form.
func TestEncodeSlice_SharedUncertainty(t *testing.T) {
	values := []float64{0.65432, 10.0 / 3.0}

	encoded, err := EncodeSlice(values, []float64{0.05})
	require.NoError(t, err)
	require.Equal(t, 0.640625, encoded[0])
	require.Equal(t, 3.328125, encoded[1])
}

// TestEncodeSlice_NonFinitePassThrough verifies that NaN and infinities
// pass through unchanged as gap markers rather than failing the batch.
func TestEncodeSlice_NonFinitePassThrough(t *testing.T) {
	values := []float64{1.0, math.NaN(), math.Inf(1), math.Inf(-1)}

	encoded, err := EncodeSlice(values, []float64{0.4})
	require.NoError(t, err)
	require.Len(t, encoded, 4)
	require.Equal(t, 1.125, encoded[0])
	require.True(t, math.IsNaN(encoded[1]))
	require.True(t, math.IsInf(encoded[2], 1))
	require.True(t, math.IsInf(encoded[3], -1))
}

// TestEncodeSlice_Empty verifies that empty input yields empty output.
func TestEncodeSlice_Empty(t *testing.T) {
	encoded, err := EncodeSlice(nil, nil)
	require.NoError(t, err)
	require.Empty(t, encoded)

	encoded, err = EncodeSlice([]float64{}, []float64{0.1})
	require.NoError(t, err)
	require.Empty(t, encoded)
}

// TestEncodeSlice_LengthMismatch verifies rejection of incompatible slice
// lengths.
func TestEncodeSlice_LengthMismatch(t *testing.T) {
	_, err := EncodeSlice([]float64{1, 2, 3}, []float64{0.1, 0.1})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = EncodeSlice([]float64{1, 2}, nil)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

// TestEncodeSlice_ErrorCarriesIndex verifies that an elementwise failure
// names the offending index.
func TestEncodeSlice_ErrorCarriesIndex(t *testing.T) {
	_, err := EncodeSlice([]float64{1.0, 2.0}, []float64{0.4, -1})
	require.ErrorIs(t, err, errs.ErrInvalidUncertainty)
	require.Contains(t, err.Error(), "index 1")
}
