package storage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket(t *testing.T) {
	cases := []struct {
		bits int
		want Width
		ok   bool
	}{
		{bits: -1, ok: false},
		{bits: 0, want: W8, ok: true},
		{bits: 1, want: W8, ok: true},
		{bits: 8, want: W8, ok: true},
		{bits: 9, want: W16, ok: true},
		{bits: 16, want: W16, ok: true},
		{bits: 17, want: W32, ok: true},
		{bits: 32, want: W32, ok: true},
		{bits: 33, ok: false},
	}
	for _, tc := range cases {
		got, ok := Bucket(tc.bits)
		assert.Equal(t, tc.ok, ok, "bits=%d", tc.bits)
		if tc.ok {
			assert.Equal(t, tc.want, got, "bits=%d", tc.bits)
			assert.GreaterOrEqual(t, int(got), tc.bits)
		}
	}
}

func TestWidthOf(t *testing.T) {
	assert.Equal(t, W8, WidthOf[int8]())
	assert.Equal(t, W16, WidthOf[int16]())
	assert.Equal(t, W32, WidthOf[int32]())
	assert.Equal(t, []int{0, 1, 2}, []int{W8.Index(), W16.Index(), W32.Index()})
}

func TestWidthBounds(t *testing.T) {
	assert.Equal(t, int64(math.MinInt8), W8.Min())
	assert.Equal(t, int64(math.MaxInt8), W8.Max())
	assert.Equal(t, int64(math.MinInt16), W16.Min())
	assert.Equal(t, int64(math.MaxInt16), W16.Max())
	assert.Equal(t, int64(math.MinInt32), W32.Min())
	assert.Equal(t, int64(math.MaxInt32), W32.Max())
	assert.Equal(t, int16(math.MinInt16), Min[int16]())
	assert.Equal(t, int8(math.MaxInt8), Max[int8]())
}

func TestRoundShift(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		s    int
		want int64
	}{
		{name: "identity", x: 12345, s: 0, want: 12345},
		{name: "exact right", x: 8, s: 2, want: 2},
		{name: "half rounds up", x: 3, s: 1, want: 2},
		{name: "below half truncates", x: 5, s: 2, want: 1},
		{name: "negative half rounds away", x: -3, s: 1, want: -2},
		{name: "negative exact", x: -2, s: 1, want: -1},
		{name: "negative below half", x: -5, s: 2, want: -1},
		{name: "negative above half", x: -7, s: 2, want: -2},
		{name: "negative tie", x: -6, s: 2, want: -2},
		{name: "negative exact multiple", x: -8, s: 2, want: -2},
		{name: "left widening", x: -3, s: -4, want: -48},
		{name: "left saturates high", x: 1 << 40, s: -30, want: math.MaxInt64},
		{name: "left saturates low", x: -(1 << 40), s: -30, want: math.MinInt64},
		{name: "huge right", x: math.MaxInt64, s: 80, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RoundShift(tc.x, tc.s))
		})
	}
}

func TestRoundShiftMatchesFloat(t *testing.T) {
	for x := int64(-1000); x <= 1000; x++ {
		for s := 1; s < 8; s++ {
			want := int64(math.Round(float64(x) / float64(int64(1)<<s)))
			require.Equal(t, want, RoundShift(x, s), "x=%d s=%d", x, s)
		}
	}
}

func TestRoundShiftSymmetric(t *testing.T) {
	for x := int64(0); x <= 4096; x++ {
		for s := 1; s < 12; s++ {
			require.Equal(t, -RoundShift(x, s), RoundShift(-x, s), "x=%d s=%d", x, s)
		}
	}
	assert.Equal(t, int64(-1<<62), RoundShift(math.MinInt64, 1))
}

func TestSat(t *testing.T) {
	assert.Equal(t, int64(127), Sat(1000, W8))
	assert.Equal(t, int64(-128), Sat(-1000, W8))
	assert.Equal(t, int64(42), Sat(42, W8))
	assert.Equal(t, int16(math.MaxInt16), SatCast[int16](1<<20))
	assert.Equal(t, int16(math.MinInt16), SatCast[int16](-(1 << 20)))
	assert.Equal(t, int32(math.MinInt32), SatCast[int32](math.MinInt64))
}

func TestSatAdd64(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), SatAdd64(math.MaxInt64, 1))
	assert.Equal(t, int64(math.MinInt64), SatAdd64(math.MinInt64, -1))
	assert.Equal(t, int64(-1), SatAdd64(math.MaxInt64, math.MinInt64))
	assert.Equal(t, int64(7), SatAdd64(3, 4))
}

func TestDivShift(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		s    int
		want int64
	}{
		{name: "q15 0.75/0.5 to q13", a: 24576, b: 16384, s: 15 - 15 - 13, want: 12288},
		{name: "q15 0.75/0.5 to q15", a: 24576, b: 16384, s: -15, want: 49152},
		{name: "rounds half away", a: 3, b: 2, s: 0, want: 2},
		{name: "negative rounds away", a: -3, b: 2, s: 0, want: -2},
		{name: "right shift", a: 100, b: 1, s: 3, want: 13},
		{name: "tiny quotient", a: 1, b: math.MaxInt32, s: 40, want: 0},
		{name: "divide by zero positive", a: 5, b: 0, s: 0, want: math.MaxInt64},
		{name: "divide by zero negative", a: -5, b: 0, s: 0, want: math.MinInt64},
		{name: "zero over zero", a: 0, b: 0, s: 0, want: math.MaxInt64},
		{name: "overflowing quotient", a: math.MaxInt32, b: 1, s: -40, want: math.MaxInt64},
		{name: "overflowing negative quotient", a: math.MaxInt32, b: -1, s: -40, want: math.MinInt64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DivShift(tc.a, tc.b, tc.s))
		})
	}
	assert.Equal(t, int64(3), RoundDiv(10, 4))
	assert.Equal(t, int64(-3), RoundDiv(-10, 4))
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, int64(16384), Quantize(0.5, 15, W16))
	assert.Equal(t, int64(32767), Quantize(1.0, 15, W16))
	assert.Equal(t, int64(-32768), Quantize(-1.0, 15, W16))
	assert.Equal(t, int64(-32768), Quantize(-7, 15, W16))
	assert.Equal(t, int64(0), Quantize(math.NaN(), 15, W16))
	assert.Equal(t, int64(math.MaxInt32), Quantize(math.Inf(1), 4, W32))
	assert.Equal(t, int64(1), Quantize(0.5/128, 7, W8))
	assert.Equal(t, 0.375, Dequantize(12288, 15))
	assert.Equal(t, -1.0, Dequantize(-32768, 15))
}
