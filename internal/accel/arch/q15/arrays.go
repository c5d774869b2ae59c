package q15

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fixed/internal/reference"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// maxStatLen bounds the lengths whose statistics fit the exact int64
// formulation below.
const maxStatLen = 1 << 15

// Shift shifts every element left by n bits (right by -n, rounded).
func Shift(x []int16, n int) {
	if n <= -16 || n >= 16 {
		reference.ShiftArray(x, n)
		return
	}
	for i, v := range x {
		var r int32
		if n >= 0 {
			r = int32(v) << n
		} else {
			r = roundShift32(int32(v), -n)
		}
		x[i] = storage.SatCast[int16](int64(r))
	}
}

// Scale multiplies every element by factor and realigns by shift.
func Scale(x []int16, factor int16, shift int) {
	if shift <= 0 || shift >= 31 {
		reference.ScaleArray(x, factor, shift)
		return
	}
	f := int32(factor)
	for i, v := range x {
		x[i] = storage.SatCast[int16](int64(roundShift32(int32(v)*f, shift)))
	}
}

// Min returns the smallest element and its first index.
func Min(x []int16) (int16, int) {
	if len(x) == 0 {
		return 0, -1
	}
	m, idx := x[0], 0
	for i, v := range x[1:] {
		if v < m {
			m, idx = v, i+1
		}
	}
	return m, idx
}

// Max returns the largest element and its first index.
func Max(x []int16) (int16, int) {
	if len(x) == 0 {
		return 0, -1
	}
	m, idx := x[0], 0
	for i, v := range x[1:] {
		if v > m {
			m, idx = v, i+1
		}
	}
	return m, idx
}

// Dot accumulates int16 products in int64 and realigns once.
func Dot(a, b []int16, shift int) int64 {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	var acc int64
	for i := range a {
		acc += int64(int32(a[i]) * int32(b[i]))
	}
	return storage.RoundShift(acc, shift)
}

// Sum returns the exact sum of x.
func Sum(x []int16) int64 {
	var acc int64
	for _, v := range x {
		acc += int64(v)
	}
	return acc
}

// AddArray writes the saturated element-wise sum into dst.
func AddArray(dst, a, b []int16) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = storage.SatCast[int16](int64(int32(a[i]) + int32(b[i])))
	}
}

// SubArray writes the saturated element-wise difference into dst.
func SubArray(dst, a, b []int16) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = storage.SatCast[int16](int64(int32(a[i]) - int32(b[i])))
	}
}

// MulArray writes the element-wise product realigned by shift into dst.
func MulArray(dst, a, b []int16, shift int) {
	if shift <= 0 || shift >= 31 {
		reference.MulArray(dst, a, b, shift)
		return
	}
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = storage.SatCast[int16](int64(roundShift32(int32(a[i])*int32(b[i]), shift)))
	}
}

// Mean returns the rounded mean.
func Mean(x []int16) int16 {
	if len(x) == 0 {
		return 0
	}
	return storage.SatCast[int16](storage.RoundDiv(Sum(x), int64(len(x))))
}

func sumSquares(x []int16) int64 {
	var acc int64
	for _, v := range x {
		acc += int64(int32(v) * int32(v))
	}
	return acc
}

// RMS returns the root mean square.
func RMS(x []int16) int16 {
	if len(x) == 0 {
		return 0
	}
	ms := storage.RoundDiv(sumSquares(x), int64(len(x)))
	return storage.SatCast[int16](int64(reference.RoundSqrt(uint64(ms))))
}

// scatter returns n*sum(x^2) - sum(x)^2, which is n*(n-1) times the sample
// variance in raw units.
func scatter(x []int16) int64 {
	n := int64(len(x))
	s := Sum(x)
	return n*sumSquares(x) - s*s
}

// Variance returns the sample variance in the input format.
func Variance(x []int16, frac int) int16 {
	n := int64(len(x))
	switch {
	case n < 2:
		return 0
	case n > maxStatLen:
		return reference.VarianceArray(x, frac)
	}
	return storage.SatCast[int16](storage.DivShift(scatter(x), n*(n-1), frac))
}

// Stddev returns the sample standard deviation in the input format.
func Stddev(x []int16) int16 {
	n := int64(len(x))
	switch {
	case n < 2:
		return 0
	case n > maxStatLen:
		return reference.StddevArray(x)
	}
	v := storage.RoundDiv(scatter(x), n*(n-1))
	return storage.SatCast[int16](int64(reference.RoundSqrt(uint64(v))))
}

// Spectrum computes the normalized magnitude spectrum, taking the bin
// magnitudes with the vectorized float kernel.
func Spectrum(dst, src []int16, frac int) {
	clear(dst)
	n := len(src)
	if n == 0 {
		return
	}
	bins, ok := reference.Transform(src, frac)
	if !ok {
		return
	}
	half := min(n/2+1, len(dst))
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}
	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)
	for k, m := range mag {
		dst[k] = int16(storage.Quantize(m/float64(n), frac, storage.W16))
	}
}
