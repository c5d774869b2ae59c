package q7

import (
	"github.com/cwbudde/algo-fixed/internal/reference"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Shift shifts every element left by n bits (right by -n, rounded).
func Shift(x []int8, n int) {
	if n <= -8 || n >= 8 {
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
		x[i] = storage.SatCast[int8](int64(r))
	}
}

// Scale multiplies every element by factor and realigns by shift.
func Scale(x []int8, factor int8, shift int) {
	if shift <= 0 || shift >= 16 {
		reference.ScaleArray(x, factor, shift)
		return
	}
	f := int32(factor)
	for i, v := range x {
		x[i] = storage.SatCast[int8](int64(roundShift32(int32(v)*f, shift)))
	}
}

// Min returns the smallest element and its first index.
func Min(x []int8) (int8, int) {
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
func Max(x []int8) (int8, int) {
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

// Dot accumulates int8 products and realigns once.
func Dot(a, b []int8, shift int) int64 {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	var acc int64
	for i := range a {
		acc += int64(int16(a[i]) * int16(b[i]))
	}
	return storage.RoundShift(acc, shift)
}

// Sum returns the exact sum of x.
func Sum(x []int8) int64 {
	var acc int64
	for _, v := range x {
		acc += int64(v)
	}
	return acc
}

// AddArray writes the saturated element-wise sum into dst.
func AddArray(dst, a, b []int8) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = storage.SatCast[int8](int64(int16(a[i]) + int16(b[i])))
	}
}

// SubArray writes the saturated element-wise difference into dst.
func SubArray(dst, a, b []int8) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = storage.SatCast[int8](int64(int16(a[i]) - int16(b[i])))
	}
}

// MulArray writes the element-wise product realigned by shift into dst.
func MulArray(dst, a, b []int8, shift int) {
	if shift <= 0 || shift >= 16 {
		reference.MulArray(dst, a, b, shift)
		return
	}
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = storage.SatCast[int8](int64(roundShift32(int32(a[i])*int32(b[i]), shift)))
	}
}
