package reference

import (
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// ShiftArray shifts every element left by n bits (right by -n, rounded),
// saturating into the element type.
func ShiftArray[T storage.Int](x []T, n int) {
	for i, v := range x {
		x[i] = storage.SatCast[T](storage.RoundShift(int64(v), -n))
	}
}

// ScaleArray multiplies every element by factor and realigns the product by
// shift using the rounded-shift convention.
func ScaleArray[T storage.Int](x []T, factor T, shift int) {
	f := int64(factor)
	for i, v := range x {
		x[i] = storage.SatCast[T](storage.RoundShift(int64(v)*f, shift))
	}
}

// MinArray returns the smallest element and the index of its first
// occurrence. An empty slice yields (0, -1).
func MinArray[T storage.Int](x []T) (T, int) {
	if len(x) == 0 {
		return 0, -1
	}
	m, idx := x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] < m {
			m, idx = x[i], i
		}
	}
	return m, idx
}

// MaxArray returns the largest element and the index of its first
// occurrence. An empty slice yields (0, -1).
func MaxArray[T storage.Int](x []T) (T, int) {
	if len(x) == 0 {
		return 0, -1
	}
	m, idx := x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] > m {
			m, idx = x[i], i
		}
	}
	return m, idx
}

// DotArray returns the sum of products over the common length, realigned
// once by shift. The accumulator saturates at the int64 range.
func DotArray[T storage.Int](a, b []T, shift int) int64 {
	n := min(len(a), len(b))
	var acc int64
	for i := range n {
		acc = storage.SatAdd64(acc, int64(a[i])*int64(b[i]))
	}
	return storage.RoundShift(acc, shift)
}

// SumArray returns the exact sum of x.
func SumArray[T storage.Int](x []T) int64 {
	var acc int64
	for _, v := range x {
		acc += int64(v)
	}
	return acc
}

// AddArray writes the saturated element-wise sum into dst.
func AddArray[T storage.Int](dst, a, b []T) {
	for i := range dst {
		dst[i] = storage.SatCast[T](int64(a[i]) + int64(b[i]))
	}
}

// SubArray writes the saturated element-wise difference into dst.
func SubArray[T storage.Int](dst, a, b []T) {
	for i := range dst {
		dst[i] = storage.SatCast[T](int64(a[i]) - int64(b[i]))
	}
}

// MulArray writes the element-wise product realigned by shift into dst.
func MulArray[T storage.Int](dst, a, b []T, shift int) {
	for i := range dst {
		dst[i] = storage.SatCast[T](storage.RoundShift(int64(a[i])*int64(b[i]), shift))
	}
}
