// Package storage resolves fixed-point bit widths to storage buckets and
// provides the rounding and saturation primitives shared by every backend.
//
// All overflow handling in the module funnels through [Sat] and [SatCast]:
// no other package clamps values on its own.
package storage

import (
	"math"
	"math/bits"
	"unsafe"
)

// Int is the set of raw storage types that can back a fixed-point value.
// Only the exact types are allowed so that kernels written for []int16 can be
// handed out as kernels for []T.
type Int interface {
	int8 | int16 | int32
}

// Width is the size of a storage bucket in bits.
type Width uint8

// The three storage buckets.
const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
)

// MaxBits is the widest total bit count a format may request.
const MaxBits = 32

// Bucket returns the smallest bucket holding bits. It reports false when bits
// is negative or exceeds [MaxBits].
func Bucket(bits int) (Width, bool) {
	switch {
	case bits < 0 || bits > MaxBits:
		return 0, false
	case bits <= 8:
		return W8, true
	case bits <= 16:
		return W16, true
	default:
		return W32, true
	}
}

// WidthOf returns the bucket width of T.
func WidthOf[T Int]() Width {
	var zero T
	return Width(unsafe.Sizeof(zero) * 8)
}

// Index maps the bucket to 0, 1 or 2 for table lookups.
func (w Width) Index() int {
	switch w {
	case W8:
		return 0
	case W16:
		return 1
	default:
		return 2
	}
}

// Min returns the most negative raw value the bucket can hold.
func (w Width) Min() int64 {
	return -1 << (w - 1)
}

// Max returns the most positive raw value the bucket can hold.
func (w Width) Max() int64 {
	return 1<<(w-1) - 1
}

// Valid reports whether w is one of the three buckets.
func (w Width) Valid() bool {
	return w == W8 || w == W16 || w == W32
}

// Min returns the most negative value of T.
func Min[T Int]() T {
	return T(WidthOf[T]().Min())
}

// Max returns the most positive value of T.
func Max[T Int]() T {
	return T(WidthOf[T]().Max())
}

// Sat clamps v into the range of bucket w.
func Sat(v int64, w Width) int64 {
	if lo := w.Min(); v < lo {
		return lo
	}
	if hi := w.Max(); v > hi {
		return hi
	}
	return v
}

// SatCast narrows a wide accumulator value into T, clamping instead of
// wrapping.
func SatCast[T Int](v int64) T {
	return T(Sat(v, WidthOf[T]()))
}

// RoundShift realigns x by s bits. For s > 0 it is a right shift rounding
// half away from zero. Negative values are rounded on their magnitude, so
// RoundShift(-x, s) == -RoundShift(x, s) and exact multiples stay exact.
// For s < 0 it is an exact left shift by -s that saturates to the int64
// range instead of dropping bits.
func RoundShift(x int64, s int) int64 {
	switch {
	case s == 0:
		return x
	case s < 0:
		return shiftLeft(x, uint(-s))
	case s >= 64:
		return 0
	}

	neg := x < 0
	m := uint64(x)
	if neg {
		m = -m
	}
	r := m>>uint(s) + (m>>uint(s-1))&1
	if neg {
		return -int64(r)
	}
	return int64(r)
}

func shiftLeft(x int64, n uint) int64 {
	if x == 0 {
		return 0
	}
	if n >= 63 {
		if x > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	if x > int64(math.MaxInt64)>>n {
		return math.MaxInt64
	}
	if x < int64(math.MinInt64)>>n {
		return math.MinInt64
	}
	return x << n
}

// SatAdd64 returns a+b, clamped to the int64 range.
func SatAdd64(a, b int64) int64 {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		if a >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return s
}

// RoundDiv returns a/b rounded half away from zero. Division by zero
// saturates toward the sign of a.
func RoundDiv(a, b int64) int64 {
	return DivShift(a, b, 0)
}

// DivShift returns (a / b) realigned by s bits with the [RoundShift] sign
// convention: the result is a * 2^-s / b rounded half away from zero. The
// ratio is formed in 128 bits and clamped to the int64 range. Division by
// zero saturates toward the sign of a, with 0/0 mapping to the maximum.
func DivShift(a, b int64, s int) int64 {
	if b == 0 {
		if a < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	neg := (a < 0) != (b < 0)
	ua, ub := abs64(a), abs64(b)
	if ua == 0 {
		return 0
	}

	var q uint64
	if s <= 0 {
		n := uint(-s)
		if bits.Len64(ua)+int(n) > 127 {
			return saturate(neg)
		}
		hi, lo := shl128(ua, n)
		if hi >= ub {
			return saturate(neg)
		}
		var r uint64
		q, r = bits.Div64(hi, lo, ub)
		if r >= ub-r {
			q++
			if q == 0 {
				return saturate(neg)
			}
		}
	} else {
		n := uint(s)
		if bits.Len64(ub)+int(n) > 64 {
			return 0
		}
		d := ub << n
		q = ua / d
		if r := ua % d; r >= d-r {
			q++
		}
	}

	if q > math.MaxInt64 {
		return saturate(neg)
	}
	if neg {
		return -int64(q)
	}
	return int64(q)
}

func saturate(neg bool) int64 {
	if neg {
		return math.MinInt64
	}
	return math.MaxInt64
}

func shl128(x uint64, n uint) (hi, lo uint64) {
	switch {
	case n == 0:
		return 0, x
	case n < 64:
		return x >> (64 - n), x << n
	default:
		return x << (n - 64), 0
	}
}

func abs64(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// Quantize converts v to a raw value with frac fractional bits, rounding to
// nearest (half away from zero) and saturating into bucket w. NaN maps to 0.
func Quantize(v float64, frac int, w Width) int64 {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(math.Ldexp(v, frac))
	if hi := w.Max(); r >= float64(hi) {
		return hi
	}
	if lo := w.Min(); r <= float64(lo) {
		return lo
	}
	return int64(r)
}

// Dequantize returns the exact float value of raw with frac fractional bits.
func Dequantize(raw int64, frac int) float64 {
	return math.Ldexp(float64(raw), -frac)
}
