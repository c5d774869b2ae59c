// Package q15 is the 16-bit rung of the accelerated ladder.
//
// Scalar ops assume both operands are int16 raw values and keep the work in
// 32-bit registers. Shifts outside the range those registers can hold are
// handed to the reference kernels.
package q15

import (
	"github.com/cwbudde/algo-fixed/internal/reference"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// roundShift32 is storage.RoundShift for 0 < s < 31 in 32-bit arithmetic.
func roundShift32(x int32, s int) int32 {
	if x >= 0 {
		return (x + 1<<(s-1)) >> s
	}
	return -((-x + 1<<(s-1)) >> s)
}

// Mul multiplies two int16 raw values.
func Mul(a, b int64, wo storage.Width, shift int) int64 {
	if shift <= 0 || shift >= 31 {
		return reference.Mul(a, b, wo, shift)
	}
	return storage.Sat(int64(roundShift32(int32(a)*int32(b), shift)), wo)
}

// Div divides two int16 raw values. Only widening shifts up to 16 bits stay
// on this path.
func Div(a, b int64, wo storage.Width, shift int) int64 {
	if b == 0 || shift > 0 || shift < -16 {
		return reference.Div(a, b, wo, shift)
	}
	num := int64(int32(a) << -shift)
	den := int64(int32(b))
	q, r := num/den, num%den
	if r < 0 {
		r = -r
	}
	if den < 0 {
		den = -den
	}
	if 2*r >= den {
		if (num < 0) != (b < 0) {
			q--
		} else {
			q++
		}
	}
	return storage.Sat(q, wo)
}

func align32(x int64, f, fo int) (int32, bool) {
	switch d := f - fo; {
	case d == 0:
		return int32(x), true
	case d > 0 && d < 16:
		return roundShift32(int32(x), d), true
	case d < 0 && d > -16:
		return int32(x) << -d, true
	}
	return 0, false
}

// Add realigns each int16 operand to fo and sums in 32 bits.
func Add(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64 {
	x, okA := align32(a, fa, fo)
	y, okB := align32(b, fb, fo)
	if !okA || !okB {
		return reference.Add(a, fa, b, fb, wo, fo)
	}
	return storage.Sat(int64(x)+int64(y), wo)
}

// Sub realigns each int16 operand to fo and subtracts in 32 bits.
func Sub(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64 {
	x, okA := align32(a, fa, fo)
	y, okB := align32(b, fb, fo)
	if !okA || !okB {
		return reference.Sub(a, fa, b, fb, wo, fo)
	}
	return storage.Sat(int64(x)-int64(y), wo)
}

// Sqrt is an integer square root: sqrt(x * 2^frac) rounded to nearest.
func Sqrt(x int64, w storage.Width, frac int) int64 {
	if x < 0 {
		return reference.Sentinel(w)
	}
	if frac < 0 || frac > 32 {
		return reference.Sqrt(x, w, frac)
	}
	return storage.Sat(int64(reference.RoundSqrt(uint64(x)<<frac)), w)
}

// Relu clamps negative operands to zero.
func Relu(x int64, _ storage.Width, _ int) int64 {
	if x < 0 {
		return 0
	}
	return x
}
