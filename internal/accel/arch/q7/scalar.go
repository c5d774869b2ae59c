// Package q7 is the 8-bit rung of the accelerated ladder, the most
// specialized one. It covers multiply, add and subtract of int8 operands and
// the element-wise and reduction kernels of []int8. Everything else falls to
// the rungs below.
package q7

import (
	"github.com/cwbudde/algo-fixed/internal/reference"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

func roundShift32(x int32, s int) int32 {
	if x >= 0 {
		return (x + 1<<(s-1)) >> s
	}
	return -((-x + 1<<(s-1)) >> s)
}

// Mul multiplies two int8 raw values.
func Mul(a, b int64, wo storage.Width, shift int) int64 {
	p := int32(a) * int32(b)
	switch {
	case shift == 0:
		return storage.Sat(int64(p), wo)
	case shift > 0 && shift < 16:
		return storage.Sat(int64(roundShift32(p, shift)), wo)
	}
	return reference.Mul(a, b, wo, shift)
}

func align(x int64, f, fo int) (int32, bool) {
	switch d := f - fo; {
	case d == 0:
		return int32(x), true
	case d > 0 && d < 8:
		return roundShift32(int32(x), d), true
	case d < 0 && d > -16:
		return int32(x) << -d, true
	}
	return 0, false
}

// Add realigns each int8 operand to fo and sums in 32 bits.
func Add(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64 {
	x, okA := align(a, fa, fo)
	y, okB := align(b, fb, fo)
	if !okA || !okB {
		return reference.Add(a, fa, b, fb, wo, fo)
	}
	return storage.Sat(int64(x+y), wo)
}

// Sub realigns each int8 operand to fo and subtracts in 32 bits.
func Sub(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64 {
	x, okA := align(a, fa, fo)
	y, okB := align(b, fb, fo)
	if !okA || !okB {
		return reference.Sub(a, fa, b, fb, wo, fo)
	}
	return storage.Sat(int64(x-y), wo)
}
