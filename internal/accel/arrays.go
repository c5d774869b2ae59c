package accel

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Arrays runs the resolved kernels for one storage type. Each call picks
// the fast variant when one was resolved and every buffer qualifies, and
// the regular variant otherwise.
type Arrays[T storage.Int] struct {
	k *registry.Kernels[T]
}

// Q7 returns the int8 kernels.
func Q7() Arrays[int8] { return Arrays[int8]{k: &load().q7} }

// Q15 returns the int16 kernels.
func Q15() Arrays[int16] { return Arrays[int16]{k: &load().q15} }

// Q31 returns the int32 kernels.
func Q31() Arrays[int32] { return Arrays[int32]{k: &load().q31} }

func (a Arrays[T]) Shift(x []T, n int) {
	if f := a.k.Fast.Shift; f != nil && fast1(x) {
		f(x, n)
		return
	}
	a.k.Regular.Shift(x, n)
}

func (a Arrays[T]) Scale(x []T, factor T, shift int) {
	if f := a.k.Fast.Scale; f != nil && fast1(x) {
		f(x, factor, shift)
		return
	}
	a.k.Regular.Scale(x, factor, shift)
}

func (a Arrays[T]) Min(x []T) (T, int) {
	if f := a.k.Fast.Min; f != nil && fast1(x) {
		return f(x)
	}
	return a.k.Regular.Min(x)
}

func (a Arrays[T]) Max(x []T) (T, int) {
	if f := a.k.Fast.Max; f != nil && fast1(x) {
		return f(x)
	}
	return a.k.Regular.Max(x)
}

// Dot uses the common length of x and y.
func (a Arrays[T]) Dot(x, y []T, shift int) int64 {
	n := min(len(x), len(y))
	x, y = x[:n], y[:n]
	if f := a.k.Fast.Dot; f != nil && fast1(x) && Aligned(y) {
		return f(x, y, shift)
	}
	return a.k.Regular.Dot(x, y, shift)
}

func (a Arrays[T]) Sum(x []T) int64 {
	if f := a.k.Fast.Sum; f != nil && fast1(x) {
		return f(x)
	}
	return a.k.Regular.Sum(x)
}

func (a Arrays[T]) Add(dst, x, y []T) {
	if f := a.k.Fast.Add; f != nil && fast3(dst, x, y) {
		f(dst, x, y)
		return
	}
	a.k.Regular.Add(dst, x, y)
}

func (a Arrays[T]) Sub(dst, x, y []T) {
	if f := a.k.Fast.Sub; f != nil && fast3(dst, x, y) {
		f(dst, x, y)
		return
	}
	a.k.Regular.Sub(dst, x, y)
}

func (a Arrays[T]) Mul(dst, x, y []T, shift int) {
	if f := a.k.Fast.Mul; f != nil && fast3(dst, x, y) {
		f(dst, x, y, shift)
		return
	}
	a.k.Regular.Mul(dst, x, y, shift)
}

func (a Arrays[T]) Mean(x []T) T {
	if f := a.k.Fast.Mean; f != nil && fast1(x) {
		return f(x)
	}
	return a.k.Regular.Mean(x)
}

func (a Arrays[T]) RMS(x []T) T {
	if f := a.k.Fast.RMS; f != nil && fast1(x) {
		return f(x)
	}
	return a.k.Regular.RMS(x)
}

func (a Arrays[T]) Variance(x []T, frac int) T {
	if f := a.k.Fast.Variance; f != nil && fast1(x) {
		return f(x, frac)
	}
	return a.k.Regular.Variance(x, frac)
}

func (a Arrays[T]) Stddev(x []T) T {
	if f := a.k.Fast.Stddev; f != nil && fast1(x) {
		return f(x)
	}
	return a.k.Regular.Stddev(x)
}

func (a Arrays[T]) Softmax(dst, src []T, frac int) {
	if f := a.k.Fast.Softmax; f != nil && fast3(dst, src, src) {
		f(dst, src, frac)
		return
	}
	a.k.Regular.Softmax(dst, src, frac)
}

func (a Arrays[T]) Spectrum(dst, src []T, frac int) {
	if f := a.k.Fast.Spectrum; f != nil && fast1(src) && Aligned(dst) {
		f(dst, src, frac)
		return
	}
	a.k.Regular.Spectrum(dst, src, frac)
}
