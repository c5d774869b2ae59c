package reference

import "github.com/cwbudde/algo-fixed/internal/storage"

// Arrays exposes the generic array kernels for one storage type as a method
// set.
type Arrays[T storage.Int] struct{}

func (Arrays[T]) Shift(x []T, n int)               { ShiftArray(x, n) }
func (Arrays[T]) Scale(x []T, factor T, shift int) { ScaleArray(x, factor, shift) }
func (Arrays[T]) Min(x []T) (T, int)               { return MinArray(x) }
func (Arrays[T]) Max(x []T) (T, int)               { return MaxArray(x) }
func (Arrays[T]) Dot(a, b []T, shift int) int64    { return DotArray(a, b, shift) }
func (Arrays[T]) Sum(x []T) int64                  { return SumArray(x) }
func (Arrays[T]) Add(dst, a, b []T)                { AddArray(dst, a, b) }
func (Arrays[T]) Sub(dst, a, b []T)                { SubArray(dst, a, b) }
func (Arrays[T]) Mul(dst, a, b []T, shift int)     { MulArray(dst, a, b, shift) }
func (Arrays[T]) Mean(x []T) T                     { return MeanArray(x) }
func (Arrays[T]) RMS(x []T) T                      { return RMSArray(x) }
func (Arrays[T]) Variance(x []T, frac int) T       { return VarianceArray(x, frac) }
func (Arrays[T]) Stddev(x []T) T                   { return StddevArray(x) }
func (Arrays[T]) Softmax(dst, src []T, frac int)   { SoftmaxArray(dst, src, frac) }
func (Arrays[T]) Spectrum(dst, src []T, frac int)  { SpectrumArray(dst, src, frac) }
