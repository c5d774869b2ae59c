package fixed

import (
	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Array is a view of a caller-owned buffer of raw values in format F.
//
// It never copies or retains anything but the slice header; the buffer
// must outlive the view. Operations taking several arrays expect equal
// lengths and do not check them. Destination arrays may be the same view
// as a source.
type Array[T storage.Int, F Format[T], B backend.Backend] struct {
	buf []T
	k   backend.Arrays[T]
}

// NewArray returns a view of buf.
func NewArray[T storage.Int, F Format[T], B backend.Backend](buf []T) Array[T, F, B] {
	return Array[T, F, B]{buf: buf, k: kernels[T, B]()}
}

// kernels picks B's array kernels for T.
func kernels[T storage.Int, B backend.Backend]() backend.Arrays[T] {
	var be B
	var k any
	switch storage.WidthOf[T]() {
	case storage.W8:
		k = be.Q7()
	case storage.W16:
		k = be.Q15()
	default:
		k = be.Q31()
	}
	return k.(backend.Arrays[T])
}

// Len returns the element count.
func (a Array[T, F, B]) Len() int { return len(a.buf) }

// Raw returns the backing buffer.
func (a Array[T, F, B]) Raw() []T { return a.buf }

// At returns element i.
func (a Array[T, F, B]) At(i int) Value[T, F, B] { return Value[T, F, B]{raw: a.buf[i]} }

// Set stores v at index i.
func (a Array[T, F, B]) Set(i int, v Value[T, F, B]) { a.buf[i] = v.raw }

// Min returns the smallest element, or 0 for an empty array.
func (a Array[T, F, B]) Min() Value[T, F, B] {
	v, _ := a.k.Min(a.buf)
	return Value[T, F, B]{raw: v}
}

// Max returns the largest element, or 0 for an empty array.
func (a Array[T, F, B]) Max() Value[T, F, B] {
	v, _ := a.k.Max(a.buf)
	return Value[T, F, B]{raw: v}
}

// ArgMin returns the index of the first smallest element, or -1.
func (a Array[T, F, B]) ArgMin() int {
	_, i := a.k.Min(a.buf)
	return i
}

// ArgMax returns the index of the first largest element, or -1.
func (a Array[T, F, B]) ArgMax() int {
	_, i := a.k.Max(a.buf)
	return i
}

// Sum returns the sum in the 32-bit accumulator format, saturating there.
func (a Array[T, F, B]) Sum() Value[int32, Acc[T, F], B] {
	return Value[int32, Acc[T, F], B]{raw: storage.SatCast[int32](a.k.Sum(a.buf))}
}

// Dot returns the dot product with b in the accumulator format. The
// products are summed at full precision and rounded once.
func (a Array[T, F, B]) Dot(b Array[T, F, B]) Value[int32, Acc[T, F], B] {
	return Value[int32, Acc[T, F], B]{raw: storage.SatCast[int32](a.k.Dot(a.buf, b.buf, fracOf[T, F]()))}
}

// Mean returns the arithmetic mean.
func (a Array[T, F, B]) Mean() Value[T, F, B] { return Value[T, F, B]{raw: a.k.Mean(a.buf)} }

// RMS returns the root mean square.
func (a Array[T, F, B]) RMS() Value[T, F, B] { return Value[T, F, B]{raw: a.k.RMS(a.buf)} }

// Variance returns the sample variance (n-1 divisor); fewer than two
// elements give 0.
func (a Array[T, F, B]) Variance() Value[T, F, B] {
	return Value[T, F, B]{raw: a.k.Variance(a.buf, fracOf[T, F]())}
}

// Stddev returns the sample standard deviation.
func (a Array[T, F, B]) Stddev() Value[T, F, B] { return Value[T, F, B]{raw: a.k.Stddev(a.buf)} }

// Scale multiplies every element by factor in place.
func (a Array[T, F, B]) Scale(factor Value[T, F, B]) {
	a.k.Scale(a.buf, factor.raw, fracOf[T, F]())
}

// Shift multiplies every element by 2^n in place (divides by 2^-n with
// rounding when n is negative), saturating.
func (a Array[T, F, B]) Shift(n int) { a.k.Shift(a.buf, n) }

// Add writes a+b into dst.
func (a Array[T, F, B]) Add(b, dst Array[T, F, B]) { a.k.Add(dst.buf, a.buf, b.buf) }

// Sub writes a-b into dst.
func (a Array[T, F, B]) Sub(b, dst Array[T, F, B]) { a.k.Sub(dst.buf, a.buf, b.buf) }

// Mul writes the element-wise product a*b into dst.
func (a Array[T, F, B]) Mul(b, dst Array[T, F, B]) {
	a.k.Mul(dst.buf, a.buf, b.buf, fracOf[T, F]())
}

// Softmax writes softmax(a) into dst.
func (a Array[T, F, B]) Softmax(dst Array[T, F, B]) {
	a.k.Softmax(dst.buf, a.buf, fracOf[T, F]())
}

// Spectrum writes the magnitude spectrum |X_k|/N of a into dst for bins
// 0..N/2 and zeroes the remaining elements. Lengths the FFT cannot plan
// leave dst zeroed. Unlike every other operation it allocates.
func (a Array[T, F, B]) Spectrum(dst Array[T, F, B]) {
	a.k.Spectrum(dst.buf, a.buf, fracOf[T, F]())
}
