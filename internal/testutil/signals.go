package testutil

import (
	"math"
	"math/rand"
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Sine generates a deterministic quantized sine with frac fractional bits.
// cycles is the number of periods across the whole buffer.
func Sine[T storage.Int](cycles, amplitude float64, frac, length int) []T {
	out := make([]T, length)
	w := storage.WidthOf[T]()
	step := 2 * math.Pi * cycles / float64(length)
	for i := range out {
		out[i] = T(storage.Quantize(amplitude*math.Sin(step*float64(i)), frac, w))
	}
	return out
}

// Noise generates quantized white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func Noise[T storage.Int](seed int64, amplitude float64, frac, length int) []T {
	out := make([]T, length)
	w := storage.WidthOf[T]()
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(storage.Quantize((rng.Float64()*2-1)*amplitude, frac, w))
	}
	return out
}

// RawNoise fills a buffer with uniformly distributed raw values covering the
// full range of T, extremes included.
func RawNoise[T storage.Int](seed int64, length int) []T {
	out := make([]T, length)
	w := storage.WidthOf[T]()
	rng := rand.New(rand.NewSource(seed))
	span := w.Max() - w.Min() + 1
	for i := range out {
		out[i] = T(w.Min() + rng.Int63n(span))
	}
	if length > 1 {
		out[0] = storage.Min[T]()
		out[length-1] = storage.Max[T]()
	}
	return out
}

// Quantized converts float values to raw values with frac fractional bits.
func Quantized[T storage.Int](frac int, values ...float64) []T {
	out := make([]T, len(values))
	w := storage.WidthOf[T]()
	for i, v := range values {
		out[i] = T(storage.Quantize(v, frac, w))
	}
	return out
}

// Aligned returns a zeroed buffer of length n whose first element sits on
// an 8-byte boundary.
func Aligned[T storage.Int](n int) []T {
	buf := make([]T, n+8)
	for off := range 8 {
		if uintptr(unsafe.Pointer(&buf[off]))%8 == 0 {
			return buf[off : off+n : off+n]
		}
	}
	panic("testutil: no aligned offset")
}

// Misaligned returns a zeroed buffer of length n whose first element is not
// on an 8-byte boundary.
func Misaligned[T storage.Int](n int) []T {
	buf := make([]T, n+9)
	for off := range 8 {
		if uintptr(unsafe.Pointer(&buf[off]))%8 == 0 {
			return buf[off+1 : off+1+n : off+1+n]
		}
	}
	panic("testutil: no aligned offset")
}

