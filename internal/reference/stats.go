package reference

import (
	"math"
	"math/bits"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// MeanArray returns the rounded arithmetic mean; an empty slice yields 0.
func MeanArray[T storage.Int](x []T) T {
	if len(x) == 0 {
		return 0
	}
	return storage.SatCast[T](storage.RoundDiv(SumArray(x), int64(len(x))))
}

// RMSArray returns the root mean square in the input format. The sum of
// squares is carried in 128 bits so no length can overflow it.
func RMSArray[T storage.Int](x []T) T {
	if len(x) == 0 {
		return 0
	}
	var hi, lo uint64
	for _, v := range x {
		sq := uint64(int64(v) * int64(v))
		var c uint64
		lo, c = bits.Add64(lo, sq, 0)
		hi += c
	}
	q, r := bits.Div64(hi, lo, uint64(len(x)))
	if r >= uint64(len(x))-r {
		q++
	}
	return storage.SatCast[T](int64(RoundSqrt(q)))
}

// VarianceArray returns the sample variance (n-1 divisor) in the input
// format. frac is the format's fractional bit count, needed because the
// result carries squared units. Fewer than two samples yield 0.
func VarianceArray[T storage.Int](x []T, frac int) T {
	if len(x) < 2 {
		return 0
	}
	return storage.SatCast[T](storage.Quantize(sampleVariance(x), -frac, storage.WidthOf[T]()))
}

// StddevArray returns the sample standard deviation in the input format.
func StddevArray[T storage.Int](x []T) T {
	if len(x) < 2 {
		return 0
	}
	return storage.SatCast[T](storage.Quantize(math.Sqrt(sampleVariance(x)), 0, storage.WidthOf[T]()))
}

// sampleVariance works in raw units using a two-pass mean.
func sampleVariance[T storage.Int](x []T) float64 {
	n := float64(len(x))
	m := float64(SumArray(x)) / n
	var s float64
	for _, v := range x {
		d := float64(v) - m
		s += d * d
	}
	return s / (n - 1)
}

// RoundSqrt returns sqrt(v) rounded to the nearest integer.
func RoundSqrt(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	r := min(uint64(math.Sqrt(float64(v))), math.MaxUint32)
	for r*r > v {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= v {
		r++
	}
	if v-r*r > r {
		r++
	}
	return r
}
