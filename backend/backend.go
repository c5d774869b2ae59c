// Package backend defines the contract every fixed-point backend satisfies
// and the two backend tags.
//
// A backend is selected by type: fixed-point values carry it as a type
// parameter, and its zero value is all the state it has. Every operation
// takes raw integers plus the widths and fractional bit counts that
// describe them, so a backend never needs to know about format types.
//
// Shift arguments use one convention throughout: a positive shift is a
// right shift rounding half away from zero, a negative shift is an exact
// widening left shift. Multiplication uses fa+fb-fo, division fa-fb-fo.
//
// No operation fails. Overflow saturates to the output range and domain
// errors (logarithm of x <= 0, square root of x < 0) return the most
// negative value of the output bucket.
package backend

import "github.com/cwbudde/algo-fixed/internal/storage"

// Width is the size of a storage bucket in bits.
type Width = storage.Width

// Storage bucket widths.
const (
	W8  = storage.W8
	W16 = storage.W16
	W32 = storage.W32
)

// The wide format of logarithm results and antilogarithm operands: Q6.26
// held in 32 bits.
const (
	LogIntBits  = 6
	LogFracBits = 26
	LogWidth    = W32
)

// Scalar is the single-value half of the contract.
type Scalar interface {
	Mul(a, b int64, wa, wb, wo Width, shift int) int64
	Div(a, b int64, wa, wb, wo Width, shift int) int64
	Add(a int64, fa int, b int64, fb int, wa, wb, wo Width, fo int) int64
	Sub(a int64, fa int, b int64, fb int, wa, wb, wo Width, fo int) int64

	// The log family maps an operand of width w with frac fractional bits
	// to the wide log format.
	Log2(x int64, w Width, frac int) int64
	Ln(x int64, w Width, frac int) int64
	Log10(x int64, w Width, frac int) int64

	// The antilog family maps a wide-log-format operand to the format
	// described by wo and fo.
	Exp2(x int64, wo Width, fo int) int64
	Exp(x int64, wo Width, fo int) int64
	Exp10(x int64, wo Width, fo int) int64

	// Pow returns base^exp in the base's format.
	Pow(base int64, wb Width, fb int, exp int64, we Width, fe int) int64

	Sqrt(x int64, w Width, frac int) int64
	Rsqrt(x int64, w Width, frac int) int64
	Sin(x int64, w Width, frac int) int64
	Cos(x int64, w Width, frac int) int64
	Tan(x int64, w Width, frac int) int64
	Atan(x int64, w Width, frac int) int64
	Tanh(x int64, w Width, frac int) int64
	Sigmoid(x int64, w Width, frac int) int64
	Relu(x int64, w Width, frac int) int64
}

// Arrays is the array half of the contract for one storage type. Element
// counts of buffers passed together must match; this is not checked.
type Arrays[T storage.Int] interface {
	// Shift shifts every element left by n bits, or right by -n bits
	// with rounding, saturating in place.
	Shift(x []T, n int)
	// Scale multiplies every element by factor and realigns the product
	// by shift, in place.
	Scale(x []T, factor T, shift int)

	// Min and Max return the extremum and the index of its first
	// occurrence; an empty slice yields (0, -1).
	Min(x []T) (T, int)
	Max(x []T) (T, int)

	// Dot returns the sum of products over the common length, realigned
	// by shift and not narrowed.
	Dot(a, b []T, shift int) int64
	// Sum returns the exact, unnarrowed sum.
	Sum(x []T) int64

	Add(dst, a, b []T)
	Sub(dst, a, b []T)
	Mul(dst, a, b []T, shift int)

	Mean(x []T) T
	RMS(x []T) T
	// Variance is the sample variance; frac is the format's fractional
	// bit count.
	Variance(x []T, frac int) T
	Stddev(x []T) T

	Softmax(dst, src []T, frac int)
	// Spectrum writes |X_k|/N for k in 0..N/2 and zeroes the rest of dst.
	Spectrum(dst, src []T, frac int)
}

// Backend is the full contract.
type Backend interface {
	Scalar

	// Name identifies the backend in diagnostics.
	Name() string

	Q7() Arrays[int8]
	Q15() Arrays[int16]
	Q31() Arrays[int32]
}
