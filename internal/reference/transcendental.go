package reference

import (
	"math"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// LogWidth and LogFrac describe the wide format of logarithm results and
// antilogarithm inputs: Q6.26 in 32 bits.
const (
	LogWidth = storage.W32
	LogFrac  = 26
)

// Sentinel is the domain-error result for bucket w.
func Sentinel(w storage.Width) int64 {
	return w.Min()
}

// unary evaluates fn on the operand and converts back into the same format.
// NaN results become the sentinel.
func unary(x int64, w storage.Width, frac int, fn func(float64) float64) int64 {
	v := fn(storage.Dequantize(x, frac))
	if math.IsNaN(v) {
		return Sentinel(w)
	}
	return storage.Quantize(v, frac, w)
}

func logOf(x int64, frac int, fn func(float64) float64) int64 {
	if x <= 0 {
		return Sentinel(LogWidth)
	}
	return storage.Quantize(fn(storage.Dequantize(x, frac)), LogFrac, LogWidth)
}

func antilogOf(x int64, wo storage.Width, fo int, fn func(float64) float64) int64 {
	return storage.Quantize(fn(storage.Dequantize(x, LogFrac)), fo, wo)
}

// Log2 returns log2 of the operand in the wide log format.
func Log2(x int64, _ storage.Width, frac int) int64 { return logOf(x, frac, math.Log2) }

// Ln returns the natural logarithm in the wide log format.
func Ln(x int64, _ storage.Width, frac int) int64 { return logOf(x, frac, math.Log) }

// Log10 returns log10 in the wide log format.
func Log10(x int64, _ storage.Width, frac int) int64 { return logOf(x, frac, math.Log10) }

// Exp2 maps a wide-log-format operand to 2^x in the output format.
func Exp2(x int64, wo storage.Width, fo int) int64 { return antilogOf(x, wo, fo, math.Exp2) }

// Exp maps a wide-log-format operand to e^x in the output format.
func Exp(x int64, wo storage.Width, fo int) int64 { return antilogOf(x, wo, fo, math.Exp) }

// Exp10 maps a wide-log-format operand to 10^x in the output format.
func Exp10(x int64, wo storage.Width, fo int) int64 {
	return antilogOf(x, wo, fo, func(v float64) float64 { return math.Pow(10, v) })
}

// Pow raises base to exp. The result keeps the base's format.
func Pow(base int64, wb storage.Width, fb int, exp int64, _ storage.Width, fe int) int64 {
	v := math.Pow(storage.Dequantize(base, fb), storage.Dequantize(exp, fe))
	if math.IsNaN(v) {
		return Sentinel(wb)
	}
	return storage.Quantize(v, fb, wb)
}

// Sqrt returns the square root, or the sentinel for negative operands.
func Sqrt(x int64, w storage.Width, frac int) int64 {
	if x < 0 {
		return Sentinel(w)
	}
	return unary(x, w, frac, math.Sqrt)
}

// Rsqrt returns 1/sqrt(x). Zero saturates to the maximum; negative operands
// give the sentinel.
func Rsqrt(x int64, w storage.Width, frac int) int64 {
	if x < 0 {
		return Sentinel(w)
	}
	return unary(x, w, frac, func(v float64) float64 { return 1 / math.Sqrt(v) })
}

// Sin returns the sine of the operand in radians.
func Sin(x int64, w storage.Width, frac int) int64 { return unary(x, w, frac, math.Sin) }

// Cos returns the cosine of the operand in radians.
func Cos(x int64, w storage.Width, frac int) int64 { return unary(x, w, frac, math.Cos) }

// Tan returns the tangent; values near the poles saturate.
func Tan(x int64, w storage.Width, frac int) int64 { return unary(x, w, frac, math.Tan) }

// Atan returns the arctangent in radians.
func Atan(x int64, w storage.Width, frac int) int64 { return unary(x, w, frac, math.Atan) }

// Tanh returns the hyperbolic tangent.
func Tanh(x int64, w storage.Width, frac int) int64 { return unary(x, w, frac, math.Tanh) }

// Sigmoid returns 1/(1+e^-x).
func Sigmoid(x int64, w storage.Width, frac int) int64 {
	return unary(x, w, frac, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
}

// Relu clamps negative operands to zero. It needs no conversion.
func Relu(x int64, _ storage.Width, _ int) int64 {
	return max(x, 0)
}
