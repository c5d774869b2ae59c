package fixed

import (
	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

func (v Value[T, F, B]) unary(fn func(B, int64, storage.Width, int) int64) Value[T, F, B] {
	var be B
	w, f := meta[T, F]()
	return wrap[T, F, B](fn(be, int64(v.raw), w, f))
}

// Sqrt returns the square root; negative values return the sentinel.
func (v Value[T, F, B]) Sqrt() Value[T, F, B] { return v.unary(B.Sqrt) }

// Rsqrt returns 1/sqrt(v). Zero saturates to the maximum; negative values
// return the sentinel.
func (v Value[T, F, B]) Rsqrt() Value[T, F, B] { return v.unary(B.Rsqrt) }

// Sin returns the sine of v radians.
func (v Value[T, F, B]) Sin() Value[T, F, B] { return v.unary(B.Sin) }

// Cos returns the cosine of v radians.
func (v Value[T, F, B]) Cos() Value[T, F, B] { return v.unary(B.Cos) }

// Tan returns the tangent of v radians.
func (v Value[T, F, B]) Tan() Value[T, F, B] { return v.unary(B.Tan) }

// Atan returns the arctangent in radians.
func (v Value[T, F, B]) Atan() Value[T, F, B] { return v.unary(B.Atan) }

// Tanh returns the hyperbolic tangent.
func (v Value[T, F, B]) Tanh() Value[T, F, B] { return v.unary(B.Tanh) }

// Sigmoid returns 1/(1+e^-v).
func (v Value[T, F, B]) Sigmoid() Value[T, F, B] { return v.unary(B.Sigmoid) }

// Relu returns max(v, 0).
func (v Value[T, F, B]) Relu() Value[T, F, B] { return v.unary(B.Relu) }

func (v Value[T, F, B]) log(fn func(B, int64, storage.Width, int) int64) Value[int32, LogFormat, B] {
	var be B
	w, f := meta[T, F]()
	return wrap[int32, LogFormat, B](fn(be, int64(v.raw), w, f))
}

// Log2 returns log2(v) in the wide log format. Values <= 0 return the
// sentinel.
func (v Value[T, F, B]) Log2() Value[int32, LogFormat, B] { return v.log(B.Log2) }

// Ln returns the natural logarithm in the wide log format.
func (v Value[T, F, B]) Ln() Value[int32, LogFormat, B] { return v.log(B.Ln) }

// Log10 returns log10(v) in the wide log format.
func (v Value[T, F, B]) Log10() Value[int32, LogFormat, B] { return v.log(B.Log10) }

func antilog[T storage.Int, F Format[T], B backend.Backend](x Value[int32, LogFormat, B], fn func(B, int64, storage.Width, int) int64) Value[T, F, B] {
	var be B
	w, f := meta[T, F]()
	return wrap[T, F, B](fn(be, int64(x.raw), w, f))
}

// Exp2 returns 2^x in format F.
func Exp2[T storage.Int, F Format[T], B backend.Backend](x Value[int32, LogFormat, B]) Value[T, F, B] {
	return antilog[T, F](x, B.Exp2)
}

// Exp returns e^x in format F.
func Exp[T storage.Int, F Format[T], B backend.Backend](x Value[int32, LogFormat, B]) Value[T, F, B] {
	return antilog[T, F](x, B.Exp)
}

// Exp10 returns 10^x in format F.
func Exp10[T storage.Int, F Format[T], B backend.Backend](x Value[int32, LogFormat, B]) Value[T, F, B] {
	return antilog[T, F](x, B.Exp10)
}

// Pow returns base^exp in base's format. A negative base with a
// non-integer exponent returns the sentinel.
func Pow[T storage.Int, F Format[T], TE storage.Int, FE Format[TE], B backend.Backend](base Value[T, F, B], exp Value[TE, FE, B]) Value[T, F, B] {
	var be B
	wb, fb := meta[T, F]()
	we, fe := meta[TE, FE]()
	return wrap[T, F, B](be.Pow(int64(base.raw), wb, fb, int64(exp.raw), we, fe))
}

// Pow returns v^e.
func (v Value[T, F, B]) Pow(e Value[T, F, B]) Value[T, F, B] { return Pow(v, e) }
