package backend

import (
	"github.com/cwbudde/algo-fixed/internal/accel"
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
)

// Accelerated runs every op on the most specialized kernel the CPU supports
// for the operand widths, falling back rung by rung to the reference
// kernels. Results match [Reference] exactly for integer ops and within one
// unit in the last place for transcendental ones.
//
// Setting FIXED_NO_ACCEL=1 in the environment pins it to the reference
// kernels.
type Accelerated struct{}

var _ Backend = Accelerated{}

func (Accelerated) Name() string { return "accelerated" }

func (Accelerated) Mul(a, b int64, wa, wb, wo Width, shift int) int64 {
	return accel.Mul(a, b, wa, wb, wo, shift)
}

func (Accelerated) Div(a, b int64, wa, wb, wo Width, shift int) int64 {
	return accel.Div(a, b, wa, wb, wo, shift)
}

func (Accelerated) Add(a int64, fa int, b int64, fb int, wa, wb, wo Width, fo int) int64 {
	return accel.Add(a, fa, b, fb, wa, wb, wo, fo)
}

func (Accelerated) Sub(a int64, fa int, b int64, fb int, wa, wb, wo Width, fo int) int64 {
	return accel.Sub(a, fa, b, fb, wa, wb, wo, fo)
}

func (Accelerated) Log2(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpLog2, x, w, frac)
}

func (Accelerated) Ln(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpLn, x, w, frac)
}

func (Accelerated) Log10(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpLog10, x, w, frac)
}

func (Accelerated) Exp2(x int64, wo Width, fo int) int64 {
	return accel.Unary(registry.OpExp2, x, wo, fo)
}

func (Accelerated) Exp(x int64, wo Width, fo int) int64 {
	return accel.Unary(registry.OpExp, x, wo, fo)
}

func (Accelerated) Exp10(x int64, wo Width, fo int) int64 {
	return accel.Unary(registry.OpExp10, x, wo, fo)
}

func (Accelerated) Pow(base int64, wb Width, fb int, exp int64, we Width, fe int) int64 {
	return accel.Pow(base, wb, fb, exp, we, fe)
}

func (Accelerated) Sqrt(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpSqrt, x, w, frac)
}

func (Accelerated) Rsqrt(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpRsqrt, x, w, frac)
}

func (Accelerated) Sin(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpSin, x, w, frac)
}

func (Accelerated) Cos(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpCos, x, w, frac)
}

func (Accelerated) Tan(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpTan, x, w, frac)
}

func (Accelerated) Atan(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpAtan, x, w, frac)
}

func (Accelerated) Tanh(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpTanh, x, w, frac)
}

func (Accelerated) Sigmoid(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpSigmoid, x, w, frac)
}

func (Accelerated) Relu(x int64, w Width, frac int) int64 {
	return accel.Unary(registry.OpRelu, x, w, frac)
}

func (Accelerated) Q7() Arrays[int8]   { return accel.Q7() }
func (Accelerated) Q15() Arrays[int16] { return accel.Q15() }
func (Accelerated) Q31() Arrays[int32] { return accel.Q31() }
