package accel

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

func (t *table) ops(wa, wb storage.Width) *registry.ScalarOps {
	return &t.scalar[wa.Index()][wb.Index()]
}

// Mul multiplies raw operands of widths wa and wb.
func Mul(a, b int64, wa, wb, wo storage.Width, shift int) int64 {
	return load().ops(wa, wb).Mul(a, b, wo, shift)
}

// Div divides raw operands of widths wa and wb.
func Div(a, b int64, wa, wb, wo storage.Width, shift int) int64 {
	return load().ops(wa, wb).Div(a, b, wo, shift)
}

// Add sums raw operands, each realigned on its own to fo.
func Add(a int64, fa int, b int64, fb int, wa, wb, wo storage.Width, fo int) int64 {
	return load().ops(wa, wb).Add(a, fa, b, fb, wo, fo)
}

// Sub subtracts raw operands, each realigned on its own to fo.
func Sub(a int64, fa int, b int64, fb int, wa, wb, wo storage.Width, fo int) int64 {
	return load().ops(wa, wb).Sub(a, fa, b, fb, wo, fo)
}

// Pow raises base to exp; the result has the base's format.
func Pow(base int64, wb storage.Width, fb int, exp int64, we storage.Width, fe int) int64 {
	return load().ops(wb, we).Pow(base, wb, fb, exp, we, fe)
}

// Unary evaluates op. For the antilog family the operand is in the wide log
// format and w, frac describe the result; otherwise they describe the
// operand.
func Unary(op registry.UnaryOp, x int64, w storage.Width, frac int) int64 {
	operand := w
	switch op {
	case registry.OpExp2, registry.OpExp, registry.OpExp10:
		operand = storage.W32
	}
	return load().ops(operand, operand).Unary[op](x, w, frac)
}
