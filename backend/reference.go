package backend

import "github.com/cwbudde/algo-fixed/internal/reference"

// Reference computes everything with portable integer and float arithmetic.
// It is available for every width combination.
type Reference struct{}

var _ Backend = Reference{}

func (Reference) Name() string { return "reference" }

func (Reference) Mul(a, b int64, _, _, wo Width, shift int) int64 {
	return reference.Mul(a, b, wo, shift)
}

func (Reference) Div(a, b int64, _, _, wo Width, shift int) int64 {
	return reference.Div(a, b, wo, shift)
}

func (Reference) Add(a int64, fa int, b int64, fb int, _, _, wo Width, fo int) int64 {
	return reference.Add(a, fa, b, fb, wo, fo)
}

func (Reference) Sub(a int64, fa int, b int64, fb int, _, _, wo Width, fo int) int64 {
	return reference.Sub(a, fa, b, fb, wo, fo)
}

func (Reference) Log2(x int64, w Width, frac int) int64  { return reference.Log2(x, w, frac) }
func (Reference) Ln(x int64, w Width, frac int) int64    { return reference.Ln(x, w, frac) }
func (Reference) Log10(x int64, w Width, frac int) int64 { return reference.Log10(x, w, frac) }
func (Reference) Exp2(x int64, wo Width, fo int) int64   { return reference.Exp2(x, wo, fo) }
func (Reference) Exp(x int64, wo Width, fo int) int64    { return reference.Exp(x, wo, fo) }
func (Reference) Exp10(x int64, wo Width, fo int) int64  { return reference.Exp10(x, wo, fo) }

func (Reference) Pow(base int64, wb Width, fb int, exp int64, we Width, fe int) int64 {
	return reference.Pow(base, wb, fb, exp, we, fe)
}

func (Reference) Sqrt(x int64, w Width, frac int) int64    { return reference.Sqrt(x, w, frac) }
func (Reference) Rsqrt(x int64, w Width, frac int) int64   { return reference.Rsqrt(x, w, frac) }
func (Reference) Sin(x int64, w Width, frac int) int64     { return reference.Sin(x, w, frac) }
func (Reference) Cos(x int64, w Width, frac int) int64     { return reference.Cos(x, w, frac) }
func (Reference) Tan(x int64, w Width, frac int) int64     { return reference.Tan(x, w, frac) }
func (Reference) Atan(x int64, w Width, frac int) int64    { return reference.Atan(x, w, frac) }
func (Reference) Tanh(x int64, w Width, frac int) int64    { return reference.Tanh(x, w, frac) }
func (Reference) Sigmoid(x int64, w Width, frac int) int64 { return reference.Sigmoid(x, w, frac) }
func (Reference) Relu(x int64, w Width, frac int) int64    { return reference.Relu(x, w, frac) }

func (Reference) Q7() Arrays[int8]   { return reference.Arrays[int8]{} }
func (Reference) Q15() Arrays[int16] { return reference.Arrays[int16]{} }
func (Reference) Q31() Arrays[int32] { return reference.Arrays[int32]{} }
