package registry

import "github.com/cwbudde/algo-fixed/internal/storage"

// BinaryFn multiplies or divides two raw operands and realigns the result by
// shift (positive: rounded right shift, negative: exact left shift) before
// saturating into wo.
type BinaryFn func(a, b int64, wo storage.Width, shift int) int64

// AlignFn adds or subtracts two raw operands after realigning each one
// independently from its own fractional count to fo.
type AlignFn func(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64

// UnaryFn evaluates a single-operand function. w and frac describe the
// operand for the log family and the result for the antilog family; for the
// remaining ops they describe both.
type UnaryFn func(x int64, w storage.Width, frac int) int64

// PowFn raises base to exp; the result uses the base's format.
type PowFn func(base int64, wb storage.Width, fb int, exp int64, we storage.Width, fe int) int64

// UnaryOp indexes [ScalarOps.Unary].
type UnaryOp int

// Unary operations in table order.
const (
	OpLog2 UnaryOp = iota
	OpLn
	OpLog10
	OpExp2
	OpExp
	OpExp10
	OpSqrt
	OpRsqrt
	OpSin
	OpCos
	OpTan
	OpAtan
	OpTanh
	OpSigmoid
	OpRelu
	NumUnaryOps
)

var unaryNames = [NumUnaryOps]string{
	"log2", "ln", "log10", "exp2", "exp", "exp10", "sqrt", "rsqrt",
	"sin", "cos", "tan", "atan", "tanh", "sigmoid", "relu",
}

func (op UnaryOp) String() string {
	if op < 0 || op >= NumUnaryOps {
		return "unknown"
	}
	return unaryNames[op]
}

// ScalarOps is the scalar half of a rung. Nil fields are ops the rung does
// not specialize.
type ScalarOps struct {
	Mul, Div BinaryFn
	Add, Sub AlignFn
	Pow      PowFn
	Unary    [NumUnaryOps]UnaryFn
}

// Fill copies every op of src into o that o does not provide yet and
// returns the names of the copied ops.
func (o *ScalarOps) Fill(src *ScalarOps) []string {
	var filled []string
	if o.Mul == nil && src.Mul != nil {
		o.Mul = src.Mul
		filled = append(filled, "mul")
	}
	if o.Div == nil && src.Div != nil {
		o.Div = src.Div
		filled = append(filled, "div")
	}
	if o.Add == nil && src.Add != nil {
		o.Add = src.Add
		filled = append(filled, "add")
	}
	if o.Sub == nil && src.Sub != nil {
		o.Sub = src.Sub
		filled = append(filled, "sub")
	}
	if o.Pow == nil && src.Pow != nil {
		o.Pow = src.Pow
		filled = append(filled, "pow")
	}
	for i := range o.Unary {
		if o.Unary[i] == nil && src.Unary[i] != nil {
			o.Unary[i] = src.Unary[i]
			filled = append(filled, UnaryOp(i).String())
		}
	}
	return filled
}

// Missing lists the ops that are still nil.
func (o *ScalarOps) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"mul", o.Mul != nil},
		{"div", o.Div != nil},
		{"add", o.Add != nil},
		{"sub", o.Sub != nil},
		{"pow", o.Pow != nil},
	} {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	for i, fn := range o.Unary {
		if fn == nil {
			missing = append(missing, UnaryOp(i).String())
		}
	}
	return missing
}

// ArrayOps is the array half of a rung for one storage type.
type ArrayOps[T storage.Int] struct {
	Shift    func(x []T, n int)
	Scale    func(x []T, factor T, shift int)
	Min      func(x []T) (T, int)
	Max      func(x []T) (T, int)
	Dot      func(a, b []T, shift int) int64
	Sum      func(x []T) int64
	Add      func(dst, a, b []T)
	Sub      func(dst, a, b []T)
	Mul      func(dst, a, b []T, shift int)
	Mean     func(x []T) T
	RMS      func(x []T) T
	Variance func(x []T, frac int) T
	Stddev   func(x []T) T
	Softmax  func(dst, src []T, frac int)
	Spectrum func(dst, src []T, frac int)
}

// Fill copies every op of src into o that o does not provide yet and
// returns the names of the copied ops.
func (o *ArrayOps[T]) Fill(src *ArrayOps[T]) []string {
	var filled []string
	if o.Shift == nil && src.Shift != nil {
		o.Shift = src.Shift
		filled = append(filled, "shift")
	}
	if o.Scale == nil && src.Scale != nil {
		o.Scale = src.Scale
		filled = append(filled, "scale")
	}
	if o.Min == nil && src.Min != nil {
		o.Min = src.Min
		filled = append(filled, "min")
	}
	if o.Max == nil && src.Max != nil {
		o.Max = src.Max
		filled = append(filled, "max")
	}
	if o.Dot == nil && src.Dot != nil {
		o.Dot = src.Dot
		filled = append(filled, "dot")
	}
	if o.Sum == nil && src.Sum != nil {
		o.Sum = src.Sum
		filled = append(filled, "sum")
	}
	if o.Add == nil && src.Add != nil {
		o.Add = src.Add
		filled = append(filled, "add")
	}
	if o.Sub == nil && src.Sub != nil {
		o.Sub = src.Sub
		filled = append(filled, "sub")
	}
	if o.Mul == nil && src.Mul != nil {
		o.Mul = src.Mul
		filled = append(filled, "mul")
	}
	if o.Mean == nil && src.Mean != nil {
		o.Mean = src.Mean
		filled = append(filled, "mean")
	}
	if o.RMS == nil && src.RMS != nil {
		o.RMS = src.RMS
		filled = append(filled, "rms")
	}
	if o.Variance == nil && src.Variance != nil {
		o.Variance = src.Variance
		filled = append(filled, "variance")
	}
	if o.Stddev == nil && src.Stddev != nil {
		o.Stddev = src.Stddev
		filled = append(filled, "stddev")
	}
	if o.Softmax == nil && src.Softmax != nil {
		o.Softmax = src.Softmax
		filled = append(filled, "softmax")
	}
	if o.Spectrum == nil && src.Spectrum != nil {
		o.Spectrum = src.Spectrum
		filled = append(filled, "spectrum")
	}
	return filled
}

// Missing lists the ops that are still nil.
func (o *ArrayOps[T]) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"shift", o.Shift != nil},
		{"scale", o.Scale != nil},
		{"min", o.Min != nil},
		{"max", o.Max != nil},
		{"dot", o.Dot != nil},
		{"sum", o.Sum != nil},
		{"add", o.Add != nil},
		{"sub", o.Sub != nil},
		{"mul", o.Mul != nil},
		{"mean", o.Mean != nil},
		{"rms", o.RMS != nil},
		{"variance", o.Variance != nil},
		{"stddev", o.Stddev != nil},
		{"softmax", o.Softmax != nil},
		{"spectrum", o.Spectrum != nil},
	} {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Kernels pairs the always-valid regular ops with the optional fast ops
// that need 8-byte aligned buffers and a length that is a positive multiple
// of 4.
type Kernels[T storage.Int] struct {
	Regular ArrayOps[T]
	Fast    ArrayOps[T]
}
