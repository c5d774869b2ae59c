package generic

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/reference"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// init registers the reference kernels as the bottom rung of the ladder.
//
// The generic rung accepts every width and fills every op, so resolution
// always ends with a complete table. It forwards verbatim: same arguments,
// same results as the Reference backend.
//
// Priority: 0 (lowest - used only when no specialization exists)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the generic rung.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Scalar: Scalar(),

		Q7:  registry.Kernels[int8]{Regular: Arrays[int8]()},
		Q15: registry.Kernels[int16]{Regular: Arrays[int16]()},
		Q31: registry.Kernels[int32]{Regular: Arrays[int32]()},
	}
}

// Scalar returns the full reference scalar op set.
func Scalar() registry.ScalarOps {
	ops := registry.ScalarOps{
		Mul: reference.Mul,
		Div: reference.Div,
		Add: reference.Add,
		Sub: reference.Sub,
		Pow: reference.Pow,
	}
	ops.Unary[registry.OpLog2] = reference.Log2
	ops.Unary[registry.OpLn] = reference.Ln
	ops.Unary[registry.OpLog10] = reference.Log10
	ops.Unary[registry.OpExp2] = reference.Exp2
	ops.Unary[registry.OpExp] = reference.Exp
	ops.Unary[registry.OpExp10] = reference.Exp10
	ops.Unary[registry.OpSqrt] = reference.Sqrt
	ops.Unary[registry.OpRsqrt] = reference.Rsqrt
	ops.Unary[registry.OpSin] = reference.Sin
	ops.Unary[registry.OpCos] = reference.Cos
	ops.Unary[registry.OpTan] = reference.Tan
	ops.Unary[registry.OpAtan] = reference.Atan
	ops.Unary[registry.OpTanh] = reference.Tanh
	ops.Unary[registry.OpSigmoid] = reference.Sigmoid
	ops.Unary[registry.OpRelu] = reference.Relu
	return ops
}

// Arrays returns the reference array kernels for T.
func Arrays[T storage.Int]() registry.ArrayOps[T] {
	return registry.ArrayOps[T]{
		Shift:    reference.ShiftArray[T],
		Scale:    reference.ScaleArray[T],
		Min:      reference.MinArray[T],
		Max:      reference.MaxArray[T],
		Dot:      reference.DotArray[T],
		Sum:      reference.SumArray[T],
		Add:      reference.AddArray[T],
		Sub:      reference.SubArray[T],
		Mul:      reference.MulArray[T],
		Mean:     reference.MeanArray[T],
		RMS:      reference.RMSArray[T],
		Variance: reference.VarianceArray[T],
		Stddev:   reference.StddevArray[T],
		Softmax:  reference.SoftmaxArray[T],
		Spectrum: reference.SpectrumArray[T],
	}
}
