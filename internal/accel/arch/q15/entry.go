package q15

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Entry returns the q15 rung for the given instruction set level.
//
// Only the ops this package specializes are set; the dispatcher fills the
// rest from lower rungs.
func Entry(level cpu.SIMDLevel) registry.OpEntry {
	scalar := registry.ScalarOps{
		Mul: Mul,
		Div: Div,
		Add: Add,
		Sub: Sub,
	}
	scalar.Unary[registry.OpSqrt] = Sqrt
	scalar.Unary[registry.OpSin] = Sin
	scalar.Unary[registry.OpCos] = Cos
	scalar.Unary[registry.OpRelu] = Relu

	return registry.OpEntry{
		Name:      "q15",
		SIMDLevel: level,
		Priority:  1,
		Width:     storage.W16,

		Scalar: scalar,

		Q15: registry.Kernels[int16]{
			Regular: registry.ArrayOps[int16]{
				Shift:    Shift,
				Scale:    Scale,
				Min:      Min,
				Max:      Max,
				Dot:      Dot,
				Sum:      Sum,
				Add:      AddArray,
				Sub:      SubArray,
				Mul:      MulArray,
				Mean:     Mean,
				RMS:      RMS,
				Variance: Variance,
				Stddev:   Stddev,
				Spectrum: Spectrum,
			},
			Fast: registry.ArrayOps[int16]{
				Min: MinFast,
				Max: MaxFast,
				Dot: DotFast,
				Sum: SumFast,
				Add: AddFast,
				Sub: SubFast,
				Mul: MulFast,
			},
		},
	}
}
