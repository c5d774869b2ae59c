package q7

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Entry returns the q7 rung for the given instruction set level.
func Entry(level cpu.SIMDLevel) registry.OpEntry {
	return registry.OpEntry{
		Name:      "q7",
		SIMDLevel: level,
		Priority:  2,
		Width:     storage.W8,

		Scalar: registry.ScalarOps{
			Mul: Mul,
			Add: Add,
			Sub: Sub,
		},

		Q7: registry.Kernels[int8]{
			Regular: registry.ArrayOps[int8]{
				Shift: Shift,
				Scale: Scale,
				Min:   Min,
				Max:   Max,
				Dot:   Dot,
				Sum:   Sum,
				Add:   AddArray,
				Sub:   SubArray,
				Mul:   MulArray,
			},
			Fast: registry.ArrayOps[int8]{
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
