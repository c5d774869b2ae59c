package accel

import (
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Alignment is the byte boundary every buffer of a fast kernel must start on.
const Alignment = 8

// Aligned reports whether the first element of x sits on an [Alignment]
// boundary. Empty slices are never aligned.
func Aligned[T storage.Int](x []T) bool {
	if len(x) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(x)))%Alignment == 0
}

// fastLen reports whether n is a valid fast-kernel length: positive and a
// multiple of four.
func fastLen(n int) bool {
	return n > 0 && n%4 == 0
}

func fast1[T storage.Int](x []T) bool {
	return fastLen(len(x)) && Aligned(x)
}

func fast3[T storage.Int](dst, a, b []T) bool {
	return fastLen(len(dst)) && len(a) >= len(dst) && len(b) >= len(dst) &&
		Aligned(dst) && Aligned(a) && Aligned(b)
}
