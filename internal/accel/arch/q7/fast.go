package q7

import (
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// The fast kernels require every buffer to start on an 8-byte boundary and
// a length that is a positive multiple of 4. Eight lanes share one 64-bit
// load; a trailing half word is handled lane by lane.

func words(x []int8) []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(x))), len(x)/8)
}

func lanes(w uint64) [8]int64 {
	var l [8]int64
	for j := range l {
		l[j] = int64(int8(w >> (8 * j)))
	}
	return l
}

// SumFast sums eight lanes per 64-bit load.
func SumFast(x []int8) int64 {
	var acc int64
	for _, w := range words(x) {
		for _, v := range lanes(w) {
			acc += v
		}
	}
	for _, v := range x[len(x)&^7:] {
		acc += int64(v)
	}
	return acc
}

// DotFast multiplies matching lanes of 64-bit loads from both buffers.
func DotFast(a, b []int8, shift int) int64 {
	wa, wb := words(a), words(b)
	wb = wb[:len(wa)]
	var acc int64
	for i, w := range wa {
		la, lb := lanes(w), lanes(wb[i])
		for j := range la {
			acc += la[j] * lb[j]
		}
	}
	tail := len(wa) * 8
	for i := tail; i < len(a); i++ {
		acc += int64(a[i]) * int64(b[i])
	}
	return storage.RoundShift(acc, shift)
}

// AddFast is AddArray unrolled by four.
func AddFast(dst, a, b []int8) {
	for i := 0; i < len(dst); i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		for j := range 4 {
			d[j] = storage.SatCast[int8](int64(x[j]) + int64(y[j]))
		}
	}
}

// SubFast is SubArray unrolled by four.
func SubFast(dst, a, b []int8) {
	for i := 0; i < len(dst); i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		for j := range 4 {
			d[j] = storage.SatCast[int8](int64(x[j]) - int64(y[j]))
		}
	}
}

// MulFast is MulArray unrolled by four.
func MulFast(dst, a, b []int8, shift int) {
	for i := 0; i < len(dst); i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		for j := range 4 {
			d[j] = storage.SatCast[int8](storage.RoundShift(int64(x[j])*int64(y[j]), shift))
		}
	}
}

// MinFast tracks four lanes and merges them at the end.
func MinFast(x []int8) (int8, int) {
	var best [4]int8
	copy(best[:], x[:4])
	idx := [4]int{0, 1, 2, 3}
	for i := 4; i < len(x); i += 4 {
		v := x[i : i+4 : i+4]
		for j := range 4 {
			if v[j] < best[j] {
				best[j], idx[j] = v[j], i+j
			}
		}
	}
	return merge(best, idx, func(a, b int8) bool { return a < b })
}

// MaxFast tracks four lanes and merges them at the end.
func MaxFast(x []int8) (int8, int) {
	var best [4]int8
	copy(best[:], x[:4])
	idx := [4]int{0, 1, 2, 3}
	for i := 4; i < len(x); i += 4 {
		v := x[i : i+4 : i+4]
		for j := range 4 {
			if v[j] > best[j] {
				best[j], idx[j] = v[j], i+j
			}
		}
	}
	return merge(best, idx, func(a, b int8) bool { return a > b })
}

func merge(best [4]int8, idx [4]int, better func(a, b int8) bool) (int8, int) {
	m, at := best[0], idx[0]
	for j := 1; j < 4; j++ {
		if better(best[j], m) || (best[j] == m && idx[j] < at) {
			m, at = best[j], idx[j]
		}
	}
	return m, at
}
