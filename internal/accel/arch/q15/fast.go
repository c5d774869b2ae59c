package q15

import (
	"unsafe"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// The fast kernels require every buffer to start on an 8-byte boundary and
// a length that is a positive multiple of 4. The dispatcher checks both.

// words views x as packed 64-bit words of four lanes each.
func words(x []int16) []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(x))), len(x)/4)
}

func lanes(w uint64) (int64, int64, int64, int64) {
	return int64(int16(w)), int64(int16(w >> 16)), int64(int16(w >> 32)), int64(int16(w >> 48))
}

// SumFast sums four lanes per 64-bit load.
func SumFast(x []int16) int64 {
	var s0, s1, s2, s3 int64
	for _, w := range words(x) {
		a, b, c, d := lanes(w)
		s0 += a
		s1 += b
		s2 += c
		s3 += d
	}
	return s0 + s1 + s2 + s3
}

// DotFast multiplies matching lanes of 64-bit loads from both buffers.
func DotFast(a, b []int16, shift int) int64 {
	wb := words(b)
	var s0, s1, s2, s3 int64
	for i, w := range words(a)[:len(wb)] {
		a0, a1, a2, a3 := lanes(w)
		b0, b1, b2, b3 := lanes(wb[i])
		s0 += a0 * b0
		s1 += a1 * b1
		s2 += a2 * b2
		s3 += a3 * b3
	}
	return storage.RoundShift(s0+s1+s2+s3, shift)
}

// AddFast is AddArray unrolled by four.
func AddFast(dst, a, b []int16) {
	for i := 0; i < len(dst); i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		d[0] = storage.SatCast[int16](int64(x[0]) + int64(y[0]))
		d[1] = storage.SatCast[int16](int64(x[1]) + int64(y[1]))
		d[2] = storage.SatCast[int16](int64(x[2]) + int64(y[2]))
		d[3] = storage.SatCast[int16](int64(x[3]) + int64(y[3]))
	}
}

// SubFast is SubArray unrolled by four.
func SubFast(dst, a, b []int16) {
	for i := 0; i < len(dst); i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		d[0] = storage.SatCast[int16](int64(x[0]) - int64(y[0]))
		d[1] = storage.SatCast[int16](int64(x[1]) - int64(y[1]))
		d[2] = storage.SatCast[int16](int64(x[2]) - int64(y[2]))
		d[3] = storage.SatCast[int16](int64(x[3]) - int64(y[3]))
	}
}

// MulFast is MulArray unrolled by four.
func MulFast(dst, a, b []int16, shift int) {
	for i := 0; i < len(dst); i += 4 {
		d, x, y := dst[i:i+4:i+4], a[i:i+4:i+4], b[i:i+4:i+4]
		for j := range 4 {
			d[j] = storage.SatCast[int16](storage.RoundShift(int64(x[j])*int64(y[j]), shift))
		}
	}
}

// MinFast tracks the minimum of each lane and merges the lanes at the end.
func MinFast(x []int16) (int16, int) {
	var best [4]int16
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
	return merge(best, idx, func(a, b int16) bool { return a < b })
}

// MaxFast tracks the maximum of each lane and merges the lanes at the end.
func MaxFast(x []int16) (int16, int) {
	var best [4]int16
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
	return merge(best, idx, func(a, b int16) bool { return a > b })
}

// merge picks the winning lane, breaking ties by the lower index so the
// result matches a sequential scan.
func merge(best [4]int16, idx [4]int, better func(a, b int16) bool) (int16, int) {
	m, at := best[0], idx[0]
	for j := 1; j < 4; j++ {
		if better(best[j], m) || (best[j] == m && idx[j] < at) {
			m, at = best[j], idx[j]
		}
	}
	return m, at
}
