package fixed

import (
	"cmp"

	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// aligned returns both raw values realigned to the larger fractional bit
// count.
func aligned[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) (int64, int64) {
	fa, fb := fracOf[T1, F1](), fracOf[T2, F2]()
	f := max(fa, fb)
	return storage.RoundShift(int64(a.raw), fa-f), storage.RoundShift(int64(b.raw), fb-f)
}

// Cmp compares the values of a and b and returns -1, 0 or +1.
func Cmp[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) int {
	x, y := aligned(a, b)
	return cmp.Compare(x, y)
}

// Equal reports whether a and b have the same value.
func Equal[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) bool {
	return Cmp(a, b) == 0
}

// Less reports whether a < b.
func Less[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) bool {
	return Cmp(a, b) < 0
}

// Cmp compares v and o.
func (v Value[T, F, B]) Cmp(o Value[T, F, B]) int { return cmp.Compare(v.raw, o.raw) }

// Equal reports whether v == o.
func (v Value[T, F, B]) Equal(o Value[T, F, B]) bool { return v.raw == o.raw }

// Less reports whether v < o.
func (v Value[T, F, B]) Less(o Value[T, F, B]) bool { return v.raw < o.raw }
