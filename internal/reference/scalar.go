// Package reference implements every fixed-point backend operation with
// portable integer and floating arithmetic.
//
// It is always available for every width combination and is the rung the
// accelerated ladder ends on. Nothing here fails: overflow saturates and
// domain errors produce the documented sentinel (the most negative raw value
// of the result's storage bucket).
package reference

import "github.com/cwbudde/algo-fixed/internal/storage"

// Mul forms a*b in 64 bits, realigns it by shift and saturates into wo.
// Raw operands are at most 32 bits wide, so the product is exact.
func Mul(a, b int64, wo storage.Width, shift int) int64 {
	return storage.Sat(storage.RoundShift(a*b, shift), wo)
}

// Div forms a/b in 128 bits realigned by shift and saturates into wo.
// Dividing by zero saturates toward the numerator's sign.
func Div(a, b int64, wo storage.Width, shift int) int64 {
	return storage.Sat(storage.DivShift(a, b, shift), wo)
}

// Add realigns each operand on its own to fo, then sums and saturates.
// The operands are never aligned to each other first.
func Add(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64 {
	x := storage.RoundShift(a, fa-fo)
	y := storage.RoundShift(b, fb-fo)
	return storage.Sat(storage.SatAdd64(x, y), wo)
}

// Sub is Add with b negated after realignment.
func Sub(a int64, fa int, b int64, fb int, wo storage.Width, fo int) int64 {
	x := storage.RoundShift(a, fa-fo)
	y := storage.RoundShift(b, fb-fo)
	if y == minInt64 {
		return storage.Sat(storage.SatAdd64(storage.SatAdd64(x, maxInt64), 1), wo)
	}
	return storage.Sat(storage.SatAdd64(x, -y), wo)
}

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
)
