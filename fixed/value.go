package fixed

//go:generate go run ../cmd/qgen -pkg fixed -o formats.go Q1.7 Q2.6 Q4.4 Q1.15 Q3.13 Q4.12 Q8.8 Q1.31 Q2.30 Q4.28 Q8.24 Q16.16

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Value is a fixed-point number in format F, stored in T, computed by B.
// The zero value is 0. Values are immutable; every operation returns a new
// one.
type Value[T storage.Int, F Format[T], B backend.Backend] struct {
	raw T
}

// FromFloat converts v, rounding to nearest (ties away from zero) and
// saturating at the storage range. NaN converts to 0.
func FromFloat[T storage.Int, F Format[T], B backend.Backend, V constraints.Float](v V) Value[T, F, B] {
	return Value[T, F, B]{raw: T(storage.Quantize(float64(v), fracOf[T, F](), storage.WidthOf[T]()))}
}

// FromRaw wraps r without conversion; the caller asserts it is scaled for F.
func FromRaw[T storage.Int, F Format[T], B backend.Backend](r T) Value[T, F, B] {
	return Value[T, F, B]{raw: r}
}

// MaxOf returns the largest value of the format.
func MaxOf[T storage.Int, F Format[T], B backend.Backend]() Value[T, F, B] {
	return Value[T, F, B]{raw: storage.Max[T]()}
}

// MinOf returns the smallest value of the format. It doubles as the domain
// error sentinel.
func MinOf[T storage.Int, F Format[T], B backend.Backend]() Value[T, F, B] {
	return Value[T, F, B]{raw: storage.Min[T]()}
}

// Float returns the exact value as a float64.
func (v Value[T, F, B]) Float() float64 {
	return storage.Dequantize(int64(v.raw), fracOf[T, F]())
}

// Raw returns the underlying integer.
func (v Value[T, F, B]) Raw() T {
	return v.raw
}

// IntBits returns the format's integer bit count, sign included.
func (Value[T, F, B]) IntBits() int {
	var f F
	return f.IntBits()
}

// FracBits returns the format's fractional bit count.
func (Value[T, F, B]) FracBits() int {
	return fracOf[T, F]()
}

// Resolution is the weight of one raw unit.
func (Value[T, F, B]) Resolution() float64 {
	return storage.Dequantize(1, fracOf[T, F]())
}

// IsMin reports whether v holds the most negative raw value, which is what
// domain errors return.
func (v Value[T, F, B]) IsMin() bool {
	return v.raw == storage.Min[T]()
}

// meta returns the width and fractional bit count that describe values of
// this type to a backend.
func meta[T storage.Int, F Format[T]]() (storage.Width, int) {
	return storage.WidthOf[T](), fracOf[T, F]()
}

func wrap[T storage.Int, F Format[T], B backend.Backend](raw int64) Value[T, F, B] {
	return Value[T, F, B]{raw: T(raw)}
}
