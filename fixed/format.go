package fixed

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// Format describes a fixed-point format held in storage type T.
//
// IntBits counts the integer bits including the sign bit, FracBits the
// fractional bits. Storage is a marker binding the format to T; it is never
// called.
type Format[T storage.Int] interface {
	IntBits() int
	FracBits() int
	Storage(T)
}

// LogFormat is the wide format of logarithm results and antilogarithm
// operands: Q6.26 in 32 bits.
type LogFormat struct{}

func (LogFormat) IntBits() int  { return backend.LogIntBits }
func (LogFormat) FracBits() int { return backend.LogFracBits }

func (LogFormat) Storage(int32) {}

const _ uint = 32 - (backend.LogIntBits + backend.LogFracBits)
const _ uint = (backend.LogIntBits + backend.LogFracBits) - 17

// Acc is the accumulator format for sums and dot products over arrays of
// format F: 32-bit storage with F's fractional bits.
type Acc[T storage.Int, F Format[T]] struct{}

func (Acc[T, F]) IntBits() int  { return storage.MaxBits - fracOf[T, F]() }
func (Acc[T, F]) FracBits() int { return fracOf[T, F]() }

func (Acc[T, F]) Storage(int32) {}

// Acc always spans the full 32 bits.
const _ uint = 32 - storage.MaxBits
const _ uint = storage.MaxBits - 32

var (
	// ErrNegativeBits reports a format with a negative bit count.
	ErrNegativeBits = errors.New("fixed: negative bit count")
	// ErrTooWide reports a format wider than its storage type.
	ErrTooWide = errors.New("fixed: format wider than storage")
	// ErrWrongBucket reports a format that would fit a smaller storage type.
	ErrWrongBucket = errors.New("fixed: format fits a smaller storage type")
)

// Check validates F against T: both bit counts non-negative and T the
// smallest storage type holding all of them.
func Check[T storage.Int, F Format[T]]() error {
	var f F
	i, fr := f.IntBits(), f.FracBits()
	w := storage.WidthOf[T]()
	if i < 0 || fr < 0 {
		return fmt.Errorf("Q%d.%d: %w", i, fr, ErrNegativeBits)
	}
	bucket, ok := storage.Bucket(i + fr)
	switch {
	case !ok || bucket > w:
		return fmt.Errorf("Q%d.%d in int%d: %w", i, fr, w, ErrTooWide)
	case bucket < w:
		return fmt.Errorf("Q%d.%d in int%d: %w", i, fr, w, ErrWrongBucket)
	}
	return nil
}

func fracOf[T storage.Int, F Format[T]]() int {
	var f F
	return f.FracBits()
}
