package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// LSB returns the weight of one unit in the last place of a format with
// frac fractional bits.
func LSB(frac int) float64 {
	return math.Ldexp(1, -frac)
}

// RequireWithinLSB fails t if got differs from want by more than lsbs units
// of a format with frac fractional bits.
func RequireWithinLSB(t *testing.T, got, want float64, frac int, lsbs float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > lsbs*LSB(frac) {
		t.Fatalf("got %v, want %v (diff %v > %v LSB of Q.%d)", got, want, diff, lsbs, frac)
	}
}

// RequireRawNear fails t if got and want differ in length or if any raw
// element pair differs by more than tol.
func RequireRawNear[T storage.Int](t *testing.T, got, want []T, tol int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := absDiff(int64(got[i]), int64(want[i])); d > tol {
			t.Fatalf("index %d: got %d, want %d (diff %d > tol %d)", i, got[i], want[i], d, tol)
		}
	}
}

// MaxRawDiff returns the maximum absolute raw difference between two
// slices. Returns an error if the slices differ in length.
func MaxRawDiff[T storage.Int](a, b []T) (int64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff int64
	for i := range a {
		maxDiff = max(maxDiff, absDiff(int64(a[i]), int64(b[i])))
	}
	return maxDiff, nil
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
