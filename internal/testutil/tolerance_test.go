package testutil

import (
	"testing"
)

func TestLSB(t *testing.T) {
	if got := LSB(15); got != 1.0/32768 {
		t.Fatalf("LSB(15) = %v, want %v", got, 1.0/32768)
	}
}

func TestRequireWithinLSB(t *testing.T) {
	RequireWithinLSB(t, 0.375+LSB(15)/2, 0.375, 15, 1)
}

func TestMaxRawDiff(t *testing.T) {
	d, err := MaxRawDiff([]int16{1, 5, -3}, []int16{1, 2, -4})
	if err != nil {
		t.Fatalf("MaxRawDiff error: %v", err)
	}
	if d != 3 {
		t.Fatalf("MaxRawDiff = %d, want 3", d)
	}
}

func TestMaxRawDiffLengthMismatch(t *testing.T) {
	_, err := MaxRawDiff([]int8{1}, []int8{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxRawDiffExtremes(t *testing.T) {
	d, err := MaxRawDiff([]int32{-1 << 31}, []int32{1<<31 - 1})
	if err != nil {
		t.Fatalf("MaxRawDiff error: %v", err)
	}
	if d != 1<<32-1 {
		t.Fatalf("MaxRawDiff = %d, want %d", d, int64(1<<32-1))
	}
}
