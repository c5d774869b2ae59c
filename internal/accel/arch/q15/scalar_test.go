package q15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fixed/internal/reference"
	"github.com/cwbudde/algo-fixed/internal/storage"
	"github.com/cwbudde/algo-fixed/internal/testutil"
)

var shifts = []int{-20, -16, -13, -1, 0, 1, 2, 13, 15, 16, 30, 31}

func TestMulMatchesReference(t *testing.T) {
	x := testutil.RawNoise[int16](1, 257)
	y := testutil.RawNoise[int16](2, 257)
	for _, shift := range shifts {
		for _, wo := range []storage.Width{storage.W8, storage.W16, storage.W32} {
			for i := range x {
				a, b := int64(x[i]), int64(y[i])
				require.Equal(t, reference.Mul(a, b, wo, shift), Mul(a, b, wo, shift),
					"a=%d b=%d wo=%d shift=%d", a, b, wo, shift)
			}
		}
	}
}

func TestDivMatchesReference(t *testing.T) {
	x := testutil.RawNoise[int16](3, 257)
	y := testutil.RawNoise[int16](4, 257)
	y[7] = 0
	y[8] = 1
	y[9] = -1
	for _, shift := range shifts {
		for i := range x {
			a, b := int64(x[i]), int64(y[i])
			require.Equal(t, reference.Div(a, b, storage.W32, shift), Div(a, b, storage.W32, shift),
				"a=%d b=%d shift=%d", a, b, shift)
			require.Equal(t, reference.Div(a, b, storage.W16, shift), Div(a, b, storage.W16, shift),
				"a=%d b=%d shift=%d", a, b, shift)
		}
	}
}

func TestAddSubMatchReference(t *testing.T) {
	x := testutil.RawNoise[int16](5, 129)
	y := testutil.RawNoise[int16](6, 129)
	fracs := []int{0, 7, 13, 15, 16, 31}
	for _, fa := range fracs {
		for _, fb := range fracs {
			for _, fo := range fracs {
				for i := range x {
					a, b := int64(x[i]), int64(y[i])
					require.Equal(t, reference.Add(a, fa, b, fb, storage.W16, fo), Add(a, fa, b, fb, storage.W16, fo))
					require.Equal(t, reference.Sub(a, fa, b, fb, storage.W32, fo), Sub(a, fa, b, fb, storage.W32, fo))
				}
			}
		}
	}
}

func TestSqrtMatchesReference(t *testing.T) {
	for _, frac := range []int{0, 8, 13, 15} {
		for raw := int64(-32768); raw <= 32767; raw += 7 {
			got := Sqrt(raw, storage.W16, frac)
			want := reference.Sqrt(raw, storage.W16, frac)
			require.InDelta(t, want, got, 1, "raw=%d frac=%d", raw, frac)
		}
	}
	assert.Equal(t, int64(-32768), Sqrt(-1, storage.W16, 15))
}

func TestSinCosWithinOneLSB(t *testing.T) {
	for _, frac := range []int{13, 15} {
		for raw := int64(-32768); raw <= 32767; raw += 3 {
			require.InDelta(t, reference.Sin(raw, storage.W16, frac), Sin(raw, storage.W16, frac), 1, "sin raw=%d", raw)
			require.InDelta(t, reference.Cos(raw, storage.W16, frac), Cos(raw, storage.W16, frac), 1, "cos raw=%d", raw)
		}
	}
}

func TestRelu(t *testing.T) {
	assert.Equal(t, int64(0), Relu(-5, storage.W16, 15))
	assert.Equal(t, int64(5), Relu(5, storage.W16, 15))
}
