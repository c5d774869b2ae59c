package q15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fixed/internal/testutil"
)

func TestFastMatchesRegular(t *testing.T) {
	for _, n := range []int{4, 8, 64, 1024} {
		a := testutil.Aligned[int16](n)
		b := testutil.Aligned[int16](n)
		copy(a, testutil.RawNoise[int16](int64(n), n))
		copy(b, testutil.RawNoise[int16](int64(n)+1, n))

		assert.Equal(t, Sum(a), SumFast(a), "n=%d", n)
		assert.Equal(t, Dot(a, b, 15), DotFast(a, b, 15), "n=%d", n)
		assert.Equal(t, Dot(a, b, -3), DotFast(a, b, -3), "n=%d", n)

		v, i := Min(a)
		fv, fi := MinFast(a)
		assert.Equal(t, v, fv)
		assert.Equal(t, i, fi)
		v, i = Max(a)
		fv, fi = MaxFast(a)
		assert.Equal(t, v, fv)
		assert.Equal(t, i, fi)

		got := testutil.Aligned[int16](n)
		want := make([]int16, n)
		AddFast(got, a, b)
		AddArray(want, a, b)
		require.Equal(t, want, got)
		SubFast(got, a, b)
		SubArray(want, a, b)
		require.Equal(t, want, got)
		MulFast(got, a, b, 15)
		MulArray(want, a, b, 15)
		require.Equal(t, want, got)
	}
}

func TestFastMinMaxTies(t *testing.T) {
	x := testutil.Aligned[int16](8)
	copy(x, []int16{5, 1, 9, 1, 9, 1, 5, 9})
	v, i := MinFast(x)
	assert.Equal(t, int16(1), v)
	assert.Equal(t, 1, i)
	v, i = MaxFast(x)
	assert.Equal(t, int16(9), v)
	assert.Equal(t, 2, i)
}
