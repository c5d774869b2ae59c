package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

func ladder() *OpRegistry {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "q7", SIMDLevel: cpu.SIMDSSE41, Priority: 2, Width: storage.W8})
	reg.Register(OpEntry{Name: "q15", SIMDLevel: cpu.SIMDSSE2, Priority: 1, Width: storage.W16})
	return reg
}

func names(entries []*OpEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestCandidatesOrder(t *testing.T) {
	reg := ladder()

	cases := []struct {
		name     string
		features cpu.Features
		want     []string
	}{
		{
			name:     "all rungs",
			features: cpu.Features{HasSSE2: true, HasSSE41: true},
			want:     []string{"q7", "q15", "generic"},
		},
		{
			name:     "no sse4.1",
			features: cpu.Features{HasSSE2: true},
			want:     []string{"q15", "generic"},
		},
		{
			name:     "bare",
			features: cpu.Features{},
			want:     []string{"generic"},
		},
		{
			name:     "forced generic",
			features: cpu.Features{HasSSE2: true, HasSSE41: true, ForceGeneric: true},
			want:     []string{"generic"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(reg.Candidates(tc.features)))
		})
	}
}

func TestCandidatesAreCopies(t *testing.T) {
	reg := ladder()
	c := reg.Candidates(cpu.Features{HasSSE2: true})
	require.NotEmpty(t, c)
	c[0].Name = "changed"
	assert.Equal(t, "q15", reg.Candidates(cpu.Features{HasSSE2: true})[0].Name)

	assert.Empty(t, (&OpRegistry{}).Candidates(cpu.Features{}))
}

func TestAccepts(t *testing.T) {
	q15 := OpEntry{Width: storage.W16}
	assert.True(t, q15.Accepts(storage.W16, storage.W16))
	assert.False(t, q15.Accepts(storage.W16, storage.W8))
	generic := OpEntry{}
	assert.True(t, generic.Accepts(storage.W8, storage.W32))
}

func TestReset(t *testing.T) {
	reg := ladder()
	assert.Len(t, reg.Candidates(cpu.Features{}), 1)
	reg.Reset()
	assert.Empty(t, reg.Candidates(cpu.Features{}))
}

func TestScalarFill(t *testing.T) {
	mul := func(a, b int64, wo storage.Width, shift int) int64 { return 1 }
	sqrt := func(x int64, w storage.Width, frac int) int64 { return 2 }

	var top ScalarOps
	top.Mul = mul
	assert.Contains(t, top.Missing(), "div")
	assert.Contains(t, top.Missing(), "sqrt")

	src := ScalarOps{Div: mul, Mul: mul}
	src.Unary[OpSqrt] = sqrt
	filled := top.Fill(&src)
	assert.Equal(t, []string{"div", "sqrt"}, filled)
	assert.NotContains(t, top.Missing(), "sqrt")
}

func TestArrayFill(t *testing.T) {
	var top ArrayOps[int16]
	src := ArrayOps[int16]{
		Sum: func(x []int16) int64 { return int64(len(x)) },
	}
	assert.Equal(t, []string{"sum"}, top.Fill(&src))
	assert.Empty(t, top.Fill(&src))
	assert.NotContains(t, top.Missing(), "sum")
	assert.Contains(t, top.Missing(), "spectrum")
}

func TestUnaryOpString(t *testing.T) {
	assert.Equal(t, "log2", OpLog2.String())
	assert.Equal(t, "relu", OpRelu.String())
	assert.Equal(t, "unknown", NumUnaryOps.String())
}
