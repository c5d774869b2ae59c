package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupports(t *testing.T) {
	cases := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{name: "none always", features: Features{}, level: SIMDNone, want: true},
		{name: "sse2", features: Features{HasSSE2: true}, level: SIMDSSE2, want: true},
		{name: "sse2 missing", features: Features{}, level: SIMDSSE2, want: false},
		{name: "sse41", features: Features{HasSSE41: true}, level: SIMDSSE41, want: true},
		{name: "neon", features: Features{HasNEON: true}, level: SIMDNEON, want: true},
		{name: "forced generic blocks", features: Features{HasSSE2: true, ForceGeneric: true}, level: SIMDSSE2, want: false},
		{name: "forced generic allows none", features: Features{ForceGeneric: true}, level: SIMDNone, want: true},
		{name: "unknown level", features: Features{HasSSE2: true}, level: SIMDLevel(99), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Supports(tc.features, tc.level))
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	assert.Equal(t, "None", SIMDNone.String())
	assert.Equal(t, "SSE4.1", SIMDSSE41.String())
	assert.Equal(t, "NEON", SIMDNEON.String())
	assert.Equal(t, "Unknown", SIMDLevel(42).String())
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasSSE41: true, Architecture: "test"})
	got := DetectFeatures()
	assert.True(t, got.HasSSE41)
	assert.Equal(t, "test", got.Architecture)

	ResetDetection()
	assert.NotEqual(t, "test", DetectFeatures().Architecture)
}

func TestNoAccelEnv(t *testing.T) {
	defer ResetDetection()

	t.Setenv(NoAccelEnv, "1")
	ResetDetection()
	assert.True(t, DetectFeatures().ForceGeneric)

	t.Setenv(NoAccelEnv, "false")
	ResetDetection()
	assert.False(t, DetectFeatures().ForceGeneric)

	t.Setenv(NoAccelEnv, "yes please")
	ResetDetection()
	assert.True(t, DetectFeatures().ForceGeneric)
}
