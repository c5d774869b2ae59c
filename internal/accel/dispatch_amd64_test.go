//go:build amd64 && !purego

package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-fixed/internal/cpu"
)

func TestLadderSSE41(t *testing.T) {
	withFeatures(t, cpu.Features{HasSSE2: true, HasSSE41: true, Architecture: "amd64"})

	cases := map[string]string{
		"mul/8x8":      "q7",
		"add/8x8":      "q7",
		"div/8x8":      "generic",
		"mul/16x16":    "q15",
		"div/16x16":    "q15",
		"sqrt/16x16":   "q15",
		"log2/16x16":   "generic",
		"mul/8x16":     "generic",
		"mul/32x32":    "generic",
		"q7.sum":       "q7",
		"q7.sum/fast":  "q7",
		"q7.mean":      "generic",
		"q15.mean":     "q15",
		"q15.softmax":  "generic",
		"q15.dot/fast": "q15",
		"q31.dot":      "generic",
	}
	for op, rung := range cases {
		assert.Equal(t, rung, Choice(op), op)
	}
}

func TestLadderSSE2Only(t *testing.T) {
	withFeatures(t, cpu.Features{HasSSE2: true, Architecture: "amd64"})

	assert.Equal(t, "generic", Choice("mul/8x8"))
	assert.Equal(t, "q15", Choice("mul/16x16"))
	assert.Empty(t, Choice("q7.sum/fast"))
}
