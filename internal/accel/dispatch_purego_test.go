//go:build purego

package accel

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-fixed/internal/cpu"
)

func TestPuregoUsesGeneric(t *testing.T) {
	withFeatures(t, cpu.Features{HasSSE2: true, HasSSE41: true, HasNEON: true, Architecture: "amd64"})

	for _, line := range Describe() {
		if !strings.HasSuffix(line, " generic") {
			t.Fatalf("expected generic implementation in purego, got %q", line)
		}
	}
	if got := Choice("q15.dot/fast"); got != "" {
		t.Fatalf("expected no fast kernel in purego, got %q", got)
	}
}
