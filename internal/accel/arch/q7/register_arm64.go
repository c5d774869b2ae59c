//go:build arm64 && !purego

package q7

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
)

// init registers the 8-bit rung for NEON.
//
// Priority: 2 (highest)
func init() {
	registry.Global.Register(Entry(cpu.SIMDNEON))
}
