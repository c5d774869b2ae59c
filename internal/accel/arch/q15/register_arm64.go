//go:build arm64 && !purego

package q15

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
)

// init registers the 16-bit rung for NEON.
//
// Priority: 1 (above generic, below the 8-bit rung)
func init() {
	registry.Global.Register(Entry(cpu.SIMDNEON))
}
