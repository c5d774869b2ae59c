//go:build amd64 && !purego

package q15

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
)

// init registers the 16-bit rung. SSE2 is part of the x86-64 baseline, so
// this rung is available on every amd64 CPU.
//
// Priority: 1 (above generic, below the 8-bit rung)
func init() {
	registry.Global.Register(Entry(cpu.SIMDSSE2))
}
