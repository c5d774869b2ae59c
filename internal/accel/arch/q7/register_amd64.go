//go:build amd64 && !purego

package q7

import (
	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
)

// init registers the 8-bit rung. It needs SSE4.1 for packed sign extension
// of int8 lanes; older CPUs fall through to the 16-bit and generic rungs.
//
// Priority: 2 (highest)
func init() {
	registry.Global.Register(Entry(cpu.SIMDSSE41))
}
