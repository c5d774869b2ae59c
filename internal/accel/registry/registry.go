// Package registry holds the priority ladder of accelerated fixed-point
// kernel rungs.
//
// Rungs register themselves from init() functions. Each rung names the SIMD
// level it needs, its priority and the operand width it specializes. The
// dispatcher asks for the CPU-compatible [OpRegistry.Candidates] in
// descending priority and, per op, keeps the first rung that provides it.
// The generic rung (priority 0, every width) forwards to the reference
// kernels and guarantees the ladder always ends somewhere.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// OpEntry is one rung of the ladder.
type OpEntry struct {
	// Name identifies the rung in logs and tests ("q7", "q15", "generic").
	Name string

	// SIMDLevel is the instruction set the rung needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders rungs; higher is tried first. Suggested values:
	//   - generic: 0
	//   - 16-bit operand paths: 1
	//   - 8-bit operand paths: 2
	Priority int

	// Width is the operand width the scalar ops specialize. Zero accepts
	// every width.
	Width storage.Width

	Scalar ScalarOps

	Q7  Kernels[int8]
	Q15 Kernels[int16]
	Q31 Kernels[int32]
}

// Accepts reports whether the rung's scalar ops handle operands of the given
// widths.
func (e *OpEntry) Accepts(widths ...storage.Width) bool {
	if e.Width == 0 {
		return true
	}
	for _, w := range widths {
		if w != e.Width {
			return false
		}
	}
	return true
}

// OpRegistry stores the registered rungs.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by priority, descending
}

// Global is the registry the accelerated backend resolves against.
var Global = &OpRegistry{}

// Register adds a rung. All registrations should complete before the first
// lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Candidates returns every rung compatible with features, highest priority
// first. The returned entries are copies owned by the caller.
func (r *OpRegistry) Candidates(features cpu.Features) []*OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*OpEntry
	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			entry := r.entries[i]
			out = append(out, &entry)
		}
	}
	return out
}

// sortByPriority is a stable insertion sort; the registry holds a handful of
// rungs. Must be called with r.mu held.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Reset clears all rungs. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
