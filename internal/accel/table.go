// Package accel is the dispatch glue of the accelerated backend.
//
// On first use the CPU-compatible rungs of the registry are folded, highest
// priority first, into one scalar op table per operand width pair and one
// regular/fast kernel set per storage type. An op a rung does not provide,
// or a width pair it does not accept, falls to the next rung down; the
// generic rung at the bottom provides everything. After that the only
// per-call decision is the fast/regular array variant.
package accel

import (
	"fmt"
	"sort"
	"sync"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"

	"github.com/cwbudde/algo-fixed/internal/accel/registry"
	"github.com/cwbudde/algo-fixed/internal/cpu"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

var widths = [3]storage.Width{storage.W8, storage.W16, storage.W32}

type table struct {
	// scalar is indexed by the operand widths.
	scalar [3][3]registry.ScalarOps

	q7  registry.Kernels[int8]
	q15 registry.Kernels[int16]
	q31 registry.Kernels[int32]

	// chosen maps "op/operands" to the rung that provides it.
	chosen map[string]string
}

var (
	tableOnce sync.Once
	current   *table
)

func load() *table {
	tableOnce.Do(func() {
		current = resolve(registry.Global.Candidates(cpu.DetectFeatures()))
	})
	return current
}

// Reset drops the resolved tables so the next call resolves again. It is
// meant for tests that change the forced CPU features or the registry.
func Reset() {
	tableOnce = sync.Once{}
	current = nil
}

func resolve(candidates []*registry.OpEntry) *table {
	t := &table{chosen: make(map[string]string)}

	for ia, wa := range widths {
		for ib, wb := range widths {
			ops := &t.scalar[ia][ib]
			for _, e := range candidates {
				if !e.Accepts(wa, wb) {
					continue
				}
				for _, name := range ops.Fill(&e.Scalar) {
					t.record(fmt.Sprintf("%s/%dx%d", name, wa, wb), e.Name)
				}
			}
			missing := ops.Missing()
			must.Truef(len(missing) == 0, "accel: no rung provides %v for %dx%d operands", missing, wa, wb)
		}
	}

	for _, e := range candidates {
		fillKernels(t, "q7", &t.q7, &e.Q7, e.Name)
		fillKernels(t, "q15", &t.q15, &e.Q15, e.Name)
		fillKernels(t, "q31", &t.q31, &e.Q31, e.Name)
	}
	must.Truef(len(t.q7.Regular.Missing()) == 0, "accel: q7 kernels missing %v", t.q7.Regular.Missing())
	must.Truef(len(t.q15.Regular.Missing()) == 0, "accel: q15 kernels missing %v", t.q15.Regular.Missing())
	must.Truef(len(t.q31.Regular.Missing()) == 0, "accel: q31 kernels missing %v", t.q31.Regular.Missing())

	return t
}

func fillKernels[T storage.Int](t *table, prefix string, dst, src *registry.Kernels[T], rung string) {
	for _, name := range dst.Regular.Fill(&src.Regular) {
		t.record(prefix+"."+name, rung)
	}
	for _, name := range dst.Fast.Fill(&src.Fast) {
		t.record(prefix+"."+name+"/fast", rung)
	}
}

func (t *table) record(op, rung string) {
	t.chosen[op] = rung
	log.Debug.Printf("accel: %s -> %s", op, rung)
}

// Choice names the rung that serves op, as recorded at resolution. Scalar
// ops are keyed "name/AxB" ("mul/16x16"), array kernels "qN.name" with a
// "/fast" suffix for the fast variant ("q15.sum/fast").
func Choice(op string) string {
	return load().chosen[op]
}

// Describe lists every resolved op and its rung, sorted by op.
func Describe() []string {
	t := load()
	out := make([]string, 0, len(t.chosen))
	for op, rung := range t.chosen {
		out = append(out, op+" "+rung)
	}
	sort.Strings(out)
	return out
}
