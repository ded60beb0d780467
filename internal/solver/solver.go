// Package solver orchestrates the per-column phases (C3-C6) across
// one or more goroutines, preserving identical output regardless of
// thread count (spec.md §4.9).
//
// Grounded on gogpu-gg's internal/parallel tile-worker fork/join shape
// (recursive range halving, bounded goroutine fan-out), reimplemented
// on golang.org/x/sync/errgroup per this module's domain stack: a
// column range is a much simpler unit of work than a tile grid, and
// errgroup's bounded SetLimit plus first-error propagation replaces
// the teacher's hand-rolled work-stealing queues without losing the
// recursive balanced-split structure.
package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CPUCount is the policy controlling how many goroutines the solver
// may use.
type CPUCount struct {
	kind  cpuKind
	fixed int
}

type cpuKind uint8

const (
	cpuAuto cpuKind = iota
	cpuFixed
	cpuSingle
)

// Auto uses the platform's available parallelism (runtime.GOMAXPROCS).
func Auto() CPUCount { return CPUCount{kind: cpuAuto} }

// Fixed forces exactly n goroutines (n < 1 behaves like Single).
func Fixed(n int) CPUCount { return CPUCount{kind: cpuFixed, fixed: n} }

// Single forces strictly sequential execution.
func Single() CPUCount { return CPUCount{kind: cpuSingle} }

// Count resolves the policy to a goroutine count of at least 1.
func (c CPUCount) Count() int {
	switch c.kind {
	case cpuFixed:
		if c.fixed < 1 {
			return 1
		}
		return c.fixed
	case cpuSingle:
		return 1
	default:
		n := runtime.GOMAXPROCS(0)
		if n < 1 {
			return 1
		}
		return n
	}
}

// minSplit is the column-range-count floor below which Run stops
// halving and processes the range inline, per spec.md §4.9's
// max(2, columns/256) threshold.
func minSplit(total int) int {
	t := total / 256
	if t < 2 {
		t = 2
	}
	return t
}

// Run applies work to every index in [0, n) using up to cpu's
// goroutine count, via a recursive balanced split of the index range
// (spec.md §4.9). When the resolved count is 1, work runs inline with
// no goroutines spawned at all, bypassing errgroup entirely.
func Run(n int, cpu CPUCount, work func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	count := cpu.Count()
	if count <= 1 {
		return work(0, n)
	}

	threshold := minSplit(n)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(count)
	splitRun(g, ctx, 0, n, threshold, work)
	return g.Wait()
}

func splitRun(g *errgroup.Group, ctx context.Context, lo, hi, threshold int, work func(lo, hi int) error) {
	if hi-lo <= threshold {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return work(lo, hi)
		})
		return
	}
	mid := lo + (hi-lo)/2
	splitRun(g, ctx, lo, mid, threshold, work)
	splitRun(g, ctx, mid, hi, threshold, work)
}
