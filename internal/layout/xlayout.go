// Package layout decides how many vertical columns an overlay uses and
// how to index into them (XLayout), and how finely to sub-divide a
// single column's y-extent for the intersection sweep's candidate
// narrowing (YLayout). Grounded on
// original_source/xOverlay/src/gear/x_layout.rs and y_layout.rs: the
// power-of-two column width, the cpu-count-driven log-width formula,
// and the y sub-strip indexing are all carried over unchanged, only
// translated from Rust's ilog2/bit-shift idiom into Go's math/bits.
package layout

import (
	"math/bits"

	"github.com/gogpu/xoverlay/internal/geom"
)

// degenerateWidth and degenerateElements mirror the source's
// collapse-to-one-column thresholds (spec.md §4.1: "Degenerate inputs
// (empty rect, W≤4, N≤4) collapse to a single column").
const (
	degenerateWidth    = 4
	degenerateElements = 4
)

// XLayout partitions [MinX, MaxX] into PartsCount power-of-two-width
// columns, so Index is a subtraction plus a right shift.
type XLayout struct {
	MinX, MaxX int32
	LogWidth   uint
	PartsCount int
}

// ilog2 returns floor(log2(n)) for n >= 1. Callers must not pass 0.
func ilog2(n uint64) uint {
	return uint(bits.Len64(n) - 1)
}

// rectWidth returns maxX - minX (exclusive extent, matching the
// source's IntRect::width()).
func rectWidth(minX, maxX int32) int64 {
	return int64(maxX) - int64(minX)
}

// NewXLayoutWithRect builds a layout from an explicit element count and
// a target average element count per column, capped at maxPartsCount
// columns. This is the construction path used independent of a
// Solver/cpu hint (e.g. in tests), grounded on XLayout::with_rect.
func NewXLayoutWithRect(minX, maxX int32, elementsCount, avgCountPerColumn, maxPartsCount int) XLayout {
	rw := rectWidth(minX, maxX)
	width := rw + 1

	if rw <= degenerateWidth || elementsCount <= degenerateElements || elementsCount <= 0 {
		return singleColumn(minX, maxX)
	}

	approxWidth := uint64(avgCountPerColumn) * uint64(width) / uint64(elementsCount)
	if approxWidth < 1 {
		approxWidth = 1
	}
	logWidth := ilog2(approxWidth)

	partWidth := int64(1) << logWidth
	partsCount := int((rw + partWidth) >> logWidth)

	if partsCount > maxPartsCount && maxPartsCount > 0 {
		exactPartWidth := uint64(width) / uint64(maxPartsCount)
		if exactPartWidth < 1 {
			exactPartWidth = 1
		}
		logWidth = ilog2(exactPartWidth)
		if int64(1)<<logWidth < width {
			logWidth++
		}
		partWidth = int64(1) << logWidth
		partsCount = int((rw + partWidth) >> logWidth)
	}

	return XLayout{MinX: minX, MaxX: maxX, LogWidth: logWidth, PartsCount: partsCount}
}

// NewXLayoutForCPU builds a layout sized for cpuCount workers, grounded
// on XLayout::with_subj_and_clip. A cpuCount of 1 collapses to one
// giant column since there is no parallelism to spread work across.
func NewXLayoutForCPU(minX, maxX int32, cpuCount int) XLayout {
	rw := rectWidth(minX, maxX)
	if rw <= degenerateWidth {
		return singleColumn(minX, maxX)
	}

	var logWidth uint
	if cpuCount <= 1 {
		logWidth = ilog2(uint64(2*rw - 1))
	} else {
		width := uint64(rw) + 1
		optimalCount := 3 * uint64(cpuCount)
		optimalCountLog := ilog2(optimalCount)
		shifted := width >> optimalCountLog
		if shifted < 1 {
			shifted = 1
		}
		logWidthCPU := ilog2(shifted)
		logWidthMax := ilog2(width / 2)
		logWidth = min(logWidthCPU, logWidthMax)
	}

	partWidth := int64(1) << logWidth
	partsCount := int((rw + partWidth) >> logWidth)

	return XLayout{MinX: minX, MaxX: maxX, LogWidth: logWidth, PartsCount: partsCount}
}

func singleColumn(minX, maxX int32) XLayout {
	rw := rectWidth(minX, maxX)
	width := rw + 1
	if width < 1 {
		width = 1
	}
	return XLayout{MinX: minX, MaxX: maxX, LogWidth: ilog2(uint64(width)) + 1, PartsCount: 1}
}

// Count returns the number of columns.
func (l XLayout) Count() int {
	return l.PartsCount
}

// Index returns the column index owning x. Callers must ensure x is
// within [MinX, MaxX].
func (l XLayout) Index(x int32) int {
	dx := uint64(int64(x) - int64(l.MinX))
	i := int(dx >> l.LogWidth)
	if i >= l.PartsCount {
		i = l.PartsCount - 1
	}
	return i
}

// LeftBorder returns the left x-border of column i.
func (l XLayout) LeftBorder(i int) int32 {
	return l.MinX + int32(i<<l.LogWidth)
}

// Borders returns the [min, max] inclusive x-extent of column i.
func (l XLayout) Borders(i int) (int32, int32) {
	lo := l.LeftBorder(i)
	hi := lo + int32(int64(1)<<l.LogWidth) - 1
	if hi > l.MaxX || i == l.PartsCount-1 {
		hi = l.MaxX
	}
	return lo, hi
}

// IndicesByRange returns the inclusive [i0, i1] column index range an
// x-extent spans.
func (l XLayout) IndicesByRange(r geom.LineRange) (int, int) {
	return l.Index(r.Min), l.Index(r.Max)
}
