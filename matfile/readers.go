// SPDX-License-Identifier: MIT

// Package matfile: post-processing shared by all three readers. Parsers
// produce a declared extent plus a flat coordinate list (0-based); the
// helpers here re-orient, densify, sort and rebase that list into the
// caller-facing staging buffers. Keeping this in one place guarantees the
// three formats agree on orientation and base semantics.

package matfile

import (
	"sort"

	"github.com/pmaciel/lssio/coord"
	"github.com/pmaciel/lssio/pattern"
)

// checkSize validates a declared extent (both dimensions at least 1 and
// below the sentinel).
func checkSize(name string, line, rows, cols int) (coord.Index, error) {
	size := coord.NewIndex(rows, cols)
	if rows < 1 || cols < 1 || !size.IsValidSize() {
		return coord.InvalidIndex(), parseErrorf(name, line, "invalid matrix size %dx%d", rows, cols)
	}

	return size, nil
}

// checkBounds validates one 0-based coordinate against the declared extent.
func checkBounds(name string, line int, size coord.Index, i, j int) error {
	if i < 0 || i >= size.Row || j < 0 || j >= size.Col {
		return parseErrorf(name, line, "coordinate (%d,%d) outside %dx%d", i+1, j+1, size.Row, size.Col)
	}

	return nil
}

// densify expands a coordinate list into a zero-filled dense buffer in the
// requested orientation: out[i][j] = a(i,j) when rowOriented, out[j][i]
// otherwise. Duplicate coordinates are last-write-wins (deterministic,
// entries arrive in file order).
// Complexity: O(rows*cols + nnz).
func densify(size coord.Index, entries []coord.Entry, rowOriented bool) [][]float64 {
	outer, inner := size.Row, size.Col
	if !rowOriented {
		outer, inner = size.Col, size.Row
	}

	a := make([][]float64, outer)
	for i := range a {
		a[i] = make([]float64, inner)
	}
	for _, e := range entries {
		if rowOriented {
			a[e.Pos.Row][e.Pos.Col] = e.Val
		} else {
			a[e.Pos.Col][e.Pos.Row] = e.Val
		}
	}

	return a
}

// finishSparse orders a coordinate list row-major or column-major, splits
// it into the three parallel output slices and rebases the index slices to
// the caller-requested base via the shift transformation.
// Complexity: O(nnz log nnz).
func finishSparse(size coord.Index, entries []coord.Entry, rowOriented bool, base int) ([]float64, []int, []int) {
	less := coord.LessByRow
	if !rowOriented {
		less = coord.LessByCol
	}
	// Stable sort keeps duplicate coordinates in file order.
	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })

	n := len(entries)
	values := make([]float64, n)
	rowIdx := make([]int, n)
	colIdx := make([]int, n)
	for k, e := range entries {
		values[k] = e.Val
		rowIdx[k] = e.Pos.Row
		colIdx[k] = e.Pos.Col
	}
	if base != 0 {
		rowIdx = pattern.Shift(rowIdx, base)
		colIdx = pattern.Shift(colIdx, base)
	}

	return values, rowIdx, colIdx
}
