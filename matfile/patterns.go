// SPDX-License-Identifier: MIT

// Package matfile: sparsity-pattern construction from coordinate reads.
// Bridges the sparse output containers to the canonical transformation
// chains, for callers assembling a sparse matrix incrementally.

package matfile

import (
	"github.com/pmaciel/lssio/coord"
	"github.com/pmaciel/lssio/pattern"
)

// Patterns builds one sparsity pattern per row (or per column when
// rowOriented is false): the sorted, deduplicated sequence of column (or
// row) indices holding entries. With diagonalFirst, each pattern instead
// carries its own row/column index exactly once at position 0, followed by
// the remaining indices sorted ascending — the layout solvers with
// diagonal-first storage require. Patterns are 0-based regardless of the
// container's Base.
//
// Construction goes through the canonical chains only; patterns are never
// edited element-by-element here.
// Complexity: O(rows * nnz) membership scans plus the chain costs.
func (c *COO[T]) Patterns(rowOriented, diagonalFirst bool) [][]int {
	n := c.Size.Row
	if !rowOriented {
		n = c.Size.Col
	}

	// Rebuild 0-based coordinate entries from the parallel slices; values
	// are irrelevant to patterns but keep the membership predicates on
	// their natural input type.
	entries := make([]coord.Entry, len(c.Values))
	for k := range c.Values {
		entries[k] = coord.NewEntry(c.RowIdx[k]-c.Base, c.ColIdx[k]-c.Base, float64(c.Values[k]))
	}

	sorted := pattern.Sorted()
	diag := pattern.DiagonalFirst()

	patterns := make([][]int, n)
	for k := 0; k < n; k++ {
		member := coord.SameRow(k)
		pick := func(e coord.Entry) int { return e.Pos.Col }
		if !rowOriented {
			member = coord.SameCol(k)
			pick = func(e coord.Entry) int { return e.Pos.Row }
		}

		var v []int
		if diagonalFirst {
			// Gather, then shape once: strip self, sort+dedupe, self first.
			for _, e := range entries {
				if member(e) {
					v = append(v, pick(e))
				}
			}
			patterns[k] = diag.Apply(v, k)
			continue
		}

		// Plain patterns grow incrementally: each index is inserted through
		// the sorted chain, keeping the sequence sorted and unique.
		for _, e := range entries {
			if member(e) {
				v = sorted.Apply(v, pick(e))
			}
		}
		patterns[k] = v
	}

	return patterns
}
