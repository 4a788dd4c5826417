// SPDX-License-Identifier: MIT

// Package coord: Entry, the coordinate-form (COO) matrix element, with the
// two total orderings and two membership predicates required to compress a
// flat coordinate list into per-row or per-column groups.
//
// Design notes:
//   - LessByRow delegates to Index.Less (row primary by construction).
//   - LessByCol is implemented independently of Index.Less, since that
//     operator is row-primary; here the column is the primary key.
//   - Both orderings are strict weak orderings and are safe to hand to
//     sort.Slice / sort.SliceStable as-is.

package coord

// Entry is one matrix element during file ingestion: a cell address plus a
// double-precision value. Wider or narrower precision is handled only at
// the generic dispatch layer, never here.
type Entry struct {
	Pos Index   // cell address
	Val float64 // element value (double precision at this layer)
}

// NewEntry returns the entry a(row, col) = val.
// Complexity: O(1).
func NewEntry(row, col int, val float64) Entry {
	return Entry{Pos: NewIndex(row, col), Val: val}
}

// LessByRow reports whether a strictly precedes b in row-major order
// (primary key row, secondary key column).
// Complexity: O(1).
func LessByRow(a, b Entry) bool { return a.Pos.Less(b.Pos) }

// LessByCol reports whether a strictly precedes b in column-major order
// (primary key column, secondary key row).
// Complexity: O(1).
func LessByCol(a, b Entry) bool {
	if a.Pos.Col != b.Pos.Col {
		return a.Pos.Col < b.Pos.Col
	}

	return a.Pos.Row < b.Pos.Row
}

// SameRow returns a predicate reporting whether an entry belongs to row.
// Used to partition a flat coordinate list into per-row groups before
// sparsity-pattern construction.
// Complexity: O(1) per call.
func SameRow(row int) func(Entry) bool {
	return func(e Entry) bool { return e.Pos.Row == row }
}

// SameCol returns a predicate reporting whether an entry belongs to col.
// Complexity: O(1) per call.
func SameCol(col int) func(Entry) bool {
	return func(e Entry) bool { return e.Pos.Col == col }
}
