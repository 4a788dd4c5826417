// SPDX-License-Identifier: MIT

// Package coord: Index, the fundamental (row, column) dereferencing type.
//
// Design notes:
//   - The unset/invalid marker is the maximal pair (Sentinel, Sentinel),
//     NOT the zero pair; InvalidIndex() and Invalidate() produce it.
//   - Ordering is lexicographic with the row as the primary key; Greater is
//     derived from Less by argument swap so the two can never disagree.
//   - A pair is a valid matrix size iff it lies strictly between (0,0) and
//     the sentinel; negative components therefore never validate.

package coord

import "math"

// Sentinel is the component value of the unset/invalid marker Index.
// It plays the role of the maximal representable coordinate.
const Sentinel = math.MaxInt

// Index is an ordered (row, column) pair addressing one matrix cell.
// The zero value is (0,0), which is NOT a valid size; use InvalidIndex
// for the canonical unset marker.
type Index struct {
	Row int // first (primary) coordinate
	Col int // second (secondary) coordinate
}

// NewIndex returns the pair (row, col).
// Complexity: O(1).
func NewIndex(row, col int) Index { return Index{Row: row, Col: col} }

// InvalidIndex returns the maximal sentinel pair used as an unset marker.
// Complexity: O(1).
func InvalidIndex() Index { return Index{Row: Sentinel, Col: Sentinel} }

// Invalidate resets the pair to the sentinel and returns it.
// Index is a value type, so the reset is returned rather than applied
// through a pointer.
// Complexity: O(1).
func (x Index) Invalidate() Index { return InvalidIndex() }

// Equal reports whether both components match.
// Complexity: O(1).
func (x Index) Equal(other Index) bool { return x == other }

// Less reports whether x strictly precedes other in lexicographic order:
// row first, column second. This is a strict weak ordering.
// Complexity: O(1).
func (x Index) Less(other Index) bool {
	if x.Row != other.Row {
		return x.Row < other.Row
	}

	return x.Col < other.Col
}

// Greater reports whether x strictly follows other.
// Derived canonically from Less by argument swap.
// Complexity: O(1).
func (x Index) Greater(other Index) bool { return other.Less(x) }

// IsValidSize reports whether the pair denotes a usable matrix extent:
// both components in [0, Sentinel), strictly greater than (0,0) and
// strictly less than the sentinel pair. The sentinel itself, the zero pair
// and pairs with a negative component all fail.
// Complexity: O(1).
func (x Index) IsValidSize() bool {
	inRange := x.Row >= 0 && x.Col >= 0 && x.Row < Sentinel && x.Col < Sentinel

	return inRange && x.Greater(Index{}) && x.Less(InvalidIndex())
}

// IsSquareSize reports whether row and column extents coincide.
// Complexity: O(1).
func (x Index) IsSquareSize() bool { return x.Row == x.Col }

// IsDiagonal reports whether the pair addresses a diagonal cell.
// Alias of IsSquareSize, kept for call-site readability.
// Complexity: O(1).
func (x Index) IsDiagonal() bool { return x.IsSquareSize() }
