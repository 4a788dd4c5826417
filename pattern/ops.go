// SPDX-License-Identifier: MIT

// Package pattern: primitive index-sequence operations.
//
// Each operation has the uniform shape Op(v, e): the sequence plus one
// integer parameter, returning the transformed sequence. Operations reuse
// the input's backing array where possible (append idiom); callers must
// use the returned slice and must not rely on the input afterwards.

package pattern

import "sort"

// Op is a unary transformation over an index sequence. The meaning of the
// integer parameter is operation-specific; operations that need no
// parameter ignore it.
type Op func(v []int, e int) []int

// Compile-time conformance of the primitive set to Op.
var (
	_ Op = SortUnique
	_ Op = PushFront
	_ Op = PushBack
	_ Op = RemoveValue
	_ Op = Shift
)

// SortUnique sorts v ascending and collapses adjacent duplicates to one
// occurrence. The parameter is unused.
// Complexity: O(n log n).
func SortUnique(v []int, _ int) []int {
	sort.Ints(v)

	// Compact in place: out never outruns the read cursor, so reading v[i]
	// before appending is safe; prev tracks the last original value.
	out := v[:0]
	var prev int
	for i, x := range v {
		if i == 0 || x != prev {
			out = append(out, x)
		}
		prev = x
	}

	return out
}

// PushFront inserts e at position 0 without sorting or deduplication.
// Complexity: O(n).
func PushFront(v []int, e int) []int {
	v = append(v, 0)  // grow by one slot
	copy(v[1:], v)    // shift the tail right
	v[0] = e          // place the new head

	return v
}

// PushBack appends e at the end of the sequence.
// Complexity: amortized O(1).
func PushBack(v []int, e int) []int { return append(v, e) }

// RemoveValue deletes all occurrences equal to e, preserving the relative
// order of the survivors.
// Complexity: O(n).
func RemoveValue(v []int, e int) []int {
	out := v[:0]
	for _, x := range v {
		if x != e {
			out = append(out, x)
		}
	}

	return out
}

// Shift adds the signed offset e to every element. This is the index-base
// conversion tool: Shift(v, +1) rebases 0-based indices to 1-based and
// Shift(v, -1) undoes it. Composable: two shifts equal one shift by the
// summed offsets.
// Complexity: O(n).
func Shift(v []int, e int) []int {
	for i := range v {
		v[i] += e
	}

	return v
}
