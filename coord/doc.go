// Package coord defines the fundamental dereferencing types used to address
// and order matrix entries during file exchange.
//
// The coord package provides:
//
//   - Index, an ordered (row, column) pair with lexicographic ordering,
//     validity/squareness predicates and a maximal-sentinel "unset" value.
//   - Entry, an Index together with a double-precision scalar: the unit of
//     sparse-matrix exchange in coordinate (COO) form.
//   - Row-major and column-major strict weak orderings over entries, usable
//     directly as sort comparators, plus row/column membership predicates
//     for partitioning flat coordinate lists.
//
// All types are plain values: created per use, no ownership concerns, safe
// to copy and compare. Every operation is O(1).
package coord
