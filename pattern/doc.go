// Package pattern builds sparsity patterns: ordered sequences of integer
// indices describing, for one row (or column) of a sparse matrix, the set
// of columns (or rows) holding nonzeros.
//
// The package provides:
//
//   - Five primitive operations over an index sequence (sort+dedupe,
//     push-front, push-back, remove-by-value, shift-by-offset), each taking
//     the sequence plus one integer parameter.
//   - Chain, a runtime composition of those operations applied in declared
//     first-to-last order.
//   - Two canonical chains: Sorted (insert one index, keep the sequence
//     sorted and unique, for plain CSR-style row patterns) and
//     DiagonalFirst (self index exactly once at position 0, remaining
//     indices sorted ascending after it, for solvers that require the
//     diagonal entry stored first).
//
// Both canonical chains are idempotent: re-applying one to an already
// correctly shaped sequence with the same self index produces no change.
// Shift doubles as the index-base conversion tool (0-based ↔ 1-based).
//
// Patterns are mutated only through chains; nothing here mutates a
// sequence element-by-element behind the caller's back. Ops follow the
// append idiom: they may reallocate and always return the resulting slice.
package pattern
