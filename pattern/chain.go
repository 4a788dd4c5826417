// SPDX-License-Identifier: MIT

// Package pattern: Chain, a runtime composition of primitive operations.
//
// Design notes:
//   - A chain is an explicit ordered list of Ops applied first-to-last;
//     the declaration order IS the execution order. This replaces nested
//     compile-time composition, where the innermost-declared operation ran
//     first, with a form a reader can verify at a glance.
//   - The same integer parameter is handed to every operation in the chain
//     (operations that need none ignore it).

package pattern

// Chain is an ordered composition of unary operations over an index
// sequence. The zero Chain is valid and applies nothing.
type Chain struct {
	ops []Op // applied in slice order, first-to-last
}

// NewChain returns a Chain applying ops in the given order.
// Complexity: O(1).
func NewChain(ops ...Op) Chain { return Chain{ops: ops} }

// Apply runs every operation of the chain over v with parameter e and
// returns the transformed sequence. Callers must use the returned slice.
// Complexity: sum of the operations' costs.
func (c Chain) Apply(v []int, e int) []int {
	for _, op := range c.ops {
		v = op(v, e)
	}

	return v
}

// Sorted returns the canonical plain-pattern chain: push-back the new
// element, then sort+dedupe. Net effect: insert one index, keep the
// sequence sorted and unique. Used for plain CSR-style row patterns.
// Idempotent when e is already present in a sorted, duplicate-free v.
func Sorted() Chain {
	return NewChain(PushBack, SortUnique)
}

// DiagonalFirst returns the canonical diagonal-first chain:
// remove-value(self) → sort+dedupe → push-front(self). Net effect, given a
// sequence already containing the self index among others: strip it,
// sort+dedupe the remainder, then place the self index back at the front.
// Used by solvers that require the diagonal entry stored first per row.
//
// Idempotent when the self index is already correctly placed; an empty
// input yields the one-element sequence [self].
func DiagonalFirst() Chain {
	return NewChain(RemoveValue, SortUnique, PushFront)
}
