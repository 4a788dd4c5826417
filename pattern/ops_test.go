// Package pattern_test contains unit tests for the primitive operations.
package pattern_test

import (
	"testing"

	"github.com/pmaciel/lssio/pattern"
	"github.com/stretchr/testify/require"
)

// TestSortUnique covers sorting, adjacent-duplicate collapse and the edge
// cases of empty and single-element input.
func TestSortUnique(t *testing.T) {
	require.Equal(t, []int{2, 5, 9}, pattern.SortUnique([]int{9, 2, 5, 2, 9, 2}, 0))
	require.Equal(t, []int{7}, pattern.SortUnique([]int{7, 7, 7}, 0))
	require.Empty(t, pattern.SortUnique(nil, 0))
}

// TestPushFrontPushBack pins insertion positions; neither op sorts or
// deduplicates.
func TestPushFrontPushBack(t *testing.T) {
	require.Equal(t, []int{7, 5, 2}, pattern.PushFront([]int{5, 2}, 7))
	require.Equal(t, []int{7}, pattern.PushFront(nil, 7))

	require.Equal(t, []int{5, 2, 5}, pattern.PushBack([]int{5, 2}, 5)) // duplicate kept
	require.Equal(t, []int{3}, pattern.PushBack(nil, 3))
}

// TestRemoveValue deletes every occurrence and preserves survivor order.
func TestRemoveValue(t *testing.T) {
	require.Equal(t, []int{5, 9}, pattern.RemoveValue([]int{2, 5, 2, 9, 2}, 2))
	require.Equal(t, []int{2, 5}, pattern.RemoveValue([]int{2, 5}, 8)) // absent value is a no-op
	require.Empty(t, pattern.RemoveValue([]int{4, 4}, 4))
}

// TestShiftComposability verifies shift(+1)∘shift(+1) == shift(+2) and that
// shift(-1) after shift(+1) is the identity.
func TestShiftComposability(t *testing.T) {
	twice := pattern.Shift(pattern.Shift([]int{0, 3, 8}, 1), 1)
	once := pattern.Shift([]int{0, 3, 8}, 2)
	require.Equal(t, once, twice)

	roundTrip := pattern.Shift(pattern.Shift([]int{0, 3, 8}, 1), -1)
	require.Equal(t, []int{0, 3, 8}, roundTrip)
}

// TestShiftRebasesIndices pins the 0-based ↔ 1-based conversion use.
func TestShiftRebasesIndices(t *testing.T) {
	require.Equal(t, []int{1, 2, 4}, pattern.Shift([]int{0, 1, 3}, 1))
	require.Equal(t, []int{0, 1, 3}, pattern.Shift([]int{1, 2, 4}, -1))
}
