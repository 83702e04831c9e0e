// Package sorting provides two classic, stable comparison sorts over
// slices: bubble sort and merge sort.
//
// What
//
//   - Bubble / BubbleFunc: in-place adjacent-swap sort. Each pass bubbles
//     the largest remaining element to the end of the unsorted suffix and
//     the pass terminates early once a full sweep performs no swap.
//   - Merge / MergeFunc: divide-and-conquer sort. The slice is split at its
//     midpoint, each half sorted recursively, and the ordered halves merged
//     through one temporary buffer per merge call.
//
// Both sorts are stable: elements that compare equal keep their original
// relative order. Bubble sort is additionally adaptive — an already sorted
// slice costs a single O(n) pass.
//
// Choosing between them
//
//	Bubble sort wins on tiny or nearly-sorted inputs and allocates nothing.
//	Merge sort guarantees O(n log n) regardless of input order at the cost
//	of O(n) auxiliary space per merge; its recursion depth is O(log n).
//
// Complexity
//
//   - Bubble: O(n²) worst/average, O(n) best (sorted input), O(1) space
//   - Merge:  O(n log n) in all cases, O(n) auxiliary space
//
// The ...Func variants accept a caller-supplied strict-weak ordering
// less(a, b); the plain variants use the natural ascending order of
// cmp.Ordered element types.
package sorting
