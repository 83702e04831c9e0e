// Package search provides linear search, binary search, and equal-range
// over slices of any element type.
//
// What
//
//   - Linear / LinearFunc: front-to-back scan for the first element equal
//     to a target (or satisfying a predicate). No ordering precondition.
//   - Binary / BinaryFunc: logarithmic search over a slice sorted by the
//     comparison in use.
//   - EqualRange / EqualRangeFunc: the half-open sub-interval [lo, hi) of
//     all positions equal to the target, computed as two independent
//     binary searches (a lower bound and an upper bound).
//
// Not-found sentinel
//
//	Absence is a normal outcome, not an error: every function reports it
//	as len(s) — the conventional one-past-the-end position. EqualRange
//	reports absence as an empty interval (lo == hi) whose shared bound is
//	the position where the target could be inserted while keeping the
//	slice sorted.
//
// Preconditions
//
//	Binary and EqualRange assume s is sorted by the comparison in use.
//	This is a caller contract, not a runtime-detected error: violating it
//	yields an unspecified (but safe, non-panicking) position.
//
// Complexity
//
//   - Linear, LinearFunc:        O(n) time, O(1) space
//   - Binary, EqualRange:        O(log n) time, O(1) space
package search
