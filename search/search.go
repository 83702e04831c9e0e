package search

import "cmp"

// Linear scans s front to back and returns the position of the first
// element equal to target, or len(s) if no element matches.
// Works on unsorted data; stops at the first hit.
// Complexity: O(n) time, O(1) space.
func Linear[E comparable](s []E, target E) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}

	return len(s)
}

// LinearFunc scans s front to back and returns the position of the first
// element satisfying pred, or len(s) if none does.
// Complexity: O(n) time, O(1) space.
func LinearFunc[E any](s []E, pred func(E) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}

	return len(s)
}

// Binary searches s, sorted in ascending natural order, for target.
// Returns a position holding target, or len(s) if absent.
// Sortedness is a caller precondition and is not checked.
// Complexity: O(log n) time, O(1) space.
func Binary[E cmp.Ordered](s []E, target E) int {
	return BinaryFunc(s, target, cmp.Less[E])
}

// BinaryFunc searches s, sorted by less, for target. At each step the
// interval is halved: the right half is kept when the midpoint is less
// than target, the left half when target is less than the midpoint, and
// the midpoint position is returned otherwise.
// Returns len(s) if the interval is exhausted.
func BinaryFunc[E any](s []E, target E, less func(a, b E) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch {
		case less(s[mid], target):
			lo = mid + 1
		case less(target, s[mid]):
			hi = mid
		default:
			return mid
		}
	}

	return len(s)
}

// EqualRange returns the half-open interval [lo, hi) of positions in s,
// sorted in ascending natural order, whose elements equal target.
// If target is absent, lo == hi and both point at the position where
// target could be inserted to keep s sorted.
// Complexity: two independent O(log n) searches.
func EqualRange[E cmp.Ordered](s []E, target E) (lo, hi int) {
	return EqualRangeFunc(s, target, cmp.Less[E])
}

// EqualRangeFunc is EqualRange under a caller-supplied ordering.
func EqualRangeFunc[E any](s []E, target E, less func(a, b E) bool) (lo, hi int) {
	return lowerBound(s, target, less), upperBound(s, target, less)
}

// lowerBound returns the first position whose element is not less than target.
func lowerBound[E any](s []E, target E, less func(a, b E) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(s[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// upperBound returns the first position whose element is greater than target.
func upperBound[E any](s []E, target E, less func(a, b E) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if less(target, s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}
