package sorting

import "cmp"

// Bubble sorts s in place into ascending natural order.
// Stable and adaptive: equal elements never swap, and an already sorted
// slice costs a single pass.
// Complexity: O(n²) worst/average, O(n) best, O(1) extra space.
func Bubble[E cmp.Ordered](s []E) {
	BubbleFunc(s, cmp.Less[E])
}

// BubbleFunc sorts s in place by the strict ordering less.
//
// Each pass scans adjacent pairs left to right, swapping any pair out of
// order; the largest remaining element is guaranteed in place after each
// pass, so the unsorted suffix shrinks by one. A pass without swaps means
// the slice is sorted and the sort exits early.
func BubbleFunc[E any](s []E, less func(a, b E) bool) {
	if len(s) < 2 {
		return
	}

	end := len(s)
	for swapped := true; swapped && end > 1; end-- {
		swapped = false
		for i := 1; i < end; i++ {
			// swap only on strict inversion, so equal elements keep order
			if less(s[i], s[i-1]) {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = true
			}
		}
	}
}
