package sorting

import "cmp"

// Merge sorts s in place into ascending natural order using merge sort.
// Stable; O(n log n) in all cases with O(n) auxiliary space per merge.
func Merge[E cmp.Ordered](s []E) {
	MergeFunc(s, cmp.Less[E])
}

// MergeFunc sorts s in place by the strict ordering less.
//
// The slice is split at its midpoint, both halves are sorted recursively
// (ranges of length ≤ 1 are already ordered), and the ordered halves are
// merged through a temporary buffer sized to the merged length. Ties are
// taken from the left half first, which preserves the relative order of
// equal elements. Recursion depth is O(log n); each level's buffer is
// released before the call returns.
func MergeFunc[E any](s []E, less func(a, b E) bool) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	MergeFunc(s[:mid], less)
	MergeFunc(s[mid:], less)
	merge(s, mid, less)
}

// merge combines the ordered halves s[:mid] and s[mid:] back into s.
func merge[E any](s []E, mid int, less func(a, b E) bool) {
	tmp := make([]E, 0, len(s))

	left, right := 0, mid
	for left < mid && right < len(s) {
		// take from the left unless the right is strictly smaller (stability)
		if less(s[right], s[left]) {
			tmp = append(tmp, s[right])
			right++
		} else {
			tmp = append(tmp, s[left])
			left++
		}
	}
	tmp = append(tmp, s[left:mid]...)
	tmp = append(tmp, s[right:]...)

	copy(s, tmp)
}
