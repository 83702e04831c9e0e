package fibonacci

import "errors"

// ErrNegativeIndex is returned when a negative term index is requested.
var ErrNegativeIndex = errors.New("fibonacci: index must be non-negative")

// Addable constrains the value types a recurrence can roll forward:
// anything Go's + operator accepts, numbers and strings alike.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~string
}

// Term returns the n-th Fibonacci number with the standard seeds 0 and 1.
// Complexity: O(n) time, O(1) space.
func Term(n int) (int, error) {
	return TermFrom(n, 0, 1)
}

// TermFrom returns the n-th term of the recurrence v[i] = v[i-1] + v[i-2]
// seeded with v[0] = v0 and v[1] = v1.
//
// The term is computed iteratively by rolling two accumulators forward;
// no recursion, no memo table. Returns ErrNegativeIndex when n < 0.
func TermFrom[T Addable](n int, v0, v1 T) (T, error) {
	if n < 0 {
		var zero T
		return zero, ErrNegativeIndex
	}

	if n == 0 {
		return v0, nil
	}
	for i := 2; i <= n; i++ {
		v0, v1 = v1, v0+v1
	}

	return v1, nil
}
