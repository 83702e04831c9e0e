// Package fibonacci computes terms of Fibonacci-style linear recurrences.
//
// A term obeys v[i] = v[i-1] + v[i-2] with caller-chosen seeds v[0], v[1].
// Term uses the standard seeds 0 and 1; TermFrom accepts any seeds of any
// Addable type — including strings, where + concatenates.
//
// Terms are computed iteratively by rolling two accumulators forward:
// O(n) time, O(1) space, never recursion — so there is no stack growth
// and no duplicated subcomputation.
//
// Errors:
//
//   - ErrNegativeIndex — the requested index is negative.
//
// Correctness under exotic types assumes a + b == b + a; the recurrence
// itself never relies on commutativity, but mixed-seed expectations do.
package fibonacci
