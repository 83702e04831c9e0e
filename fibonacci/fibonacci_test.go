package fibonacci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/fibonacci"
)

// TestTerm_StandardSequence pins the first eleven terms of the default seeds.
func TestTerm_StandardSequence(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		got, err := fibonacci.Term(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, w, got, "n=%d", n)
	}
}

func TestTerm_NegativeIndex(t *testing.T) {
	for _, n := range []int{-1, -7, -1000} {
		_, err := fibonacci.Term(n)
		assert.ErrorIs(t, err, fibonacci.ErrNegativeIndex, "n=%d", n)
	}
}

// TestTermFrom_CustomSeeds exercises the Lucas numbers (seeds 2, 1).
func TestTermFrom_CustomSeeds(t *testing.T) {
	want := []int{2, 1, 3, 4, 7, 11, 18, 29}
	for n, w := range want {
		got, err := fibonacci.TermFrom(n, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, w, got, "n=%d", n)
	}
}

func TestTermFrom_FloatSeeds(t *testing.T) {
	// 0.5, 0.5, 1.0, 1.5, 2.5
	got, err := fibonacci.TermFrom(4, 0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)
}

// TestTermFrom_Strings uses + as concatenation; the recurrence still holds.
func TestTermFrom_Strings(t *testing.T) {
	// a, b, ab, bab, abbab, ...
	got, err := fibonacci.TermFrom(4, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "abbab", got)
}

func TestTermFrom_NegativeIndexZeroValue(t *testing.T) {
	got, err := fibonacci.TermFrom(-3, "a", "b")
	assert.ErrorIs(t, err, fibonacci.ErrNegativeIndex)
	assert.Equal(t, "", got, "errors must carry the zero value")
}

// TestTerm_LargerIndex guards the iterative rollover at a non-trivial index.
func TestTerm_LargerIndex(t *testing.T) {
	got, err := fibonacci.Term(40)
	require.NoError(t, err)
	assert.Equal(t, 102334155, got)
}
