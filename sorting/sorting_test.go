package sorting_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/sorting"
)

// keyed carries a sort key plus a marker to observe stability.
type keyed struct {
	key int
	tag string
}

func byKey(a, b keyed) bool { return a.key < b.key }

// sorters enumerates both algorithms so every property is checked twice.
var sorters = []struct {
	name string
	sort func([]keyed, func(a, b keyed) bool)
	ints func([]int)
}{
	{"bubble", sorting.BubbleFunc[keyed], sorting.Bubble[int]},
	{"merge", sorting.MergeFunc[keyed], sorting.Merge[int]},
}

func TestSort_Basic(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			in := []int{64, 34, 25, 12, 22, 11, 90}
			s.ints(in)
			assert.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, in)
		})
	}
}

func TestSort_EdgeInputs(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			empty := []int{}
			s.ints(empty)
			assert.Empty(t, empty)

			single := []int{7}
			s.ints(single)
			assert.Equal(t, []int{7}, single)

			reversed := []int{5, 4, 3, 2, 1}
			s.ints(reversed)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, reversed)

			dups := []int{2, 2, 2, 2}
			s.ints(dups)
			assert.Equal(t, []int{2, 2, 2, 2}, dups)
		})
	}
}

// TestSort_PermutationAndOrder checks the two core properties on random
// input: the output is non-decreasing and is a permutation of the input.
func TestSort_PermutationAndOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			in := make([]int, 500)
			for i := range in {
				in[i] = rnd.Intn(100)
			}
			want := slices.Clone(in)
			slices.Sort(want)

			s.ints(in)
			assert.Equal(t, want, in)
		})
	}
}

// TestSort_Idempotent verifies re-sorting a sorted slice is a no-op.
func TestSort_Idempotent(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			in := []int{1, 2, 3, 4, 5, 5, 6}
			want := slices.Clone(in)
			s.ints(in)
			require.Equal(t, want, in)
			s.ints(in)
			assert.Equal(t, want, in)
		})
	}
}

// TestSort_Stability verifies equal keys keep their original relative
// order, observed through tags the comparison never sees.
func TestSort_Stability(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			in := []keyed{
				{3, "a"}, {1, "b"}, {3, "c"}, {2, "d"},
				{1, "e"}, {3, "f"}, {2, "g"},
			}
			s.sort(in, byKey)

			keys := make([]int, len(in))
			tags := make([]string, len(in))
			for i, e := range in {
				keys[i] = e.key
				tags[i] = e.tag
			}
			assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 3}, keys)
			assert.Equal(t, []string{"b", "e", "d", "g", "a", "c", "f"}, tags,
				"equal keys must preserve input order")
		})
	}
}

func TestSort_CustomComparison(t *testing.T) {
	desc := func(a, b int) bool { return a > b }

	in := []int{3, 1, 4, 1, 5}
	sorting.BubbleFunc(in, desc)
	assert.Equal(t, []int{5, 4, 3, 1, 1}, in)

	in = []int{3, 1, 4, 1, 5}
	sorting.MergeFunc(in, desc)
	assert.Equal(t, []int{5, 4, 3, 1, 1}, in)
}
