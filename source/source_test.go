package source

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SliceSource_WindowsPartitionInput(t *testing.T) {
	items := []int{10, 20, 30, 40, 50}
	src := FromSlice(items)

	var got []int
	for src.HasMore() {
		batch := src.Take(2)
		require.NotEmpty(t, batch)
		got = append(got, batch...)
	}

	// Every item exactly once, in order.
	assert.Equal(t, items, got)
	assert.False(t, src.HasMore())
	assert.Nil(t, src.Take(2))
}

func Test_SliceSource_ZeroCopyWindows(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	src := FromSlice(items)

	first := src.Take(3)
	require.Len(t, first, 3)

	// Windows alias the original backing array.
	assert.Same(t, &items[0], &first[0])

	// Appending to a window must not clobber the next one.
	_ = append(first, "x")
	second := src.Take(3)
	require.Len(t, second, 1)
	assert.Equal(t, "d", second[0])
}

func Test_SliceSource_FinalPartialBatch(t *testing.T) {
	src := FromSlice([]int{1, 2, 3})

	assert.Len(t, src.Take(2), 2)
	assert.Len(t, src.Take(2), 1)
	assert.False(t, src.HasMore())
}

func Test_SliceSource_NonPositiveTake(t *testing.T) {
	src := FromSlice([]int{1, 2})

	assert.Nil(t, src.Take(0))
	assert.Nil(t, src.Take(-1))
	assert.True(t, src.HasMore())
}

func Test_SliceSource_Empty(t *testing.T) {
	src := FromSlice([]int{})

	assert.False(t, src.HasMore())
	assert.Nil(t, src.Take(1))
}

func countingSeq(n int, pulls *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			*pulls++
			if !yield(i) {
				return
			}
		}
	}
}

func Test_SeqSource_SinglePass(t *testing.T) {
	pulls := 0
	src := FromSeq(countingSeq(7, &pulls))

	var got []int
	for src.HasMore() {
		got = append(got, src.Take(3)...)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, got)
	// Each item was yielded exactly once.
	assert.Equal(t, 7, pulls)
	assert.False(t, src.HasMore())
	assert.Nil(t, src.Take(1))
}

func Test_SeqSource_FinalBatchShortOnlyWhenExhausted(t *testing.T) {
	pulls := 0
	src := FromSeq(countingSeq(5, &pulls))

	assert.Len(t, src.Take(2), 2)
	assert.Len(t, src.Take(2), 2)

	last := src.Take(2)
	assert.Len(t, last, 1)
	assert.False(t, src.HasMore())
}

func Test_SeqSource_OwnedBatches(t *testing.T) {
	src := FromSeq(func(yield func(string) bool) {
		for _, s := range []string{"a", "b", "c"} {
			if !yield(s) {
				return
			}
		}
	})

	first := src.Take(2)
	second := src.Take(2)

	require.Len(t, first, 2)
	require.Len(t, second, 1)
	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, []string{"c"}, second)
}

func Test_SeqSource_Empty(t *testing.T) {
	src := FromSeq(func(yield func(int) bool) {})

	assert.False(t, src.HasMore())
	assert.Nil(t, src.Take(10))
}
