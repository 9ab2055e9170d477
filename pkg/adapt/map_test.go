package adapt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authzed/lazyseq/pkg/adapt"
	"github.com/authzed/lazyseq/pkg/cursor"
	"github.com/authzed/lazyseq/pkg/cursor/cursortest"
)

func TestMap(t *testing.T) {
	t.Run("transforms lazily on dereference", func(t *testing.T) {
		calls := 0
		v := adapt.Map(cursor.FromSlice([]int{1, 2, 3}), func(x int) int {
			calls++
			return x * x
		})
		require.Zero(t, calls, "construction must not evaluate anything")
		require.Equal(t, []int{1, 4, 9}, v.Collect())
		require.Equal(t, 3, calls)
	})

	t.Run("changes the element type", func(t *testing.T) {
		v := adapt.Map(cursor.FromSlice([]int{7, 8}), strconv.Itoa)
		require.Equal(t, []string{"7", "8"}, v.Collect())
	})

	t.Run("preserves the tier of its input", func(t *testing.T) {
		src := cursor.FromSlice([]int{1, 2, 3})
		require.Equal(t, cursor.TierRandomAccess, adapt.Map(src, strconv.Itoa).Tier())
		require.Equal(t, cursor.TierForward, adapt.Map(cursortest.Forward(src), strconv.Itoa).Tier())
	})

	t.Run("random access passes through", func(t *testing.T) {
		v := adapt.Map(cursor.FromSlice([]int{1, 2, 3, 4}), func(x int) int { return -x })
		require.Equal(t, -3, cursor.At(v.Begin(), 2))
		require.Equal(t, 4, v.Count())

		c := cursor.MustRandomAccess(v.Begin())
		c.Advance(3)
		c.Prev()
		require.Equal(t, -3, c.Deref())
	})

	t.Run("jump on a forward input panics", func(t *testing.T) {
		v := adapt.Map(cursortest.Forward(cursor.FromSlice([]int{1, 2})), func(x int) int { return x })
		require.Panics(t, func() { cursor.MustRandomAccess(v.Begin()).Advance(1) })
	})
}

func TestErase(t *testing.T) {
	v := adapt.Erase(cursor.FromSlice([]string{"a", "b"}))
	require.Equal(t, []any{"a", "b"}, v.Collect())
	require.Equal(t, cursor.TierRandomAccess, v.Tier())
}
