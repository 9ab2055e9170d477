package adapt

import (
	"github.com/authzed/lazyseq/pkg/cursor"
)

// Enumerated pairs an element with its position counter.
type Enumerated[T any] struct {
	Index int
	Value T
}

type enumerateCursor[T any] struct {
	inner cursor.Cursor[T]
	index int
}

var _ cursor.RandomAccess[Enumerated[int]] = (*enumerateCursor[int])(nil)

func (c *enumerateCursor[T]) Deref() Enumerated[T] {
	return Enumerated[T]{Index: c.index, Value: c.inner.Deref()}
}

func (c *enumerateCursor[T]) Next() {
	c.index++
	c.inner.Next()
}

func (c *enumerateCursor[T]) Prev() {
	c.index--
	cursor.MustBidirectional(c.inner).Prev()
}

// Equal compares the wrapped position only; the counter follows it.
func (c *enumerateCursor[T]) Equal(other cursor.Cursor[Enumerated[T]]) bool {
	o, ok := other.(*enumerateCursor[T])
	return ok && c.inner.Equal(o.inner)
}

func (c *enumerateCursor[T]) Tier() cursor.Tier { return c.inner.Tier() }

func (c *enumerateCursor[T]) Clone() cursor.Cursor[Enumerated[T]] {
	return &enumerateCursor[T]{inner: c.inner.Clone(), index: c.index}
}

func (c *enumerateCursor[T]) Advance(n int) {
	c.index += n
	cursor.MustRandomAccess(c.inner).Advance(n)
}

func (c *enumerateCursor[T]) DistanceTo(other cursor.Cursor[Enumerated[T]]) int {
	return cursor.MustRandomAccess(c.inner).DistanceTo(other.(*enumerateCursor[T]).inner)
}

// Enumerate pairs each element of v with a counter starting at zero. The
// resulting view has the same tier as v.
func Enumerate[T any](v cursor.View[T]) cursor.View[Enumerated[T]] {
	return EnumerateFrom(v, 0)
}

// EnumerateFrom pairs each element of v with a counter starting at start.
func EnumerateFrom[T any](v cursor.View[T], start int) cursor.View[Enumerated[T]] {
	begin := v.Begin()
	end := v.End()
	return cursor.NewView[Enumerated[T]](
		&enumerateCursor[T]{inner: begin, index: start},
		&enumerateCursor[T]{inner: end, index: start + cursor.Distance(begin, end)},
	)
}
