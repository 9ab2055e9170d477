package adapt

import (
	"github.com/authzed/lazyseq/pkg/cursor"
)

// mapCursor lazily transforms each dereferenced element. The transformed
// value is computed on every Deref; nothing is cached or materialized.
type mapCursor[T, R any] struct {
	inner cursor.Cursor[T]
	fn    func(T) R
}

var _ cursor.RandomAccess[int] = (*mapCursor[int, int])(nil)

func (c *mapCursor[T, R]) Deref() R { return c.fn(c.inner.Deref()) }

func (c *mapCursor[T, R]) Next() { c.inner.Next() }

func (c *mapCursor[T, R]) Prev() { cursor.MustBidirectional(c.inner).Prev() }

func (c *mapCursor[T, R]) Equal(other cursor.Cursor[R]) bool {
	o, ok := other.(*mapCursor[T, R])
	return ok && c.inner.Equal(o.inner)
}

func (c *mapCursor[T, R]) Tier() cursor.Tier { return c.inner.Tier() }

func (c *mapCursor[T, R]) Clone() cursor.Cursor[R] {
	return &mapCursor[T, R]{inner: c.inner.Clone(), fn: c.fn}
}

func (c *mapCursor[T, R]) Advance(n int) {
	cursor.MustRandomAccess(c.inner).Advance(n)
}

func (c *mapCursor[T, R]) DistanceTo(other cursor.Cursor[R]) int {
	return cursor.MustRandomAccess(c.inner).DistanceTo(other.(*mapCursor[T, R]).inner)
}

// Map returns a view applying fn to each element of v on demand. The
// resulting view has the same tier as v.
func Map[T, R any](v cursor.View[T], fn func(T) R) cursor.View[R] {
	return cursor.NewView[R](
		&mapCursor[T, R]{inner: v.Begin(), fn: fn},
		&mapCursor[T, R]{inner: v.End(), fn: fn},
	)
}

// Erase maps a typed view to a view of any. Cartesian-product dimensions of
// heterogeneous element types are erased with this before composition.
func Erase[T any](v cursor.View[T]) cursor.View[any] {
	return Map(v, func(value T) any { return value })
}
