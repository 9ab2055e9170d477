package adapt

import (
	"github.com/authzed/lazyseq/pkg/cursor"
)

// exceptCursor filters out elements present in a reference range. The
// reference range is scanned linearly per candidate element and is never
// materialized, matching the non-owning discipline of the contract.
type exceptCursor[T comparable] struct {
	inner    cursor.Cursor[T]
	end      cursor.Cursor[T]
	excluded cursor.View[T]
}

var _ cursor.Cursor[int] = (*exceptCursor[int])(nil)

func (c *exceptCursor[T]) skipExcluded() {
	for !c.inner.Equal(c.end) && c.isExcluded(c.inner.Deref()) {
		c.inner.Next()
	}
}

func (c *exceptCursor[T]) isExcluded(value T) bool {
	endEx := c.excluded.End()
	for ex := c.excluded.Begin(); !ex.Equal(endEx); ex.Next() {
		if ex.Deref() == value {
			return true
		}
	}
	return false
}

func (c *exceptCursor[T]) Deref() T { return c.inner.Deref() }

func (c *exceptCursor[T]) Next() {
	c.inner.Next()
	c.skipExcluded()
}

func (c *exceptCursor[T]) Equal(other cursor.Cursor[T]) bool {
	o, ok := other.(*exceptCursor[T])
	return ok && c.inner.Equal(o.inner)
}

// Tier is always forward: the skip scan makes positions irregular, so
// neither reverse motion nor jump arithmetic is meaningful.
func (c *exceptCursor[T]) Tier() cursor.Tier { return cursor.TierForward }

func (c *exceptCursor[T]) Clone() cursor.Cursor[T] {
	return &exceptCursor[T]{
		inner:    c.inner.Clone(),
		end:      c.end,
		excluded: c.excluded,
	}
}

// Except returns a view over the elements of src absent from toExcept.
// Always forward tier.
func Except[T comparable](src, toExcept cursor.View[T]) cursor.View[T] {
	begin := &exceptCursor[T]{inner: src.Begin(), end: src.End(), excluded: toExcept}
	begin.skipExcluded()
	end := &exceptCursor[T]{inner: src.End(), end: src.End(), excluded: toExcept}
	return cursor.NewView[T](begin, end)
}
