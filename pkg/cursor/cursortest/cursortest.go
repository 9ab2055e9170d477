// Package cursortest provides cursor wrappers for exercising code against
// weaker capability tiers than the backing sequence offers, in the spirit of
// testing/iotest.
package cursortest

import (
	"github.com/authzed/lazyseq/pkg/cursor"
	"github.com/authzed/lazyseq/pkg/lazyerrors"
)

// limited degrades the reported tier of a cursor and refuses the operations
// above it, so tier dispatch and fail-fast misuse paths can be tested
// against random-access backing storage.
type limited[T any] struct {
	inner cursor.Cursor[T]
	tier  cursor.Tier
}

var _ cursor.RandomAccess[int] = (*limited[int])(nil)

func (c *limited[T]) Deref() T { return c.inner.Deref() }

func (c *limited[T]) Next() { c.inner.Next() }

func (c *limited[T]) Prev() {
	if c.tier < cursor.TierBidirectional {
		lazyerrors.MustPanic("Prev on a %s test cursor", c.tier)
	}
	cursor.MustBidirectional(c.inner).Prev()
}

func (c *limited[T]) Equal(other cursor.Cursor[T]) bool {
	o, ok := other.(*limited[T])
	return ok && c.inner.Equal(o.inner)
}

func (c *limited[T]) Tier() cursor.Tier { return c.tier }

func (c *limited[T]) Clone() cursor.Cursor[T] {
	return &limited[T]{inner: c.inner.Clone(), tier: c.tier}
}

func (c *limited[T]) Advance(n int) {
	if c.tier < cursor.TierRandomAccess {
		lazyerrors.MustPanic("Advance on a %s test cursor", c.tier)
	}
	cursor.MustRandomAccess(c.inner).Advance(n)
}

func (c *limited[T]) DistanceTo(other cursor.Cursor[T]) int {
	if c.tier < cursor.TierRandomAccess {
		lazyerrors.MustPanic("DistanceTo on a %s test cursor", c.tier)
	}
	return cursor.MustRandomAccess(c.inner).DistanceTo(other.(*limited[T]).inner)
}

// Limit returns v downgraded to at most tier.
func Limit[T any](v cursor.View[T], tier cursor.Tier) cursor.View[T] {
	return cursor.NewView[T](
		&limited[T]{inner: v.Begin(), tier: tier},
		&limited[T]{inner: v.End(), tier: tier},
	)
}

// Forward returns v downgraded to a single-pass forward view.
func Forward[T any](v cursor.View[T]) cursor.View[T] {
	return Limit(v, cursor.TierForward)
}
