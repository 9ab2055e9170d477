package adapt

import (
	"github.com/ccoveille/go-safecast/v2"

	"github.com/authzed/lazyseq/pkg/cursor"
	"github.com/authzed/lazyseq/pkg/lazyerrors"
)

// generateCursor produces values from a zero-argument producer. Position
// state is a counter, so the cursor is random access even though the values
// themselves are computed on every Deref.
type generateCursor[T any] struct {
	fn       func() T
	pos      uint64
	infinite bool
}

var _ cursor.RandomAccess[int] = (*generateCursor[int])(nil)

func (c *generateCursor[T]) Deref() T { return c.fn() }

func (c *generateCursor[T]) Next() { c.pos++ }

func (c *generateCursor[T]) Prev() { c.pos-- }

// Equal never holds for unbounded generators, which is what keeps a
// while-true style traversal running until the consumer stops pulling.
func (c *generateCursor[T]) Equal(other cursor.Cursor[T]) bool {
	o, ok := other.(*generateCursor[T])
	if !ok || c.infinite || o.infinite {
		return false
	}
	return c.pos == o.pos
}

func (c *generateCursor[T]) Tier() cursor.Tier { return cursor.TierRandomAccess }

func (c *generateCursor[T]) Clone() cursor.Cursor[T] {
	dup := *c
	return &dup
}

func (c *generateCursor[T]) Advance(n int) {
	if n >= 0 {
		c.pos += uint64(n)
	} else {
		c.pos -= uint64(-n)
	}
}

func (c *generateCursor[T]) DistanceTo(other cursor.Cursor[T]) int {
	o := other.(*generateCursor[T])
	d, err := safecast.Convert[int](int64(o.pos) - int64(c.pos))
	if err != nil {
		lazyerrors.MustPanic("generator distance overflows int: %v", err)
	}
	return d
}

// Generate returns a view producing amount values by calling fn once per
// dereference. fn owns any state it captures; the view only counts.
func Generate[T any](fn func() T, amount int) cursor.View[T] {
	n, err := safecast.Convert[uint64](amount)
	if err != nil {
		lazyerrors.MustPanic("generate amount must be non-negative, got %d", amount)
	}
	return cursor.NewView[T](
		&generateCursor[T]{fn: fn, pos: 0},
		&generateCursor[T]{fn: fn, pos: n},
	)
}

// GenerateInfinite returns an unbounded generator view. Its cursors never
// compare equal to the end sentinel; consumers must stop pulling themselves.
func GenerateInfinite[T any](fn func() T) cursor.View[T] {
	return cursor.NewView[T](
		&generateCursor[T]{fn: fn, pos: 0, infinite: true},
		&generateCursor[T]{fn: fn, pos: 0, infinite: true},
	)
}
