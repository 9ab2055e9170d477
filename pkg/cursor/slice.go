package cursor

// sliceCursor is the canonical random-access leaf cursor: a position over a
// Go slice. It holds the slice header, never a copy of the elements.
type sliceCursor[T any] struct {
	data []T
	pos  int
}

var _ RandomAccess[int] = (*sliceCursor[int])(nil)

func (c *sliceCursor[T]) Deref() T { return c.data[c.pos] }

func (c *sliceCursor[T]) Next() { c.pos++ }

func (c *sliceCursor[T]) Prev() { c.pos-- }

// Equal compares positions. Two independently constructed cursors over the
// same boundaries compare equal.
func (c *sliceCursor[T]) Equal(other Cursor[T]) bool {
	o, ok := other.(*sliceCursor[T])
	return ok && o.pos == c.pos && len(o.data) == len(c.data)
}

func (c *sliceCursor[T]) Tier() Tier { return TierRandomAccess }

func (c *sliceCursor[T]) Clone() Cursor[T] {
	dup := *c
	return &dup
}

func (c *sliceCursor[T]) Advance(n int) { c.pos += n }

func (c *sliceCursor[T]) DistanceTo(other Cursor[T]) int {
	return other.(*sliceCursor[T]).pos - c.pos
}

// FromSlice exposes data as a random-access view. The view references data
// directly; mutating the slice while traversing is visible to the cursors.
func FromSlice[T any](data []T) View[T] {
	return NewView[T](
		&sliceCursor[T]{data: data, pos: 0},
		&sliceCursor[T]{data: data, pos: len(data)},
	)
}
