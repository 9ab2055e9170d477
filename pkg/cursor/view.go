package cursor

import (
	"iter"
)

// View is a (begin, end) cursor pair exposed as a traversable range. It is
// the only object consumers interact with directly: composed views are built
// by the adaptor factories and drained through Seq, Collect or manual cursor
// walks.
type View[T any] struct {
	begin Cursor[T]
	end   Cursor[T]
}

// NewView pairs a begin and end cursor constructed from the same sequence
// boundaries.
func NewView[T any](begin, end Cursor[T]) View[T] {
	return View[T]{begin: begin, end: end}
}

// Begin returns an independent cursor at the first position.
func (v View[T]) Begin() Cursor[T] { return v.begin.Clone() }

// End returns an independent cursor at the end sentinel.
func (v View[T]) End() Cursor[T] { return v.end.Clone() }

// Tier reports the capability tier of the view's cursors.
func (v View[T]) Tier() Tier { return v.begin.Tier() }

// IsEmpty reports whether the view contains no elements.
func (v View[T]) IsEmpty() bool { return v.begin.Equal(v.end) }

// Count returns the number of elements in the view. O(1) for random-access
// views, a full walk otherwise.
func (v View[T]) Count() int { return Distance(v.begin, v.end) }

// Seq bridges the view to a standard range-over-func iterator. Traversal is
// pull-based and single-threaded; nothing is materialized.
func (v View[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := v.Begin(); !cur.Equal(v.end); cur.Next() {
			if !yield(cur.Deref()) {
				return
			}
		}
	}
}

// Collect materializes the view into a slice with a single forward pass.
func (v View[T]) Collect() []T {
	var out []T
	for cur := v.Begin(); !cur.Equal(v.end); cur.Next() {
		out = append(out, cur.Deref())
	}
	return out
}
