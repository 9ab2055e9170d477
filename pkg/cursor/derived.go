package cursor

import (
	"github.com/authzed/lazyseq/pkg/lazyerrors"
)

// MustBidirectional asserts that c supports backward motion and returns its
// bidirectional surface. Panics on a forward-only cursor.
func MustBidirectional[T any](c Cursor[T]) Bidirectional[T] {
	bidi, ok := c.(Bidirectional[T])
	if !ok || c.Tier() < TierBidirectional {
		lazyerrors.MustPanic("%s cursor used where a bidirectional cursor is required", c.Tier())
	}
	return bidi
}

// MustRandomAccess asserts that c supports jump and distance arithmetic and
// returns its random-access surface. Panics on anything weaker.
func MustRandomAccess[T any](c Cursor[T]) RandomAccess[T] {
	ra, ok := c.(RandomAccess[T])
	if !ok || c.Tier() < TierRandomAccess {
		lazyerrors.MustPanic("%s cursor used where a random-access cursor is required", c.Tier())
	}
	return ra
}

// NotEqual reports whether a and b refer to different positions.
func NotEqual[T any](a, b Cursor[T]) bool {
	return !a.Equal(b)
}

// Less reports whether a precedes b. Requires random access: the ordering
// comparisons are defined by the sign of the distance between the cursors.
func Less[T any](a, b Cursor[T]) bool {
	return MustRandomAccess(a).DistanceTo(b) > 0
}

// Greater reports whether a follows b. Requires random access.
func Greater[T any](a, b Cursor[T]) bool {
	return MustRandomAccess(a).DistanceTo(b) < 0
}

// LessOrEqual reports whether a does not follow b. Requires random access.
func LessOrEqual[T any](a, b Cursor[T]) bool {
	return !Greater(a, b)
}

// GreaterOrEqual reports whether a does not precede b. Requires random access.
func GreaterOrEqual[T any](a, b Cursor[T]) bool {
	return !Less(a, b)
}

// PostNext advances c and returns a cursor holding the position c had before
// the advance, the post-increment idiom.
func PostNext[T any](c Cursor[T]) Cursor[T] {
	before := c.Clone()
	c.Next()
	return before
}

// PostPrev moves c backward and returns a cursor holding the position c had
// before the move.
func PostPrev[T any](c Cursor[T]) Cursor[T] {
	before := c.Clone()
	MustBidirectional(c).Prev()
	return before
}

// At returns the element n positions after c without moving c.
func At[T any](c Cursor[T], n int) T {
	jumped := c.Clone()
	Advance(jumped, n)
	return jumped.Deref()
}

// Advance moves c by n positions. Random-access cursors jump in O(1);
// weaker cursors step, and stepping backward requires at least a
// bidirectional cursor.
func Advance[T any](c Cursor[T], n int) {
	if c.Tier() >= TierRandomAccess {
		MustRandomAccess(c).Advance(n)
		return
	}
	for ; n > 0; n-- {
		c.Next()
	}
	if n < 0 {
		bidi := MustBidirectional(c)
		for ; n < 0; n++ {
			bidi.Prev()
		}
	}
}

// Distance returns the number of forward steps from from to to. O(1) on
// random-access cursors; otherwise counted by walking, in which case to must
// be reachable from from.
func Distance[T any](from, to Cursor[T]) int {
	if from.Tier() >= TierRandomAccess {
		return MustRandomAccess(from).DistanceTo(to)
	}
	steps := 0
	walker := from.Clone()
	for !walker.Equal(to) {
		walker.Next()
		steps++
	}
	return steps
}
