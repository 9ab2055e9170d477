// Package product implements the N-ary cartesian-product cursor: a
// mixed-radix odometer over N independently-sized dimensions, enumerated in
// lexicographic order with the last dimension varying fastest.
package product

import (
	"github.com/authzed/lazyseq/pkg/cursor"
	"github.com/authzed/lazyseq/pkg/lazyerrors"
)

// Tuple is one combination of the product: the dereferenced element of every
// dimension, in dimension order.
type Tuple = []any

// Cursor enumerates the cartesian product of its dimensions. It holds three
// parallel cursor slices: the begin, current and end position of each
// dimension. Only the current positions ever move.
//
// The exhausted state is canonical: every dimension sits at its end, so
// full-tuple equality against the end sentinel holds and comparing dimension
// zero alone suffices as the cheap end check.
type Cursor struct {
	begin []cursor.Cursor[any]
	cur   []cursor.Cursor[any]
	end   []cursor.Cursor[any]
	tier  cursor.Tier
}

var _ cursor.RandomAccess[Tuple] = (*Cursor)(nil)

// New composes dims into a view over their cartesian product. At least two
// dimensions are required; anything less is a structural bug at the call
// site. An empty dimension anywhere yields an immediately empty view without
// any dereference.
//
// The view's tier is the weakest tier among the dimensions.
func New(dims ...cursor.View[any]) (cursor.View[Tuple], error) {
	if len(dims) < 2 {
		return cursor.View[Tuple]{}, lazyerrors.MustBugf("cartesian product requires at least 2 dimensions, got %d", len(dims))
	}

	n := len(dims)
	begin := make([]cursor.Cursor[any], n)
	end := make([]cursor.Cursor[any], n)
	tiers := make([]cursor.Tier, n)
	empty := false
	for i, dim := range dims {
		begin[i] = dim.Begin()
		end[i] = dim.End()
		tiers[i] = dim.Tier()
		empty = empty || dim.IsEmpty()
	}
	tier := cursor.MinTier(tiers...)

	first := &Cursor{begin: begin, cur: cloneAll(begin), end: end, tier: tier}
	if empty {
		first.cur = cloneAll(end)
	}
	last := &Cursor{begin: begin, cur: cloneAll(end), end: end, tier: tier}
	return cursor.NewView[Tuple](first, last), nil
}

// MustNew is New for statically known dimension counts.
func MustNew(dims ...cursor.View[any]) cursor.View[Tuple] {
	v, err := New(dims...)
	if err != nil {
		panic(err)
	}
	return v
}

func cloneAll(cursors []cursor.Cursor[any]) []cursor.Cursor[any] {
	dup := make([]cursor.Cursor[any], len(cursors))
	for i, c := range cursors {
		dup[i] = c.Clone()
	}
	return dup
}

// Deref produces the tuple of every dimension's current element.
func (c *Cursor) Deref() Tuple {
	tuple := make(Tuple, len(c.cur))
	for i, dim := range c.cur {
		tuple[i] = dim.Deref()
	}
	return tuple
}

// Next advances the fastest dimension and carries leftward: a dimension that
// reaches its end resets to its begin and increments the next-slower one.
// When dimension zero itself reaches its end the cursor normalizes to the
// canonical exhausted state.
func (c *Cursor) Next() {
	for i := len(c.cur) - 1; ; i-- {
		c.cur[i].Next()
		if !c.cur[i].Equal(c.end[i]) {
			break
		}
		if i == 0 {
			break
		}
		c.cur[i] = c.begin[i].Clone()
	}
	c.normalizeEnd()
}

// normalizeEnd canonicalizes the exhausted state once dimension zero lands
// on its end.
func (c *Cursor) normalizeEnd() {
	if c.cur[0].Equal(c.end[0]) {
		c.cur = cloneAll(c.end)
	}
}

func (c *Cursor) atEnd() bool {
	for i, dim := range c.cur {
		if !dim.Equal(c.end[i]) {
			return false
		}
	}
	return true
}

// Prev moves one combination backward with borrow propagation: a dimension
// sitting at its begin wraps to its last element and borrows from the
// next-slower dimension. From the exhausted state every dimension holds a
// sentinel rather than a real position, so it is restored directly to its
// last element instead.
func (c *Cursor) Prev() {
	if c.tier < cursor.TierBidirectional {
		lazyerrors.MustPanic("%s cartesian product cursor cannot move backward", c.tier)
	}
	if c.atEnd() {
		for _, dim := range c.cur {
			cursor.MustBidirectional(dim).Prev()
		}
		return
	}
	for i := len(c.cur) - 1; ; i-- {
		if !c.cur[i].Equal(c.begin[i]) {
			cursor.MustBidirectional(c.cur[i]).Prev()
			return
		}
		if i == 0 {
			return
		}
		wrapped := c.end[i].Clone()
		cursor.MustBidirectional(wrapped).Prev()
		c.cur[i] = wrapped
	}
}

// Advance jumps by offset combinations, distributing it right-to-left as a
// mixed-radix number. Each dimension absorbs the remainder of dividing by
// its remaining capacity and pushes the quotient, now counted in that
// dimension's wraps, one dimension leftward. A negative offset first
// normalizes the reference point: a dimension sitting at its begin wraps to
// its end before the backward distance is measured.
//
// Once the offset is fully absorbed the remaining dimensions are left
// untouched; a dimension at its end has zero remaining capacity, so dividing
// an exhausted offset by it is never attempted. A zero offset is a no-op
// everywhere, the terminal state included.
func (c *Cursor) Advance(offset int) {
	if c.tier < cursor.TierRandomAccess {
		lazyerrors.MustPanic("%s cartesian product cursor cannot jump", c.tier)
	}
	for i := len(c.cur) - 1; i > 0 && offset != 0; i-- {
		var capacity int
		if offset < 0 {
			if c.cur[i].Equal(c.begin[i]) {
				c.cur[i] = c.end[i].Clone()
				capacity = cursor.MustRandomAccess(c.begin[i]).DistanceTo(c.cur[i])
			} else {
				capacity = cursor.MustRandomAccess(c.begin[i]).DistanceTo(c.cur[i]) + 1
			}
		} else {
			capacity = cursor.MustRandomAccess(c.cur[i]).DistanceTo(c.end[i])
		}
		quotient, remainder := offset/capacity, offset%capacity
		cursor.MustRandomAccess(c.cur[i]).Advance(remainder)
		offset = quotient
	}
	cursor.MustRandomAccess(c.cur[0]).Advance(offset)
	c.normalizeEnd()
}

// Equal compares the full tuple of current positions. Comparing against the
// end sentinel only ever needs dimension zero, but two mid-product cursors
// need every dimension.
func (c *Cursor) Equal(other cursor.Cursor[Tuple]) bool {
	o, ok := other.(*Cursor)
	if !ok || len(o.cur) != len(c.cur) {
		return false
	}
	for i, dim := range c.cur {
		if !dim.Equal(o.cur[i]) {
			return false
		}
	}
	return true
}

func (c *Cursor) Tier() cursor.Tier { return c.tier }

func (c *Cursor) Clone() cursor.Cursor[Tuple] {
	return &Cursor{begin: c.begin, cur: cloneAll(c.cur), end: c.end, tier: c.tier}
}

// DistanceTo returns the signed difference of the two cursors' linearized
// positions. A position linearizes as a mixed-radix number whose radix per
// dimension is that dimension's size; the canonical exhausted state
// linearizes to the product of all sizes.
func (c *Cursor) DistanceTo(other cursor.Cursor[Tuple]) int {
	if c.tier < cursor.TierRandomAccess {
		lazyerrors.MustPanic("%s cartesian product cursor cannot measure distance", c.tier)
	}
	o := other.(*Cursor)
	return o.linearIndex() - c.linearIndex()
}

func (c *Cursor) linearIndex() int {
	if c.cur[0].Equal(c.end[0]) {
		total := 1
		for i := range c.cur {
			total *= c.size(i)
		}
		return total
	}
	index := 0
	for i := range c.cur {
		index = index*c.size(i) + cursor.MustRandomAccess(c.begin[i]).DistanceTo(c.cur[i])
	}
	return index
}

func (c *Cursor) size(i int) int {
	return cursor.MustRandomAccess(c.begin[i]).DistanceTo(c.end[i])
}
