// Package join implements a sorted-merge equi-join over two cursor views:
// for each element of A, in order, every element of B whose derived key
// compares equal. B must already be sorted ascending by its key; the cursor
// never verifies this, and an unsorted B yields incomplete or duplicated
// matches rather than an error.
//
// Match-finding is a lower-bound search over the remaining B range, resumed
// from the last matched position, which keeps the serial join at
// O(|A| log |B|) for random-access B.
package join

import (
	"cmp"

	"github.com/authzed/lazyseq/pkg/cursor"
)

// Policy selects how findNext scans A's remaining range.
type Policy uint8

const (
	// PolicySerial scans A strictly in order. Matches are emitted in A
	// order; B-side duplicates for one key are followed before A advances.
	PolicySerial Policy = iota

	// PolicyParallel scans A's remaining range with multiple workers.
	// Each Next still commits exactly one valid match. Result ordering
	// across Next calls is unspecified by contract (callers choosing this
	// policy declare they do not depend on order), even though the current
	// implementation commits the earliest match per scan. Falls back to
	// the serial scan when A is below random access.
	PolicyParallel
)

// Option configures a join view at construction time.
type Option func(*config)

type config struct {
	policy     Policy
	maxWorkers int
}

// WithPolicy selects the execution policy. The default is PolicySerial.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithMaxWorkers caps the worker count used under PolicyParallel.
func WithMaxWorkers(n int) Option {
	return func(c *config) { c.maxWorkers = n }
}

// joinCursor holds a position in A, the resumable search position in B, and
// the matched B position, which is valid only at an externally observable
// position: after construction or after Next, either iterA equals endA or
// iterBFound refers to a B element whose key equals A's current key.
type joinCursor[A, B any, K cmp.Ordered, R any] struct {
	iterA cursor.Cursor[A]
	endA  cursor.Cursor[A]

	iterB      cursor.Cursor[B]
	beginB     cursor.Cursor[B]
	endB       cursor.Cursor[B]
	iterBFound cursor.Cursor[B]

	keyA    func(A) K
	keyB    func(B) K
	combine func(A, B) R

	cfg config
}

var _ cursor.Cursor[string] = (*joinCursor[int, int, int, string])(nil)

// Where composes a and b into a view of combined results for matching keys.
// b must be sorted ascending by keyB. The resulting view is always forward
// tier regardless of its inputs: match-finding is inherently sequential.
func Where[A, B any, K cmp.Ordered, R any](
	a cursor.View[A],
	b cursor.View[B],
	keyA func(A) K,
	keyB func(B) K,
	combine func(A, B) R,
	opts ...Option,
) cursor.View[R] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	begin := &joinCursor[A, B, K, R]{
		iterA:      a.Begin(),
		endA:       a.End(),
		iterB:      b.Begin(),
		beginB:     b.Begin(),
		endB:       b.End(),
		iterBFound: b.End(),
		keyA:       keyA,
		keyB:       keyB,
		combine:    combine,
		cfg:        cfg,
	}
	if a.IsEmpty() || b.IsEmpty() {
		// Nothing can ever match; canonicalize to the exhausted state so
		// begin equals end without any dereference.
		begin.iterA = a.End()
	} else {
		begin.findNext()
	}

	end := &joinCursor[A, B, K, R]{
		iterA:      a.End(),
		endA:       a.End(),
		iterB:      b.End(),
		beginB:     b.Begin(),
		endB:       b.End(),
		iterBFound: b.End(),
		keyA:       keyA,
		keyB:       keyB,
		combine:    combine,
		cfg:        cfg,
	}
	return cursor.NewView[R](begin, end)
}

// findNext locates the next match at or after the current search position.
//
// The B search resumes from just past the last match, so repeated calls with
// an unchanged A position walk through B-side duplicates of the current key
// before A moves on. Once the remaining B range has no match for A's current
// key, A advances and the search restarts from B's begin.
func (c *joinCursor[A, B, K, R]) findNext() {
	if c.cfg.policy == PolicyParallel && c.iterA.Tier() >= cursor.TierRandomAccess {
		c.findNextParallel()
		return
	}
	c.findNextSerial()
}

func (c *joinCursor[A, B, K, R]) findNextSerial() {
	for !c.iterA.Equal(c.endA) {
		key := c.keyA(c.iterA.Deref())
		c.iterB = lowerBound(c.iterB, c.endB, key, c.keyB)
		if !c.iterB.Equal(c.endB) && !(key < c.keyB(c.iterB.Deref())) {
			c.iterBFound = c.iterB.Clone()
			c.iterB.Next()
			return
		}
		c.iterA.Next()
		c.iterB = c.beginB.Clone()
	}
}

func (c *joinCursor[A, B, K, R]) Deref() R {
	return c.combine(c.iterA.Deref(), c.iterBFound.Deref())
}

func (c *joinCursor[A, B, K, R]) Next() {
	c.findNext()
}

// Equal compares the A position only; reaching A's end is the sole terminal
// condition.
func (c *joinCursor[A, B, K, R]) Equal(other cursor.Cursor[R]) bool {
	o, ok := other.(*joinCursor[A, B, K, R])
	return ok && c.iterA.Equal(o.iterA)
}

func (c *joinCursor[A, B, K, R]) Tier() cursor.Tier { return cursor.TierForward }

func (c *joinCursor[A, B, K, R]) Clone() cursor.Cursor[R] {
	return &joinCursor[A, B, K, R]{
		iterA:      c.iterA.Clone(),
		endA:       c.endA,
		iterB:      c.iterB.Clone(),
		beginB:     c.beginB,
		endB:       c.endB,
		iterBFound: c.iterBFound.Clone(),
		keyA:       c.keyA,
		keyB:       c.keyB,
		combine:    c.combine,
		cfg:        c.cfg,
	}
}

// lowerBound returns a cursor at the first position in [first, last) whose
// key is not less than key. Binary search over random-access cursors, a
// linear advance otherwise; the same asymptotics the underlying tier offers
// any lower-bound routine.
func lowerBound[B any, K cmp.Ordered](first, last cursor.Cursor[B], key K, keyOf func(B) K) cursor.Cursor[B] {
	bound := first.Clone()
	if first.Tier() >= cursor.TierRandomAccess {
		count := cursor.Distance(bound, last)
		for count > 0 {
			step := count / 2
			mid := bound.Clone()
			cursor.MustRandomAccess(mid).Advance(step)
			if keyOf(mid.Deref()) < key {
				mid.Next()
				bound = mid
				count -= step + 1
			} else {
				count = step
			}
		}
		return bound
	}
	for !bound.Equal(last) && keyOf(bound.Deref()) < key {
		bound.Next()
	}
	return bound
}
