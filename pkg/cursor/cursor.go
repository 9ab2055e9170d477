package cursor

// Tier is the capability level of a cursor.
type Tier uint8

const (
	// TierForward supports dereference, forward advance and equality only.
	TierForward Tier = iota + 1

	// TierBidirectional additionally supports reverse advance.
	TierBidirectional

	// TierRandomAccess additionally supports O(1) signed jumps and distance
	// arithmetic.
	TierRandomAccess
)

func (t Tier) String() string {
	switch t {
	case TierForward:
		return "forward"
	case TierBidirectional:
		return "bidirectional"
	case TierRandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// MinTier returns the weakest tier among the given tiers. Composed cursors
// use this to compute their own tier from the cursors they wrap.
func MinTier(tiers ...Tier) Tier {
	m := TierRandomAccess
	for _, t := range tiers {
		m = min(m, t)
	}
	return m
}

// Cursor is the contract every sequence position satisfies.
//
// A cursor positioned at its range's end must not be dereferenced or
// advanced; callers check Equal against the end sentinel first, mirroring
// standard range-traversal discipline.
type Cursor[T any] interface {
	// Deref returns the element at the current position. Dereferencing the
	// same position repeatedly yields the same element for deterministic
	// sequences.
	Deref() T

	// Next advances the cursor one position forward.
	Next()

	// Equal reports whether other refers to the same position. Both cursors
	// must be bounded by the same underlying sequence; comparing cursors of
	// unrelated sequences is unspecified.
	Equal(other Cursor[T]) bool

	// Tier reports the capability tier of this cursor.
	Tier() Tier

	// Clone returns a cursor with an independent copy of the position
	// state. It never duplicates the underlying sequence.
	Clone() Cursor[T]
}

// Bidirectional is satisfied by cursors of TierBidirectional or above.
type Bidirectional[T any] interface {
	Cursor[T]

	// Prev moves the cursor one position backward.
	Prev()
}

// RandomAccess is satisfied by cursors of TierRandomAccess.
//
// Composed cursors implement this method set whenever their shape allows it
// and guard each call against the tier of the cursors they wrap, so a
// structural type assertion alone is not proof of capability: Tier is
// authoritative. Use MustRandomAccess to check both.
type RandomAccess[T any] interface {
	Bidirectional[T]

	// Advance moves the cursor by n positions; n may be negative.
	Advance(n int)

	// DistanceTo returns the signed number of forward steps from this
	// cursor to other; negative when other precedes this cursor.
	DistanceTo(other Cursor[T]) int
}
