// Package cursor defines the capability contract every lazy sequence cursor
// in this module satisfies, and derives the full navigation surface from its
// primitives.
//
// A cursor is a positional object over a sequence. The primitives are
// Deref, Next, Equal, Clone and Tier; everything else (inequality, ordering,
// post-advance, indexed access, generic jump and distance) is derived by the
// package-level functions, so a new adaptor only has to implement the
// primitives for the tier it supports.
//
// Tiers form a small closed ladder: Forward cursors support a single
// equality-bounded pass, Bidirectional cursors additionally walk backward,
// and RandomAccess cursors add O(1) signed jumps and distance arithmetic.
// Composed cursors report the weakest tier among the cursors they wrap.
// Invoking a tier-specific operation on a cursor below that tier is a
// programming error and panics; it is never a recoverable runtime condition.
//
// Cursors never own the storage they traverse. Cloning a cursor duplicates
// its position, not the underlying sequence, and a View must not outlive the
// sequences it was built from.
package cursor
