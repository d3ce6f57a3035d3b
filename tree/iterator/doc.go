// Package iterator provides tree iterators that walk a tree by
// following each node's own parent, child and sibling links.
package iterator

import (
	"go.lepak.sg/treewalk/chops"
)

// Navigable is the capability a tree node type needs for
// the iterators in this package.
// The zero value of N (typically nil) means "no node".
type Navigable[N any] interface {
	comparable
	// Children returns the ordered children, possibly none.
	Children() []N
	// Parent returns the parent, or the zero N for a root.
	Parent() N
	// Siblings returns the parent's children, including the
	// receiver, in the same order as the parent's Children.
	Siblings() []N
}

// Sequence is an iterator that can be asked whether another item
// exists before taking it.
// HasNext has no side effects and may be called any number of times.
// Next returns the next item, or an error wrapping ErrExhausted if
// HasNext would have returned false.
//
// The usual usage of a Sequence is like this:
//
//	for s.HasNext() {
//		n, err := s.Next()
//		... handle err, do stuff with n ...
//	}
type Sequence[N any] interface {
	HasNext() bool
	Next() (N, error)
}

// Iterator is the Next-then-Item form of iteration.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// The iterator may be abandoned at any time.
//
// Use Step to turn a Sequence into an Iterator.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
