package iterator

import (
	"go.lepak.sg/treewalk/chops"
)

var _ Iterator[int] = (*Stepper[int])(nil)

// Stepper adapts a Sequence into an Iterator.
type Stepper[N any] struct {
	seq  Sequence[N]
	item N
	err  error
}

// Step returns an Iterator over the remaining items of seq.
func Step[N any](seq Sequence[N]) *Stepper[N] {
	return &Stepper[N]{
		seq: seq,
	}
}

// Next advances to the next item. It returns false once the
// sequence is exhausted or fails.
func (s *Stepper[N]) Next() bool {
	if s == nil || s.seq == nil || s.err != nil || !s.seq.HasNext() {
		return false
	}

	s.item, s.err = s.seq.Next()
	return s.err == nil
}

// Item returns the current item.
func (s *Stepper[N]) Item() N {
	return s.item
}

// Err returns the error that stopped iteration early, if any.
// A sequence that simply ran out is not an error.
func (s *Stepper[_]) Err() error {
	return s.err
}

// Coroutine starts coroutine-style iteration over the rest of the dive.
// The usage is as follows:
//
//	co := d.Coroutine()
//	for n := range co.Items() {
//		... do stuff with n ...
//		if n meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: Coroutine starts a goroutine, which exits when either
// Stop() is called or the dive is finished.
// The Dive must not be used directly until then.
func (d *Dive[N]) Coroutine() chops.CoIterator[N] {
	return chops.CoIterate[N](Step[N](d))
}

// Collect takes every remaining item from seq.
func Collect[N any](seq Sequence[N]) ([]N, error) {
	var out []N
	for seq.HasNext() {
		n, err := seq.Next()
		if err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Find returns the first node in a dive from start, start included,
// for which match returns true.
// If there is none, or start is the zero N, it returns false.
func Find[N Navigable[N]](start N, match func(N) bool) (N, bool) {
	var zero N
	n, i, ok := start, -1, start != zero
	for ok {
		if match(n) {
			return n, true
		}
		n, i, ok = successorAt(n, i)
	}
	return zero, false
}
