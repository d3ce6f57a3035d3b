package iterator

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

// Dive is a depth-first, parents-first iterator over a tree.
// From a node it goes to the node's first child; failing that, to its
// next sibling; failing that, to the next sibling of the nearest
// ancestor that has one. It keeps no stack: only the node that the
// following call to Next will return.
//
// A Dive started at a node that is not the root does not stop at the
// end of that node's subtree. It carries on through the following
// siblings and the ancestors' following siblings, exactly as a dive
// from the root would after reaching that node.
//
// The usage should be pretty familiar:
//
//	d, err := iterator.NewDive(root)
//	... handle err ...
//	for d.HasNext() {
//		n, _ := d.Next()
//		... do stuff with n ...
//	}
//
// The iterator may be abandoned at any time.
// Changing the tree while iterating over it only affects nodes
// that have not yet been computed: the node Next returns has already
// been chosen by the previous call. Which nodes are visited after
// a change is otherwise undefined. Dive is not safe for concurrent use.
type Dive[N Navigable[N]] struct {
	// pending is returned by the next call to Next.
	// The zero N once the dive is exhausted.
	pending N
	// pendingIndex is where pending was found among its siblings,
	// or -1 if that is not known.
	pendingIndex int
	produced     int
}

// NewDive returns a Dive whose first node is start.
// It returns ErrNilStart if start is the zero N.
func NewDive[N Navigable[N]](start N) (*Dive[N], error) {
	var zero N
	if start == zero {
		return nil, ErrNilStart
	}

	return &Dive[N]{
		pending:      start,
		pendingIndex: -1,
	}, nil
}

// HasNext returns true if Next has a node to return.
func (d *Dive[N]) HasNext() bool {
	var zero N
	return d != nil && d.pending != zero
}

// Next returns the node computed by the previous call (or the
// starting node, on the first call), and computes the one after it.
// Once the dive is exhausted, Next returns the zero N and an error
// wrapping ErrExhausted.
func (d *Dive[N]) Next() (N, error) {
	var zero N
	if !d.HasNext() {
		produced := 0
		if d != nil {
			produced = d.produced
		}
		return zero, errors.Wrapf(ErrExhausted, "dive after %d nodes", produced)
	}

	n := d.pending
	d.pending, d.pendingIndex, _ = successorAt(n, d.pendingIndex)
	d.produced++

	return n, nil
}

// ClearData always returns ErrUnsupported.
// A Dive only reads the tree; it cannot remove or change nodes.
func (d *Dive[N]) ClearData() error {
	return errors.Wrap(ErrUnsupported, "dive cannot clear data")
}

// Indexed is implemented by nodes that know their own position
// among their siblings. Successor uses it, when available, instead
// of searching the sibling list.
type Indexed interface {
	Index() int
}

// Successor returns the node that follows n in a dive: n's first
// child, or else n's next sibling, or else the next sibling of n's
// nearest ancestor that has one.
// It returns false if there is no such node, or if n is the zero N.
func Successor[N Navigable[N]](n N) (N, bool) {
	next, _, ok := successorAt(n, -1)
	return next, ok
}

// successorAt is Successor for an n whose position among its siblings
// may be known to be hint. It also returns the position of the
// successor among its own siblings.
func successorAt[N Navigable[N]](n N, hint int) (N, int, bool) {
	var zero N
	if n == zero {
		return zero, -1, false
	}

	if children := n.Children(); len(children) > 0 {
		return children[0], 0, true
	}

	// Ascend until some ancestor (or n itself) has a next sibling.
	// Each step is a parent link, so there is no recursion.
	for n != zero {
		siblings := n.Siblings()
		// a node missing from its sibling list has no next sibling
		if i := position(siblings, n, hint); i >= 0 && i+1 < len(siblings) {
			return siblings[i+1], i + 1, true
		}
		n, hint = n.Parent(), -1
	}

	return zero, -1, false
}

// position returns the index of n in siblings, or -1.
// A hint or an Index that does not match is ignored.
func position[N comparable](siblings []N, n N, hint int) int {
	if hint >= 0 && hint < len(siblings) && siblings[hint] == n {
		return hint
	}
	if in, ok := any(n).(Indexed); ok {
		if i := in.Index(); i >= 0 && i < len(siblings) && siblings[i] == n {
			return i
		}
	}
	return slices.Index(siblings, n)
}
