// Package tree provides a mutable n-ary tree node with parent
// back-references, for use with the iterators in tree/iterator.
package tree

import (
	"golang.org/x/exp/slices"
)

// Node is a node in an n-ary tree. Each node keeps an ordered list of
// children and a reference to its parent, which is nil only for the
// root of the tree.
//
// Topology must be changed through Append, Insert, Detach and
// TrimSiblingsAfter, which keep the parent references consistent with
// the children lists. Node is not safe for concurrent use.
type Node[T any] struct {
	Value T

	parent   *Node[T]
	children []*Node[T]
	// index is the position of n in parent.children.
	index int
}

// NodeOf returns a new parentless, childless node holding v.
func NodeOf[T any](v T) *Node[T] {
	return &Node[T]{
		Value: v,
	}
}

// Children returns the ordered children of n.
// The returned slice belongs to n and must not be modified.
func (n *Node[T]) Children() []*Node[T] {
	if n == nil {
		return nil
	}
	return n.children
}

// Parent returns the parent of n, or nil if n is a root.
func (n *Node[T]) Parent() *Node[T] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Siblings returns the children of n's parent, n included, in order.
// A root is its own only sibling.
// The returned slice belongs to the parent and must not be modified.
func (n *Node[T]) Siblings() []*Node[T] {
	if n == nil {
		return nil
	}
	if n.parent == nil {
		return []*Node[T]{n}
	}
	return n.parent.children
}

// Append adds children to the end of n's children and returns n,
// so that trees can be built in one expression:
//
//	r := tree.NodeOf("R").Append(
//		tree.NodeOf("A").Append(tree.NodeOf("A1"), tree.NodeOf("A2")),
//		tree.NodeOf("B"),
//	)
//
// Append panics if a child is nil, already has a parent, is n or an
// ancestor of n, or is given more than once. Nothing is changed
// when it panics.
func (n *Node[T]) Append(children ...*Node[T]) *Node[T] {
	for i, c := range children {
		n.checkChild(c)
		if slices.Index(children[:i], c) >= 0 {
			panic("tree: duplicate child")
		}
	}

	for _, c := range children {
		c.parent = n
		c.index = len(n.children)
		n.children = append(n.children, c)
	}
	return n
}

// Insert adds child to n's children at index i, shifting the
// children at and after i to the right.
// Insert panics if i is out of range, or if child would be rejected
// by Append.
func (n *Node[T]) Insert(i int, child *Node[T]) {
	if i < 0 || i > len(n.children) {
		panic("tree: Insert index out of range")
	}
	n.checkChild(child)

	child.parent = n
	n.children = slices.Insert(n.children, i, child)
	n.renumber(i)
}

func (n *Node[T]) checkChild(c *Node[T]) {
	if c == nil {
		panic("tree: nil child")
	}
	if c.parent != nil {
		panic("tree: child already has a parent")
	}
	if c == n {
		panic("tree: node cannot be its own child")
	}
	// c is a root, so it is an ancestor of n only if it is n's root.
	if n.Root() == c {
		panic("tree: child is an ancestor")
	}
}

// renumber fixes the index of the children from position i on.
func (n *Node[T]) renumber(i int) {
	for ; i < len(n.children); i++ {
		n.children[i].index = i
	}
}

// Detach removes n from its parent's children, making n the root of
// its own tree. It returns false if n was already a root.
func (n *Node[T]) Detach() bool {
	p := n.Parent()
	if p == nil {
		return false
	}

	i := n.Index()
	if i < 0 {
		panic("tree: node not found among its parent's children")
	}

	copy(p.children[i:], p.children[i+1:])
	// prevents the truncated tail from keeping the node alive
	p.children[len(p.children)-1] = nil
	p.children = p.children[:len(p.children)-1]
	p.renumber(i)

	n.parent = nil
	n.index = 0
	return true
}

// TrimSiblingsAfter detaches every sibling that follows n, so that n
// becomes the last child of its parent. It returns the number of
// siblings removed.
func (n *Node[T]) TrimSiblingsAfter() int {
	p := n.Parent()
	if p == nil {
		return 0
	}

	i := n.Index()
	if i < 0 {
		panic("tree: node not found among its parent's children")
	}
	removed := p.children[i+1:]
	for j, c := range removed {
		c.parent = nil
		c.index = 0
		removed[j] = nil
	}
	p.children = p.children[:i+1]
	return len(removed)
}

// Index returns the position of n among its siblings.
// A root has index 0, and a nil node -1.
func (n *Node[T]) Index() int {
	switch {
	case n == nil:
		return -1
	case n.parent == nil:
		return 0
	}
	if i := n.index; i < len(n.parent.children) && n.parent.children[i] == n {
		return i
	}
	return -1
}

// Depth returns the number of ancestors of n.
func (n *Node[T]) Depth() int {
	d := 0
	for p := n.Parent(); p != nil; p = p.parent {
		d++
	}
	return d
}

// Root returns the root of the tree containing n.
func (n *Node[T]) Root() *Node[T] {
	for n.Parent() != nil {
		n = n.parent
	}
	return n
}

// Len returns the number of nodes in the subtree rooted at n,
// n included.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}

	l := 0
	n.PreOrder(func(*Node[T]) bool {
		l++
		return true
	})
	return l
}

// PreOrder applies f to each node of the subtree rooted at n, parents
// before children. If f returns false, the traversal is stopped early.
func (n *Node[T]) PreOrder(f func(*Node[T]) bool) {
	if n == nil {
		return
	}
	n.visitPreOrder(f)
}

func (n *Node[T]) visitPreOrder(f func(*Node[T]) bool) bool {
	// Classic recursive pre-order.
	// Compare this to iterator.Dive which uses no stack.
	if !f(n) {
		return false
	}

	for _, c := range n.children {
		if !c.visitPreOrder(f) {
			return false
		}
	}

	return true
}
