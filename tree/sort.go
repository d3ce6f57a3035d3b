package tree

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortByValue reorders the children of every node in the subtree rooted
// at n in ascending order of value. The sort is stable, so children
// with equal values keep their relative order.
func SortByValue[T constraints.Ordered](n *Node[T]) {
	SortFunc(n, func(a, b *Node[T]) bool {
		return a.Value < b.Value
	})
}

// SortFunc reorders the children of every node in the subtree rooted
// at n using less. Parent references are unaffected.
func SortFunc[T any](n *Node[T], less func(a, b *Node[T]) bool) {
	n.PreOrder(func(m *Node[T]) bool {
		slices.SortStableFunc(m.children, less)
		m.renumber(0)
		return true
	})
}
