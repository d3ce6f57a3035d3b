package tree

import (
	"math/rand"
)

// BuildRandom builds a tree with num nodes, valued [0, num) in the
// order they were created. Node i is appended as the last child of a
// node chosen at random from nodes 0 to i-1, so the shape ranges from
// a path to a star.
// The seed for the random choices is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Node[int] {
	if num <= 0 {
		return nil
	}

	rd := rand.New(rand.NewSource(seed))

	nodes := make([]*Node[int], num)
	nodes[0] = NodeOf(0)
	for i := 1; i < num; i++ {
		nodes[i] = NodeOf(i)
		nodes[rd.Intn(i)].Append(nodes[i])
	}

	return nodes[0]
}

// BuildComplete builds a complete tree in which every node above the
// last level has exactly branching children, and the last level is at
// the given height (a single node has height 0).
// Values are assigned in pre-order starting from 0, so a dive from the
// root yields 0, 1, 2, ...
func BuildComplete(branching, height int) *Node[int] {
	if branching < 0 || height < 0 {
		panic("tree: negative branching or height")
	}

	next := 0
	var build func(h int) *Node[int]
	build = func(h int) *Node[int] {
		n := NodeOf(next)
		next++
		if h == 0 {
			return n
		}
		for i := 0; i < branching; i++ {
			n.Append(build(h - 1))
		}
		return n
	}

	return build(height)
}
