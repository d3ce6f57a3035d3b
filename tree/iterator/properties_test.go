package iterator_test

import (
	"fmt"
	"testing"

	"go.lepak.sg/treewalk/must"
	"go.lepak.sg/treewalk/tree"
	"go.lepak.sg/treewalk/tree/iterator"
	"go.lepak.sg/treewalk/tree/iterator/itertest"
)

type intNode = *tree.Node[int]

func preOrder(n intNode) []intNode {
	var out []intNode
	n.PreOrder(func(m intNode) bool {
		out = append(out, m)
		return true
	})
	return out
}

func diveFrom(start intNode) func() iterator.Sequence[intNode] {
	return func() iterator.Sequence[intNode] {
		return must.Must2(iterator.NewDive(start))
	}
}

func TestDive_Properties(t *testing.T) {
	trees := map[string]intNode{
		"single":          tree.NodeOf(0),
		"complete b=2":    tree.BuildComplete(2, 4),
		"complete b=5":    tree.BuildComplete(5, 2),
		"path":            tree.BuildComplete(1, 20),
		"random 50":       tree.BuildRandom(50, 7),
		"random 500":      tree.BuildRandom(500, 99),
		"star (b=40,h=1)": tree.BuildComplete(40, 1),
	}
	for name, r := range trees {
		t.Run(name, func(t *testing.T) {
			itertest.RunProperties(t, diveFrom(r), preOrder(r), true)
		})
	}
}

// Starting anywhere yields the rest of the full dive from that node.
func TestDive_StartAnywhere(t *testing.T) {
	r := tree.BuildRandom(40, 3)
	full := preOrder(r)

	for i, m := range full {
		t.Run(fmt.Sprintf("start=%d", m.Value), func(t *testing.T) {
			itertest.RunProperties(t, diveFrom(m), full[i:], true)
		})
	}
}
