package tree

import (
	"fmt"
	"strings"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeMidContinue  = "│ "
	treeLastContinue = "  "
)

// String returns a drawing of the subtree rooted at n.
// The tree R{A{A1,A2},B} looks like this:
//
//	R
//	├─A
//	│ ├─A1
//	│ └─A2
//	└─B
func (n *Node[T]) String() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, n, "", true, false)
	return sb.String()
}

func printvisit[T any](
	sb *strings.Builder, n *Node[T], prefix string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
	}
	sb.WriteString(fmt.Sprint(n.Value))
	sb.WriteRune('\n')

	for i, c := range n.children {
		printvisit(sb, c, prefix, false, i < len(n.children)-1)
	}
}

// Notation returns the subtree rooted at n in the compact form read
// by Parse, for example R{A{A1,A2},B}.
// Values are formatted with fmt.Sprint and are not escaped.
func (n *Node[T]) Notation() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	n.writeNotation(&sb)
	return sb.String()
}

func (n *Node[T]) writeNotation(sb *strings.Builder) {
	sb.WriteString(fmt.Sprint(n.Value))
	if len(n.children) == 0 {
		return
	}

	sb.WriteRune('{')
	for i, c := range n.children {
		if i > 0 {
			sb.WriteRune(',')
		}
		c.writeNotation(sb)
	}
	sb.WriteRune('}')
}
