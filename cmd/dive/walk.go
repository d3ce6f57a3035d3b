package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.lepak.sg/treewalk/tree"
	"go.lepak.sg/treewalk/tree/iterator"
	"golang.org/x/exp/constraints"
)

var walkStart string

var walkCmd = &cobra.Command{
	Use:   "walk <tree>",
	Short: "print a tree in dive order",
	Long: `
Parse a tree written as R{A{A1,A2},B} and print its nodes in dive
order, one per line, indented by depth. Pass "-" to read the tree
from stdin.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if src == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "reading tree")
			}
			src = string(b)
		}

		r, err := tree.Parse(src)
		if err != nil {
			return err
		}
		logger.Debug().Int("nodes", r.Len()).Msg("parsed tree")

		return walk(cmd.OutOrStdout(), r, walkStart)
	},
}

// walk prints the dive from the first node whose value prints as
// start, or from the root if start is empty.
func walk[T constraints.Ordered](w io.Writer, r *tree.Node[T], start string) error {
	if sorted {
		tree.SortByValue(r)
	}

	if render {
		fmt.Fprint(w, r.String())
		fmt.Fprintln(w)
	}

	from := r
	if start != "" {
		var ok bool
		from, ok = iterator.Find(r, func(n *tree.Node[T]) bool {
			return fmt.Sprint(n.Value) == start
		})
		if !ok {
			return errors.Newf("no node with value %q", start)
		}
		logger.Debug().Int("depth", from.Depth()).Str("start", start).Msg("found start")
	}

	d, err := iterator.NewDive(from)
	if err != nil {
		return err
	}

	count := 0
	for d.HasNext() {
		n, err := d.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", n.Depth()), n.Value)
		count++
	}
	logger.Debug().Int("visited", count).Msg("dive finished")

	return nil
}
