package main

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.lepak.sg/treewalk/tree"
)

var (
	randomNum  int
	randomSeed int64
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "build a random tree and print it in dive order",
	Long: `
Build a tree of --num nodes, valued 0 to num-1 in creation order, where
each node is the last child of a randomly chosen earlier node. The same
--seed always builds the same tree.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if randomNum <= 0 {
			return errors.Newf("--num must be positive, got %d", randomNum)
		}

		seed := randomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Debug().Int64("seed", seed).Int("num", randomNum).Msg("building tree")

		r := tree.BuildRandom(randomNum, seed)

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "seed:", seed)
		fmt.Fprintln(w, "tree:", r.Notation())
		return walk(w, r, "")
	},
}
