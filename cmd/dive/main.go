// Command dive prints trees in dive order: parents before children,
// children in order, without keeping a stack.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	render  bool
	sorted  bool

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
)

var rootCmd = &cobra.Command{
	Use:   "dive [command] (flags)",
	Short: "walk trees in dive order",
	Long: `
Walk trees in dive order: each node, then its children in order, then
its following siblings. Use "walk" for a tree written as R{A{A1,A2},B}
and "random" for a generated one. Pass --verbose for debug logging on
stderr.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = logger.Level(level)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		walkCmd,
		randomCmd,
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{walkCmd, randomCmd} {
		cmd.Flags().BoolVarP(
			&render, "render", "r", false, "draw the tree before walking it")
		cmd.Flags().BoolVar(
			&sorted, "sorted", false, "sort every node's children by value first")
	}

	walkCmd.Flags().StringVarP(
		&walkStart, "start", "s", "", "value of the node to start from (default the root)")

	randomCmd.Flags().IntVarP(
		&randomNum, "num", "n", 10, "number of nodes in the tree")
	randomCmd.Flags().Int64Var(
		&randomSeed, "seed", 0, "seed (default current unix time in ns)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("dive failed")
		os.Exit(1)
	}
}
