package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match PATTERN [PATTERN...]",
	Short: "Dry-run pattern resolution against a module tree",
	Long:  `Resolves each dotted path pattern against the tree and lists the nodes a plan entry with that pattern would transform. The tree is never modified.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		noColor, _ := cmd.Flags().GetBool("no-color")

		err := cli.Match(cli.MatchOptions{
			TreePath: treePath,
			Patterns: args,
			NoColor:  noColor,
		}, os.Stdout)
		if err != nil {
			fmt.Printf("Error matching patterns: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	matchCmd.Flags().Bool("no-color", false, "Disable colored output")
	rootCmd.AddCommand(matchCmd)
}
