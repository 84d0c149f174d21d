package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lattice/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the module tree visualization",
	Long:  `Reads the tree definition and outputs a Mermaid diagram (graph TD). With --highlight, the nodes selected by the given patterns are styled.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		highlight, _ := cmd.Flags().GetStringArray("highlight")

		err := cli.Graph(cli.GraphOptions{
			TreePath:  treePath,
			Highlight: highlight,
		}, os.Stdout)
		if err != nil {
			fmt.Printf("Error generating graph: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	graphCmd.Flags().StringArray("highlight", nil, "Pattern whose matches are highlighted (repeatable)")
	rootCmd.AddCommand(graphCmd)
}
