package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Lattice applies declarative transformation plans to module trees",
	Long:  `Lattice resolves dotted path patterns (with "*" wildcards) against a tree of named modules and shows which nodes a plan would transform.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("tree", "t", "tree.yaml", "YAML file describing the module tree")
}
