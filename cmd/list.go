package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/dotspec/internal/config"
	"github.com/conneroisu/dotspec/internal/loader"
)

var listWithKind bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list [paths...]",
	Aliases: []string{"l"},
	Short:   "List every qualified name in the given specs",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listWithKind, "kinds", false, "show each object's kind")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	paths := args
	if len(paths) == 0 {
		paths = cfg.Specs.Paths
	}

	root, err := loader.LoadPaths(paths, cfg.Specs.ExcludePatterns)
	if err != nil {
		return err
	}
	for _, name := range root.AllNames() {
		if listWithKind {
			ob, _ := root.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", ob.Kind, name)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
