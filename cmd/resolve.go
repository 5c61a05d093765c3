package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/dotspec/internal/config"
	"github.com/conneroisu/dotspec/internal/dottedname"
	"github.com/conneroisu/dotspec/internal/loader"
)

var (
	resolveScope string
	resolvePaths []string
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:     "resolve <name>",
	Aliases: []string{"r"},
	Short:   "Expand a dotted name from a scope in the loaded specs",
	Long: `Expand a possibly relative dotted name into a fully qualified one,
following aliases and import indirections. The result is shown both fully
qualified and contextualized against the scope.

Examples:
  dotspec resolve saila --in a --specs ./specs
  dotspec resolve foo.alias --in a`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveScope, "in", "i", "", "fully qualified name of the scope to resolve from")
	resolveCmd.Flags().StringSliceVar(&resolvePaths, "specs", nil, "spec files or directories to load")
	resolveCmd.MarkFlagRequired("in")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	paths := resolvePaths
	if len(paths) == 0 {
		paths = cfg.Specs.Paths
	}

	name := args[0]
	if cfg.Names.Strict {
		if _, err := dottedname.New(name); err != nil {
			return fmt.Errorf("invalid name %q: %w", name, err)
		}
	}

	root, err := loader.LoadPaths(paths, cfg.Specs.ExcludePatterns)
	if err != nil {
		return err
	}
	scope, ok := root.Lookup(resolveScope)
	if !ok {
		return fmt.Errorf("scope %q not found in loaded specs", resolveScope)
	}

	expanded := scope.ExpandName(name)
	fmt.Fprintln(cmd.OutOrStdout(), expanded)

	full, err := dottedname.NewLax(expanded)
	if err != nil {
		return nil
	}
	contextualized := full.Contextualize(scope.FullName())
	if !contextualized.Equal(full) {
		fmt.Fprintf(cmd.OutOrStdout(), "in %s: %s\n", resolveScope, contextualized)
	}
	return nil
}
