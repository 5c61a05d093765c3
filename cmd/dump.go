package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/dotspec/internal/config"
	"github.com/conneroisu/dotspec/internal/loader"
	"github.com/conneroisu/dotspec/internal/logging"
	"github.com/conneroisu/dotspec/internal/model"
	"github.com/conneroisu/dotspec/internal/watcher"
)

var (
	dumpFormat  string
	dumpNoColor bool
	dumpKinds   []string
	dumpWatch   bool
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:     "dump [paths...]",
	Aliases: []string{"d"},
	Short:   "Render the documentation tree of the given specs",
	Long: `Load spec files and render each module tree, one line per object,
indented by nesting depth.

Examples:
  dotspec dump ./specs                   Render all specs under ./specs
  dotspec dump api.yml --format "{name}" Render names only
  dotspec dump ./specs --kind class      Show classes (and their containers)
  dotspec dump ./specs --watch           Re-render on spec changes`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "", "per-object format (tokens: {kind}, {name}, {lineno}, {filename}, {docstring})")
	dumpCmd.Flags().BoolVar(&dumpNoColor, "no-color", false, "disable colored output")
	dumpCmd.Flags().StringSliceVarP(&dumpKinds, "kind", "k", nil, "only keep members of these kinds (module, class, function, data, indirection)")
	dumpCmd.Flags().BoolVarP(&dumpWatch, "watch", "w", false, "re-render when spec files change")
	viper.BindPFlag("output.format", dumpCmd.Flags().Lookup("format"))
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	paths := args
	if len(paths) == 0 {
		paths = cfg.Specs.Paths
	}

	render := func() error {
		return dumpSpecs(cmd.OutOrStdout(), paths, cfg)
	}
	if err := render(); err != nil {
		return err
	}
	if !dumpWatch {
		return nil
	}

	logger := newLogger(cmd)
	w, err := watcher.New(time.Duration(cfg.Watch.DebounceMillis)*time.Millisecond, logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	w.AddFilter(watcher.SpecFileFilter)
	w.AddFilter(watcher.NoHiddenFilter)
	w.AddHandler(func(events []watcher.ChangeEvent) error {
		fmt.Fprintf(cmd.OutOrStdout(), "\n-- %d change(s), re-rendering --\n", len(events))
		if err := render(); err != nil {
			logger.Error(cmd.Context(), err, "render failed")
		}
		return nil
	})
	for _, path := range paths {
		if err := w.AddPath(path); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	w.Start(ctx)

	logger.Info(ctx, "watching for spec changes", "paths", paths)
	<-ctx.Done()
	return nil
}

func dumpSpecs(out io.Writer, paths []string, cfg *config.Config) error {
	root, err := loader.LoadPaths(paths, cfg.Specs.ExcludePatterns)
	if err != nil {
		return err
	}
	if len(dumpKinds) > 0 {
		keep, err := kindSet(dumpKinds)
		if err != nil {
			return err
		}
		filter := &model.FilterVisitor{Predicate: func(ob *model.Object) bool {
			return keep[ob.Kind] || ob.HasMembers()
		}}
		for _, mod := range root.Modules {
			if err := model.Walk(mod, filter); err != nil {
				return err
			}
		}
	}

	format := dumpFormat
	if format == "" {
		format = cfg.Output.Format
	}
	printer := &model.PrintVisitor{
		Out:      out,
		Format:   format,
		Colorize: cfg.Output.Color && !dumpNoColor,
	}
	for _, mod := range root.Modules {
		if err := model.Walk(mod, printer); err != nil {
			return err
		}
	}
	return nil
}

func kindSet(names []string) (map[model.Kind]bool, error) {
	byName := map[string]model.Kind{
		"module":      model.KindModule,
		"class":       model.KindClass,
		"function":    model.KindFunction,
		"data":        model.KindData,
		"indirection": model.KindIndirection,
	}
	set := make(map[model.Kind]bool, len(names))
	for _, name := range names {
		kind, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown kind %q", name)
		}
		set[kind] = true
	}
	return set, nil
}

func newLogger(cmd *cobra.Command) logging.Logger {
	level := logging.LevelInfo
	switch viper.GetString("log-level") {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	return logging.NewLogger(cmd.ErrOrStderr(), level)
}
