// Package cmd provides the command-line interface for dotspec.
//
// Configuration is layered through viper with the usual precedence:
//  1. Command-line flags (--format, --no-color, ...) - highest priority
//  2. DOTSPEC_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (DOTSPEC_OUTPUT_FORMAT, ...)
//  4. Configuration files (.dotspec.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dotspec",
	Short: "Inspect and resolve dotted names in API documentation specs",
	Long: `dotspec loads YAML documentation specs describing modules, classes,
functions and data, and works with their qualified dotted names.

Key Features:
  • Spec discovery and loading with package nesting
  • Tree rendering with per-kind coloring and filtering
  • Scope-aware name expansion following aliases and imports
  • Watch mode re-rendering on spec changes

Quick Start:
  dotspec dump ./specs            Render the documentation tree
  dotspec list ./specs            List every qualified name
  dotspec resolve a.b --in a      Expand a name from a scope`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Accept snake_case spellings of flag names.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .dotspec.yml, can also use DOTSPEC_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig wires viper's config sources: --config flag first, then the
// DOTSPEC_CONFIG_FILE environment variable, then .dotspec.yml in the
// current directory. DOTSPEC_* environment variables override file values.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("DOTSPEC_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dotspec")
	}

	viper.SetEnvPrefix("DOTSPEC")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config files are fine; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
