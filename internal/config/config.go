// Package config provides configuration management for dotspec using
// Viper, loading from .dotspec.yml files, DOTSPEC_* environment variables
// and command-line flags.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/conneroisu/dotspec/internal/errors"
)

type Config struct {
	Names  NamesConfig  `yaml:"names"`
	Output OutputConfig `yaml:"output"`
	Specs  SpecsConfig  `yaml:"specs"`
	Watch  WatchConfig  `yaml:"watch"`
}

// NamesConfig controls dotted-name handling.
type NamesConfig struct {
	// Strict enables identifier validation when parsing names from the
	// command line.
	Strict bool `yaml:"strict"`
}

// OutputConfig controls how trees are rendered.
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

// SpecsConfig controls where spec files are discovered.
type SpecsConfig struct {
	Paths           []string `yaml:"paths"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// WatchConfig controls the file watcher behind `dump --watch`.
type WatchConfig struct {
	DebounceMillis int `yaml:"debounce_millis"`
}

// Load assembles the configuration from viper's merged sources and applies
// defaults for anything unset.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("CONFIG_UNMARSHAL", "cannot decode configuration", err)
	}

	// Apply defaults for spec paths only if not explicitly set
	if !viper.IsSet("specs.paths") && len(config.Specs.Paths) == 0 {
		config.Specs.Paths = []string{"./specs"}
	}

	// Handle paths set via viper (workaround for viper slice handling)
	if viper.IsSet("specs.paths") && len(config.Specs.Paths) == 0 {
		if paths := viper.GetStringSlice("specs.paths"); len(paths) > 0 {
			config.Specs.Paths = paths
		}
	}
	if viper.IsSet("specs.exclude_patterns") && len(config.Specs.ExcludePatterns) == 0 {
		if patterns := viper.GetStringSlice("specs.exclude_patterns"); len(patterns) > 0 {
			config.Specs.ExcludePatterns = patterns
		}
	}

	// Strict name validation defaults to on (workaround for viper bool handling)
	if viper.IsSet("names.strict") {
		config.Names.Strict = viper.GetBool("names.strict")
	} else {
		config.Names.Strict = true
	}

	if config.Output.Format == "" {
		config.Output.Format = ":{lineno} - {kind}: {name}"
	}
	if viper.IsSet("output.color") {
		config.Output.Color = viper.GetBool("output.color")
	}

	// Handle debounce set via viper (workaround for viper key handling)
	if viper.IsSet("watch.debounce_millis") {
		config.Watch.DebounceMillis = viper.GetInt("watch.debounce_millis")
	}
	if config.Watch.DebounceMillis <= 0 {
		config.Watch.DebounceMillis = 300
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configurations dotspec cannot act on.
func (c *Config) Validate() error {
	if len(c.Specs.Paths) == 0 {
		return errors.NewConfigError("CONFIG_NO_PATHS", "at least one spec path is required", nil)
	}
	if c.Watch.DebounceMillis > 10000 {
		return errors.NewConfigError("CONFIG_DEBOUNCE",
			fmt.Sprintf("watch debounce %dms is unreasonably large", c.Watch.DebounceMillis), nil)
	}
	return nil
}
