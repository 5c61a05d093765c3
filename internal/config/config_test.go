package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"./specs"}, cfg.Specs.Paths)
	assert.True(t, cfg.Names.Strict)
	assert.Equal(t, ":{lineno} - {kind}: {name}", cfg.Output.Format)
	assert.Equal(t, 300, cfg.Watch.DebounceMillis)
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("specs.paths", []string{"./api", "./docs"})
	viper.Set("names.strict", false)
	viper.Set("output.color", true)
	viper.Set("watch.debounce_millis", 50)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"./api", "./docs"}, cfg.Specs.Paths)
	assert.False(t, cfg.Names.Strict)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 50, cfg.Watch.DebounceMillis)
}

func TestValidate_RejectsHugeDebounce(t *testing.T) {
	cfg := &Config{
		Specs: SpecsConfig{Paths: []string{"./specs"}},
		Watch: WatchConfig{DebounceMillis: 60000},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debounce")
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}
