package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/isocode/pkg/config"
)

type prefixedConfig struct {
	Name    string   `env:"NAME" envDefault:"fallback"`
	Enabled bool     `env:"ENABLED"`
	Items   []string `env:"ITEMS" envSeparator:","`
}

type requiredConfig struct {
	Value string `env:"CFGTEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string   `env:"CFGTEST_FILE_VALUE"`
	List  []string `env:"CFGTEST_FILE_LIST" envSeparator:","`
}

func TestLoad_WithEnvironment(t *testing.T) {
	t.Parallel()

	var cfg prefixedConfig
	err := config.Load(&cfg,
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{
			"APP_NAME":    "isocode",
			"APP_ENABLED": "true",
			"APP_ITEMS":   "en,de,fr",
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "isocode", cfg.Name)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, []string{"en", "de", "fr"}, cfg.Items)
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	var cfg prefixedConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Name)
	assert.False(t, cfg.Enabled)
	assert.Nil(t, cfg.Items)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()
	err := config.Load[prefixedConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_RequiredMissing(t *testing.T) {
	t.Parallel()

	var cfg requiredConfig
	err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_CachesPerPrefix(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("CACHE_A_NAME", "first")
	t.Setenv("CACHE_B_NAME", "second")

	var a prefixedConfig
	require.NoError(t, config.Load(&a, config.WithPrefix("CACHE_A_")))
	assert.Equal(t, "first", a.Name)

	var b prefixedConfig
	require.NoError(t, config.Load(&b, config.WithPrefix("CACHE_B_")))
	assert.Equal(t, "second", b.Name)

	t.Setenv("CACHE_A_NAME", "changed")
	var again prefixedConfig
	require.NoError(t, config.Load(&again, config.WithPrefix("CACHE_A_")))
	assert.Equal(t, "first", again.Name, "cached value is returned")

	config.ResetCache()
	var reloaded prefixedConfig
	require.NoError(t, config.Load(&reloaded, config.WithPrefix("CACHE_A_")))
	assert.Equal(t, "changed", reloaded.Name)
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg requiredConfig
	require.Error(t, config.Load(&cfg))

	t.Setenv("CFGTEST_REQUIRED", "now set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now set", cfg.Value)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{"CFGTEST_REQUIRED": "x"}))
	})
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	require.NoError(t, config.LoadEnv("testdata/.env.sample"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	err := config.LoadEnv("testdata/missing.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
