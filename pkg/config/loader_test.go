package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiewire/pkg/config"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

type fileConfig struct {
	Addr string         `env:"CW_TEST_ADDR" envDefault:":8080"`
	Mode rawcookie.Mode `env:"CW_TEST_MODE" envDefault:"tolerant"`
	List []string       `env:"CW_TEST_LIST" envSeparator:","`
}

type defaultsConfig struct {
	Mode    rawcookie.Mode `env:"CW_DEFAULTS_MODE" envDefault:"tolerant"`
	MaxSize int            `env:"CW_DEFAULTS_MAX" envDefault:"4096"`
}

type cachedConfig struct {
	Value string `env:"CW_CACHED_VALUE" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"CW_REQUIRED_VALUE,required"`
}

type badModeConfig struct {
	Mode rawcookie.Mode `env:"CW_BAD_MODE"`
}

func unsetAll(keys ...string) {
	for _, k := range keys {
		os.Unsetenv(k)
	}
}

func TestLoadEnv_Files(t *testing.T) {
	unsetAll("CW_TEST_ADDR", "CW_TEST_MODE", "CW_TEST_LIST")
	t.Cleanup(func() { unsetAll("CW_TEST_ADDR", "CW_TEST_MODE", "CW_TEST_LIST") })
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, rawcookie.Strict, cfg.Mode)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
}

func TestLoadEnv_Missing(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/does-not-exist.env") })
}

func TestLoad_Defaults(t *testing.T) {
	unsetAll("CW_DEFAULTS_MODE", "CW_DEFAULTS_MAX")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, rawcookie.Tolerant, cfg.Mode)
	assert.Equal(t, 4096, cfg.MaxSize)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("CW_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.ForceReload(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CW_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	t.Setenv("CW_CACHED_VALUE", "concurrent")
	var seed cachedConfig
	require.NoError(t, config.ForceReload(&seed))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg cachedConfig
			if err := config.Load(&cfg); err != nil || cfg.Value != "concurrent" {
				t.Errorf("Load() = %q, %v", cfg.Value, err)
			}
		}()
	}
	wg.Wait()
}

func TestLoad_Errors(t *testing.T) {
	unsetAll("CW_REQUIRED_VALUE")

	var required requiredConfig
	assert.ErrorIs(t, config.ForceReload(&required), config.ErrParsingConfig)
	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})

	t.Setenv("CW_BAD_MODE", "lenient")
	var bad badModeConfig
	err := config.ForceReload(&bad)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	var nilCfg *cachedConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)
}
