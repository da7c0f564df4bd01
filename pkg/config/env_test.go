package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongokit/pkg/config"
)

type fileConfig struct {
	URL      string `env:"TEST_MONGO_URL,required"`
	Database string `env:"TEST_MONGO_DATABASE" envDefault:"app"`
}

type reloadConfig struct {
	Value string `env:"TEST_RELOAD_VALUE,required"`
}

func unsetFileVars(t *testing.T) {
	t.Helper()
	os.Unsetenv("TEST_MONGO_URL")
	os.Unsetenv("TEST_MONGO_DATABASE")
	t.Cleanup(func() {
		os.Unsetenv("TEST_MONGO_URL")
		os.Unsetenv("TEST_MONGO_DATABASE")
		config.ResetCache()
	})
	config.ResetCache()
}

func TestLoadEnv_SingleFile(t *testing.T) {
	unsetFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.base"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "mongodb://file-host:27017", cfg.URL)
	assert.Equal(t, "from_file", cfg.Database)
}

func TestLoadEnv_LaterFileWins(t *testing.T) {
	unsetFileVars(t)

	require.NoError(t, config.LoadEnv("testdata/.env.base", "testdata/.env.override"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "mongodb://file-host:27017", cfg.URL)
	assert.Equal(t, "override db", cfg.Database)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	unsetFileVars(t)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.base") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/does_not_exist.env") })
}

func TestLoad_FailureIsNotCached(t *testing.T) {
	os.Unsetenv("TEST_RELOAD_VALUE")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	var cfg reloadConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("TEST_RELOAD_VALUE", "now-set")

	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now-set", cfg.Value)
}

func TestForceReload(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("TEST_RELOAD_VALUE", "first")
	var cfg reloadConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("TEST_RELOAD_VALUE", "second")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value, "Load serves the cached copy")

	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "second", cfg.Value)

	var again reloadConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Value, "ForceReload replaces the cached copy")
}

func TestForceReload_NilPointer(t *testing.T) {
	var cfg *reloadConfig
	assert.ErrorIs(t, config.ForceReload(cfg), config.ErrNilPointer)
}
