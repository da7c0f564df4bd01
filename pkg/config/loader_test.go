package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongokit/pkg/config"
)

type poolConfig struct {
	Database    string        `env:"TEST_POOL_DATABASE" envDefault:"app"`
	MaxPoolSize uint64        `env:"TEST_POOL_MAX_SIZE" envDefault:"100"`
	IdleTime    time.Duration `env:"TEST_POOL_IDLE_TIME" envDefault:"300s"`
	Ping        bool          `env:"TEST_POOL_PING" envDefault:"false"`
	TLS         *bool         `env:"TEST_POOL_TLS" envDefault:"true"`
}

type cachedConfig struct {
	URL string `env:"TEST_CACHED_URL" envDefault:"mongodb://localhost:27017"`
}

type primaryConfig struct {
	Value string `env:"TEST_PRIMARY_VALUE" envDefault:"primary"`
}

type secondaryConfig struct {
	Value string `env:"TEST_SECONDARY_VALUE" envDefault:"secondary"`
}

type urlConfig struct {
	URL string `env:"TEST_REQUIRED_URL,required"`
}

// freshCache clears the loader cache before and after the test.
func freshCache(t *testing.T) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)
}

func TestLoad_FromEnvironment(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_POOL_DATABASE", "orders")
	t.Setenv("TEST_POOL_MAX_SIZE", "20")
	t.Setenv("TEST_POOL_IDLE_TIME", "1m")
	t.Setenv("TEST_POOL_PING", "true")
	t.Setenv("TEST_POOL_TLS", "false")

	var cfg poolConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "orders", cfg.Database)
	assert.EqualValues(t, 20, cfg.MaxPoolSize)
	assert.Equal(t, time.Minute, cfg.IdleTime)
	assert.True(t, cfg.Ping)
	require.NotNil(t, cfg.TLS)
	assert.False(t, *cfg.TLS)
}

func TestLoad_DefaultValues(t *testing.T) {
	freshCache(t)
	for _, key := range []string{"TEST_POOL_DATABASE", "TEST_POOL_MAX_SIZE", "TEST_POOL_IDLE_TIME", "TEST_POOL_PING", "TEST_POOL_TLS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var cfg poolConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "app", cfg.Database)
	assert.EqualValues(t, 100, cfg.MaxPoolSize)
	assert.Equal(t, 300*time.Second, cfg.IdleTime)
	assert.False(t, cfg.Ping)
	require.NotNil(t, cfg.TLS, "pointer fields are allocated for defaults")
	assert.True(t, *cfg.TLS)
}

func TestLoad_MissingRequired(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_REQUIRED_URL", "")
	require.NoError(t, os.Unsetenv("TEST_REQUIRED_URL"))

	var cfg urlConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Contains(t, err.Error(), "TEST_REQUIRED_URL")
}

func TestLoad_CachedUntilReset(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_CACHED_URL", "mongodb://first:27017")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_URL", "mongodb://second:27017")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "mongodb://first:27017", second.URL, "served from cache")

	config.ResetCache()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "mongodb://second:27017", third.URL, "ResetCache forces a fresh parse")
}

func TestLoad_ForceReloadRefreshesCache(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_CACHED_URL", "mongodb://first:27017")

	var cfg cachedConfig
	require.NoError(t, config.Load(&cfg))

	t.Setenv("TEST_CACHED_URL", "mongodb://second:27017")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "mongodb://second:27017", cfg.URL)

	var later cachedConfig
	require.NoError(t, config.Load(&later))
	assert.Equal(t, "mongodb://second:27017", later.URL)
}

func TestLoad_EnvFileThenReload(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_MONGO_URL", "")
	t.Setenv("TEST_MONGO_DATABASE", "")
	require.NoError(t, os.Unsetenv("TEST_MONGO_URL"))
	require.NoError(t, os.Unsetenv("TEST_MONGO_DATABASE"))

	var cfg fileConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig, "nothing loaded yet")

	require.NoError(t, config.LoadEnv("testdata/.env.base"))
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Database)

	require.NoError(t, config.LoadEnv("testdata/.env.override"))
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Database, "cached until reloaded")

	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "override db", cfg.Database)
	assert.Equal(t, "mongodb://file-host:27017", cfg.URL)
}

func TestLoad_TypesAreCachedSeparately(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_PRIMARY_VALUE", "one")
	t.Setenv("TEST_SECONDARY_VALUE", "two")

	var a primaryConfig
	require.NoError(t, config.Load(&a))
	var b secondaryConfig
	require.NoError(t, config.Load(&b))

	assert.Equal(t, "one", a.Value)
	assert.Equal(t, "two", b.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *poolConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	freshCache(t)
	t.Setenv("TEST_REQUIRED_URL", "")
	require.NoError(t, os.Unsetenv("TEST_REQUIRED_URL"))

	var cfg urlConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("TEST_REQUIRED_URL", "mongodb://localhost:27017")
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	assert.Equal(t, "mongodb://localhost:27017", cfg.URL)
}
