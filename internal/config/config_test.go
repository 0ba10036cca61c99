package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	viper.Reset()
	testChdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Resolver.RadiusKm)
	assert.Equal(t, 60, cfg.Resolver.ScoreCutoff)
	assert.Equal(t, 5*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, 3, cfg.Geocoder.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Geocoder.RetryDelay)
	assert.Equal(t, "India", cfg.Geocoder.Country)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	testChdir(t, t.TempDir())
	t.Setenv("RESOLVER_RADIUS_KM", "25")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "3")
	t.Setenv("RESOLVER_KNOWN_CITIES", "Udaipur, Goa ,,Delhi")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.Resolver.RadiusKm)
	assert.Equal(t, 3, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, []string{"Udaipur", "Goa", "Delhi"}, cfg.Resolver.KnownCities)
}

func TestLoad_EnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	testChdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("API_PORT=9090\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"a", "b"}, parseList(" a ,b, "))
}

func TestConnectionStrings(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "locator", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=locator sslmode=disable", db.DSN())

	cfg := &Config{Database: db, Redis: RedisConfig{Host: "cache", Port: 6380}}
	assert.Equal(t, db.DSN(), cfg.GetDatabaseDSN())
	assert.Equal(t, "cache:6380", cfg.GetRedisAddr())
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
