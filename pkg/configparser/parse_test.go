package configparser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Log struct {
		Level string `env:"TEST_LOG_LEVEL" default:"INFO"`
	}
	Database struct {
		Host    string        `env:"TEST_DATABASE_HOST" default:"localhost"`
		Port    int32         `env:"TEST_DATABASE_PORT" default:"5432"`
		Timeout time.Duration `env:"TEST_DATABASE_TIMEOUT" default:"5s"`
		Enabled bool          `env:"TEST_DATABASE_ENABLED" default:"false"`
	}
	Ratio float64 `env:"TEST_RATIO"`
	skip  string
}

func TestParseEnv_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, int32(5432), cfg.Database.Port)
	assert.Equal(t, 5*time.Second, cfg.Database.Timeout)
	assert.False(t, cfg.Database.Enabled)
	assert.Zero(t, cfg.Ratio)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("TEST_DATABASE_HOST", "db")
	t.Setenv("TEST_DATABASE_ENABLED", "true")
	t.Setenv("TEST_RATIO", "0.65")

	var cfg testConfig
	require.NoError(t, ParseEnv(&cfg))

	assert.Equal(t, "db", cfg.Database.Host)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 0.65, cfg.Ratio)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("TEST_DATABASE_PORT", "not-a-port")

	var cfg testConfig
	assert.Error(t, ParseEnv(&cfg))
}

func TestParseEnv_NotPointer(t *testing.T) {
	assert.ErrorIs(t, ParseEnv(testConfig{}), ErrNotStructPointer)
}

func TestLoadAndParseYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "test:\n  database:\n    host: yaml-host\n    port: 6543\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("TEST_DATABASE_HOST")
		os.Unsetenv("TEST_DATABASE_PORT")
	})

	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(path, &cfg))

	assert.Equal(t, "yaml-host", cfg.Database.Host)
	assert.Equal(t, int32(6543), cfg.Database.Port)
}

func TestLoadAndParseYaml_MissingFile(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadAndParseYaml(filepath.Join(t.TempDir(), "absent.yaml"), &cfg))
	assert.Equal(t, "localhost", cfg.Database.Host)
}
