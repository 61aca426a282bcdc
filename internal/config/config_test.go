package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, 15*time.Minute, c.SessionTimeout)
	assert.Equal(t, 3, c.MaxLoginAttempts)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 15*time.Minute, cfg.SessionTimeout)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads values from file", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"data_dir":                "/var/lib/tutor",
			"session_timeout_seconds": 600,
			"max_login_attempts":      5,
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/var/lib/tutor", cfg.DataDir)
		assert.Equal(t, 10*time.Minute, cfg.SessionTimeout)
		assert.Equal(t, 5, cfg.MaxLoginAttempts)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"data_dir": "/tmp/x"})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "/tmp/x", cfg.DataDir)
		assert.Equal(t, 15*time.Minute, cfg.SessionTimeout)
		assert.Equal(t, 3, cfg.MaxLoginAttempts)
	})

	t.Run("no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DataDir: "keep", SessionTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.DataDir)
		assert.Equal(t, 42*time.Second, cfg.SessionTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-d", "/srv/tutor", "-t", "120", "-m", "5"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "/srv/tutor", cfg.DataDir)
	assert.Equal(t, 2*time.Minute, cfg.SessionTimeout)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
}
