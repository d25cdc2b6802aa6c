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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"api_base_url":    "https://staging.example/api",
		"database_path":   "other.db",
		"request_timeout": "20s",
	})

	t.Run("loads from file named by flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://staging.example/api", cfg.APIBaseURL)
		assert.Equal(t, "other.db", cfg.DatabasePath)
		assert.Equal(t, 20*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "keep", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file keeps untouched fields", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_path": "partial.db",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{APIBaseURL: "keep", RequestTimeout: 9 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.APIBaseURL)
		assert.Equal(t, "partial.db", cfg.DatabasePath)
		assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
