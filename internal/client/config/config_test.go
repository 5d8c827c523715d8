package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "moviekeeper.db", c.DatabaseDSN)
	assert.Equal(t, "https://www.omdbapi.com/", c.CatalogBaseURL)
	assert.Equal(t, 10*time.Second, c.CatalogTimeout)
	assert.Equal(t, 5*time.Minute, c.CatalogCacheTTL)
	assert.Equal(t, "plain", c.CredentialScheme)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "moviekeeper.db", cfg.DatabaseDSN)
	assert.Equal(t, 10*time.Second, cfg.CatalogTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn":      "from-json.db",
		"catalog_api_key":   "json-key",
		"catalog_cache_ttl": "1m",
		"catalog_timeout":   "1500ms",
	})
	os.Args = []string{"testbin", "-c", path, "-d", ":memory:"}

	cfg := LoadConfig()

	assert.Equal(t, ":memory:", cfg.DatabaseDSN)
	assert.Equal(t, "json-key", cfg.CatalogAPIKey)
	assert.Equal(t, time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, 1500*time.Millisecond, cfg.CatalogTimeout, "sub-second JSON timeout survives flag parsing")
}
