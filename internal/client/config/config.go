package config

import "time"

// Config holds runtime settings for the MovieKeeper shell.
//
// Fields:
//   - DatabaseDSN: where accounts and the session are kept. A SQLite file
//     path, a postgres:// URL, or ":memory:".
//   - CatalogBaseURL, CatalogAPIKey: OMDb endpoint and key.
//   - CatalogTimeout: per-request HTTP timeout.
//   - CatalogCacheTTL: how long movie details are reused.
//   - CredentialScheme: "plain" or "argon2".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DatabaseDSN      string
	CatalogBaseURL   string
	CatalogAPIKey    string
	CatalogTimeout   time.Duration
	CatalogCacheTTL  time.Duration
	CredentialScheme string
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "moviekeeper.db"
	c.CatalogBaseURL = "https://www.omdbapi.com/"
	c.CatalogAPIKey = ""
	c.CatalogTimeout = 10 * time.Second
	c.CatalogCacheTTL = 5 * time.Minute
	c.CredentialScheme = "plain"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
