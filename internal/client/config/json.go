package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/moviekeeper/internal/flagx"
	"github.com/dmitrijs2005/moviekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they can be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN      string         `json:"database_dsn"`
	CatalogBaseURL   string         `json:"catalog_base_url"`
	CatalogAPIKey    string         `json:"catalog_api_key"`
	CatalogTimeout   timex.Duration `json:"catalog_timeout"`
	CatalogCacheTTL  timex.Duration `json:"catalog_cache_ttl"`
	CredentialScheme string         `json:"credential_scheme"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays Config with the values present in the JSON file named by
// -c or -config. Keys missing from the file keep their current value. Panics
// on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.CatalogBaseURL, jc.CatalogBaseURL)
	setString(&cfg.CatalogAPIKey, jc.CatalogAPIKey)
	setString(&cfg.CredentialScheme, jc.CredentialScheme)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.CatalogTimeout.Duration > 0 {
		cfg.CatalogTimeout = jc.CatalogTimeout.Duration
	}
	if jc.CatalogCacheTTL.Duration > 0 {
		cfg.CatalogCacheTTL = jc.CatalogCacheTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
