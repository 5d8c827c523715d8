// Package config loads runtime configuration for the MovieKeeper shell.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   database DSN: SQLite file, postgres:// URL or :memory:
//	-u string   OMDb base URL
//	-k string   OMDb API key
//	-t int      catalog request timeout (seconds)
//	-s string   credential scheme: plain or argon2
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "database_dsn": "moviekeeper.db",
//	  "catalog_base_url": "https://www.omdbapi.com/",
//	  "catalog_api_key": "xxxx",
//	  "catalog_timeout": "10s",
//	  "catalog_cache_ttl": "5m",
//	  "credential_scheme": "argon2",
//	  "log_level": "debug"
//	}
//
// catalog_cache_ttl is only configurable from JSON.
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
