package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/moviekeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database DSN (SQLite path, postgres:// URL or :memory:)
//	-u string   OMDb base URL
//	-k string   OMDb API key
//	-t int      catalog request timeout in seconds
//	-s string   credential scheme (plain|argon2)
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-k", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.CatalogBaseURL, "u", cfg.CatalogBaseURL, "OMDb base URL")
	fs.StringVar(&cfg.CatalogAPIKey, "k", cfg.CatalogAPIKey, "OMDb API key")
	timeout := fs.Int("t", int(cfg.CatalogTimeout.Seconds()), "catalog request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialScheme, "s", cfg.CredentialScheme, "credential scheme (plain|argon2)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is whole seconds; leave a finer JSON value alone unless -t was given.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.CatalogTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
