package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/moviekeeper/internal/client/catalog"
	"github.com/dmitrijs2005/moviekeeper/internal/client/client"
	"github.com/dmitrijs2005/moviekeeper/internal/client/config"
	"github.com/dmitrijs2005/moviekeeper/internal/client/credentials"
	"github.com/dmitrijs2005/moviekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moviekeeper/internal/client/services"
	"github.com/dmitrijs2005/moviekeeper/internal/logging"
)

type App struct {
	config  *config.Config
	kv      kv.Store
	store   services.AccountStore
	catalog catalog.Catalog
	log     logging.Logger
	in      *bufio.Scanner
}

// NewApp opens the configured store, restores any persisted session and
// builds the catalog client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	verifier, err := credentials.New(c.CredentialScheme)
	if err != nil {
		return nil, err
	}

	st, err := client.InitStore(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing store", "dsn", c.DatabaseDSN, "err", err)
		return nil, err
	}

	accounts, err := services.NewAccountStore(ctx, st, verifier)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	if c.CatalogAPIKey == "" {
		log.Warn(ctx, "catalog api key not configured", "hint", "set -k or catalog_api_key")
	}

	cat := catalog.New(catalog.Config{
		BaseURL:  c.CatalogBaseURL,
		APIKey:   c.CatalogAPIKey,
		Timeout:  c.CatalogTimeout,
		CacheTTL: c.CatalogCacheTTL,
	})

	return &App{
		config:  c,
		kv:      st,
		store:   accounts,
		catalog: cat,
		log:     log.With("component", "shell"),
		in:      bufio.NewScanner(os.Stdin),
	}, nil
}

// Run blocks in the shell until the user exits, then closes the store.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.kv.Close(); err != nil {
			a.log.Error(ctx, "failed to close store", "err", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) getStatus() string {
	acc, ok := a.store.CurrentAccount()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", acc.Username)
}
