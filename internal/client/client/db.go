package client

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/dmitrijs2005/moviekeeper/internal/client/migrations"
	"github.com/dmitrijs2005/moviekeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/moviekeeper/internal/filex"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// MemoryDSN selects the non-persistent store.
const MemoryDSN = ":memory:"

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// RunMigrations applies the embedded migrations of dialect to db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect kv.Dialect) error {
	var (
		base       fs.FS
		dir        string
		gooseDrvNm string
	)
	switch dialect {
	case kv.DialectSQLite:
		base, dir, gooseDrvNm = migrations.SQLite, "sqlite", "sqlite3"
	case kv.DialectPostgres:
		base, dir, gooseDrvNm = migrations.Postgres, "postgres", "pgx"
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(base)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(gooseDrvNm); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}

// DialectFor picks the SQL dialect a DSN refers to.
func DialectFor(dsn string) kv.Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return kv.DialectPostgres
	}
	return kv.DialectSQLite
}

// InitStore opens and migrates the store named by dsn.
func InitStore(ctx context.Context, dsn string) (kv.Store, error) {
	if dsn == MemoryDSN {
		return kv.NewMemoryStore(), nil
	}

	dialect := DialectFor(dsn)
	driver := "sqlite"
	if dialect == kv.DialectPostgres {
		driver = "pgx"
	} else if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	return kv.NewSQLStore(db, dialect), nil
}
