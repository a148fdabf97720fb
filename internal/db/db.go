package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/vytor/flipdeck/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Driver names a supported database backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

type DB struct {
	*sql.DB
	Driver Driver
	log    *logger.Logger
}

// Open connects to the database and applies pending migrations.
func Open(ctx context.Context, driver Driver, dsn string) (*DB, error) {
	log := logger.Default().WithPrefix("db")

	var (
		sqlDB   *sql.DB
		dialect goose.Dialect
		err     error
	)
	switch driver {
	case DriverSQLite:
		log.Info("opening sqlite database: %s", dsn)
		sqlDB, err = sql.Open("sqlite3", sqliteDSN(dsn))
		if err == nil {
			sqlDB.SetMaxOpenConns(1) // single writer
		}
		dialect = goose.DialectSQLite3
	case DriverPostgres:
		log.Info("opening postgres database")
		sqlDB, err = sql.Open("pgx", dsn)
		dialect = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		log.Error("failed to reach database: %v", err)
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	db := &DB{DB: sqlDB, Driver: driver, log: log}

	log.Debug("applying migrations")
	if err := db.migrate(ctx, dialect); err != nil {
		_ = sqlDB.Close()
		log.Error("failed to apply migrations: %v", err)
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

func (db *DB) migrate(ctx context.Context, dialect goose.Dialect) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, r := range results {
		db.log.Info("migration %s applied in %s", r.Source.Path, r.Duration)
	}
	if len(results) == 0 {
		db.log.Debug("no pending migrations")
	}
	return nil
}

// CheckHealth verifies connectivity. Used by the readiness probe.
func (db *DB) CheckHealth(ctx context.Context) error {
	return db.PingContext(ctx)
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL"
}
