// Package migrate applies goose migrations to a PostgreSQL database.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// Up applies all pending migrations from fsys and returns the versions applied.
func Up(ctx context.Context, dsn string, fsys fs.FS) ([]int64, error) {
	provider, closeDB, err := newProvider(ctx, dsn, fsys)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

// Version returns the current database schema version.
func Version(ctx context.Context, dsn string, fsys fs.FS) (int64, error) {
	provider, closeDB, err := newProvider(ctx, dsn, fsys)
	if err != nil {
		return 0, err
	}
	defer closeDB()

	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}

// newProvider opens database/sql (goose requires *sql.DB) and builds a goose provider.
func newProvider(ctx context.Context, dsn string, fsys fs.FS) (*goose.Provider, func(), error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, func() { _ = db.Close() }, nil
}
