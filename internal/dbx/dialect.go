package dbx

import (
	"context"
	"database/sql"
	"strings"
)

// Dialect names a SQL placeholder convention.
type Dialect string

const (
	// DialectPostgres uses $1, $2, ... placeholders. Repository queries are
	// written in this form.
	DialectPostgres Dialect = "postgres"
	// DialectSQLite uses ?1, ?2, ... numbered placeholders.
	DialectSQLite Dialect = "sqlite"
)

// Rebind rewrites $N placeholders for the target dialect. Numbered SQLite
// parameters keep the argument order, so args need no reshuffling.
func Rebind(d Dialect, query string) string {
	if d != DialectSQLite || !strings.Contains(query, "$") {
		return query
	}
	return strings.ReplaceAll(query, "$", "?")
}

// rebinder adapts a DBTX written against Postgres placeholders to another
// dialect.
type rebinder struct {
	db      DBTX
	dialect Dialect
}

// WithDialect wraps db so that queries are rebound for d. Postgres handles
// are returned unchanged.
func WithDialect(db DBTX, d Dialect) DBTX {
	if d == DialectPostgres {
		return db
	}
	return &rebinder{db: db, dialect: d}
}

func (r *rebinder) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return r.db.ExecContext(ctx, Rebind(r.dialect, query), args...)
}

func (r *rebinder) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return r.db.QueryContext(ctx, Rebind(r.dialect, query), args...)
}

func (r *rebinder) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return r.db.QueryRowContext(ctx, Rebind(r.dialect, query), args...)
}
