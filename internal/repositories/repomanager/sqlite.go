package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/payledger/internal/dbx"
	"github.com/dmitrijs2005/payledger/internal/repositories/categories"
	"github.com/dmitrijs2005/payledger/internal/repositories/payments"
	"github.com/dmitrijs2005/payledger/internal/repositories/users"
)

// SQLiteRepositoryManager reuses the SQL repositories, rebinding their
// placeholders for SQLite.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(dbx.WithDialect(db, dbx.DialectSQLite))
}

func (m *SQLiteRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewPostgresRepository(dbx.WithDialect(db, dbx.DialectSQLite))
}

func (m *SQLiteRepositoryManager) Payments(db dbx.DBTX) payments.Repository {
	return payments.NewPostgresRepository(dbx.WithDialect(db, dbx.DialectSQLite))
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3", "sqlite")
}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
