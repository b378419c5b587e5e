package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/payledger/internal/dbx"
	"github.com/dmitrijs2005/payledger/internal/repositories/categories"
	"github.com/dmitrijs2005/payledger/internal/repositories/payments"
	"github.com/dmitrijs2005/payledger/internal/repositories/users"
)

// RepositoryManager vends repositories bound to either the database or an
// open transaction, and knows how to migrate its own schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Categories(db dbx.DBTX) categories.Repository
	Payments(db dbx.DBTX) payments.Repository
}
