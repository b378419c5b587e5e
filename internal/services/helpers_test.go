package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/payledger/internal/cryptox"
	"github.com/dmitrijs2005/payledger/internal/logging"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	cryptox.Cost = bcrypt.MinCost
}

type fixture struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	ledger *LedgerService
	auth   *AuthService
	prov   *ProvisionService

	anna, boris  *models.User
	food, travel *models.Category
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, rm, err := repomanager.Open(ctx, repomanager.DriverSQLite, ":memory:", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &fixture{
		db:     db,
		rm:     rm,
		ledger: NewLedgerService(db, rm, logging.Nop{}),
		auth:   NewAuthService(db, rm, logging.Nop{}),
		prov:   NewProvisionService(db, rm, logging.Nop{}),
	}

	f.anna, err = f.prov.CreateUser(ctx, "Anna Berg", "anna", "s3cret", "1234")
	require.NoError(t, err)
	f.boris, err = f.prov.CreateUser(ctx, "Boris Lind", "boris", "hunter2", "5678")
	require.NoError(t, err)

	f.food, err = f.prov.CreateCategory(ctx, "Food")
	require.NoError(t, err)
	f.travel, err = f.prov.CreateCategory(ctx, "Transport")
	require.NoError(t, err)

	return f
}

func (f *fixture) add(t *testing.T, userID, categoryID int64, date models.Date, desc string, qty int, price string) *models.Payment {
	t.Helper()
	p, err := f.ledger.AddPayment(context.Background(), NewPayment{
		UserID:      userID,
		CategoryID:  categoryID,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   dec(price),
		Date:        date,
	})
	require.NoError(t, err)
	return p
}
