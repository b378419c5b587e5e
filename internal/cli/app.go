package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/services"
)

// AuthService is the part of services.AuthService the REPL needs.
type AuthService interface {
	Users(ctx context.Context) ([]models.User, error)
	Login(ctx context.Context, selected *models.User, password, pin string) (*services.Session, error)
}

// LedgerService is the part of services.LedgerService the REPL needs.
type LedgerService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	AddPayment(ctx context.Context, in services.NewPayment) (*models.Payment, error)
	DeletePayments(ctx context.Context, userID int64, ids []int64) (int, error)
	QueryPayments(ctx context.Context, userID int64, from, to models.Date, categoryID *int64) ([]models.PaymentView, error)
}

// ReportExporter exports a report of selected payments.
type ReportExporter interface {
	Export(ctx context.Context, sess *services.Session, selected []models.PaymentView) (string, error)
}

type App struct {
	authService   AuthService
	ledgerService LedgerService
	exporter      ReportExporter

	session *services.Session
	// listing is the last table shown; row selections refer to it.
	listing []models.PaymentView

	reader *bufio.Reader
	out    io.Writer
	today  func() models.Date
}

func NewApp(as AuthService, ls LedgerService, re ReportExporter, in io.Reader, out io.Writer) *App {
	return &App{
		authService:   as,
		ledgerService: ls,
		exporter:      re,
		reader:        bufio.NewReader(in),
		out:           out,
		today:         models.Today,
	}
}

// Run prints a greeting and blocks in the REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Payment ledger (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Login)
}
