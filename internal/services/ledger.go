package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/dbx"
	"github.com/dmitrijs2005/payledger/internal/logging"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// LedgerService implements the payment operations. Every mutation runs in
// its own transaction.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	validate    *validator.Validate
}

func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *LedgerService {
	return &LedgerService{db: db, repomanager: m, logger: l, validate: newValidator()}
}

// ListCategories returns all categories ordered by id.
func (s *LedgerService) ListCategories(ctx context.Context) ([]models.Category, error) {
	list, err := s.repomanager.Categories(s.db).List(ctx)
	if err != nil {
		return nil, &common.StoreError{Op: "list categories", Cause: err}
	}
	return list, nil
}

// AddPayment validates in, computes the amount and stores the payment.
func (s *LedgerService) AddPayment(ctx context.Context, in NewPayment) (*models.Payment, error) {
	in.Description = strings.TrimSpace(in.Description)
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	p := &models.Payment{
		UserID:      in.UserID,
		CategoryID:  in.CategoryID,
		Date:        in.Date,
		Description: in.Description,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Amount:      models.ComputeAmount(in.Quantity, in.UnitPrice),
	}

	var created *models.Payment
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Categories(tx).GetByID(ctx, in.CategoryID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return &common.ValidationError{Field: "category_id", Reason: "unknown category"}
			}
			return &common.StoreError{Op: "add payment", Cause: err}
		}

		out, err := s.repomanager.Payments(tx).Create(ctx, p)
		if err != nil {
			return &common.StoreError{Op: "add payment", Cause: err}
		}
		created = out
		return nil
	})
	if err != nil {
		return nil, storeError("add payment", err)
	}

	s.logger.Info(ctx, "payment added", "user_id", created.UserID, "payment_id", created.ID, "amount", created.Amount.StringFixed(2))
	return created, nil
}

// DeletePayments removes the given payments of userID atomically. If any id
// is missing or owned by another user nothing is deleted and a
// *common.PartialFailureError lists the offending ids.
func (s *LedgerService) DeletePayments(ctx context.Context, userID int64, ids []int64) (int, error) {
	if userID <= 0 {
		return 0, &common.ValidationError{Field: "user_id", Reason: "must be set"}
	}

	batch := uniqueIDs(ids)
	if len(batch) == 0 {
		return 0, nil
	}

	var (
		failed []int64
		cause  error
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Payments(tx)
		for _, id := range batch {
			n, err := repo.Delete(ctx, userID, id)
			if err != nil {
				failed = append(failed, id)
				cause = &common.StoreError{Op: "delete payment", Cause: err}
				return cause
			}
			if n == 0 {
				failed = append(failed, id)
				cause = common.ErrNotFound
			}
		}
		return cause
	})
	if err != nil {
		if cause == nil {
			cause = &common.StoreError{Op: "delete payments", Cause: err}
		}
		s.logger.Warn(ctx, "delete rolled back", "user_id", userID, "requested", len(batch), "failed", failed)
		return 0, &common.PartialFailureError{Requested: len(batch), Failed: failed, Cause: cause}
	}

	s.logger.Info(ctx, "payments deleted", "user_id", userID, "count", len(batch))
	return len(batch), nil
}

// QueryPayments returns the user's payments dated within [from, to],
// optionally limited to one category, newest first.
func (s *LedgerService) QueryPayments(ctx context.Context, userID int64, from, to models.Date, categoryID *int64) ([]models.PaymentView, error) {
	f := models.PaymentFilter{UserID: userID, From: from, To: to, CategoryID: categoryID}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Payments(s.db).Select(ctx, f)
	if err != nil {
		return nil, &common.StoreError{Op: "query payments", Cause: err}
	}
	return list, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// storeError passes typed ledger errors through and wraps anything else,
// such as a failed begin or commit.
func storeError(op string, err error) error {
	var (
		ve *common.ValidationError
		se *common.StoreError
	)
	if errors.As(err, &ve) || errors.As(err, &se) {
		return err
	}
	return &common.StoreError{Op: op, Cause: err}
}
