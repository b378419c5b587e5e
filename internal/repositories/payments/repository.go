package payments

import (
	"context"

	"github.com/dmitrijs2005/payledger/internal/models"
)

// Repository persists payments. Delete is always scoped to the owner.
type Repository interface {
	Create(ctx context.Context, p *models.Payment) (*models.Payment, error)
	Select(ctx context.Context, f models.PaymentFilter) ([]models.PaymentView, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
}
