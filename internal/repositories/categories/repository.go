package categories

import (
	"context"

	"github.com/dmitrijs2005/payledger/internal/models"
)

type Repository interface {
	Create(ctx context.Context, name string) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}
