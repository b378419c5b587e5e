package users

import (
	"context"

	"github.com/dmitrijs2005/payledger/internal/models"
)

// Repository stores provisioned users.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
