package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/payledger/internal/auth"
	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/cryptox"
	"github.com/dmitrijs2005/payledger/internal/logging"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/repositories/repomanager"
	"github.com/go-playground/validator/v10"
)

// NewUser is the input of ProvisionService.CreateUser.
type NewUser struct {
	FullName string `json:"name" validate:"required,max=500"`
	Login    string `json:"login" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	PIN      string `json:"pin" validate:"pin"`
}

// NewCategory is the input of ProvisionService.CreateCategory.
type NewCategory struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ProvisionService creates users and categories out of band.
type ProvisionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	validate    *validator.Validate
}

func NewProvisionService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ProvisionService {
	return &ProvisionService{db: db, repomanager: m, logger: l, validate: newValidator()}
}

// CreateUser hashes password with bcrypt and stores the user.
func (s *ProvisionService) CreateUser(ctx context.Context, fullName, login, password, pin string) (*models.User, error) {
	in := NewUser{
		FullName: strings.TrimSpace(fullName),
		Login:    strings.TrimSpace(login),
		Password: password,
		PIN:      strings.TrimSpace(pin),
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	p, err := auth.ParsePIN(in.PIN)
	if err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{FullName: in.FullName, Login: in.Login, PasswordHash: hash, PIN: p})
	if err != nil {
		return nil, &common.StoreError{Op: "create user", Cause: err}
	}
	s.logger.Info(ctx, "user provisioned", "user_id", u.ID, "login", u.Login)
	return u, nil
}

// CreateCategory stores a new category name.
func (s *ProvisionService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	in := NewCategory{Name: strings.TrimSpace(name)}
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}
	c, err := s.repomanager.Categories(s.db).Create(ctx, in.Name)
	if err != nil {
		return nil, &common.StoreError{Op: "create category", Cause: err}
	}
	s.logger.Info(ctx, "category provisioned", "category_id", c.ID, "name", c.Name)
	return c, nil
}
