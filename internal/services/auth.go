package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/payledger/internal/auth"
	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/logging"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/repositories/repomanager"
	"github.com/google/uuid"
)

// AuthService lists selectable users and opens sessions for them.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, logger: l, now: time.Now}
}

// Users returns the provisioned users ordered by login.
func (s *AuthService) Users(ctx context.Context) ([]models.User, error) {
	list, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, &common.StoreError{Op: "list users", Cause: err}
	}
	return list, nil
}

// Login verifies the credentials of the selected user and opens a session.
func (s *AuthService) Login(ctx context.Context, selected *models.User, password, pin string) (*Session, error) {
	id, err := auth.Authenticate(selected, password, pin)
	if err != nil {
		if selected != nil {
			s.logger.Warn(ctx, "login failed", "login", selected.Login, "reason", err.Error())
		} else {
			s.logger.Warn(ctx, "login failed", "reason", err.Error())
		}
		return nil, err
	}

	sess := &Session{
		ID:        uuid.New(),
		UserID:    id,
		Login:     selected.Login,
		FullName:  selected.FullName,
		StartedAt: s.now(),
	}
	s.logger.Info(ctx, "login", "login", sess.Login, "user_id", sess.UserID, "session", sess.ID.String())
	return sess, nil
}
