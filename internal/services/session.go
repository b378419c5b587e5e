// Package services holds the ledger's business logic: credential checks that
// open a Session, and the payment operations scoped to that session's user.
package services

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated user of the running process. It is created
// by AuthService.Login and passed explicitly to every scoped operation.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	Login     string
	FullName  string
	StartedAt time.Time
}
