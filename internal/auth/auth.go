// Package auth verifies the credentials of a user picked from the login list.
//
// The password is stored as a bcrypt hash while the PIN is stored as plain
// data and compared directly. The PIN is a convenience second factor; its
// small key space gives no protection if the database leaks.
package auth

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/cryptox"
	"github.com/dmitrijs2005/payledger/internal/models"
)

const (
	MinPIN = 1000
	MaxPIN = 9999
)

// ParsePIN trims s and parses it as a four-digit PIN.
func ParsePIN(s string) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || pin < MinPIN || pin > MaxPIN {
		return 0, common.ErrInvalidPinFormat
	}
	return pin, nil
}

// Authenticate checks password and pin against the selected user and returns
// its id. Checks run in order: selection, PIN format, PIN, password.
// Every returned error wraps common.ErrAuth.
func Authenticate(selected *models.User, password, pin string) (int64, error) {
	if selected == nil {
		return 0, common.ErrNoUserSelected
	}

	p, err := ParsePIN(pin)
	if err != nil {
		return 0, err
	}

	if p != selected.PIN {
		return 0, common.ErrPinMismatch
	}

	if !cryptox.CheckPassword(selected.PasswordHash, password) {
		return 0, common.ErrPasswordMismatch
	}

	return selected.ID, nil
}
