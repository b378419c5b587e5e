package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/models"
)

// Login lists the provisioned users, asks for a selection, password and
// PIN, and opens a session. An existing session is replaced only on success.
func (a *App) Login(ctx context.Context) error {
	users, err := a.authService.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return fmt.Errorf("no users provisioned")
	}
	for i, u := range users {
		fmt.Fprintf(a.out, "%d) %s\n", i+1, u.Label())
	}

	choice, err := getSimpleText(a.reader, "Select user number", a.out)
	if err != nil {
		return err
	}
	var selected *models.User
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(users) {
		selected = &users[n-1]
	}
	if selected == nil {
		return common.ErrNoUserSelected
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	pin, err := getSimpleText(a.reader, "Enter PIN", a.out)
	if err != nil {
		return err
	}

	sess, err := a.authService.Login(ctx, selected, string(password), pin)
	if err != nil {
		return err
	}

	a.session = sess
	a.listing = nil
	fmt.Fprintf(a.out, "Welcome, %s\n", sess.FullName)
	return nil
}

// Logout drops the session and the last listing.
func (a *App) Logout(ctx context.Context) error {
	if a.session == nil {
		return common.ErrNotLoggedIn
	}
	fmt.Fprintf(a.out, "Goodbye, %s\n", a.session.FullName)
	a.session = nil
	a.listing = nil
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if a.session == nil {
		return common.ErrNotLoggedIn
	}
	fmt.Fprintf(a.out, "%s (%s), since %s\n", a.session.FullName, a.session.Login, a.session.StartedAt.Format("02.01.2006 15:04"))
	return nil
}
