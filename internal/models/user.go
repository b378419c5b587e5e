// Package models defines the ledger entities persisted in the database and
// the read-only projections handed to the presentation layer.
package models

// User is provisioned out of band. PasswordHash is a bcrypt hash; PIN is
// stored as a plain number because it is a convenience factor only.
type User struct {
	ID           int64
	FullName     string
	Login        string
	PasswordHash string
	PIN          int
}

// Label is how the user is named on reports and prompts.
func (u *User) Label() string {
	if u.FullName == "" {
		return u.Login
	}
	return u.FullName + " (" + u.Login + ")"
}

// Category is immutable reference data.
type Category struct {
	ID   int64
	Name string
}
