// Package common defines sentinel and typed errors shared by the ledger
// layers. Callers should match them with errors.Is / errors.As.
package common

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// ErrAuth is the parent of every credential check failure.
	ErrAuth             = errors.New("authentication failed")
	ErrNoUserSelected   = fmt.Errorf("%w: no user selected", ErrAuth)
	ErrInvalidPinFormat = fmt.Errorf("%w: pin must be a number between 1000 and 9999", ErrAuth)
	ErrPinMismatch      = fmt.Errorf("%w: wrong pin", ErrAuth)
	ErrPasswordMismatch = fmt.Errorf("%w: wrong password", ErrAuth)

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")

	// Report errors.
	ErrEmptySelection = errors.New("no payments selected")
)

// ValidationError reports a rejected input field. It is returned before
// any mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StoreError wraps a persistence failure. The transaction it happened in
// has already been rolled back.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s): %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error { return e.Cause }

// PartialFailureError is returned when a delete batch could not be applied
// in full. Nothing from the batch was deleted.
type PartialFailureError struct {
	Requested int
	Failed    []int64
	Cause     error
}

func (e *PartialFailureError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "delete of %d payment(s) rolled back", e.Requested)
	if len(e.Failed) > 0 {
		ids := make([]string, 0, len(e.Failed))
		for _, id := range e.Failed {
			ids = append(ids, fmt.Sprint(id))
		}
		fmt.Fprintf(&b, ", failed ids: %s", strings.Join(ids, ","))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *PartialFailureError) Unwrap() error { return e.Cause }
