package models

import "github.com/dmitrijs2005/payledger/internal/common"

// PaymentFilter selects a user's payments in an inclusive date range,
// optionally restricted to one category.
type PaymentFilter struct {
	UserID     int64
	From       Date
	To         Date
	CategoryID *int64
}

// Validate rejects unusable filters. Reversed bounds are an error; they are
// never swapped.
func (f PaymentFilter) Validate() error {
	if f.UserID <= 0 {
		return &common.ValidationError{Field: "user_id", Reason: "must be set"}
	}
	if f.From.IsZero() {
		return &common.ValidationError{Field: "date_from", Reason: "is required"}
	}
	if f.To.IsZero() {
		return &common.ValidationError{Field: "date_to", Reason: "is required"}
	}
	if f.From.After(f.To.Time) {
		return &common.ValidationError{Field: "date_range", Reason: "start date is after end date"}
	}
	if f.CategoryID != nil && *f.CategoryID <= 0 {
		return &common.ValidationError{Field: "category_id", Reason: "must be positive"}
	}
	return nil
}
