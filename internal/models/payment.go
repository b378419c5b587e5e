package models

import "github.com/shopspring/decimal"

// Payment is a single purchase owned by one user. Amount is computed once
// on creation and is authoritative afterwards.
type Payment struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Date        Date
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// ComputeAmount returns quantity × unit price at currency precision.
func ComputeAmount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// PaymentView is a payment joined with its category name. ID is an opaque
// handle the caller passes back to delete the row.
type PaymentView struct {
	ID           int64
	Date         Date
	Description  string
	Quantity     int
	UnitPrice    decimal.Decimal
	Amount       decimal.Decimal
	CategoryName string
}
