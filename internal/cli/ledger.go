package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/dmitrijs2005/payledger/internal/services"
	"github.com/shopspring/decimal"
)

func (a *App) Categories(ctx context.Context) error {
	list, err := a.ledgerService.ListCategories(ctx)
	if err != nil {
		return err
	}
	printCategories(a.out, list)
	return nil
}

// List asks for a date range and an optional category, then shows the
// matching payments. Defaults are the last month up to today, all categories.
func (a *App) List(ctx context.Context) error {
	if a.session == nil {
		return common.ErrNotLoggedIn
	}

	today := a.today()
	from, err := a.askDate("From date", today.AddMonths(-1))
	if err != nil {
		return err
	}
	to, err := a.askDate("To date", today)
	if err != nil {
		return err
	}

	cats, err := a.ledgerService.ListCategories(ctx)
	if err != nil {
		return err
	}
	printCategories(a.out, cats)
	s, err := getSimpleText(a.reader, "Category id (empty for all)", a.out)
	if err != nil {
		return err
	}
	var categoryID *int64
	if s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return &common.ValidationError{Field: "category_id", Reason: "must be a number"}
		}
		categoryID = &id
	}

	list, err := a.ledgerService.QueryPayments(ctx, a.session.UserID, from, to, categoryID)
	if err != nil {
		return err
	}
	a.listing = list

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No payments found")
		return nil
	}
	return printPayments(a.out, list)
}

// Add prompts for a new payment and stores it.
func (a *App) Add(ctx context.Context) error {
	if a.session == nil {
		return common.ErrNotLoggedIn
	}

	cats, err := a.ledgerService.ListCategories(ctx)
	if err != nil {
		return err
	}
	printCategories(a.out, cats)

	s, err := getSimpleText(a.reader, "Category id", a.out)
	if err != nil {
		return err
	}
	categoryID, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &common.ValidationError{Field: "category_id", Reason: "must be a number"}
	}

	desc, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	s, err = GetWithDefault(a.reader, "Quantity", "1", a.out)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(s)
	if err != nil {
		return &common.ValidationError{Field: "quantity", Reason: "must be a whole number"}
	}

	s, err = getSimpleText(a.reader, "Unit price", a.out)
	if err != nil {
		return err
	}
	price, err := decimal.NewFromString(s)
	if err != nil {
		return &common.ValidationError{Field: "unit_price", Reason: "must be a number"}
	}

	date, err := a.askDate("Date", a.today())
	if err != nil {
		return err
	}

	p, err := a.ledgerService.AddPayment(ctx, services.NewPayment{
		UserID:      a.session.UserID,
		CategoryID:  categoryID,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   price,
		Date:        date,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added: %s %s — %s\n", p.Date.Display(), p.Description, p.Amount.StringFixed(2))
	return nil
}

// Delete removes the selected rows of the last listing after confirmation.
func (a *App) Delete(ctx context.Context, selection string) error {
	if a.session == nil {
		return common.ErrNotLoggedIn
	}

	rows, err := a.selectRows(selection, "Rows to delete (e.g. 1,3-5 or all)")
	if err != nil {
		return err
	}

	for _, r := range rows {
		p := a.listing[r]
		fmt.Fprintf(a.out, "  %d) %s %s — %s\n", r+1, p.Date.Display(), p.Description, p.Amount.StringFixed(2))
	}
	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %d payment(s)?", len(rows)), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, a.listing[r].ID)
	}

	n, err := a.ledgerService.DeletePayments(ctx, a.session.UserID, ids)
	if err != nil {
		return err
	}

	drop := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		drop[r] = struct{}{}
	}
	kept := a.listing[:0:0]
	for i, p := range a.listing {
		if _, ok := drop[i]; !ok {
			kept = append(kept, p)
		}
	}
	a.listing = kept

	fmt.Fprintf(a.out, "Deleted %d payment(s)\n", n)
	return nil
}

// Report exports a report of the selected rows of the last listing.
func (a *App) Report(ctx context.Context, selection string) error {
	if a.session == nil {
		return common.ErrNotLoggedIn
	}

	rows, err := a.selectRows(selection, "Rows to include (e.g. 1,3-5 or all)")
	if err != nil {
		return err
	}

	selected := make([]models.PaymentView, 0, len(rows))
	for _, r := range rows {
		selected = append(selected, a.listing[r])
	}

	loc, err := a.exporter.Export(ctx, a.session, selected)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Report saved: %s\n", loc)
	return nil
}

func (a *App) selectRows(selection, prompt string) ([]int, error) {
	if len(a.listing) == 0 {
		return nil, common.ErrEmptySelection
	}
	if selection == "" {
		if err := printPayments(a.out, a.listing); err != nil {
			return nil, err
		}
		s, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return nil, err
		}
		selection = s
	}
	return ParseSelection(selection, len(a.listing))
}

func (a *App) askDate(prompt string, def models.Date) (models.Date, error) {
	s, err := GetWithDefault(a.reader, prompt, def.Display(), a.out)
	if err != nil {
		return models.Date{}, err
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, &common.ValidationError{Field: "date", Reason: err.Error()}
	}
	return d, nil
}
