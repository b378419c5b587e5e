package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/payledger/internal/models"
)

func printPayments(w io.Writer, list []models.PaymentView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tDate\tDescription\tQty\tPrice\tAmount\tCategory\t")
	for i, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t\n",
			i+1, p.Date.Display(), p.Description, p.Quantity, p.UnitPrice.StringFixed(2), p.Amount.StringFixed(2), p.CategoryName)
	}
	return tw.Flush()
}

func printCategories(w io.Writer, list []models.Category) {
	for _, c := range list {
		fmt.Fprintf(w, "%d) %s\n", c.ID, c.Name)
	}
}
