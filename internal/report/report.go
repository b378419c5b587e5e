// Package report turns a selection of payments into a grouped, totaled
// document and exports it through a renderer and a sink.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/payledger/internal/common"
	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/shopspring/decimal"
)

const Title = "PAYMENT REPORT"

// Item is one payment line inside a section.
type Item struct {
	Date        models.Date     `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Section groups the items of one category.
type Section struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Items    []Item          `json:"items"`
}

// Document is the renderer-independent report model.
type Document struct {
	Title       string          `json:"title"`
	Owner       string          `json:"owner"`
	GeneratedAt time.Time       `json:"generated_at"`
	Sections    []Section       `json:"sections"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// Build groups selected by category name, sorts sections by name and items
// by date (stable), and computes per-section and grand totals.
func Build(owner string, selected []models.PaymentView, at time.Time) (*Document, error) {
	if len(selected) == 0 {
		return nil, common.ErrEmptySelection
	}

	idx := make(map[string]int)
	var sections []Section
	for _, p := range selected {
		i, ok := idx[p.CategoryName]
		if !ok {
			i = len(sections)
			idx[p.CategoryName] = i
			sections = append(sections, Section{Category: p.CategoryName, Total: decimal.Zero})
		}
		sections[i].Items = append(sections[i].Items, Item{Date: p.Date, Description: p.Description, Amount: p.Amount})
		sections[i].Total = sections[i].Total.Add(p.Amount)
	}

	sort.Slice(sections, func(a, b int) bool { return sections[a].Category < sections[b].Category })

	grand := decimal.Zero
	for i := range sections {
		items := sections[i].Items
		sort.SliceStable(items, func(a, b int) bool { return items[a].Date.Before(items[b].Date.Time) })
		grand = grand.Add(sections[i].Total)
	}

	return &Document{
		Title:       Title,
		Owner:       owner,
		GeneratedAt: at,
		Sections:    sections,
		GrandTotal:  grand,
	}, nil
}

// Lines returns the document as plain lines: title, owner, then each
// section header followed by its items, then the grand total.
func (d *Document) Lines() []string {
	lines := []string{d.Title, "Owner: " + d.Owner}
	for _, s := range d.Sections {
		lines = append(lines, SectionHeader(s))
		for _, it := range s.Items {
			lines = append(lines, ItemLine(it))
		}
	}
	return append(lines, TotalLine(d.GrandTotal))
}

func SectionHeader(s Section) string {
	return fmt.Sprintf("%s — %s", s.Category, s.Total.StringFixed(2))
}

func ItemLine(it Item) string {
	return fmt.Sprintf("%s — %s", it.Description, it.Amount.StringFixed(2))
}

func TotalLine(total decimal.Decimal) string {
	return "TOTAL: " + total.StringFixed(2)
}
