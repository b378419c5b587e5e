package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DefaultPageLines is the number of lines on a printed page.
const DefaultPageLines = 60

// Renderer writes a document in one output format.
type Renderer interface {
	Render(w io.Writer, d *Document) error
	Ext() string
	ContentType() string
}

// NewRenderer returns the renderer for format ("text" or "json").
func NewRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "text", "txt":
		return &TextRenderer{PageLines: DefaultPageLines}, nil
	case "json":
		return &JSONRenderer{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// TextRenderer writes a printable page layout. A form feed separates pages
// of PageLines lines.
type TextRenderer struct {
	PageLines int
}

func (r *TextRenderer) Ext() string         { return "txt" }
func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TextRenderer) Render(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	for i, line := range r.layout(d) {
		if r.PageLines > 0 && i > 0 && i%r.PageLines == 0 {
			if err := bw.WriteByte('\f'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (r *TextRenderer) layout(d *Document) []string {
	lines := []string{
		d.Title,
		"Owner: " + d.Owner,
		"Generated: " + d.GeneratedAt.Format("02.01.2006 15:04"),
		"",
	}
	for _, s := range d.Sections {
		lines = append(lines, SectionHeader(s))
		for _, it := range s.Items {
			lines = append(lines, fmt.Sprintf("  %s  %s", it.Date.Display(), ItemLine(it)))
		}
		lines = append(lines, "")
	}
	return append(lines, strings.Repeat("_", 40), TotalLine(d.GrandTotal))
}

// JSONRenderer writes the document model as JSON. Money is encoded as
// strings with two decimals.
type JSONRenderer struct {
	Indent string
}

func (r *JSONRenderer) Ext() string         { return "json" }
func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(w io.Writer, d *Document) error {
	type item struct {
		Date        string `json:"date"`
		Description string `json:"description"`
		Amount      string `json:"amount"`
	}
	type section struct {
		Category string `json:"category"`
		Total    string `json:"total"`
		Items    []item `json:"items"`
	}
	out := struct {
		Title       string    `json:"title"`
		Owner       string    `json:"owner"`
		GeneratedAt string    `json:"generated_at"`
		Sections    []section `json:"sections"`
		GrandTotal  string    `json:"grand_total"`
	}{
		Title:       d.Title,
		Owner:       d.Owner,
		GeneratedAt: d.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		GrandTotal:  d.GrandTotal.StringFixed(2),
	}
	for _, s := range d.Sections {
		sec := section{Category: s.Category, Total: s.Total.StringFixed(2)}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, item{Date: it.Date.String(), Description: it.Description, Amount: it.Amount.StringFixed(2)})
		}
		out.Sections = append(out.Sections, sec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", r.Indent)
	return enc.Encode(out)
}
