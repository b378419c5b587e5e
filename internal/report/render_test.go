package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dmitrijs2005/payledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc(t *testing.T) *Document {
	t.Helper()
	doc, err := Build("Anna Berg (anna)", []models.PaymentView{
		view(1, "Food", day(5), "Milk", "3.75"),
		view(2, "Food", day(1), "Bread", "16.00"),
		view(3, "Transport", day(2), "Taxi", "20"),
	}, generated)
	require.NoError(t, err)
	return doc
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer("")
	require.NoError(t, err)
	assert.Equal(t, "txt", r.Ext())

	r, err = NewRenderer("JSON")
	require.NoError(t, err)
	assert.Equal(t, "json", r.Ext())

	_, err = NewRenderer("pdf")
	assert.Error(t, err)
}

func TestTextRenderer_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{PageLines: DefaultPageLines}).Render(&buf, sampleDoc(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "PAYMENT REPORT\nOwner: Anna Berg (anna)\nGenerated: 31.03.2024 12:00\n"))
	assert.Contains(t, out, "Food — 19.75\n  01.03.2024  Bread — 16.00\n  05.03.2024  Milk — 3.75\n")
	assert.Contains(t, out, "Transport — 20.00\n")
	assert.True(t, strings.HasSuffix(out, "TOTAL: 39.75\n"))
	assert.NotContains(t, out, "\f")
}

func TestTextRenderer_Paginates(t *testing.T) {
	var selected []models.PaymentView
	for i := 0; i < 25; i++ {
		selected = append(selected, view(int64(i), "Food", day(1), "Item", "1.00"))
	}
	doc, err := Build("o", selected, generated)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{PageLines: 10}).Render(&buf, doc))

	pages := strings.Split(buf.String(), "\f")
	// 4 header lines + 1 section header + 25 items + blank + rule + total
	require.Len(t, pages, 4)
	for _, p := range pages[:3] {
		assert.Equal(t, 10, strings.Count(p, "\n"))
	}
	assert.Equal(t, 3, strings.Count(pages[3], "\n"))
}

func TestJSONRenderer_EncodesFixedMoney(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, sampleDoc(t)))

	var got struct {
		Title    string `json:"title"`
		Sections []struct {
			Category string `json:"category"`
			Total    string `json:"total"`
			Items    []struct {
				Date   string `json:"date"`
				Amount string `json:"amount"`
			} `json:"items"`
		} `json:"sections"`
		GrandTotal string `json:"grand_total"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "PAYMENT REPORT", got.Title)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "19.75", got.Sections[0].Total)
	assert.Equal(t, "2024-03-01", got.Sections[0].Items[0].Date)
	assert.Equal(t, "20.00", got.Sections[1].Total)
	assert.Equal(t, "20.00", got.Sections[1].Items[0].Amount)
	assert.Equal(t, "39.75", got.GrandTotal)
}
