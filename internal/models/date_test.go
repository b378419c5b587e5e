package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_BothLayouts(t *testing.T) {
	want := NewDate(2024, time.March, 7)

	for _, in := range []string{"2024-03-07", "07.03.2024", "  2024-03-07 "} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got.Time), in)
	}

	_, err := ParseDate("03/07/2024")
	assert.Error(t, err)
}

func TestDate_Formats(t *testing.T) {
	d := NewDate(2023, time.December, 1)
	assert.Equal(t, "2023-12-01", d.String())
	assert.Equal(t, "01.12.2023", d.Display())
	assert.Equal(t, "2023-11-01", d.AddMonths(-1).String())
	assert.Equal(t, "2024-02-29", NewDate(2024, time.March, 31).AddMonths(-1).String())
	assert.Equal(t, "2025-02-28", NewDate(2025, time.January, 31).AddMonths(1).String())
}

func TestDate_ValueAndScan(t *testing.T) {
	d := NewDate(2024, time.January, 31)
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", v)

	tests := []struct {
		name string
		src  any
	}{
		{"text", "2024-01-31"},
		{"bytes", []byte("2024-01-31")},
		{"sqlite timestamp text", "2024-01-31 00:00:00+00:00"},
		{"time", time.Date(2024, time.January, 31, 15, 4, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, 0, d.Compare(got))
		})
	}

	var bad Date
	assert.Error(t, bad.Scan(42))
	assert.Error(t, bad.Scan("yesterday"))
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.May, 9)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-09"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 0, d.Compare(back))
}
