package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 6, 15, 14, 0, 0, 0, time.Local)

	cases := []struct {
		dateStr string
		want    int
	}{
		{"2026-06-15", 0},
		{"2026-06-14", 1},
		{"2026-06-01", 14},
		{"2026-05-15", 31},
		{"2025-06-15", 365},
	}
	for _, c := range cases {
		got, err := DaysSince(c.dateStr, now)
		require.NoError(t, err, c.dateStr)
		assert.Equal(t, c.want, got, c.dateStr)
	}
}

func TestDaysSinceAddedLateEvening(t *testing.T) {
	// An item added just before midnight is a full day old a few minutes
	// later. Calendar days, not elapsed hours.
	justAfterMidnight := time.Date(2026, 6, 15, 0, 5, 0, 0, time.Local)

	got, err := DaysSince("2026-06-14", justAfterMidnight)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestDaysSinceRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "15-06-2026", "2026/06/15", "yesterday"} {
		_, err := DaysSince(bad, time.Now())
		assert.Error(t, err, "input %q", bad)
	}
}

func TestLocalDateString(t *testing.T) {
	assert.Equal(t, "2026-01-05", LocalDateString(time.Date(2026, 1, 5, 23, 59, 0, 0, time.Local)))
}

func TestTrimComment(t *testing.T) {
	assert.Nil(t, TrimComment(nil))

	empty := "   "
	assert.Nil(t, TrimComment(&empty))

	padded := "  freezer burn on one side  "
	got := TrimComment(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "freezer burn on one side", *got)
}
