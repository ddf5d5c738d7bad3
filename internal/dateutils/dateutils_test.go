package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderDate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectedOk bool
		expectedY  int
		expectedM  time.Month
		expectedD  int
		expectedH  int
		expectedMi int
	}{
		{"ISO day", "2025-01-15", true, 2025, time.January, 15, 0, 0},
		{"ISO with minutes", "2025-01-15 10:30", true, 2025, time.January, 15, 10, 30},
		{"ISO T separator", "2025-01-15T10:30", true, 2025, time.January, 15, 10, 30},
		{"ISO full timestamp", "2025-01-15 10:30:45", true, 2025, time.January, 15, 10, 30},
		{"RFC3339", "2025-01-15T10:30:45Z", true, 2025, time.January, 15, 10, 30},
		{"Brazilian day", "15/01/2025", true, 2025, time.January, 15, 0, 0},
		{"Brazilian with minutes", "15/01/2025 10:30", true, 2025, time.January, 15, 10, 30},
		{"Brazilian with seconds", "15/01/2025 10:30:45", true, 2025, time.January, 15, 10, 30},
		{"Surrounding whitespace", "  2025-01-15  ", true, 2025, time.January, 15, 0, 0},
		{"Slash-separated ISO", "2025/01/15", true, 2025, time.January, 15, 0, 0},
		{"Empty string", "", false, 0, 0, 0, 0, 0},
		{"Whitespace only", "   ", false, 0, 0, 0, 0, 0},
		{"Garbage", "not a date", false, 0, 0, 0, 0, 0},
		{"Impossible calendar day", "31/02/2025", false, 0, 0, 0, 0, 0},
		{"Hour out of range", "15/01/2025 25:00", false, 0, 0, 0, 0, 0},
		{"Month out of range", "2025-13-01", false, 0, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, ok := ParseOrderDate(tc.input)

			assert.Equal(t, tc.expectedOk, ok)
			if tc.expectedOk {
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
				assert.Equal(t, tc.expectedH, date.Hour())
				assert.Equal(t, tc.expectedMi, date.Minute())
			}
		})
	}
}

func TestParseOrderDateIsDeterministic(t *testing.T) {
	first, ok1 := ParseOrderDate("15/01/2025 10:30")
	second, ok2 := ParseOrderDate("15/01/2025 10:30")

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.True(t, first.Equal(second))
	assert.Equal(t, time.UTC, first.Location())
}

func TestDayKey(t *testing.T) {
	date := time.Date(2025, time.March, 7, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-07", DayKey(date))
}

func TestMonthKey(t *testing.T) {
	date := time.Date(2025, time.March, 7, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "2025-03", MonthKey(date))
}

func TestDayKeysSortChronologically(t *testing.T) {
	earlier := time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	assert.Less(t, DayKey(earlier), DayKey(later))
}

func TestStartOfDay(t *testing.T) {
	date := time.Date(2025, time.June, 10, 14, 22, 59, 123, time.UTC)
	start := StartOfDay(date)

	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), start)
}

func TestEndOfDay(t *testing.T) {
	date := time.Date(2025, time.June, 10, 14, 22, 59, 123, time.UTC)
	end := EndOfDay(date)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.True(t, end.After(date))
	assert.Equal(t, date.Day(), end.Day())
}
