// Package dateutils normalizes the heterogeneous date-time text found
// in order exports into canonical instants.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout constants shared with the rest of the application.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
	FullLayout  = "2006-01-02 15:04:05"
)

// patternMatcher matches one explicit date shape via an anchored regular
// expression. Each matcher is total: it never errors, it either
// recognizes the input or reports false.
type patternMatcher struct {
	re    *regexp.Regexp
	build func(m []string) (time.Time, bool)
}

// Explicit pattern matchers in priority order. ISO and Brazilian shapes
// are structurally distinguishable (YYYY-MM-DD vs DD/MM/YYYY), so the
// first matching pattern decides; there is no guessing. Fields absent
// from a pattern default to zero (missing time means midnight).
var patterns = []patternMatcher{
	{
		// YYYY-MM-DD HH:mm
		re: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})[ T](\d{2}):(\d{2})$`),
		build: func(m []string) (time.Time, bool) {
			return buildDate(m[1], m[2], m[3], m[4], m[5], "0")
		},
	},
	{
		// YYYY-MM-DD
		re: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`),
		build: func(m []string) (time.Time, bool) {
			return buildDate(m[1], m[2], m[3], "0", "0", "0")
		},
	},
	{
		// DD/MM/YYYY HH:mm
		re: regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4}) (\d{2}):(\d{2})$`),
		build: func(m []string) (time.Time, bool) {
			return buildDate(m[3], m[2], m[1], m[4], m[5], "0")
		},
	},
	{
		// DD/MM/YYYY
		re: regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`),
		build: func(m []string) (time.Time, bool) {
			return buildDate(m[3], m[2], m[1], "0", "0", "0")
		},
	},
	{
		// DD/MM/YYYY HH:mm:ss
		re: regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4}) (\d{2}):(\d{2}):(\d{2})$`),
		build: func(m []string) (time.Time, bool) {
			return buildDate(m[3], m[2], m[1], m[4], m[5], m[6])
		},
	},
}

// fallbackLayouts is the last-resort cascade for shapes the explicit
// patterns do not cover.
var fallbackLayouts = []string{
	FullLayout,
	"2006/01/02",
	"02-01-2006",
	"2.1.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// ParseOrderDate parses order timestamp text into a canonical instant.
// Empty or whitespace-only input reports false immediately. The cascade
// tries strict ISO-8601 first, then the explicit pattern matchers in
// priority order, then the fallback layouts. Day and month are
// interpreted in calendar-local terms; instants are built in UTC so
// repeated runs over the same input are reproducible.
func ParseOrderDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", DayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(s); m != nil {
			if t, ok := p.build(m); ok {
				return t, true
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// buildDate assembles an instant from textual components, rejecting
// out-of-range values instead of letting time.Date normalize them.
func buildDate(year, month, day, hour, minute, second string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h, _ := strconv.Atoi(hour)
	mi, _ := strconv.Atoi(minute)
	se, _ := strconv.Atoi(second)

	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	if h > 23 || mi > 59 || se > 59 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(mo), d, h, mi, se, 0, time.UTC)
	// Rejects the likes of 31/02: normalization would shift the month.
	if t.Day() != d || t.Month() != time.Month(mo) {
		return time.Time{}, false
	}
	return t, true
}

// DayKey formats an instant as its fixed-width calendar day key.
// Lexicographic sorting of day keys is chronological.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// MonthKey formats an instant as its calendar month key (YYYY-MM).
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// StartOfDay returns midnight of the instant's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the instant's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
