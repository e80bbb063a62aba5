package analysis

import (
	"strings"
	"time"
)

// Exported logs are day-first: an ambiguous "01/02/2024" is 1 February.
// Non-padded layout digits also accept zero-padded input, so "2/1/2006"
// covers "02/01/2024" as well. All parsing is in UTC; no ambient locale or
// timezone is consulted.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2006-01-02",
	"2/1/2006 15:04:05",
	"2006-01-02 15:04:05",
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// parseDayFirstDate parses a raw cell as a day-first calendar date.
func parseDayFirstDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseClock parses a raw cell as a time of day.
func parseClock(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// combine merges a date cell and a time cell into a single timestamp.
func combine(date, clock time.Time) time.Time {
	h, m, s := clock.Clock()
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, time.UTC)
}
