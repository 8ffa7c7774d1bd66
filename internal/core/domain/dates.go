package domain

import "time"

// DateLayout is the calendar-day key format used everywhere: campaign
// scheduling, travel ranges and daily-metrics keys.
const DateLayout = "2006-01-02"

// ParseDateNoonUTC parses a YYYY-MM-DD string as 12:00 UTC of that day.
// Anchoring at noon rather than midnight keeps the date on the same
// calendar day under ±12h timezone conversion. Returns false for
// malformed or impossible dates (Feb 30, month 13, day 0).
func ParseDateNoonUTC(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t.Add(12 * time.Hour), true
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD date.
func ValidDateKey(s string) bool {
	_, ok := ParseDateNoonUTC(s)
	return ok
}

// EpochMsToDayKey floors an epoch-millisecond timestamp to its UTC
// calendar day.
func EpochMsToDayKey(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(DateLayout)
}

// DayKey formats a moment as its UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateRangesOverlap reports whether two inclusive ranges intersect.
func DateRangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
