package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateNoonUTCRoundTrip(t *testing.T) {
	for _, s := range []string{"2020-01-01", "2024-02-29", "2026-08-31", "1999-12-31"} {
		parsed, ok := ParseDateNoonUTC(s)
		require.True(t, ok, s)
		assert.Equal(t, 12, parsed.Hour(), s)
		assert.Equal(t, s, DayKey(parsed), s)
	}
}

func TestParseDateNoonUTCInvalid(t *testing.T) {
	for _, s := range []string{
		"2023-02-30", // impossible day
		"2023-13-01", // impossible month
		"2023-01-00", // day zero
		"2023-1-1",   // wrong width
		"not-a-date",
		"",
	} {
		_, ok := ParseDateNoonUTC(s)
		assert.False(t, ok, s)
	}
}

func TestEpochMsToDayKeyBoundaries(t *testing.T) {
	midnight := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10", EpochMsToDayKey(midnight.UnixMilli()))

	justBefore := time.Date(2024, 3, 10, 23, 59, 59, 999_000_000, time.UTC)
	assert.Equal(t, "2024-03-10", EpochMsToDayKey(justBefore.UnixMilli()))

	nextDay := justBefore.Add(time.Millisecond)
	assert.Equal(t, "2024-03-11", EpochMsToDayKey(nextDay.UnixMilli()))
}

func TestDateRangesOverlap(t *testing.T) {
	day := func(s string) time.Time {
		d, ok := ParseDateNoonUTC(s)
		require.True(t, ok)
		return d
	}

	aStart, aEnd := day("2026-06-01"), day("2026-06-10")
	bStart, bEnd := day("2026-06-10"), day("2026-06-20")
	cStart, cEnd := day("2026-06-11"), day("2026-06-20")

	// reflexive
	assert.True(t, DateRangesOverlap(aStart, aEnd, aStart, aEnd))
	// inclusive boundary touch counts as overlap
	assert.True(t, DateRangesOverlap(aStart, aEnd, bStart, bEnd))
	// symmetric
	assert.Equal(t,
		DateRangesOverlap(aStart, aEnd, bStart, bEnd),
		DateRangesOverlap(bStart, bEnd, aStart, aEnd))
	// disjoint
	assert.False(t, DateRangesOverlap(aStart, aEnd, cStart, cEnd))
	assert.False(t, DateRangesOverlap(cStart, cEnd, aStart, aEnd))
}
