package scheduling

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAvailableTimesChronologicalOrder(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	// The label set straddles noon, so lexical ordering would put
	// "2:30 PM" before "9:00 AM". The engine must sort by time-of-day.
	times := e.ListAvailableTimes("2026-03-09")
	require.Equal(t, DefaultTimeLabels, times)
	assert.False(t, sort.StringsAreSorted(times), "labels are deliberately not in lexical order")
}

func TestListAvailableTimesPastDateIsEmpty(t *testing.T) {
	e := newTestEngine(t)

	// Seed the calendar as of the previous Friday, then move the clock
	// forward: the old slots still carry isAvailable=true but must no
	// longer be offered.
	e.Now = func() time.Time {
		return time.Date(2026, time.February, 27, 8, 0, 0, 0, time.Local)
	}
	e.Initialize(14, nil)
	require.NotEmpty(t, e.ListAvailableTimes("2026-02-27"))

	e.Now = refClock
	assert.Empty(t, e.ListAvailableTimes("2026-02-27"))
}

func TestListAvailableTimesTodayFiltersElapsedLabels(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	// Clock reads 10:05, so 9:00, 9:30 and 10:00 are gone for today.
	times := e.ListAvailableTimes("2026-03-04")
	assert.Equal(t, []string{"10:30 AM", "11:00 AM", "11:30 AM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM"}, times)

	// A label equal to the current time is excluded as well: the filter is
	// strictly-after.
	e.Now = func() time.Time {
		return time.Date(2026, time.March, 4, 10, 30, 0, 0, time.Local)
	}
	assert.NotContains(t, e.ListAvailableTimes("2026-03-04"), "10:30 AM")
}

func TestListAvailableTimesBadDate(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	assert.Empty(t, e.ListAvailableTimes("not-a-date"))
	assert.Empty(t, e.ListAvailableTimes(""))
}

func TestListAvailableDatesSortedAndDeduped(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	dates := e.ListAvailableDates(2026, time.March)
	require.NotEmpty(t, dates)
	assert.True(t, sort.StringsAreSorted(dates))

	seen := make(map[string]int)
	for _, d := range dates {
		seen[d]++
		assert.Equal(t, 1, seen[d], "duplicate date %s", d)
	}
}

func TestListAvailableDatesOutsideHorizon(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	assert.Empty(t, e.ListAvailableDates(2027, time.January))
	assert.Empty(t, e.ListAvailableDates(2025, time.December))
}
