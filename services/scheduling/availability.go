package scheduling

import (
	"sort"
	"time"
)

// ListAvailableDates returns the sorted, duplicate-free dates within the
// given civil month that have at least one open slot. Months entirely
// outside the generated horizon come back empty.
func (e *DefaultSchedulingEngine) ListAvailableDates(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	lo := first.Format(dateLayout)
	hi := last.Format(dateLayout)

	e.mu.RLock()
	seen := make(map[string]struct{})
	for key, slot := range e.slots {
		if !slot.IsAvailable {
			continue
		}
		// Wire dates are zero-padded, so string comparison matches
		// chronological comparison within the month bounds.
		if key.Date < lo || key.Date > hi {
			continue
		}
		seen[key.Date] = struct{}{}
	}
	e.mu.RUnlock()

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// ListAvailableTimes returns the open time labels for a date, sorted by
// time-of-day. Dates strictly before today yield an empty list regardless
// of slot flags; for today, only labels strictly after the current
// wall-clock time survive.
func (e *DefaultSchedulingEngine) ListAvailableTimes(date string) []string {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return []string{}
	}

	now := e.now()
	today := civilDate(now)
	if day.Before(today) {
		return []string{}
	}
	isToday := day.Equal(today)
	nowMinutes := now.Hour()*60 + now.Minute()

	type entry struct {
		label   string
		minutes int
	}

	e.mu.RLock()
	open := make([]entry, 0, len(DefaultTimeLabels))
	for key, slot := range e.slots {
		if key.Date != date || !slot.IsAvailable {
			continue
		}
		minutes, ok := labelMinutes(key.Time)
		if !ok {
			continue
		}
		if isToday && minutes <= nowMinutes {
			continue
		}
		open = append(open, entry{label: key.Time, minutes: minutes})
	}
	e.mu.RUnlock()

	sort.Slice(open, func(i, j int) bool { return open[i].minutes < open[j].minutes })

	times := make([]string, len(open))
	for i, en := range open {
		times[i] = en.label
	}
	return times
}
