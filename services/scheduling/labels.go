package scheduling

import "time"

// DefaultTimeLabels is the fixed daily template of bookable times: a morning
// block and an afternoon block on the half hour. These are the only labels
// the engine ever generates or accepts.
var DefaultTimeLabels = []string{
	"9:00 AM",
	"9:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"2:00 PM",
	"2:30 PM",
	"3:00 PM",
	"3:30 PM",
	"4:00 PM",
	"4:30 PM",
}

const (
	// dateLayout is the wire format for all calendar dates.
	dateLayout = "2006-01-02"
	// labelLayout parses the 12-hour time labels, e.g. "2:30 PM".
	labelLayout = "3:04 PM"
)

// labelMinutes converts a time label to minutes from midnight. Labels must
// be sorted by this value, not lexically, or "2:30 PM" lands before
// "9:00 AM".
func labelMinutes(label string) (int, bool) {
	t, err := time.Parse(labelLayout, label)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// civilDate truncates a timestamp to its calendar date.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
