package models

// Usage metric names tracked by the dashboard.
const (
	MetricBookings           = "bookings"
	MetricCancellations      = "cancellations"
	MetricAvailabilityChecks = "availabilityChecks"
	MetricChatRequests       = "chatRequests"
)

// UsageDay holds the counters recorded for one civil day.
type UsageDay struct {
	Date   string           `json:"date"` // "YYYY-MM-DD"
	Counts map[string]int64 `json:"counts"`
}

// UsageStats is the dashboard stats payload: per-day series plus totals
// over the requested window.
type UsageStats struct {
	Days   []UsageDay       `json:"days"`
	Totals map[string]int64 `json:"totals"`
}
