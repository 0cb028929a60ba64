package scheduling

import (
	"time"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// SchedulingService is the availability/booking engine consumed by the HTTP
// layer. Slot availability state is owned exclusively by the engine and is
// only reachable through these operations.
type SchedulingService interface {
	// Initialize seeds the slot calendar over the rolling horizon. It is
	// idempotent: existing slots, booked or not, are never reset.
	Initialize(horizonDays int, labels []string)

	// SetAvailable flips a slot's availability flag. Unknown keys are a
	// silent no-op, never an error.
	SetAvailable(date, timeLabel string, available bool)

	// ListAvailableDates returns the sorted, duplicate-free dates within the
	// given civil month that still have at least one open slot.
	ListAvailableDates(year int, month time.Month) []string

	// ListAvailableTimes returns the open time labels for a date in
	// chronological order. Past dates yield an empty list; for today, labels
	// at or before the current wall-clock time are filtered out.
	ListAvailableTimes(date string) []string

	// Book atomically converts an available slot into a scheduled meeting,
	// or fails with a ConflictError leaving no state behind.
	Book(req models.BookingRequest) (*models.Meeting, error)

	// Cancel marks a meeting cancelled and releases its slot. Cancelling an
	// already-cancelled meeting succeeds again.
	Cancel(meetingID string) (*models.Meeting, error)

	// GetMeeting looks up a single meeting by ID.
	GetMeeting(meetingID string) (*models.Meeting, error)

	// ListMeetings returns meetings, optionally filtered by status, sorted
	// by (date, time-of-day) ascending.
	ListMeetings(status string) []models.Meeting
}

// ReminderScheduler enqueues a deferred reminder for a confirmed meeting.
// Implemented by the asynq-backed tasks client; a nil scheduler disables
// reminders entirely.
type ReminderScheduler interface {
	ScheduleBookingReminder(meeting *models.Meeting) error
}
