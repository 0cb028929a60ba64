package models

// ReminderPayload is the task payload enqueued when a booking is confirmed
// and consumed by the reminder worker shortly before the meeting starts.
type ReminderPayload struct {
	MeetingID string `json:"meetingId"`
	FireDate  string `json:"fireDate"` // RFC3339 timestamp the reminder fires at
}
