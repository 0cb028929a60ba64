package models

import "time"

// Meeting status values.
const (
	MeetingStatusScheduled = "scheduled"
	MeetingStatusCancelled = "cancelled"
)

// Meeting represents a confirmed booking record. SlotKey is the owned
// reference to the booked slot, assigned at booking time; cancellation
// releases through it rather than re-parsing wire strings.
type Meeting struct {
	ID          string    `bson:"id" json:"id"` // UUID
	FirstName   string    `bson:"firstName" json:"firstName"`
	LastName    string    `bson:"lastName" json:"lastName"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company     string    `bson:"company" json:"company"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	MeetingDate string    `bson:"meetingDate" json:"meetingDate"` // "YYYY-MM-DD"
	MeetingTime string    `bson:"meetingTime" json:"meetingTime"` // one of the fixed time labels
	Timezone    string    `bson:"timezone" json:"timezone"`       // IANA zone name
	SlotKey     SlotKey   `bson:"slotKey" json:"slotKey"`
	Status      string    `bson:"status" json:"status"` // "scheduled" or "cancelled"
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest defines the payload for booking a meeting.
type BookingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Timezone  string `json:"timezone"`
}
