package models

// SlotKey uniquely identifies a bookable slot. Date is in "YYYY-MM-DD"
// format and Time is one of the fixed 12-hour labels (e.g. "9:00 AM").
type SlotKey struct {
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time"`
}

// Slot represents a single bookable window in the calendar. The key never
// changes once the slot has been generated; only IsAvailable mutates.
type Slot struct {
	Date        string `bson:"date" json:"date"`
	Time        string `bson:"time" json:"time"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// Key returns the slot's identity.
func (s *Slot) Key() SlotKey {
	return SlotKey{Date: s.Date, Time: s.Time}
}
