package scheduling

import "fmt"

// ValidationError reports a missing or malformed required booking field.
// No state is changed when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ConflictError signals that the requested slot is not available at the time
// of booking. The caller may re-query availability and retry.
type ConflictError struct {
	Date string
	Time string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot %s %s is no longer available", e.Date, e.Time)
}

// NotFoundError signals an unknown meeting ID.
type NotFoundError struct {
	MeetingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("meeting %s not found", e.MeetingID)
}
