package notification

import (
	"context"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// NotificationService defines methods for sending meeting emails. All
// dispatch is best-effort: callers log and swallow errors, and a booking is
// never failed or rolled back because mail could not be sent.
type NotificationService interface {
	// SendBookingConfirmation mails the booker and the operator after a
	// booking commits.
	SendBookingConfirmation(ctx context.Context, meeting *models.Meeting) error
	// SendCancellationNotice mails the booker after a cancellation.
	SendCancellationNotice(ctx context.Context, meeting *models.Meeting) error
	// SendMeetingReminder mails the booker shortly before the meeting.
	SendMeetingReminder(ctx context.Context, meeting *models.Meeting) error
}
