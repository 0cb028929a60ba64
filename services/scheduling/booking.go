package scheduling

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// Book validates the request, then performs the atomic check-and-set: if
// the slot is open it is flipped to booked and a scheduled meeting record
// is created under the same write lock, otherwise a ConflictError is
// returned with no state change. Confirmation mail and the reminder task
// are dispatched only after the transaction has committed and can never
// fail it.
func (e *DefaultSchedulingEngine) Book(req models.BookingRequest) (*models.Meeting, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	key := models.SlotKey{Date: req.Date, Time: req.Time}

	e.mu.Lock()
	slot, ok := e.slots[key]
	if !ok || !slot.IsAvailable {
		e.mu.Unlock()
		return nil, &ConflictError{Date: req.Date, Time: req.Time}
	}
	slot.IsAvailable = false

	meeting := &models.Meeting{
		ID:          uuid.New().String(),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		Message:     strings.TrimSpace(req.Message),
		MeetingDate: req.Date,
		MeetingTime: req.Time,
		Timezone:    req.Timezone,
		SlotKey:     key,
		Status:      models.MeetingStatusScheduled,
		CreatedAt:   e.now(),
	}
	e.meetings[meeting.ID] = meeting
	e.mu.Unlock()

	e.mirrorInsert(meeting)
	e.dispatchBookingSideEffects(meeting)

	return meeting, nil
}

// dispatchBookingSideEffects fires the confirmation mail and reminder task.
// Both are best-effort: failures are logged and swallowed, never surfaced
// to the booker.
func (e *DefaultSchedulingEngine) dispatchBookingSideEffects(meeting *models.Meeting) {
	logger := utils.GetLogger()

	if e.Notifier != nil {
		m := *meeting
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Notifier.SendBookingConfirmation(ctx, &m); err != nil {
				logger.Warn("booking confirmation dispatch failed",
					zap.String("meetingId", m.ID), zap.Error(err))
			}
		}()
	}

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleBookingReminder(meeting); err != nil {
			logger.Warn("reminder scheduling failed",
				zap.String("meetingId", meeting.ID), zap.Error(err))
		}
	}
}

func validateBookingRequest(req models.BookingRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"company", req.Company},
		{"date", req.Date},
		{"time", req.Time},
		{"timezone", req.Timezone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "field is required")
		}
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return NewValidationError("date", "must be in YYYY-MM-DD format")
	}
	return nil
}
