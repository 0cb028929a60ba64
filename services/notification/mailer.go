package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/CorprexAhmed/Corprex-Scheduler/config"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// DefaultNotificationService is the SMTP-backed implementation. When no
// SMTP host is configured it degrades to a no-op so the engine can run
// without outbound mail.
type DefaultNotificationService struct {
	dialer   *gomail.Dialer
	from     string
	operator string
}

// NewDefaultNotificationService builds the mailer from AppConfig.
func NewDefaultNotificationService() *DefaultNotificationService {
	cfg := config.AppConfig
	svc := &DefaultNotificationService{
		from:     cfg.SMTPFrom,
		operator: cfg.OperatorEmail,
	}
	if cfg.SMTPHost == "" {
		utils.GetLogger().Warn("SMTP host not configured; meeting emails are disabled")
		return svc
	}
	svc.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return svc
}

// SendBookingConfirmation mails the booker and the operator after a booking
// commits.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, meeting *models.Meeting) error {
	subject := fmt.Sprintf("Meeting confirmed: %s at %s", meeting.MeetingDate, meeting.MeetingTime)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour meeting is confirmed for %s at %s (%s).\r\n\r\nReference: %s\r\n\r\nNeed to reschedule? Cancel with the reference above and pick a new slot.\r\n",
		meeting.FirstName, meeting.MeetingDate, meeting.MeetingTime, meeting.Timezone, meeting.ID,
	)
	if err := s.send(ctx, meeting.Email, subject, body); err != nil {
		return err
	}

	if s.operator == "" {
		return nil
	}
	opSubject := fmt.Sprintf("New booking: %s %s (%s) — %s %s",
		meeting.FirstName, meeting.LastName, meeting.Company, meeting.MeetingDate, meeting.MeetingTime)
	opBody := fmt.Sprintf(
		"Contact: %s %s <%s> %s\r\nCompany: %s\r\nTimezone: %s\r\nMessage: %s\r\nMeeting ID: %s\r\n",
		meeting.FirstName, meeting.LastName, meeting.Email, meeting.Phone,
		meeting.Company, meeting.Timezone, meeting.Message, meeting.ID,
	)
	return s.send(ctx, s.operator, opSubject, opBody)
}

// SendCancellationNotice mails the booker after a cancellation.
func (s *DefaultNotificationService) SendCancellationNotice(ctx context.Context, meeting *models.Meeting) error {
	subject := fmt.Sprintf("Meeting cancelled: %s at %s", meeting.MeetingDate, meeting.MeetingTime)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour meeting on %s at %s has been cancelled. The slot has been released; you are welcome to book another time.\r\n",
		meeting.FirstName, meeting.MeetingDate, meeting.MeetingTime,
	)
	return s.send(ctx, meeting.Email, subject, body)
}

// SendMeetingReminder mails the booker shortly before the meeting.
func (s *DefaultNotificationService) SendMeetingReminder(ctx context.Context, meeting *models.Meeting) error {
	subject := fmt.Sprintf("Reminder: meeting on %s at %s", meeting.MeetingDate, meeting.MeetingTime)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nThis is a reminder for your upcoming meeting on %s at %s (%s).\r\n",
		meeting.FirstName, meeting.MeetingDate, meeting.MeetingTime, meeting.Timezone,
	)
	return s.send(ctx, meeting.Email, subject, body)
}

func (s *DefaultNotificationService) send(ctx context.Context, to, subject, body string) error {
	if s.dialer == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
