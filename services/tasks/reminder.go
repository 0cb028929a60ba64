package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/CorprexAhmed/Corprex-Scheduler/config"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

const TypeSendReminder = "reminder:send"

// Client enqueues deferred reminder tasks on the Redis-backed queue. It
// implements the engine's ReminderScheduler.
type Client struct {
	client    *asynq.Client
	leadHours int
}

// NewClient builds the asynq client from AppConfig.
func NewClient() *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
		leadHours: config.AppConfig.ReminderLeadHours,
	}
}

// ScheduleBookingReminder enqueues a reminder to fire leadHours before the
// meeting starts, in the booker's timezone. Meetings too close to start are
// skipped silently; the worker re-checks the meeting status before sending,
// so cancellations do not need to dequeue anything.
func (c *Client) ScheduleBookingReminder(meeting *models.Meeting) error {
	fireAt, ok := reminderFireTime(meeting, c.leadHours)
	if !ok {
		return nil
	}

	payload := models.ReminderPayload{
		MeetingID: meeting.ID,
		FireDate:  fireAt.Format(time.RFC3339),
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeSendReminder, b)
	_, err = c.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// reminderFireTime computes when the reminder should fire. Returns false
// when the fire time is already past or the meeting time cannot be parsed.
func reminderFireTime(meeting *models.Meeting, leadHours int) (time.Time, bool) {
	loc, err := time.LoadLocation(meeting.Timezone)
	if err != nil {
		loc = time.Local
	}
	start, err := time.ParseInLocation("2006-01-02 3:04 PM", meeting.MeetingDate+" "+meeting.MeetingTime, loc)
	if err != nil {
		return time.Time{}, false
	}

	fireAt := start.Add(-time.Duration(leadHours) * time.Hour)
	if !fireAt.After(time.Now()) {
		return time.Time{}, false
	}
	return fireAt, true
}
