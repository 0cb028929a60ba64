package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/CorprexAhmed/Corprex-Scheduler/config"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/notification"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/scheduling"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/tasks"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(engine scheduling.SchedulingService, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(engine, notifSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask sends the reminder mail unless the meeting has been
// cancelled since the task was enqueued.
func handleReminderTask(engine scheduling.SchedulingService, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		meeting, err := engine.GetMeeting(p.MeetingID)
		if err != nil {
			// Meeting not in memory (e.g. restart lost an unmirrored record);
			// nothing to remind about.
			log.Printf("[ReminderHandler] meeting %s not found, skipping", p.MeetingID)
			return nil
		}
		if meeting.Status != models.MeetingStatusScheduled {
			log.Printf("[ReminderHandler] meeting %s is %s, skipping reminder", meeting.ID, meeting.Status)
			return nil
		}

		if err := notifSvc.SendMeetingReminder(ctx, meeting); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder for %s: %v", meeting.ID, err)
			return err
		}
		return nil
	}
}
