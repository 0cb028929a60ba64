package scheduling

import (
	"sync"
	"time"

	"go.uber.org/zap"

	meetingRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/meeting"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/notification"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// DefaultSchedulingEngine is the production implementation. All slot and
// meeting state lives behind one RWMutex: queries take the read lock,
// Book/Cancel take the write lock around the whole check-then-set so a
// half-updated slot is never observable.
type DefaultSchedulingEngine struct {
	mu       sync.RWMutex
	slots    map[models.SlotKey]*models.Slot
	meetings map[string]*models.Meeting

	// Mirror is the best-effort Mongo copy of the meeting store. Mirror
	// failures are logged and swallowed; the in-memory state is the source
	// of truth.
	Mirror meetingRepo.MeetingRepository

	// Notifier sends confirmation/cancellation mail after a transaction
	// commits. Never capable of reverting the transaction.
	Notifier notification.NotificationService

	// Reminders enqueues deferred meeting reminders.
	Reminders ReminderScheduler

	// Now is the engine clock, overridable in tests.
	Now func() time.Time
}

// NewDefaultSchedulingEngine builds an engine with empty state. Mirror,
// notifier and reminders may each be nil.
func NewDefaultSchedulingEngine(mirror meetingRepo.MeetingRepository, notifier notification.NotificationService, reminders ReminderScheduler) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		slots:     make(map[models.SlotKey]*models.Slot),
		meetings:  make(map[string]*models.Meeting),
		Mirror:    mirror,
		Notifier:  notifier,
		Reminders: reminders,
		Now:       time.Now,
	}
}

func (e *DefaultSchedulingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Restore reloads meeting records (typically from the Mongo mirror on
// startup) and re-marks the slots of scheduled meetings as booked. Must be
// called after Initialize.
func (e *DefaultSchedulingEngine) Restore(meetings []models.Meeting) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range meetings {
		m := meetings[i]
		e.meetings[m.ID] = &m
		if m.Status != models.MeetingStatusScheduled {
			continue
		}
		if slot, ok := e.slots[m.SlotKey]; ok {
			slot.IsAvailable = false
		}
	}
}

// mirrorInsert copies a new meeting into Mongo, best-effort.
func (e *DefaultSchedulingEngine) mirrorInsert(m *models.Meeting) {
	if e.Mirror == nil {
		return
	}
	if err := e.Mirror.Create(m); err != nil {
		utils.GetLogger().Warn("meeting mirror insert failed",
			zap.String("meetingId", m.ID), zap.Error(err))
	}
}

// mirrorUpdateStatus pushes a status transition into Mongo, best-effort.
func (e *DefaultSchedulingEngine) mirrorUpdateStatus(m *models.Meeting) {
	if e.Mirror == nil {
		return
	}
	if err := e.Mirror.UpdateStatus(m.ID, m.Status); err != nil {
		utils.GetLogger().Warn("meeting mirror status update failed",
			zap.String("meetingId", m.ID), zap.Error(err))
	}
}
