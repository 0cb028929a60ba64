package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// Cancel marks the meeting cancelled and releases its slot through the
// owned SlotKey. A second Cancel on the same meeting succeeds again: it
// re-marks the record cancelled and re-frees an already-free slot, which
// the reference behavior treats as success rather than an error.
func (e *DefaultSchedulingEngine) Cancel(meetingID string) (*models.Meeting, error) {
	e.mu.Lock()
	meeting, ok := e.meetings[meetingID]
	if !ok {
		e.mu.Unlock()
		return nil, &NotFoundError{MeetingID: meetingID}
	}
	meeting.Status = models.MeetingStatusCancelled
	e.setAvailableLocked(meeting.SlotKey, true)
	snapshot := *meeting
	e.mu.Unlock()

	e.mirrorUpdateStatus(&snapshot)

	if e.Notifier != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := e.Notifier.SendCancellationNotice(ctx, &snapshot); err != nil {
				utils.GetLogger().Warn("cancellation notice dispatch failed",
					zap.String("meetingId", snapshot.ID), zap.Error(err))
			}
		}()
	}

	return &snapshot, nil
}
