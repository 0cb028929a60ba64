package scheduling

import (
	"sort"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// GetMeeting looks up a single meeting by ID.
func (e *DefaultSchedulingEngine) GetMeeting(meetingID string) (*models.Meeting, error) {
	e.mu.RLock()
	meeting, ok := e.meetings[meetingID]
	if !ok {
		e.mu.RUnlock()
		return nil, &NotFoundError{MeetingID: meetingID}
	}
	snapshot := *meeting
	e.mu.RUnlock()
	return &snapshot, nil
}

// ListMeetings returns meetings sorted by (date, time-of-day) ascending.
// An empty status returns all meetings.
func (e *DefaultSchedulingEngine) ListMeetings(status string) []models.Meeting {
	e.mu.RLock()
	out := make([]models.Meeting, 0, len(e.meetings))
	for _, m := range e.meetings {
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, *m)
	}
	e.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].MeetingDate != out[j].MeetingDate {
			return out[i].MeetingDate < out[j].MeetingDate
		}
		mi, _ := labelMinutes(out[i].MeetingTime)
		mj, _ := labelMinutes(out[j].MeetingTime)
		return mi < mj
	})
	return out
}
