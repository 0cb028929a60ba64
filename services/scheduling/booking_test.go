package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

func TestBookSuccess(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	meeting, err := e.Book(validRequest("2026-03-09", "10:00 AM"))
	require.NoError(t, err)
	require.NotNil(t, meeting)

	assert.NotEmpty(t, meeting.ID)
	assert.Equal(t, models.MeetingStatusScheduled, meeting.Status)
	assert.Equal(t, models.SlotKey{Date: "2026-03-09", Time: "10:00 AM"}, meeting.SlotKey)
	assert.Equal(t, "Dana", meeting.FirstName)
	assert.Equal(t, refClock(), meeting.CreatedAt)

	// The booked slot disappears from availability immediately.
	assert.NotContains(t, e.ListAvailableTimes("2026-03-09"), "10:00 AM")

	scheduled := e.ListMeetings(models.MeetingStatusScheduled)
	require.Len(t, scheduled, 1)
	assert.Equal(t, meeting.ID, scheduled[0].ID)
}

func TestBookConflictOnDoubleBooking(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	_, err := e.Book(validRequest("2026-03-09", "10:00 AM"))
	require.NoError(t, err)

	_, err = e.Book(validRequest("2026-03-09", "10:00 AM"))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)

	// The losing attempt left no meeting behind.
	assert.Len(t, e.ListMeetings(models.MeetingStatusScheduled), 1)
}

func TestBookValidation(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
		field  string
	}{
		{"missing first name", func(r *models.BookingRequest) { r.FirstName = "" }, "firstName"},
		{"missing last name", func(r *models.BookingRequest) { r.LastName = " " }, "lastName"},
		{"missing email", func(r *models.BookingRequest) { r.Email = "" }, "email"},
		{"missing company", func(r *models.BookingRequest) { r.Company = "" }, "company"},
		{"missing date", func(r *models.BookingRequest) { r.Date = "" }, "date"},
		{"missing time", func(r *models.BookingRequest) { r.Time = "" }, "time"},
		{"missing timezone", func(r *models.BookingRequest) { r.Timezone = "" }, "timezone"},
		{"malformed date", func(r *models.BookingRequest) { r.Date = "03/09/2026" }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest("2026-03-09", "10:00 AM")
			tt.mutate(&req)

			_, err := e.Book(req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	// Phone and message are optional.
	req := validRequest("2026-03-09", "11:00 AM")
	req.Phone = ""
	req.Message = ""
	_, err := e.Book(req)
	assert.NoError(t, err)
}

func TestBookUnknownTimeLabelIsConflict(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	// "1:00 PM" is not in the fixed label set; no such slot exists, so the
	// attempt surfaces as a conflict, not a crash.
	_, err := e.Book(validRequest("2026-03-09", "1:00 PM"))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)

	// Same for a weekday outside the generated horizon.
	_, err = e.Book(validRequest("2026-09-07", "10:00 AM"))
	require.ErrorAs(t, err, &cErr)
}

func TestConcurrentBookingHasSingleWinner(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.Book(validRequest("2026-03-10", "2:30 PM"))
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		var cErr *ConflictError
		require.ErrorAs(t, err, &cErr)
		conflicts++
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, e.ListMeetings(models.MeetingStatusScheduled), 1)
}

func TestCancelReleasesSlot(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	meeting, err := e.Book(validRequest("2026-03-09", "10:00 AM"))
	require.NoError(t, err)
	require.NotContains(t, e.ListAvailableTimes("2026-03-09"), "10:00 AM")

	cancelled, err := e.Cancel(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, cancelled.Status)
	assert.Contains(t, e.ListAvailableTimes("2026-03-09"), "10:00 AM")

	// Repeated cancellation keeps succeeding.
	again, err := e.Cancel(meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MeetingStatusCancelled, again.Status)

	// The freed slot can be booked by someone else.
	_, err = e.Book(validRequest("2026-03-09", "10:00 AM"))
	assert.NoError(t, err)
}

func TestCancelUnknownMeeting(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	_, err := e.Cancel("no-such-id")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListMeetingsSortedByDateThenTime(t *testing.T) {
	e := newTestEngine(t)
	e.Initialize(14, nil)

	// Booked out of order on purpose; "2:30 PM" would sort before
	// "9:00 AM" lexically.
	_, err := e.Book(validRequest("2026-03-10", "9:00 AM"))
	require.NoError(t, err)
	_, err = e.Book(validRequest("2026-03-09", "2:30 PM"))
	require.NoError(t, err)
	_, err = e.Book(validRequest("2026-03-09", "9:30 AM"))
	require.NoError(t, err)

	all := e.ListMeetings("")
	require.Len(t, all, 3)
	assert.Equal(t, "2026-03-09", all[0].MeetingDate)
	assert.Equal(t, "9:30 AM", all[0].MeetingTime)
	assert.Equal(t, "2026-03-09", all[1].MeetingDate)
	assert.Equal(t, "2:30 PM", all[1].MeetingTime)
	assert.Equal(t, "2026-03-10", all[2].MeetingDate)
}

// recordingNotifier captures confirmation dispatches and can be forced to
// fail.
type recordingNotifier struct {
	fail      bool
	confirmed chan string
}

func (n *recordingNotifier) SendBookingConfirmation(ctx context.Context, m *models.Meeting) error {
	n.confirmed <- m.ID
	if n.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func (n *recordingNotifier) SendCancellationNotice(ctx context.Context, m *models.Meeting) error {
	return nil
}

func (n *recordingNotifier) SendMeetingReminder(ctx context.Context, m *models.Meeting) error {
	return nil
}

func TestBookingSucceedsWhenNotificationFails(t *testing.T) {
	notifier := &recordingNotifier{fail: true, confirmed: make(chan string, 1)}
	e := NewDefaultSchedulingEngine(nil, notifier, nil)
	e.Now = refClock
	e.Initialize(14, nil)

	meeting, err := e.Book(validRequest("2026-03-09", "10:00 AM"))
	require.NoError(t, err, "notification failure must never fail the booking")

	select {
	case id := <-notifier.confirmed:
		assert.Equal(t, meeting.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation dispatch was never attempted")
	}

	// Slot state committed before dispatch was attempted.
	assert.NotContains(t, e.ListAvailableTimes("2026-03-09"), "10:00 AM")
}
