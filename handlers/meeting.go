package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/admin"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/scheduling"
)

// MeetingHandler serves booking, cancellation and the admin meeting list.
type MeetingHandler struct {
	Engine scheduling.SchedulingService
	Usage  admin.UsageService
	Logger *zap.Logger
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(engine scheduling.SchedulingService, usage admin.UsageService, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{Engine: engine, Usage: usage, Logger: logger}
}

// BookMeetingHandler books a slot.
//
// POST /api/meetings/book
func (h *MeetingHandler) BookMeetingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	meeting, err := h.Engine.Book(req)
	if err != nil {
		var vErr *scheduling.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		var cErr *scheduling.ConflictError
		if errors.As(err, &cErr) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot no longer available"})
			return
		}
		h.Logger.Error("booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book meeting"})
		return
	}

	if h.Usage != nil {
		h.Usage.Record(models.MetricBookings)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"meetingId": meeting.ID,
		"message":   fmt.Sprintf("Meeting booked for %s at %s", meeting.MeetingDate, meeting.MeetingTime),
	})
}

// CancelMeetingHandler cancels a meeting and releases its slot.
//
// POST /api/meetings/:id/cancel
func (h *MeetingHandler) CancelMeetingHandler(c *gin.Context) {
	meetingID := c.Param("id")

	meeting, err := h.Engine.Cancel(meetingID)
	if err != nil {
		var nfErr *scheduling.NotFoundError
		if errors.As(err, &nfErr) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meeting not found"})
			return
		}
		h.Logger.Error("cancellation failed", zap.String("meetingId", meetingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel meeting"})
		return
	}

	if h.Usage != nil {
		h.Usage.Record(models.MetricCancellations)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Meeting on %s at %s cancelled", meeting.MeetingDate, meeting.MeetingTime),
	})
}

// ListMeetingsHandler returns meetings for the dashboard, sorted by
// (date, time) ascending.
//
// GET /api/meetings?status=scheduled
func (h *MeetingHandler) ListMeetingsHandler(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.MeetingStatusScheduled && status != models.MeetingStatusCancelled {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meetings": h.Engine.ListMeetings(status)})
}
