package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/admin"
	"github.com/CorprexAhmed/Corprex-Scheduler/services/scheduling"
)

// AvailabilityHandler serves the public calendar queries behind the booking
// widget.
type AvailabilityHandler struct {
	Engine scheduling.SchedulingService
	Usage  admin.UsageService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(engine scheduling.SchedulingService, usage admin.UsageService) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Usage: usage}
}

// GetAvailableDatesHandler returns the dates in a month that still have at
// least one open slot.
//
// GET /api/availability/dates?year=2026&month=8
func (h *AvailabilityHandler) GetAvailableDatesHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing month"})
		return
	}

	dates := h.Engine.ListAvailableDates(year, time.Month(month))
	if h.Usage != nil {
		h.Usage.Record(models.MetricAvailabilityChecks)
	}

	c.JSON(http.StatusOK, gin.H{"availableDates": dates})
}

// GetAvailableTimesHandler returns the open time labels for one date.
//
// GET /api/availability/times?date=2026-08-28
func (h *AvailabilityHandler) GetAvailableTimesHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date"})
		return
	}

	times := h.Engine.ListAvailableTimes(date)
	if h.Usage != nil {
		h.Usage.Record(models.MetricAvailabilityChecks)
	}

	c.JSON(http.StatusOK, gin.H{"availableTimes": times})
}
