package meetingRepo

import (
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// MeetingRepository defines data access for the Mongo mirror of the meeting
// store. The in-memory engine is the source of truth; this mirror exists so
// meetings survive a restart and the dashboard can be served cold.
type MeetingRepository interface {
	// Create inserts a new meeting record.
	Create(meeting *models.Meeting) error
	// UpdateStatus transitions a meeting's status by ID.
	UpdateStatus(id, status string) error
	// GetByID retrieves a meeting by its unique ID.
	GetByID(id string) (*models.Meeting, error)
	// GetByStatus retrieves all meetings with the given status; an empty
	// status returns everything.
	GetByStatus(status string) ([]models.Meeting, error)
}
