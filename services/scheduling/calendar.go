package scheduling

import (
	"time"

	"go.uber.org/zap"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

// Initialize seeds the slot calendar: for every weekday within the horizon,
// one slot per label, starting available. Existing keys are skipped, so
// re-running never resets a booked slot and the call is safe to repeat
// (e.g. from an operator cron that extends the horizon).
func (e *DefaultSchedulingEngine) Initialize(horizonDays int, labels []string) {
	if len(labels) == 0 {
		labels = DefaultTimeLabels
	}

	today := civilDate(e.now())

	e.mu.Lock()
	defer e.mu.Unlock()

	created := 0
	for offset := 0; offset < horizonDays; offset++ {
		day := today.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		date := day.Format(dateLayout)
		for _, label := range labels {
			key := models.SlotKey{Date: date, Time: label}
			if _, exists := e.slots[key]; exists {
				continue
			}
			e.slots[key] = &models.Slot{Date: date, Time: label, IsAvailable: true}
			created++
		}
	}

	utils.GetLogger().Info("slot calendar initialized",
		zap.Int("horizonDays", horizonDays),
		zap.Int("slotsCreated", created),
		zap.Int("slotsTotal", len(e.slots)))
}

// SetAvailable flips the availability flag for a slot. Unknown keys are a
// silent no-op: a cancel or book against a slot outside the generated
// horizon simply does nothing.
func (e *DefaultSchedulingEngine) SetAvailable(date, timeLabel string, available bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setAvailableLocked(models.SlotKey{Date: date, Time: timeLabel}, available)
}

func (e *DefaultSchedulingEngine) setAvailableLocked(key models.SlotKey, available bool) {
	if slot, ok := e.slots[key]; ok {
		slot.IsAvailable = available
	}
}
