package scheduler

import (
	"time"

	"github.com/curelink/clinic-app/models"
)

// AvailableSlots derives the open slots for the selected date: the catalog
// minus the labels of non-cancelled appointments on that date. The result
// preserves catalog order; an empty result is valid. Pure function,
// recomputed on every call.
func AvailableSlots(appointments []models.Appointment, selected time.Time) []string {
	occupied := make(map[string]bool, len(appointments))
	for _, a := range appointments {
		if a.Status == models.StatusCancelled {
			continue
		}
		if !SameDay(a.Date, selected) {
			continue
		}
		occupied[a.TimeSlot] = true
	}

	available := make([]string, 0, len(Catalog))
	for _, slot := range Catalog {
		if !occupied[slot] {
			available = append(available, slot)
		}
	}
	return available
}
