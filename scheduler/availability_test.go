package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/curelink/clinic-app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailableSlots_EmptyLedgerReturnsFullCatalog(t *testing.T) {
	slots := AvailableSlots(nil, date(2026, 3, 10))
	if !reflect.DeepEqual(slots, Catalog) {
		t.Errorf("expected full catalog, got %v", slots)
	}
}

func TestAvailableSlots_ExcludesActiveAppointments(t *testing.T) {
	day := date(2026, 3, 10)
	appointments := []models.Appointment{
		{Date: day, TimeSlot: "09:30 AM", Status: models.StatusScheduled},
		{Date: day, TimeSlot: "02:00 PM", Status: models.StatusConfirmed},
		{Date: day, TimeSlot: "11:00 AM", Status: models.StatusPending},
	}

	slots := AvailableSlots(appointments, day)
	for _, taken := range []string{"09:30 AM", "02:00 PM", "11:00 AM"} {
		for _, s := range slots {
			if s == taken {
				t.Errorf("slot %s should be occupied", taken)
			}
		}
	}
	if len(slots) != len(Catalog)-3 {
		t.Errorf("expected %d open slots, got %d", len(Catalog)-3, len(slots))
	}
}

func TestAvailableSlots_CancelledAppointmentsDoNotBlock(t *testing.T) {
	day := date(2026, 3, 10)
	appointments := []models.Appointment{
		{Date: day, TimeSlot: "09:00 AM", Status: models.StatusCancelled},
		{Date: day, TimeSlot: "09:30 AM", Status: models.StatusCompleted},
	}

	slots := AvailableSlots(appointments, day)
	if slots[0] != "09:00 AM" {
		t.Errorf("cancelled slot should be open, got first slot %s", slots[0])
	}
	// Completed appointments keep their slot out of the open list.
	for _, s := range slots {
		if s == "09:30 AM" {
			t.Error("completed appointment should still occupy its slot")
		}
	}
}

func TestAvailableSlots_ComparesAgainstSelectedDate(t *testing.T) {
	selected := date(2026, 3, 11)
	appointments := []models.Appointment{
		// Same slot booked on a different day must not block the selected day.
		{Date: date(2026, 3, 10), TimeSlot: "09:00 AM", Status: models.StatusScheduled},
		{Date: selected, TimeSlot: "10:00 AM", Status: models.StatusScheduled},
	}

	slots := AvailableSlots(appointments, selected)
	if slots[0] != "09:00 AM" {
		t.Errorf("expected 09:00 AM open on selected day, got %s", slots[0])
	}
	for _, s := range slots {
		if s == "10:00 AM" {
			t.Error("10:00 AM is booked on the selected day and should be occupied")
		}
	}
}

func TestAvailableSlots_FullyBookedDayIsEmpty(t *testing.T) {
	day := date(2026, 3, 10)
	appointments := make([]models.Appointment, 0, len(Catalog))
	for _, slot := range Catalog {
		appointments = append(appointments, models.Appointment{
			Date: day, TimeSlot: slot, Status: models.StatusScheduled,
		})
	}

	slots := AvailableSlots(appointments, day)
	if len(slots) != 0 {
		t.Errorf("expected no open slots, got %v", slots)
	}
}

func TestAvailableSlots_PreservesCatalogOrder(t *testing.T) {
	day := date(2026, 3, 10)
	appointments := []models.Appointment{
		{Date: day, TimeSlot: "09:00 AM", Status: models.StatusScheduled},
		{Date: day, TimeSlot: "12:30 PM", Status: models.StatusScheduled},
	}

	slots := AvailableSlots(appointments, day)
	last := -1
	for _, s := range slots {
		idx := SlotIndex(s)
		if idx <= last {
			t.Fatalf("slots out of catalog order: %v", slots)
		}
		last = idx
	}
}
