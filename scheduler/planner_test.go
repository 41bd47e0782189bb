package scheduler

import (
	"reflect"
	"testing"
	"time"

	"github.com/curelink/clinic-app/models"
)

func newTestPlanner(seed []Entry) *Planner {
	return NewPlanner(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), seed)
}

func TestPlannerCreate_AssignsSequentialIDs(t *testing.T) {
	p := newTestPlanner(nil)

	first, err := p.Create("09:00 AM", 1, "Asha Rao", "consultation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Create("09:30 AM", 2, "Ben Cole", "consultation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1,2 got %d,%d", first.ID, second.ID)
	}
}

func TestPlannerCreate_IDIsMaxPlusOneAfterCancel(t *testing.T) {
	p := newTestPlanner([]Entry{
		{ID: 1, PatientID: 1, TimeSlot: "09:00 AM", Status: models.StatusConfirmed},
		{ID: 5, PatientID: 2, TimeSlot: "09:30 AM", Status: models.StatusConfirmed},
	})

	if err := p.Cancel(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, err := p.Create("10:00 AM", 3, "Cara Diaz", "follow-up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 6 {
		t.Errorf("expected id 6 (max 5 + 1), got %d", entry.ID)
	}
}

func TestPlannerCreate_StartsConfirmedAndRemovesSlot(t *testing.T) {
	p := newTestPlanner(nil)

	entry, err := p.Create("11:00 AM", 7, "Dev Patel", "consultation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != models.StatusConfirmed {
		t.Errorf("new entry should be confirmed, got %s", entry.Status)
	}
	if entry.DurationLabel != "30 min" {
		t.Errorf("expected 30 min duration label, got %q", entry.DurationLabel)
	}
	for _, s := range p.AvailableSlots() {
		if s == "11:00 AM" {
			t.Error("booked slot should leave the availability track")
		}
	}
}

func TestPlannerCreate_RequiresSlotAndPatient(t *testing.T) {
	p := newTestPlanner(nil)

	if _, err := p.Create("", 1, "x", "consultation"); err == nil {
		t.Error("missing slot should fail")
	}
	if _, err := p.Create("09:00 AM", 0, "x", "consultation"); err == nil {
		t.Error("missing patient should fail")
	}
	if _, err := p.Create("08:00 AM", 1, "x", "consultation"); err == nil {
		t.Error("off-catalog slot should fail")
	}
	// Failed creates must not consume slots or ids.
	entry, err := p.Create("09:00 AM", 1, "x", "consultation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 1 {
		t.Errorf("expected id 1, got %d", entry.ID)
	}
}

func TestPlannerCreate_DoubleBookingRejected(t *testing.T) {
	p := newTestPlanner(nil)
	if _, err := p.Create("09:00 AM", 1, "a", "consultation"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Create("09:00 AM", 2, "b", "consultation"); err == nil {
		t.Error("second booking of the same slot should fail")
	}
}

func TestPlannerCancel_ReturnsSlotInCatalogOrder(t *testing.T) {
	p := newTestPlanner(nil)
	for _, slot := range []string{"09:00 AM", "09:30 AM", "10:00 AM"} {
		if _, err := p.Create(slot, 1, "a", "consultation"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Cancel the middle one; it must come back between its neighbours, not
	// appended at the end.
	entries := p.Entries()
	var middleID int
	for _, e := range entries {
		if e.TimeSlot == "09:30 AM" {
			middleID = e.ID
		}
	}
	if err := p.Cancel(middleID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	available := p.AvailableSlots()
	want := append([]string{"09:30 AM"}, Catalog[3:]...)
	if !reflect.DeepEqual(available, want) {
		t.Errorf("availability track out of order:\n got %v\nwant %v", available, want)
	}
}

func TestPlannerCancel_UnknownEntry(t *testing.T) {
	p := newTestPlanner(nil)
	if err := p.Cancel(42); err == nil {
		t.Error("cancelling a missing entry should fail")
	}
}

func TestPlannerSetStatus_AllowsAnyTransition(t *testing.T) {
	p := newTestPlanner(nil)
	entry, err := p.Create("09:00 AM", 1, "a", "consultation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The board is a scratch pad; even completed -> scheduled is allowed.
	for _, status := range []models.AppointmentStatus{
		models.StatusCompleted, models.StatusScheduled, models.StatusCancelled,
	} {
		if err := p.SetStatus(entry.ID, status); err != nil {
			t.Fatalf("SetStatus(%s): %v", status, err)
		}
	}
	if got := p.Entries()[0].Status; got != models.StatusCancelled {
		t.Errorf("expected cancelled, got %s", got)
	}
}

func TestPlannerSeed_RemovesSeededSlotsFromAvailability(t *testing.T) {
	p := newTestPlanner([]Entry{
		{ID: 1, PatientID: 1, TimeSlot: "09:00 AM", Status: models.StatusConfirmed},
	})
	available := p.AvailableSlots()
	if len(available) != len(Catalog)-1 {
		t.Fatalf("expected %d open slots, got %d", len(Catalog)-1, len(available))
	}
	if available[0] != "09:30 AM" {
		t.Errorf("seeded slot should be occupied, first open is %s", available[0])
	}
}
