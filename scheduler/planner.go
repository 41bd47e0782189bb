package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/curelink/clinic-app/models"
)

// Entry is one appointment on the front-desk day board. Entries live only in
// memory and are lost on restart; they are never reconciled with the
// appointments table.
type Entry struct {
	ID            int                      `json:"id"`
	PatientID     int                      `json:"patient_id"`
	PatientName   string                   `json:"patient_name"`
	TimeSlot      string                   `json:"time_slot"`
	DurationLabel string                   `json:"duration_label"`
	Type          string                   `json:"type"`
	Status        models.AppointmentStatus `json:"status"`
}

// Planner is the in-memory day board a front desk works from: a list of
// walk-in entries for one date plus its own availability track, maintained
// separately from the persisted ledger.
type Planner struct {
	mu        sync.Mutex
	date      time.Time
	entries   []Entry
	available []string
}

// NewPlanner builds a board for one date, seeding it with any existing
// entries. The availability track starts as the catalog minus the seeded
// slots.
func NewPlanner(date time.Time, seed []Entry) *Planner {
	p := &Planner{date: NormalizeDate(date)}
	p.entries = append(p.entries, seed...)

	taken := make(map[string]bool, len(seed))
	for _, e := range seed {
		taken[e.TimeSlot] = true
	}
	for _, slot := range Catalog {
		if !taken[slot] {
			p.available = append(p.available, slot)
		}
	}
	return p
}

// Date returns the board's calendar date.
func (p *Planner) Date() time.Time { return p.date }

// Entries returns a copy of the board's entries.
func (p *Planner) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// AvailableSlots returns a copy of the board's availability track.
func (p *Planner) AvailableSlots() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.available))
	copy(out, p.available)
	return out
}

// Create books a walk-in entry. A time slot and a patient are required; the
// new entry gets the next sequential id (max existing id + 1), starts out
// Confirmed and removes its slot from the availability track.
func (p *Planner) Create(slot string, patientID int, patientName, entryType string) (Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if slot == "" {
		return Entry{}, fmt.Errorf("time slot is required")
	}
	if patientID == 0 {
		return Entry{}, fmt.Errorf("patient is required")
	}

	pos := -1
	for i, s := range p.available {
		if s == slot {
			pos = i
			break
		}
	}
	if pos < 0 {
		return Entry{}, fmt.Errorf("slot %s is not available", slot)
	}

	maxID := 0
	for _, e := range p.entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	entry := Entry{
		ID:            maxID + 1,
		PatientID:     patientID,
		PatientName:   patientName,
		TimeSlot:      slot,
		DurationLabel: "30 min",
		Type:          entryType,
		Status:        models.StatusConfirmed,
	}
	p.entries = append(p.entries, entry)
	p.available = append(p.available[:pos], p.available[pos+1:]...)
	return entry, nil
}

// Cancel removes an entry from the board and returns its slot to the
// availability track, re-sorted by catalog position so the track stays
// chronological.
func (p *Planner) Cancel(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, e := range p.entries {
		if e.ID == id {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			p.available = append(p.available, e.TimeSlot)
			SortBySlotOrder(p.available)
			return nil
		}
	}
	return fmt.Errorf("entry %d not found", id)
}

// SetStatus replaces an entry's status in place. The board puts no
// restrictions on transitions; any status may follow any other.
func (p *Planner) SetStatus(id int, status models.AppointmentStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.entries {
		if p.entries[i].ID == id {
			p.entries[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("entry %d not found", id)
}
