package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ActiveStatuses are the statuses of appointments still on the day's
// schedule, used by dashboards and day boards.
func ActiveStatuses() []AppointmentStatus {
	return []AppointmentStatus{StatusScheduled, StatusConfirmed, StatusPending}
}

// ConflictStatuses are the statuses that block a new booking for the same
// doctor, date and slot. A pending request does not reject a booking.
func ConflictStatuses() []AppointmentStatus {
	return []AppointmentStatus{StatusScheduled, StatusConfirmed}
}

// StringList stores a list of strings as a JSONB column. Used for the
// per-appointment reminder preferences ("email", "sms").
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal StringList: unsupported type %T", value)
	}

	return json.Unmarshal(data, l)
}

// Contains reports whether the list holds the given entry.
func (l StringList) Contains(entry string) bool {
	for _, e := range l {
		if e == entry {
			return true
		}
	}
	return false
}

type Appointment struct {
	gorm.Model
	Reference     string            `json:"reference" gorm:"uniqueIndex"`
	ClinicID      uint              `json:"clinic_id"`
	DoctorID      uint              `json:"doctor_id"`
	Doctor        Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	PatientID     uint              `json:"patient_id"`
	Patient       Patient           `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	Date          time.Time         `json:"date"`      // calendar date, time-of-day zeroed
	TimeSlot      string            `json:"time_slot"` // catalog label, e.g. "09:00 AM"
	DurationLabel string            `json:"duration_label"`
	Type          string            `json:"type"` // "consultation", "follow-up", ...
	Reason        string            `json:"reason"`
	Status        AppointmentStatus `json:"status"`
	ReminderPrefs StringList        `json:"reminder_prefs" gorm:"type:jsonb"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	switch a.Status {
	case StatusScheduled, StatusPending, StatusConfirmed:
		return true
	}
	return false
}

// UpdateStatus applies an explicit user action (confirm, cancel, complete)
// and persists the new status.
func (a *Appointment) UpdateStatus(tx *gorm.DB, newStatus AppointmentStatus) error {
	switch a.Status {
	case StatusScheduled, StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from %s to %s", a.Status, newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled:
		return fmt.Errorf("no transitions allowed from %s", a.Status)
	}

	a.Status = newStatus
	return tx.Save(a).Error
}
