package booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/scheduler"
	"github.com/curelink/clinic-app/utils"
)

// ErrSlotUnavailable is returned when an active appointment already holds
// the requested (doctor, date, slot) tuple.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ValidationError is a local pre-flight failure. No store call has been made
// when one of these is returned.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Request is the raw booking form input. Field order matters: the validator
// reports the first missing field in declaration order, which is the
// required validation order (doctor, date, time, reason).
type Request struct {
	DoctorRef     string   `json:"doctor_id" validate:"required"`
	Date          string   `json:"date" validate:"required"` // "2006-01-02"
	TimeSlot      string   `json:"time_slot" validate:"required"`
	Reason        string   `json:"reason" validate:"required"`
	Type          string   `json:"type"`
	ReminderPrefs []string `json:"reminder_prefs"`
}

// Receipt is the confirmation handed back to the caller. Simulated receipts
// come from the demo branch and correspond to no stored row.
type Receipt struct {
	Reference     string `json:"reference"`
	AppointmentID uint   `json:"appointment_id,omitempty"`
	Simulated     bool   `json:"simulated"`
	Message       string `json:"message"`
}

// Store is the single appointment ledger behind the booking flow.
type Store interface {
	CountActive(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error)
	CreateAppointment(ctx context.Context, a *models.Appointment) error
	CreateNotification(ctx context.Context, n *models.Notification) error
}

type Service struct {
	store     Store
	validate  *validator.Validate
	now       func() time.Time
	demoDelay time.Duration
	log       *logrus.Logger
}

func NewService(store Store) *Service {
	return &Service{
		store:     store,
		validate:  validator.New(),
		now:       time.Now,
		demoDelay: 800 * time.Millisecond,
		log:       logrus.StandardLogger(),
	}
}

var fieldNames = map[string]string{
	"DoctorRef": "doctor_id",
	"Date":      "date",
	"TimeSlot":  "time_slot",
	"Reason":    "reason",
}

// Book runs the full booking sequence: field validation, past-time check,
// demo branch, conflict check, insert, best-effort notification. Steps run
// in exactly that order; validation failures never reach the store.
func (s *Service) Book(ctx context.Context, req Request, patient *models.Patient, status BackendStatus) (*Receipt, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := fieldNames[verrs[0].StructField()]
			return nil, &ValidationError{Field: field, Message: field + " is required"}
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "invalid date, expected YYYY-MM-DD"}
	}

	slot, err := scheduler.NormalizeSlot(req.TimeSlot)
	if err != nil {
		return nil, &ValidationError{Field: "time_slot", Message: err.Error()}
	}

	slotAt, err := scheduler.SlotTime(date, slot)
	if err != nil {
		return nil, &ValidationError{Field: "time_slot", Message: err.Error()}
	}
	if slotAt.Before(s.now()) {
		return nil, &ValidationError{Field: "date", Message: "cannot book an appointment in the past"}
	}

	// Demo branch: placeholder doctors and degraded sessions are simulated
	// end to end; nothing touches the store.
	if models.IsDemoDoctorRef(req.DoctorRef) || status == Degraded {
		time.Sleep(s.demoDelay)
		return &Receipt{
			Reference: utils.GenerateBookingRef(),
			Simulated: true,
			Message:   "Appointment booked successfully",
		}, nil
	}

	doctorID, err := strconv.ParseUint(req.DoctorRef, 10, 64)
	if err != nil {
		return nil, &ValidationError{Field: "doctor_id", Message: "invalid doctor reference"}
	}

	// Conflict check is advisory on query error: log and proceed rather
	// than failing the booking.
	count, err := s.store.CountActive(ctx, uint(doctorID), scheduler.NormalizeDate(date), slot)
	if err != nil {
		s.log.WithError(err).Warn("conflict check failed, proceeding with booking")
	} else if count > 0 {
		return nil, ErrSlotUnavailable
	}

	appointment := &models.Appointment{
		Reference:     utils.GenerateBookingRef(),
		ClinicID:      patient.ClinicID,
		DoctorID:      uint(doctorID),
		PatientID:     patient.ID,
		Date:          scheduler.NormalizeDate(date),
		TimeSlot:      slot,
		DurationLabel: "30 min",
		Type:          req.Type,
		Reason:        req.Reason,
		Status:        models.StatusScheduled,
		ReminderPrefs: models.StringList(req.ReminderPrefs),
	}
	if err := s.store.CreateAppointment(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Notification row is best effort; its failure never rolls back the
	// booked appointment.
	notification := &models.Notification{
		Reference: uuid.NewString(),
		ClinicID:  patient.ClinicID,
		UserID:    patient.UserID,
		Title:     "Appointment booked",
		Body:      fmt.Sprintf("Your appointment on %s at %s is scheduled.", req.Date, slot),
		Type:      "appointment",
	}
	if err := s.store.CreateNotification(ctx, notification); err != nil {
		s.log.WithError(err).Warn("failed to create booking notification")
	}

	return &Receipt{
		Reference:     appointment.Reference,
		AppointmentID: appointment.ID,
		Message:       "Appointment booked successfully",
	}, nil
}
