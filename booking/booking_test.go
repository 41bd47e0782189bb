package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/models"
)

type fakeStore struct {
	activeCount  int64
	countErr     error
	createErr    error
	noteErr      error
	countCalls   int
	appointments []*models.Appointment
	notes        []*models.Notification
}

func (f *fakeStore) CountActive(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error) {
	f.countCalls++
	return f.activeCount, f.countErr
}

func (f *fakeStore) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, a)
	return nil
}

func (f *fakeStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	if f.noteErr != nil {
		return f.noteErr
	}
	f.notes = append(f.notes, n)
	return nil
}

func newTestService(store *fakeStore) *Service {
	s := NewService(store)
	s.demoDelay = 0
	s.now = func() time.Time {
		return time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	s.log = log
	return s
}

func validRequest() Request {
	return Request{
		DoctorRef: "3",
		Date:      "2026-03-10",
		TimeSlot:  "09:00 AM",
		Reason:    "checkup",
		Type:      "consultation",
	}
}

func testPatient() *models.Patient {
	p := &models.Patient{UserID: 9, ClinicID: 2, Name: "Asha Rao", Email: "asha@example.com"}
	p.ID = 4
	return p
}

func TestBook_ValidationOrder(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	cases := []struct {
		name      string
		mutate    func(*Request)
		wantField string
	}{
		{"missing doctor", func(r *Request) { r.DoctorRef = "" }, "doctor_id"},
		{"missing date", func(r *Request) { r.Date = "" }, "date"},
		{"missing slot", func(r *Request) { r.TimeSlot = "" }, "time_slot"},
		{"missing reason", func(r *Request) { r.Reason = "" }, "reason"},
	}

	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)
		_, err := svc.Book(context.Background(), req, testPatient(), Connected)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if verr.Field != tc.wantField {
			t.Errorf("%s: expected field %q, got %q", tc.name, tc.wantField, verr.Field)
		}
	}

	// Doctor is reported first when everything is missing.
	_, err := svc.Book(context.Background(), Request{}, testPatient(), Connected)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "doctor_id" {
		t.Errorf("expected doctor_id reported first, got %v", err)
	}

	if store.countCalls != 0 || len(store.appointments) != 0 {
		t.Error("validation failures must not reach the store")
	}
}

func TestBook_RejectsPastSlot(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	req := validRequest()
	req.Date = "2026-03-09" // day before now()

	_, err := svc.Book(context.Background(), req, testPatient(), Connected)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Field != "date" {
		t.Errorf("expected date field, got %q", verr.Field)
	}
	if store.countCalls != 0 {
		t.Error("past bookings must not reach the store")
	}
}

func TestBook_SameDayEarlierSlotRejected(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	}

	req := validRequest() // 09:00 AM on 2026-03-10
	if _, err := svc.Book(context.Background(), req, testPatient(), Connected); err == nil {
		t.Error("slot earlier today should be rejected")
	}
}

func TestBook_RejectsOffCatalogSlot(t *testing.T) {
	svc := newTestService(&fakeStore{})

	req := validRequest()
	req.TimeSlot = "08:45 AM"

	_, err := svc.Book(context.Background(), req, testPatient(), Connected)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "time_slot" {
		t.Errorf("expected time_slot validation error, got %v", err)
	}
}

func TestBook_Accepts24HourSlotInput(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	req := validRequest()
	req.TimeSlot = "14:30"

	receipt, err := svc.Book(context.Background(), req, testPatient(), Connected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.Simulated {
		t.Error("real doctor booking should not be simulated")
	}
	if got := store.appointments[0].TimeSlot; got != "02:30 PM" {
		t.Errorf("slot should be stored as catalog label, got %q", got)
	}
}

func TestBook_DemoDoctorIsSimulated(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	req := validRequest()
	req.DoctorRef = "mock-doctor-2"

	receipt, err := svc.Book(context.Background(), req, testPatient(), Connected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !receipt.Simulated {
		t.Error("demo doctor booking should be simulated")
	}
	if receipt.Reference == "" {
		t.Error("simulated receipt still carries a reference")
	}
	if store.countCalls != 0 || len(store.appointments) != 0 || len(store.notes) != 0 {
		t.Error("demo bookings must not touch the store")
	}
}

func TestBook_DegradedSessionIsSimulated(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	receipt, err := svc.Book(context.Background(), validRequest(), testPatient(), Degraded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !receipt.Simulated {
		t.Error("degraded booking should be simulated")
	}
	if store.countCalls != 0 {
		t.Error("degraded bookings must not touch the store")
	}
}

func TestBook_DemoStillValidatesFirst(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	req := validRequest()
	req.DoctorRef = "mock-doctor-1"
	req.Reason = ""

	_, err := svc.Book(context.Background(), req, testPatient(), Connected)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("demo bookings still validate input, got %v", err)
	}
}

func TestBook_ConflictRejected(t *testing.T) {
	store := &fakeStore{activeCount: 1}
	svc := newTestService(store)

	_, err := svc.Book(context.Background(), validRequest(), testPatient(), Connected)
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Errorf("expected ErrSlotUnavailable, got %v", err)
	}
	if len(store.appointments) != 0 {
		t.Error("conflicting booking must not be stored")
	}
}

func TestBook_ConflictCheckIsAdvisoryOnError(t *testing.T) {
	store := &fakeStore{countErr: errors.New("connection reset")}
	svc := newTestService(store)

	receipt, err := svc.Book(context.Background(), validRequest(), testPatient(), Connected)
	if err != nil {
		t.Fatalf("query failure should not block the booking: %v", err)
	}
	if receipt.Simulated {
		t.Error("booking proceeded for real and should not be simulated")
	}
	if len(store.appointments) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(store.appointments))
	}
}

func TestBook_NotificationFailureDoesNotFailBooking(t *testing.T) {
	store := &fakeStore{noteErr: errors.New("insert failed")}
	svc := newTestService(store)

	receipt, err := svc.Book(context.Background(), validRequest(), testPatient(), Connected)
	if err != nil {
		t.Fatalf("notification failure must not fail the booking: %v", err)
	}
	if receipt.Simulated {
		t.Error("booking proceeded for real and should not be simulated")
	}
	if len(store.appointments) != 1 {
		t.Fatalf("expected 1 stored appointment, got %d", len(store.appointments))
	}
	if receipt.Reference != store.appointments[0].Reference {
		t.Error("receipt should match the stored appointment")
	}
	if len(store.notes) != 0 {
		t.Error("failed notification must not be recorded")
	}
}

func TestBook_SuccessStoresAppointmentAndNotification(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	req := validRequest()
	req.ReminderPrefs = []string{"email"}

	receipt, err := svc.Book(context.Background(), req, testPatient(), Connected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(store.appointments))
	}
	a := store.appointments[0]
	if a.Status != models.StatusScheduled {
		t.Errorf("new booking should be scheduled, got %s", a.Status)
	}
	if a.DoctorID != 3 || a.PatientID != 4 || a.ClinicID != 2 {
		t.Errorf("wrong ownership: doctor=%d patient=%d clinic=%d", a.DoctorID, a.PatientID, a.ClinicID)
	}
	if !a.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date should be normalized to midnight, got %v", a.Date)
	}
	if !a.ReminderPrefs.Contains("email") {
		t.Error("reminder prefs lost")
	}
	if receipt.Reference != a.Reference || receipt.AppointmentID != a.ID {
		t.Error("receipt does not match stored appointment")
	}

	if len(store.notes) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(store.notes))
	}
	if store.notes[0].UserID != 9 {
		t.Errorf("notification should target the booking user, got %d", store.notes[0].UserID)
	}
}
