package patient

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/booking"
	"github.com/curelink/clinic-app/middleware"
)

func newBookingApp(status booking.BackendStatus) *fiber.App {
	app := fiber.New()
	app.Use(middleware.WithBackendStatus(status))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", uint(7))
		return c.Next()
	})
	app.Post("/appointments", BookAppointment)
	return app
}

func postBooking(t *testing.T, app *fiber.App, payload fiber.Map) (int, booking.Receipt) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest("POST", "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var receipt booking.Receipt
	if resp.StatusCode == fiber.StatusCreated {
		if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
			t.Fatalf("decode receipt: %v", err)
		}
	}
	return resp.StatusCode, receipt
}

// No database is wired in these tests. Any user lookup, patient creation or
// appointment insert would dereference a nil connection and fail the test,
// so a passing run proves the demo path touches no tables.
func TestBookAppointment_DemoDoctorTouchesNoTables(t *testing.T) {
	app := newBookingApp(booking.Connected)

	code, receipt := postBooking(t, app, fiber.Map{
		"doctor_id": "mock-doctor-1",
		"date":      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"time_slot": "10:00",
		"reason":    "checkup",
	})

	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if !receipt.Simulated {
		t.Error("demo doctor booking should be simulated")
	}
	if receipt.AppointmentID != 0 {
		t.Error("simulated receipt must not reference a stored row")
	}
}

func TestBookAppointment_DegradedSessionTouchesNoTables(t *testing.T) {
	app := newBookingApp(booking.Degraded)

	code, receipt := postBooking(t, app, fiber.Map{
		"doctor_id": "3",
		"date":      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"time_slot": "09:30 AM",
		"reason":    "follow-up",
	})

	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if !receipt.Simulated {
		t.Error("degraded booking should be simulated")
	}
}

func TestBookAppointment_MissingFieldsRejectedLocally(t *testing.T) {
	app := newBookingApp(booking.Connected)

	// Demo doctor keeps the handler off the database; the empty reason must
	// be rejected before the simulation branch.
	code, _ := postBooking(t, app, fiber.Map{
		"doctor_id": "mock-doctor-1",
		"date":      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"time_slot": "10:00",
	})
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
