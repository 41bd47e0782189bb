package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/controllers/patient"
	"github.com/curelink/clinic-app/middleware"
)

// SetupPatientRoutes configures the patient-facing booking routes. The
// doctor directory and slot lookups stay public so the booking screens work
// before sign-in; booking itself requires a session.
func SetupPatientRoutes(app *fiber.App) {
	doctors := app.Group("/doctors")
	doctors.Get("/", patient.GetAllDoctors)
	doctors.Get("/:id", patient.GetDoctorDetails)
	doctors.Get("/:id/slots", patient.GetAvailableSlots)

	appointments := app.Group("/appointments", middleware.Protected())
	appointments.Post("/", patient.BookAppointment)
	appointments.Get("/", patient.GetMyAppointments)
	appointments.Patch("/:id/cancel", patient.CancelAppointment)

	notifications := app.Group("/notifications", middleware.Protected())
	notifications.Get("/", patient.GetNotifications)
	notifications.Patch("/:id/read", patient.MarkNotificationRead)

	profile := app.Group("/profile", middleware.Protected())
	profile.Get("/", patient.GetProfile)
	profile.Patch("/", patient.UpdateProfile)
	profile.Post("/picture", patient.UpdateProfilePicture)
}
