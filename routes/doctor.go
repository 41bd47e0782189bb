package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/controllers/doctor"
	"github.com/curelink/clinic-app/middleware"
)

// SetupDoctorRoutes configures the doctor portal routes
func SetupDoctorRoutes(app *fiber.App) {
	portal := app.Group("/doctor", middleware.Protected(), middleware.RequireRole("doctor"))

	portal.Get("/appointments/upcoming", doctor.GetUpcomingAppointments)
	portal.Get("/appointments/history", doctor.GetAppointmentHistory)
	portal.Patch("/appointments/:id/status", doctor.UpdateAppointmentStatus)

	portal.Get("/availability", doctor.GetAvailability)
	portal.Put("/availability", doctor.SetAvailability)
	portal.Delete("/availability/:day", doctor.DeleteAvailability)

	portal.Get("/dashboard", doctor.GetDashboardOverview)
	portal.Get("/dashboard/today", doctor.GetTodaySchedule)

	portal.Get("/profile", doctor.GetProfile)
	portal.Patch("/profile", doctor.UpdateProfile)
	portal.Post("/profile/picture", doctor.UpdateProfilePicture)
}
