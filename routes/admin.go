package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/controllers"
	"github.com/curelink/clinic-app/middleware"
)

// SetupAdminRoutes configures tenant management and feature flag routes
func SetupAdminRoutes(app *fiber.App) {
	clinics := app.Group("/admin/clinics",
		middleware.Protected(),
		middleware.RequireRole("superadmin"))

	clinics.Get("/", controllers.GetAllClinics)
	clinics.Get("/:id", controllers.GetClinic)
	clinics.Post("/", controllers.CreateClinic)
	clinics.Patch("/:id", controllers.UpdateClinic)
	clinics.Patch("/:id/subscription", controllers.UpdateClinicSubscription)
	clinics.Post("/:id/logo", controllers.UploadClinicLogo)
	clinics.Post("/:id/features", controllers.SetClinicFeatureFlag)

	flags := app.Group("/admin/features",
		middleware.Protected(),
		middleware.RequireRole("superadmin"))
	flags.Get("/", controllers.GetFeatureFlags)
	flags.Put("/", controllers.SetFeatureFlag)

	// Any signed-in user can read their clinic's resolved flags.
	app.Get("/features", middleware.Protected(), controllers.GetMyFeatures)

	// Clinic admins onboard and manage their doctors.
	staff := app.Group("/admin/doctors", middleware.Protected())
	staff.Post("/", middleware.RequirePermission("doctors", "create"), controllers.CreateDoctor)
	staff.Patch("/:id", middleware.RequirePermission("doctors", "update"), controllers.UpdateDoctor)
	staff.Delete("/:id", middleware.RequirePermission("doctors", "delete"), controllers.RemoveDoctor)
}
