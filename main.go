package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/booking"
	"github.com/curelink/clinic-app/cron"
	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/middleware"
	"github.com/curelink/clinic-app/redis"
	"github.com/curelink/clinic-app/routes"
)

func main() {
	app := fiber.New()

	db.Migrate()
	db.Seed()
	redis.InitRedis()

	// One probe at startup decides the session's backend status. Degraded
	// sessions serve the demo doctors and simulate bookings instead of
	// failing requests.
	status := booking.Connected
	if !db.Probe() {
		status = booking.Degraded
		logrus.Warn("Database probe failed. Running in degraded demo mode.")
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(middleware.WithBackendStatus(status))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "clinic-app",
			"backend": middleware.BackendStatusFrom(c).String(),
		})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupFrontDeskRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	if err := app.Listen(":8000"); err != nil {
		logrus.Fatal(err)
	}
}
