package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/controllers"
	"github.com/curelink/clinic-app/middleware"
)

// SetupFrontDeskRoutes configures the in-memory day board used at the front
// desk for walk-ins.
func SetupFrontDeskRoutes(app *fiber.App) {
	board := app.Group("/frontdesk/board",
		middleware.Protected(),
		middleware.RequirePermission("appointments", "create"))

	board.Get("/", controllers.GetDayBoard)
	board.Post("/entries", controllers.CreateBoardEntry)
	board.Delete("/entries/:id", controllers.CancelBoardEntry)
	board.Patch("/entries/:id/status", controllers.UpdateBoardEntryStatus)
}
