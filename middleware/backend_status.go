package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/booking"
)

// WithBackendStatus threads the session's backend status through the
// request context so handlers receive it as an explicit value instead of
// consulting a global.
func WithBackendStatus(status booking.BackendStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("backendStatus", status)
		return c.Next()
	}
}

// BackendStatusFrom reads the status set by WithBackendStatus, defaulting
// to Connected when the middleware is not installed.
func BackendStatusFrom(c *fiber.Ctx) booking.BackendStatus {
	if status, ok := c.Locals("backendStatus").(booking.BackendStatus); ok {
		return status
	}
	return booking.Connected
}
