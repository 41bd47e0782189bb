package patient

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/booking"
	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/middleware"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/redis"
	"github.com/curelink/clinic-app/scheduler"
)

// GetAvailableSlots returns the open slots for one doctor and date: the
// catalog minus the slots of non-cancelled appointments on that date.
// Results are cached per (doctor, date) and invalidated on booking and
// cancellation.
func GetAvailableSlots(c *fiber.Ctx) error {
	doctorRef := c.Params("id")
	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}

	selected, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid date, expected YYYY-MM-DD",
		})
	}

	// Demo doctors and degraded sessions derive from an empty ledger: the
	// whole catalog is open.
	if models.IsDemoDoctorRef(doctorRef) || middleware.BackendStatusFrom(c) == booking.Degraded {
		return c.JSON(fiber.Map{
			"date":  dateStr,
			"slots": scheduler.Catalog,
			"demo":  true,
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, doctorRef).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}

	cacheKey := redis.SlotCacheKey(doctor.ID, dateStr)
	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
			var slots []string
			if json.Unmarshal([]byte(cached), &slots) == nil {
				return c.JSON(fiber.Map{
					"date":   dateStr,
					"slots":  slots,
					"cached": true,
				})
			}
		}
	}

	var appointments []models.Appointment
	if err := db.DB.
		Where("doctor_id = ? AND date = ?", doctor.ID, scheduler.NormalizeDate(selected)).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}

	slots := scheduler.AvailableSlots(appointments, selected)

	if redis.Client != nil {
		if payload, err := json.Marshal(slots); err == nil {
			if err := redis.Client.Set(redis.Ctx, cacheKey, payload, redis.SlotCacheTTL).Err(); err != nil {
				logrus.WithError(err).Warn("failed to cache slot list")
			}
		}
	}

	return c.JSON(fiber.Map{
		"date":  dateStr,
		"slots": slots,
	})
}
