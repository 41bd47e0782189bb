package doctor

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
)

// GetAvailability retrieves the doctor's weekly availability rows.
func GetAvailability(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	var availability []models.DoctorAvailability
	if err := db.DB.Where("doctor_id = ?", doctor.ID).
		Order("day_of_week asc").
		Find(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get availability",
		})
	}
	return c.JSON(availability)
}

// SetAvailability creates or replaces the availability row for one weekday.
func SetAvailability(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	input := new(models.DoctorAvailability)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if input.DayOfWeek < models.Sunday || input.DayOfWeek > models.Saturday {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day_of_week must be between 0 (Sunday) and 6 (Saturday)",
		})
	}
	if input.IsWorkDay {
		if !validClock(input.StartTime) || !validClock(input.EndTime) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "start_time and end_time must be in HH:MM format",
			})
		}
		if input.StartTime >= input.EndTime {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "end_time must be after start_time",
			})
		}
	}

	var existing models.DoctorAvailability
	err = db.DB.Where("doctor_id = ? AND day_of_week = ?", doctor.ID, input.DayOfWeek).
		First(&existing).Error
	if err == nil {
		existing.StartTime = input.StartTime
		existing.EndTime = input.EndTime
		existing.IsWorkDay = input.IsWorkDay
		existing.BreakStart = input.BreakStart
		existing.BreakEnd = input.BreakEnd
		if err := db.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update availability",
			})
		}
		return c.JSON(existing)
	}

	input.DoctorID = doctor.ID
	if err := db.DB.Create(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create availability",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(input)
}

// DeleteAvailability removes the availability row for one weekday, which
// makes that day a non-working day.
func DeleteAvailability(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	day, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid day of week",
		})
	}

	var availability models.DoctorAvailability
	if err := db.DB.Where("doctor_id = ? AND day_of_week = ?", doctor.ID, day).
		First(&availability).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Availability not found",
		})
	}
	if err := db.DB.Delete(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete availability",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validClock(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}
