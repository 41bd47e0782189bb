package patient

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/redis"
	"github.com/curelink/clinic-app/utils"
)

// GetMyAppointments lists the authenticated patient's appointments, newest
// first.
func GetMyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var patient models.Patient
	if err := db.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		// No patient record yet means no bookings yet.
		return c.JSON(fiber.Map{"appointments": []models.Appointment{}})
	}

	var appointments []models.Appointment
	if err := db.DB.Preload("Doctor").
		Where("patient_id = ?", patient.ID).
		Order("date desc, time_slot asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"appointments": appointments})
}

// CancelAppointment cancels one of the patient's own appointments. The row
// is never deleted, only status-updated; the slot becomes bookable again.
func CancelAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var patient models.Patient
	if err := db.DB.Where("user_id = ?", userID).First(&patient).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Patient record not found",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Where("id = ? AND patient_id = ?", c.Params("id"), patient.ID).
		First(&appointment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Appointment not found",
		})
	}

	if err := appointment.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}

	redis.InvalidateSlots(appointment.DoctorID, appointment.Date.Format("2006-01-02"))

	// Cancellation notification is best effort.
	notification := models.Notification{
		Reference: uuid.NewString(),
		ClinicID:  appointment.ClinicID,
		UserID:    userID,
		Title:     "Appointment cancelled",
		Body:      "Your appointment " + appointment.Reference + " has been cancelled.",
		Type:      "appointment",
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		logrus.WithError(err).Warn("failed to create cancellation notification")
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment cancelled",
		"appointment": appointment,
	})
}

// GetNotifications lists the authenticated user's notifications.
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var notifications []models.Notification
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&notifications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch notifications",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"notifications": notifications})
}

// MarkNotificationRead flags one notification as read.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", c.Params("id"), userID).
		First(&notification).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Notification not found",
		})
	}

	notification.IsRead = true
	if err := db.DB.Save(&notification).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update notification",
			Error:   err.Error(),
		})
	}

	return c.JSON(notification)
}
