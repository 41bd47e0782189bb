package patient

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/booking"
	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/middleware"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/redis"
	"github.com/curelink/clinic-app/utils"
)

// BookAppointment runs the remote booking flow for the authenticated
// patient. Validation failures and past slots are rejected before any table
// access; demo doctors and degraded sessions are simulated.
func BookAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "User ID not found in context",
		})
	}

	var req booking.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	status := middleware.BackendStatusFrom(c)

	// The patient record is created lazily on first booking. Degraded
	// sessions have no table to read, and demo-doctor bookings are simulated
	// end to end, so both use a stand-in record and touch no tables.
	patient := &models.Patient{}
	if status == booking.Connected && !models.IsDemoDoctorRef(req.DoctorRef) {
		var user models.User
		if err := db.DB.First(&user, userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
				Message: "User not found",
			})
		}
		var err error
		patient, err = models.FindOrCreateForUser(db.DB, &user)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to load patient record",
				Error:   err.Error(),
			})
		}
	}

	svc := booking.NewService(booking.NewGormStore(db.DB))
	receipt, err := svc.Book(c.Context(), req, patient, status)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: verr.Message,
				Error:   verr.Field,
			})
		}
		if errors.Is(err, booking.ErrSlotUnavailable) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "This time slot is no longer available. Please choose another.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to book appointment",
			Error:   err.Error(),
		})
	}

	if !receipt.Simulated {
		if doctorID, perr := strconv.ParseUint(req.DoctorRef, 10, 64); perr == nil {
			redis.InvalidateSlots(uint(doctorID), req.Date)
		}

		// Confirmation email is fire-and-forget.
		go func(to, name, date, slot, ref string) {
			body := fmt.Sprintf(`
				<p>Dear %s,</p>
				<p>Your appointment has been booked.</p>
				<p><strong>Details:</strong></p>
				<ul>
					<li><strong>Reference:</strong> %s</li>
					<li><strong>Date:</strong> %s</li>
					<li><strong>Time:</strong> %s</li>
				</ul>
				<p>Best regards,</p>
				<p>Your Clinic Team</p>
			`, name, ref, date, slot)
			if err := utils.SendEmail(to, "Appointment Confirmation", body); err != nil {
				logrus.WithError(err).Warn("Failed to send confirmation email")
			}
		}(patient.Email, patient.Name, req.Date, req.TimeSlot, receipt.Reference)
	}

	return c.Status(fiber.StatusCreated).JSON(receipt)
}
