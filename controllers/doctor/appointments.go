package doctor

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/redis"
	"github.com/curelink/clinic-app/scheduler"
)

// doctorForUser resolves the doctor row owned by the authenticated user.
func doctorForUser(c *fiber.Ctx) (*models.Doctor, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}
	var doctor models.Doctor
	if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Doctor profile not found for this account")
	}
	return &doctor, nil
}

// GetUpcomingAppointments returns the doctor's scheduled and confirmed
// appointments from the selected date forward.
func GetUpcomingAppointments(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	limit := 10
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	now := time.Now()
	startDate := scheduler.NormalizeDate(now)
	endDate := startDate.AddDate(0, 1, 0)

	dateFilter := c.Query("filter", "month")
	switch dateFilter {
	case "today":
		endDate = startDate.AddDate(0, 0, 1)
	case "tomorrow":
		startDate = startDate.AddDate(0, 0, 1)
		endDate = startDate.AddDate(0, 0, 1)
	case "week":
		endDate = startDate.AddDate(0, 0, 7)
	case "month":
		endDate = startDate.AddDate(0, 1, 0)
	}

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Patient").
		Where("doctor_id = ?", doctor.ID).
		Where("date >= ? AND date < ?", startDate, endDate).
		Where("status IN ?", models.ActiveStatuses()).
		Order("date asc").
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Within one day the rows come back in insertion order; present them in
	// clinic-day order instead.
	sortAppointmentsByDayAndSlot(appointments)

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
		"filter":       dateFilter,
		"start_date":   startDate.Format("2006-01-02"),
		"end_date":     endDate.Format("2006-01-02"),
	})
}

// GetAppointmentHistory returns the doctor's completed and cancelled
// appointments, paginated.
func GetAppointmentHistory(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsed := c.QueryInt("page"); parsed > 0 {
			page = parsed
		}
	}
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}
	offset := (page - 1) * limit

	var statuses []models.AppointmentStatus
	status := c.Query("status")
	switch models.AppointmentStatus(status) {
	case models.StatusCompleted:
		statuses = []models.AppointmentStatus{models.StatusCompleted}
	case models.StatusCancelled:
		statuses = []models.AppointmentStatus{models.StatusCancelled}
	default:
		statuses = []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled}
	}

	now := time.Now()
	startDate := now.AddDate(0, -1, 0)
	dateRange := c.Query("range", "month")
	switch dateRange {
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	case "year":
		startDate = now.AddDate(-1, 0, 0)
	case "all":
		startDate = time.Time{}
	}

	countQuery := db.DB.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctor.ID).
		Where("status IN ?", statuses)
	if dateRange != "all" {
		countQuery = countQuery.Where("date >= ?", scheduler.NormalizeDate(startDate))
	}
	var total int64
	countQuery.Count(&total)

	query := db.DB.
		Preload("Patient").
		Where("doctor_id = ?", doctor.ID).
		Where("status IN ?", statuses)
	if dateRange != "all" {
		query = query.Where("date >= ?", scheduler.NormalizeDate(startDate))
	}

	var appointments []models.Appointment
	if err := query.
		Order("date desc").
		Offset(offset).
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"total":        total,
		"page":         page,
		"limit":        limit,
		"pages":        (total + int64(limit) - 1) / int64(limit),
		"range":        dateRange,
		"status":       status,
	})
}

// UpdateAppointmentStatus lets a doctor confirm, cancel, or complete one of
// their own appointments.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newStatus := models.AppointmentStatus(updateData.Status)
	if newStatus != models.StatusConfirmed &&
		newStatus != models.StatusCancelled &&
		newStatus != models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'confirmed', 'cancelled', or 'completed'.",
		})
	}

	var appointment models.Appointment
	if err := db.DB.Preload("Patient").First(&appointment, appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	if appointment.DoctorID != doctor.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You can only update your own appointments",
		})
	}

	if err := appointment.UpdateStatus(db.DB, newStatus); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if newStatus == models.StatusCancelled {
		redis.InvalidateSlots(appointment.DoctorID, appointment.Date.Format("2006-01-02"))
	}

	// The patient hears about doctor-side changes through a notification.
	notification := models.Notification{
		Reference: uuid.NewString(),
		ClinicID:  appointment.ClinicID,
		UserID:    appointment.Patient.UserID,
		Title:     "Appointment " + string(newStatus),
		Body:      "Your appointment " + appointment.Reference + " is now " + string(newStatus) + ".",
		Type:      "appointment",
	}
	if err := db.DB.Create(&notification).Error; err != nil {
		logrus.WithError(err).Warn("failed to create status notification")
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment status updated successfully",
		"appointment": appointment,
	})
}

func sortAppointmentsByDayAndSlot(appointments []models.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		if !appointments[i].Date.Equal(appointments[j].Date) {
			return appointments[i].Date.Before(appointments[j].Date)
		}
		return scheduler.SlotIndex(appointments[i].TimeSlot) < scheduler.SlotIndex(appointments[j].TimeSlot)
	})
}
