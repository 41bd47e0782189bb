package doctor

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/scheduler"
)

// GetDashboardOverview returns appointment counts and earnings for the
// doctor's dashboard.
func GetDashboardOverview(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	var statistics struct {
		TotalAppointments int64     `json:"total_appointments"`
		ScheduledCount    int64     `json:"scheduled_count"`
		ConfirmedCount    int64     `json:"confirmed_count"`
		CompletedCount    int64     `json:"completed_count"`
		CancelledCount    int64     `json:"cancelled_count"`
		TodayCount        int64     `json:"today_count"`
		TotalEarnings     float64   `json:"total_earnings"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	base := func() *gorm.DB {
		return db.DB.Model(&models.Appointment{}).Where("doctor_id = ?", doctor.ID)
	}

	base().Count(&statistics.TotalAppointments)
	base().Where("status = ?", models.StatusScheduled).Count(&statistics.ScheduledCount)
	base().Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	base().Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	base().Where("status = ?", models.StatusCancelled).Count(&statistics.CancelledCount)

	today := scheduler.NormalizeDate(time.Now())
	base().Where("date = ?", today).
		Where("status IN ?", models.ActiveStatuses()).
		Count(&statistics.TodayCount)

	// Flat consultation fee per completed visit.
	statistics.TotalEarnings = float64(statistics.CompletedCount) * doctor.ConsultationFee
	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetTodaySchedule returns today's active appointments in slot order, for
// the dashboard's day view.
func GetTodaySchedule(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	today := scheduler.NormalizeDate(time.Now())
	var appointments []models.Appointment
	if err := db.DB.
		Preload("Patient").
		Where("doctor_id = ? AND date = ?", doctor.ID, today).
		Where("status IN ?", models.ActiveStatuses()).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sortAppointmentsByDayAndSlot(appointments)

	return c.JSON(fiber.Map{
		"date":         today.Format("2006-01-02"),
		"appointments": appointments,
		"count":        len(appointments),
	})
}
