package cron

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/scheduler"
	"github.com/curelink/clinic-app/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	if _, err := c.AddFunc("* * * * *", sendAppointmentReminders); err != nil {
		logrus.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	logrus.Info("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders finds appointments starting in roughly one hour
// and emails the patients that opted into email reminders.
func sendAppointmentReminders() {
	if db.DB == nil {
		return
	}

	var appointments []models.Appointment
	err := db.DB.Preload("Patient").Preload("Doctor").
		Where("status IN ?", []models.AppointmentStatus{models.StatusScheduled, models.StatusConfirmed}).
		Where("date = ?", scheduler.NormalizeDate(time.Now())).
		Find(&appointments).Error
	if err != nil {
		logrus.WithError(err).Error("Error fetching appointments for reminders")
		return
	}

	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, appointment := range appointments {
		slotAt, err := scheduler.SlotTime(appointment.Date, appointment.TimeSlot)
		if err != nil {
			continue
		}
		if slotAt.Before(startWindow) || slotAt.After(endWindow) {
			continue
		}
		if !appointment.ReminderPrefs.Contains("email") {
			continue
		}
		if err := sendReminderEmail(&appointment, slotAt); err != nil {
			logrus.WithError(err).Errorf("Failed to send reminder for appointment %d", appointment.ID)
			continue
		}
		logrus.Infof("Sent reminder for appointment %d to %s", appointment.ID, appointment.Patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment, slotAt time.Time) error {
	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", appointment.Reference)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Clinic Team</p>
	`, appointment.Patient.Name, appointment.Doctor.Name,
		utils.ToClinicTZ(slotAt).Format("2006-01-02"),
		appointment.TimeSlot,
		appointment.Status)

	return utils.SendEmail(appointment.Patient.Email, subject, body)
}
