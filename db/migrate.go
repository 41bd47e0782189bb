package db

import (
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()
	if DB == nil {
		logrus.Warn("Skipping migrations: no database connection")
		return
	}

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Clinic{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.DoctorAvailability{},
		&models.Notification{},
		&models.FeatureFlag{},
		&models.ClinicFeatureFlag{},
	)
	if err != nil {
		logrus.Fatal("Failed to run migrations: ", err)
	}

	logrus.Info("✅ Migrations applied successfully!")
}
