package db

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func GetDB() *gorm.DB {
	return DB
}

// Init establishes the DB connection without running migrations. A missing
// or unreachable database is not fatal; the app boots into degraded mode
// and serves the demo catalog instead.
func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Error loading .env file. Using environment variables directly.")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logrus.Warn("DATABASE_URL is not set. Starting in degraded mode.")
		return
	}

	database, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect to database. Starting in degraded mode.")
		return
	}

	DB = database
	logrus.Info("✅ Database connection established successfully!")
}

// Probe checks whether the database answers. The result decides the
// session's backend status: a failed probe downgrades the booking flow to
// simulated demo mode instead of erroring.
func Probe() bool {
	if DB == nil {
		return false
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
