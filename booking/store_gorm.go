package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/curelink/clinic-app/models"
)

// GormStore backs the booking flow with the appointments table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// CountActive counts appointments holding the (doctor, date, slot) tuple in
// a blocking status. Only scheduled and confirmed rows block; pending,
// cancelled and completed never do.
func (s *GormStore) CountActive(ctx context.Context, doctorID uint, date time.Time, slot string) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time_slot = ?", doctorID, date, slot).
		Where("status IN ?", models.ConflictStatuses()).
		Count(&count).Error
	return count, err
}

func (s *GormStore) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	return s.DB.WithContext(ctx).Create(a).Error
}

func (s *GormStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	return s.DB.WithContext(ctx).Create(n).Error
}
