package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	UserID         uint       `json:"user_id"`
	User           User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ClinicID       uint       `json:"clinic_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Gender         string     `json:"gender"`
	Address        string     `json:"address"`
	ProfilePicture string     `json:"profile_picture"`
}

// FindOrCreateForUser returns the patient record for a user, creating one
// lazily on first booking when none exists yet.
func FindOrCreateForUser(tx *gorm.DB, user *User) (*Patient, error) {
	var patient Patient
	err := tx.Where("user_id = ?", user.ID).First(&patient).Error
	if err == nil {
		return &patient, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	patient = Patient{
		UserID:   user.ID,
		ClinicID: user.ClinicID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
	}
	if err := tx.Create(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}
