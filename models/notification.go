package models

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	Reference string `json:"reference" gorm:"index"` // uuid
	ClinicID  uint   `json:"clinic_id"`
	UserID    uint   `json:"user_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Type      string `json:"type"` // "appointment", "system"
	IsRead    bool   `json:"is_read" gorm:"default:false"`
}
