package models

import (
	"gorm.io/gorm"
)

type FeatureFlag struct {
	gorm.Model
	Key         string `json:"key" gorm:"unique"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled" gorm:"default:false"`
}

// ClinicFeatureFlag overrides a global flag for one tenant.
type ClinicFeatureFlag struct {
	gorm.Model
	ClinicID uint        `json:"clinic_id"`
	Clinic   Clinic      `json:"clinic,omitempty" gorm:"foreignKey:ClinicID"`
	FlagID   uint        `json:"flag_id"`
	Flag     FeatureFlag `json:"flag,omitempty" gorm:"foreignKey:FlagID"`
	Enabled  bool        `json:"enabled"`
}
