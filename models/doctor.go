package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	UserID          uint    `json:"user_id"`
	User            User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ClinicID        uint    `json:"clinic_id"`
	Clinic          Clinic  `json:"clinic,omitempty" gorm:"foreignKey:ClinicID"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultation_fee"`
	Bio             string  `json:"bio"`
	ProfilePicture  string  `json:"profile_picture"`
	IsAvailable     bool    `json:"is_available" gorm:"default:true"`
}

const demoDoctorPrefix = "mock-doctor-"

// FallbackDoctors is served when the doctors table is empty or the database
// is unreachable, so the directory and booking screens keep working in demo
// sessions.
func FallbackDoctors() []Doctor {
	return []Doctor{
		{Name: "Dr. Sarah Mitchell", Specialization: "General Physician", ConsultationFee: 50},
		{Name: "Dr. Rajan Mehta", Specialization: "Cardiologist", ConsultationFee: 120},
		{Name: "Dr. Elena Petrova", Specialization: "Dermatologist", ConsultationFee: 90},
		{Name: "Dr. James Okafor", Specialization: "Pediatrician", ConsultationFee: 70},
	}
}

// DemoDoctorRef builds the placeholder reference for the i-th fallback
// doctor, e.g. "mock-doctor-1".
func DemoDoctorRef(i int) string {
	return fmt.Sprintf("%s%d", demoDoctorPrefix, i+1)
}

// IsDemoDoctorRef reports whether a doctor reference names a fallback doctor
// rather than a real row.
func IsDemoDoctorRef(ref string) bool {
	return strings.HasPrefix(ref, demoDoctorPrefix)
}
