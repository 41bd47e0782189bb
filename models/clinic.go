package models

import (
	"time"

	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Clinic is a tenant. Every user, doctor, patient and appointment row
// belongs to exactly one clinic.
type Clinic struct {
	gorm.Model
	Name               string             `json:"name"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	ZipCode            string             `json:"zip_code"`
	Country            string             `json:"country"`
	PhoneNumber        string             `json:"phone_number"`
	Email              string             `json:"email"`
	Website            string             `json:"website"`
	LogoURL            string             `json:"logo_url"`
	TaxNumber          string             `json:"tax_number"`
	LicenseNumber      string             `json:"license_number"`
	Plan               string             `json:"plan"` // "starter", "pro", "enterprise"
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	TrialEndsAt        *time.Time         `json:"trial_ends_at"`
}

func (c *Clinic) BeforeCreate(tx *gorm.DB) error {
	if c.Plan == "" {
		c.Plan = "starter"
	}
	if c.SubscriptionStatus == "" {
		c.SubscriptionStatus = SubscriptionTrial
	}
	return nil
}
