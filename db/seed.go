package db

import (
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/models"
)

// Seed creates the default roles and permissions when they are missing.
// Safe to run on every startup.
func Seed() {
	if DB == nil {
		logrus.Warn("Skipping seed: no database connection")
		return
	}

	roles := []models.Role{
		{Name: "superadmin", Description: "Platform operator managing tenant clinics"},
		{Name: "admin", Description: "Clinic administrator managing staff and settings"},
		{Name: "doctor", Description: "Doctor managing appointments and availability"},
		{Name: "patient", Description: "Patient who can book appointments"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_appointment", Description: "Book appointments", Resource: "appointments", Action: "create"},
		{Name: "read_appointments", Description: "View appointments", Resource: "appointments", Action: "read"},
		{Name: "update_appointment", Description: "Update appointments", Resource: "appointments", Action: "update"},
		{Name: "delete_appointment", Description: "Cancel appointments", Resource: "appointments", Action: "delete"},

		{Name: "create_doctor", Description: "Create doctor profiles", Resource: "doctors", Action: "create"},
		{Name: "read_doctors", Description: "View doctor directory", Resource: "doctors", Action: "read"},
		{Name: "update_doctor", Description: "Update doctor profiles", Resource: "doctors", Action: "update"},
		{Name: "delete_doctor", Description: "Remove doctor profiles", Resource: "doctors", Action: "delete"},

		{Name: "read_patients", Description: "View patient records", Resource: "patients", Action: "read"},
		{Name: "update_patient", Description: "Update patient records", Resource: "patients", Action: "update"},

		{Name: "create_clinic", Description: "Onboard tenant clinics", Resource: "clinics", Action: "create"},
		{Name: "read_clinics", Description: "View tenant clinics", Resource: "clinics", Action: "read"},
		{Name: "update_clinic", Description: "Update tenant clinics", Resource: "clinics", Action: "update"},
		{Name: "delete_clinic", Description: "Deactivate tenant clinics", Resource: "clinics", Action: "delete"},

		{Name: "update_flags", Description: "Toggle feature flags", Resource: "flags", Action: "update"},
	}

	for _, permission := range permissions {
		var existing models.Permission
		if DB.Where("name = ?", permission.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	assignRolePermissions("superadmin", func(p *models.Permission) bool { return true })
	assignRolePermissions("admin", func(p *models.Permission) bool {
		return p.Resource != "clinics" && p.Resource != "flags"
	})
	assignRolePermissions("doctor", func(p *models.Permission) bool {
		return (p.Resource == "appointments" && p.Action != "create") ||
			(p.Resource == "patients" && p.Action == "read")
	})
	assignRolePermissions("patient", func(p *models.Permission) bool {
		return p.Resource == "appointments" && (p.Action == "create" || p.Action == "read" || p.Action == "delete") ||
			(p.Resource == "doctors" && p.Action == "read")
	})

	logrus.Info("✅ Default roles and permissions seeded")
}

func assignRolePermissions(roleName string, match func(*models.Permission) bool) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}

	var all []models.Permission
	DB.Find(&all)

	var granted []models.Permission
	for i := range all {
		if match(&all[i]) {
			granted = append(granted, all[i])
		}
	}

	DB.Model(&role).Association("Permissions").Clear()
	DB.Model(&role).Association("Permissions").Append(granted)
}
