package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/utils"
)

// GetFeatureFlags lists all global flags.
func GetFeatureFlags(c *fiber.Ctx) error {
	var flags []models.FeatureFlag
	if err := db.DB.Find(&flags).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch feature flags",
			Error:   err.Error(),
		})
	}
	return c.JSON(flags)
}

// SetFeatureFlag creates or updates a global flag by key.
func SetFeatureFlag(c *fiber.Ctx) error {
	var input struct {
		Key         string `json:"key"`
		Description string `json:"description"`
		Enabled     bool   `json:"enabled"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Flag key is required",
		})
	}

	var flag models.FeatureFlag
	err := db.DB.Where("key = ?", input.Key).First(&flag).Error
	if err == nil {
		flag.Enabled = input.Enabled
		if input.Description != "" {
			flag.Description = input.Description
		}
		if err := db.DB.Save(&flag).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update feature flag",
				Error:   err.Error(),
			})
		}
		return c.JSON(flag)
	}

	flag = models.FeatureFlag{
		Key:         input.Key,
		Description: input.Description,
		Enabled:     input.Enabled,
	}
	if err := db.DB.Create(&flag).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create feature flag",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(flag)
}

// SetClinicFeatureFlag overrides a global flag for one tenant.
func SetClinicFeatureFlag(c *fiber.Ctx) error {
	var clinic models.Clinic
	if err := db.DB.First(&clinic, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Clinic not found",
		})
	}

	var input struct {
		Key     string `json:"key"`
		Enabled bool   `json:"enabled"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var flag models.FeatureFlag
	if err := db.DB.Where("key = ?", input.Key).First(&flag).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Feature flag not found",
		})
	}

	var override models.ClinicFeatureFlag
	err := db.DB.Where("clinic_id = ? AND flag_id = ?", clinic.ID, flag.ID).
		First(&override).Error
	if err == nil {
		override.Enabled = input.Enabled
		if err := db.DB.Save(&override).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update override",
				Error:   err.Error(),
			})
		}
		return c.JSON(override)
	}

	override = models.ClinicFeatureFlag{
		ClinicID: clinic.ID,
		FlagID:   flag.ID,
		Enabled:  input.Enabled,
	}
	if err := db.DB.Create(&override).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create override",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(override)
}

// IsFeatureEnabled resolves a flag for the caller's clinic. A tenant
// override wins over the global value; an unknown key is disabled.
func IsFeatureEnabled(key string, clinicID uint) bool {
	var flag models.FeatureFlag
	if err := db.DB.Where("key = ?", key).First(&flag).Error; err != nil {
		return false
	}
	var override models.ClinicFeatureFlag
	if err := db.DB.Where("clinic_id = ? AND flag_id = ?", clinicID, flag.ID).
		First(&override).Error; err == nil {
		return override.Enabled
	}
	return flag.Enabled
}

// GetMyFeatures reports resolved flags for the caller's clinic.
func GetMyFeatures(c *fiber.Ctx) error {
	clinicID, _ := c.Locals("clinicID").(uint)

	var flags []models.FeatureFlag
	if err := db.DB.Find(&flags).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch feature flags",
			Error:   err.Error(),
		})
	}

	resolved := make(map[string]bool, len(flags))
	for _, flag := range flags {
		resolved[flag.Key] = IsFeatureEnabled(flag.Key, clinicID)
	}
	return c.JSON(fiber.Map{"features": resolved})
}
