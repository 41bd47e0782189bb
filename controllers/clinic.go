package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/utils"
)

// GetAllClinics lists tenants, paginated. Super-admin only.
func GetAllClinics(c *fiber.Ctx) error {
	page := 1
	limit := 20
	if c.Query("page") != "" {
		if parsed := c.QueryInt("page"); parsed > 0 {
			page = parsed
		}
	}
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	var clinics []models.Clinic
	query := db.DB.Model(&models.Clinic{})
	if status := c.Query("subscription_status"); status != "" {
		query = query.Where("subscription_status = ?", status)
	}

	var total int64
	query.Count(&total)

	if err := query.Offset((page - 1) * limit).Limit(limit).Find(&clinics).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch clinics",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"clinics": clinics,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetClinic returns one tenant by ID.
func GetClinic(c *fiber.Ctx) error {
	var clinic models.Clinic
	if err := db.DB.First(&clinic, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Clinic not found",
		})
	}
	return c.JSON(clinic)
}

// CreateClinic registers a new tenant on the starter plan with a 14 day
// trial.
func CreateClinic(c *fiber.Ctx) error {
	clinic := new(models.Clinic)
	if err := c.BodyParser(clinic); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if clinic.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Clinic name is required",
		})
	}

	trialEnd := time.Now().AddDate(0, 0, 14)
	clinic.TrialEndsAt = &trialEnd

	if err := db.DB.Create(clinic).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create clinic",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(clinic)
}

// UpdateClinic updates tenant details.
func UpdateClinic(c *fiber.Ctx) error {
	var clinic models.Clinic
	if err := db.DB.First(&clinic, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Clinic not found",
		})
	}
	if err := c.BodyParser(&clinic); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&clinic).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update clinic",
			Error:   err.Error(),
		})
	}
	return c.JSON(clinic)
}

// UpdateClinicSubscription changes a tenant's plan or subscription status.
func UpdateClinicSubscription(c *fiber.Ctx) error {
	var clinic models.Clinic
	if err := db.DB.First(&clinic, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Clinic not found",
		})
	}

	var input struct {
		Plan               string `json:"plan"`
		SubscriptionStatus string `json:"subscription_status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Plan != "" {
		switch input.Plan {
		case "starter", "pro", "enterprise":
			clinic.Plan = input.Plan
		default:
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid plan. Must be 'starter', 'pro', or 'enterprise'.",
			})
		}
	}

	if input.SubscriptionStatus != "" {
		status := models.SubscriptionStatus(input.SubscriptionStatus)
		switch status {
		case models.SubscriptionTrial, models.SubscriptionActive,
			models.SubscriptionPastDue, models.SubscriptionCanceled:
			clinic.SubscriptionStatus = status
		default:
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid subscription status",
			})
		}
	}

	if err := db.DB.Save(&clinic).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update subscription",
			Error:   err.Error(),
		})
	}
	return c.JSON(clinic)
}

// UploadClinicLogo stores a tenant logo and saves its URL.
func UploadClinicLogo(c *fiber.Ctx) error {
	var clinic models.Clinic
	if err := db.DB.First(&clinic, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Clinic not found",
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Logo file is required",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to read uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("clinic-%d", clinic.ID), "logos")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload logo",
			Error:   err.Error(),
		})
	}

	clinic.LogoURL = url
	if err := db.DB.Save(&clinic).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save logo URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"logo_url": url})
}
