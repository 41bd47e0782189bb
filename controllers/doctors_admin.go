package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/utils"
)

// CreateDoctor onboards a doctor profile for an existing user account.
func CreateDoctor(c *fiber.Ctx) error {
	doctor := new(models.Doctor)
	if err := c.BodyParser(doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if doctor.UserID == 0 || doctor.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "user_id and name are required",
		})
	}

	var user models.User
	if err := db.DB.First(&user, doctor.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User account not found",
		})
	}

	var existing models.Doctor
	if db.DB.Where("user_id = ?", doctor.UserID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This user already has a doctor profile",
		})
	}

	if doctor.ClinicID == 0 {
		doctor.ClinicID = user.ClinicID
	}
	if err := db.DB.Create(doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create doctor",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// UpdateDoctor edits a doctor profile on behalf of the clinic.
func UpdateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update doctor",
			Error:   err.Error(),
		})
	}
	return c.JSON(doctor)
}

// RemoveDoctor takes a doctor out of the directory. The row is soft-deleted
// so historical appointments keep their reference.
func RemoveDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := db.DB.First(&doctor, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Doctor not found",
		})
	}
	if err := db.DB.Delete(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to remove doctor",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
