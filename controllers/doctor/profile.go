package doctor

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/utils"
)

// GetProfile returns the doctor's own profile.
func GetProfile(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}
	return c.JSON(doctor)
}

// UpdateProfile updates the doctor's public profile fields.
func UpdateProfile(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	var input struct {
		Name            string   `json:"name"`
		Specialization  string   `json:"specialization"`
		ConsultationFee *float64 `json:"consultation_fee"`
		Bio             string   `json:"bio"`
		IsAvailable     *bool    `json:"is_available"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if input.Name != "" {
		doctor.Name = input.Name
	}
	if input.Specialization != "" {
		doctor.Specialization = input.Specialization
	}
	if input.ConsultationFee != nil {
		if *input.ConsultationFee < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "consultation_fee cannot be negative",
			})
		}
		doctor.ConsultationFee = *input.ConsultationFee
	}
	if input.Bio != "" {
		doctor.Bio = input.Bio
	}
	if input.IsAvailable != nil {
		doctor.IsAvailable = *input.IsAvailable
	}

	if err := db.DB.Save(doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}
	return c.JSON(doctor)
}

// UpdateProfilePicture uploads a new profile picture for the doctor.
func UpdateProfilePicture(c *fiber.Ctx) error {
	doctor, err := doctorForUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Picture file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("doctor-%d", doctor.ID), "profiles")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload picture",
		})
	}

	doctor.ProfilePicture = url
	if err := db.DB.Save(doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save picture URL",
		})
	}

	return c.JSON(fiber.Map{"profile_picture": url})
}
