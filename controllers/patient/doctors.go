package patient

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/curelink/clinic-app/booking"
	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/middleware"
	"github.com/curelink/clinic-app/models"
)

// GetAllDoctors returns the doctor directory. When the table is empty or
// the session is degraded, the hard-coded fallback list is served so the
// booking screens keep working.
func GetAllDoctors(c *fiber.Ctx) error {
	if middleware.BackendStatusFrom(c) == booking.Degraded {
		return c.JSON(fiber.Map{
			"doctors": demoDoctors(),
			"demo":    true,
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var doctors []models.Doctor
	query := db.DB.Where("is_available = ?", true)
	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("specialization = ?", specialization)
	}
	if err := query.Limit(limit).Offset(offset).Find(&doctors).Error; err != nil {
		logrus.WithError(err).Warn("Failed to fetch doctors, serving fallback list")
		return c.JSON(fiber.Map{
			"doctors": demoDoctors(),
			"demo":    true,
		})
	}

	if len(doctors) == 0 && page == 1 && c.Query("specialization") == "" {
		return c.JSON(fiber.Map{
			"doctors": demoDoctors(),
			"demo":    true,
		})
	}

	var count int64
	db.DB.Model(&models.Doctor{}).Where("is_available = ?", true).Count(&count)

	return c.JSON(fiber.Map{
		"doctors": doctors,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetDoctorDetails returns one doctor with weekly availability.
func GetDoctorDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	if models.IsDemoDoctorRef(id) {
		for i, d := range demoDoctors() {
			if models.DemoDoctorRef(i) == id {
				return c.JSON(fiber.Map{"doctor": d, "demo": true})
			}
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}

	var availability []models.DoctorAvailability
	db.DB.Where("doctor_id = ?", doctor.ID).Order("day_of_week asc").Find(&availability)

	return c.JSON(fiber.Map{
		"doctor":       doctor,
		"availability": availability,
	})
}

type demoDoctor struct {
	Ref             string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ConsultationFee float64 `json:"consultation_fee"`
}

func demoDoctors() []demoDoctor {
	fallback := models.FallbackDoctors()
	out := make([]demoDoctor, 0, len(fallback))
	for i, d := range fallback {
		out = append(out, demoDoctor{
			Ref:             models.DemoDoctorRef(i),
			Name:            d.Name,
			Specialization:  d.Specialization,
			ConsultationFee: d.ConsultationFee,
		})
	}
	return out
}
