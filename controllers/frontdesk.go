package controllers

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/curelink/clinic-app/db"
	"github.com/curelink/clinic-app/models"
	"github.com/curelink/clinic-app/scheduler"
	"github.com/curelink/clinic-app/utils"
)

// Front-desk day boards, one per (clinic, date). Boards are in-memory only
// and reset on restart.
var (
	boardsMu sync.Mutex
	boards   = map[string]*scheduler.Planner{}
)

func boardKey(clinicID uint, date time.Time) string {
	return fmt.Sprintf("%d:%s", clinicID, date.Format("2006-01-02"))
}

func boardFor(clinicID uint, date time.Time) *scheduler.Planner {
	boardsMu.Lock()
	defer boardsMu.Unlock()
	key := boardKey(clinicID, date)
	if b, ok := boards[key]; ok {
		return b
	}
	b := scheduler.NewPlanner(date, seedEntries(clinicID, date))
	boards[key] = b
	return b
}

// seedEntries loads the day's active appointments from the ledger so a fresh
// board starts from reality instead of an empty grid. Edits on the board
// stay local; they are never written back.
func seedEntries(clinicID uint, date time.Time) []scheduler.Entry {
	if db.DB == nil {
		return nil
	}
	var appointments []models.Appointment
	if err := db.DB.Preload("Patient").
		Where("clinic_id = ? AND date = ?", clinicID, scheduler.NormalizeDate(date)).
		Where("status IN ?", models.ActiveStatuses()).
		Find(&appointments).Error; err != nil {
		return nil
	}

	entries := make([]scheduler.Entry, 0, len(appointments))
	for i, a := range appointments {
		entries = append(entries, scheduler.Entry{
			ID:            i + 1,
			PatientID:     int(a.PatientID),
			PatientName:   a.Patient.Name,
			TimeSlot:      a.TimeSlot,
			DurationLabel: a.DurationLabel,
			Type:          a.Type,
			Status:        a.Status,
		})
	}
	return entries
}

func plannerDate(c *fiber.Ctx) (time.Time, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return scheduler.NormalizeDate(time.Now()), nil
	}
	return time.Parse("2006-01-02", dateStr)
}

// GetDayBoard returns the front desk's entries and open slots for one date.
func GetDayBoard(c *fiber.Ctx) error {
	clinicID, _ := c.Locals("clinicID").(uint)
	date, err := plannerDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	board := boardFor(clinicID, date)
	return c.JSON(fiber.Map{
		"date":            board.Date().Format("2006-01-02"),
		"entries":         board.Entries(),
		"available_slots": board.AvailableSlots(),
	})
}

// CreateBoardEntry books a walk-in on the day board.
func CreateBoardEntry(c *fiber.Ctx) error {
	clinicID, _ := c.Locals("clinicID").(uint)
	date, err := plannerDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	var input struct {
		TimeSlot    string `json:"time_slot"`
		PatientID   int    `json:"patient_id"`
		PatientName string `json:"patient_name"`
		Type        string `json:"type"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	board := boardFor(clinicID, date)
	entry, err := board.Create(input.TimeSlot, input.PatientID, input.PatientName, input.Type)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// CancelBoardEntry removes an entry and reopens its slot.
func CancelBoardEntry(c *fiber.Ctx) error {
	clinicID, _ := c.Locals("clinicID").(uint)
	date, err := plannerDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid entry ID",
		})
	}

	board := boardFor(clinicID, date)
	if err := board.Cancel(id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message":         "Entry cancelled",
		"available_slots": board.AvailableSlots(),
	})
}

// UpdateBoardEntryStatus sets an entry's status on the board.
func UpdateBoardEntryStatus(c *fiber.Ctx) error {
	clinicID, _ := c.Locals("clinicID").(uint)
	date, err := plannerDate(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid entry ID",
		})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	board := boardFor(clinicID, date)
	if err := board.SetStatus(id, models.AppointmentStatus(input.Status)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Entry status updated"})
}
