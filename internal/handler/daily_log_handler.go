package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/middleware"
	"mindtrack/internal/service/dailylog"
	"mindtrack/internal/service/patient"
)

type DailyLogHandler struct {
	dailyLogService dailylog.Service
	patientService  patient.Service
}

func NewDailyLogHandler(dailyLogService dailylog.Service, patientService patient.Service) *DailyLogHandler {
	return &DailyLogHandler{
		dailyLogService: dailyLogService,
		patientService:  patientService,
	}
}

func (h *DailyLogHandler) Create(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.checkOwnership(c, user, patientID); err != nil {
		return err
	}

	var input domain.CreateDailyLogInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.MoodRating != nil && (*input.MoodRating < 1 || *input.MoodRating > 5) {
		return middleware.BadRequest("Mood rating must be between 1 and 5")
	}

	log, err := h.dailyLogService.Create(c.Context(), patientID, input)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		if errors.Is(err, domain.ErrDailyLogExists) {
			return middleware.Conflict("A log for this date has already been submitted")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(log)
}

func (h *DailyLogHandler) List(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.checkOwnership(c, user, patientID); err != nil {
		return err
	}

	params := getPaginationParams(c)

	result, err := h.dailyLogService.ListByPatient(c.Context(), patientID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *DailyLogHandler) Get(c *fiber.Ctx) error {
	logID, err := uuid.Parse(c.Params("logId"))
	if err != nil {
		return middleware.BadRequest("Invalid log ID")
	}

	log, err := h.dailyLogService.GetByID(c.Context(), logID)
	if err != nil {
		if errors.Is(err, domain.ErrDailyLogNotFound) {
			return middleware.NotFound("Daily log not found")
		}
		return err
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.checkOwnership(c, user, log.PatientID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(log)
}

// checkOwnership restricts patient-role users to their own record.
// Clinicians and admins pass through.
func (h *DailyLogHandler) checkOwnership(c *fiber.Ctx, user *domain.User, patientID uuid.UUID) error {
	if user.Role != "patient" {
		return nil
	}

	p, err := h.patientService.GetByUserID(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.Forbidden("No patient record linked to this account")
		}
		return err
	}
	if p.ID != patientID {
		return middleware.Forbidden("Logs can only be submitted for your own record")
	}
	return nil
}
