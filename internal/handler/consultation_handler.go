package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/middleware"
	"mindtrack/internal/service/consultation"
)

type ConsultationHandler struct {
	consultationService consultation.Service
}

func NewConsultationHandler(consultationService consultation.Service) *ConsultationHandler {
	return &ConsultationHandler{consultationService: consultationService}
}

func (h *ConsultationHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateConsultationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if !input.Type.IsValid() {
		return middleware.BadRequest("Invalid consultation type")
	}

	created, err := h.consultationService.Create(c.Context(), user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ConsultationHandler) Get(c *fiber.Ctx) error {
	consultationID, err := uuid.Parse(c.Params("consultationId"))
	if err != nil {
		return middleware.BadRequest("Invalid consultation ID")
	}

	cons, err := h.consultationService.GetByID(c.Context(), consultationID)
	if err != nil {
		if errors.Is(err, domain.ErrConsultationNotFound) {
			return middleware.NotFound("Consultation not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(cons)
}

func (h *ConsultationHandler) Update(c *fiber.Ctx) error {
	consultationID, err := uuid.Parse(c.Params("consultationId"))
	if err != nil {
		return middleware.BadRequest("Invalid consultation ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateConsultationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.consultationService.Update(c.Context(), consultationID, user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrConsultationNotFound) {
			return middleware.NotFound("Consultation not found")
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			return middleware.Conflict("Consultation can no longer be modified")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ConsultationHandler) Cancel(c *fiber.Ctx) error {
	consultationID, err := uuid.Parse(c.Params("consultationId"))
	if err != nil {
		return middleware.BadRequest("Invalid consultation ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.consultationService.Cancel(c.Context(), consultationID, user.ID); err != nil {
		if errors.Is(err, domain.ErrConsultationNotFound) {
			return middleware.NotFound("Consultation not found")
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			return middleware.Conflict("Consultation can no longer be cancelled")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ConsultationHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	params := getPaginationParams(c)

	result, err := h.consultationService.ListByPatient(c.Context(), patientID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ConsultationHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	params := getPaginationParams(c)

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return middleware.BadRequest("Invalid 'from' timestamp")
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return middleware.BadRequest("Invalid 'to' timestamp")
		}
		to = &t
	}

	result, err := h.consultationService.ListByClinician(c.Context(), user.ID, from, to, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
