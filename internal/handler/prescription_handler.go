package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/middleware"
	"mindtrack/internal/service/prescription"
)

type PrescriptionHandler struct {
	prescriptionService prescription.Service
}

func NewPrescriptionHandler(prescriptionService prescription.Service) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService}
}

func (h *PrescriptionHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreatePrescriptionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.prescriptionService.Create(c.Context(), user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PrescriptionHandler) Get(c *fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("prescriptionId"))
	if err != nil {
		return middleware.BadRequest("Invalid prescription ID")
	}

	p, err := h.prescriptionService.GetByID(c.Context(), prescriptionID)
	if err != nil {
		if errors.Is(err, domain.ErrPrescriptionNotFound) {
			return middleware.NotFound("Prescription not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *PrescriptionHandler) Update(c *fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("prescriptionId"))
	if err != nil {
		return middleware.BadRequest("Invalid prescription ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdatePrescriptionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.prescriptionService.Update(c.Context(), prescriptionID, user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrPrescriptionNotFound) {
			return middleware.NotFound("Prescription not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *PrescriptionHandler) Delete(c *fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("prescriptionId"))
	if err != nil {
		return middleware.BadRequest("Invalid prescription ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.prescriptionService.Delete(c.Context(), prescriptionID, user.ID); err != nil {
		if errors.Is(err, domain.ErrPrescriptionNotFound) {
			return middleware.NotFound("Prescription not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *PrescriptionHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	params := getPaginationParams(c)
	activeOnly := c.QueryBool("active_only", false)

	result, err := h.prescriptionService.ListByPatient(c.Context(), patientID, activeOnly, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
