package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/middleware"
	"mindtrack/internal/service/alert"
)

type AlertHandler struct {
	alertService alert.Service
}

func NewAlertHandler(alertService alert.Service) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateAlertInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if !input.Severity.IsValid() {
		return middleware.BadRequest("Invalid severity")
	}
	if input.TriggerSource == "" {
		return middleware.BadRequest("Trigger source is required")
	}

	created, err := h.alertService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AlertHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	params := getPaginationParams(c)

	var status *domain.AlertStatus
	if s := c.Query("status"); s != "" {
		st := domain.AlertStatus(s)
		if !st.IsValid() {
			return middleware.BadRequest("Invalid alert status")
		}
		status = &st
	}

	result, err := h.alertService.ListByClinician(c.Context(), user.ID, status, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AlertHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	params := getPaginationParams(c)

	result, err := h.alertService.ListByPatient(c.Context(), patientID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AlertHandler) Get(c *fiber.Ctx) error {
	alertID, err := uuid.Parse(c.Params("alertId"))
	if err != nil {
		return middleware.BadRequest("Invalid alert ID")
	}

	a, err := h.alertService.GetByID(c.Context(), alertID)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return middleware.NotFound("Alert not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(a)
}

func (h *AlertHandler) UpdateStatus(c *fiber.Ctx) error {
	alertID, err := uuid.Parse(c.Params("alertId"))
	if err != nil {
		return middleware.BadRequest("Invalid alert ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateAlertStatusInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if !input.Status.IsValid() {
		return middleware.BadRequest("Invalid alert status")
	}

	updated, err := h.alertService.UpdateStatus(c.Context(), alertID, user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return middleware.NotFound("Alert not found")
		}
		if errors.Is(err, domain.ErrInvalidStatus) {
			return middleware.Conflict("Alert status cannot change once resolved")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}
