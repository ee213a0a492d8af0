package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/middleware"
	"mindtrack/internal/service/patient"
)

type PatientHandler struct {
	patientService patient.Service
}

func NewPatientHandler(patientService patient.Service) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

func (h *PatientHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreatePatientInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if !input.Gender.IsValid() {
		return middleware.BadRequest("Invalid gender")
	}

	created, err := h.patientService.Create(c.Context(), user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PatientHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	params := getPaginationParams(c)

	// Clinicians see their own caseload; admins see everyone.
	var clinicianID *uuid.UUID
	if user.Role == "clinician" {
		clinicianID = &user.ID
	}
	if idStr := c.Query("clinician_id"); idStr != "" && user.Role == "admin" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return middleware.BadRequest("Invalid clinician ID")
		}
		clinicianID = &id
	}

	result, err := h.patientService.List(c.Context(), clinicianID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PatientHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	limit := c.QueryInt("limit", 10)

	if len(query) < 2 {
		return middleware.BadRequest("Search query must be at least 2 characters")
	}

	patients, err := h.patientService.Search(c.Context(), query, limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(patients)
}

func (h *PatientHandler) Get(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	p, err := h.patientService.GetByID(c.Context(), patientID)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

func (h *PatientHandler) Update(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdatePatientInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.patientService.Update(c.Context(), patientID, user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.patientService.Delete(c.Context(), patientID, user.ID); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
