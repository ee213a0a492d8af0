package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/domain"
	"mindtrack/internal/middleware"
	"mindtrack/internal/service/document"
)

const maxDocumentSize = 25 * 1024 * 1024 // 25 MB

type DocumentHandler struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("A file is required")
	}

	if fileHeader.Size > maxDocumentSize {
		return middleware.BadRequest("File exceeds the 25 MB limit")
	}

	var category *string
	if cat := c.FormValue("category"); cat != "" {
		category = &cat
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer file.Close()

	doc, err := h.documentService.Upload(
		c.Context(),
		user.ID,
		patientID,
		category,
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return middleware.NotFound("Patient not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return middleware.BadRequest("Invalid document ID")
	}

	doc, err := h.documentService.GetByID(c.Context(), documentID)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return middleware.NotFound("Document not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(doc)
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	documentID, err := uuid.Parse(c.Params("documentId"))
	if err != nil {
		return middleware.BadRequest("Invalid document ID")
	}

	if err := h.documentService.Delete(c.Context(), documentID); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return middleware.NotFound("Document not found")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *DocumentHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return middleware.BadRequest("Invalid patient ID")
	}

	params := getPaginationParams(c)

	result, err := h.documentService.ListByPatient(c.Context(), patientID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
