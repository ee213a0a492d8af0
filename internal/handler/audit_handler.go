package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mindtrack/internal/middleware"
	"mindtrack/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) GetRecentActivities(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.auditService.GetRecentActivities(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuditHandler) GetEntityHistory(c *fiber.Ctx) error {
	entityType := c.Params("entityType")
	if entityType == "" {
		return middleware.BadRequest("Entity type is required")
	}

	entityID, err := uuid.Parse(c.Params("entityId"))
	if err != nil {
		return middleware.BadRequest("Invalid entity ID")
	}

	params := getPaginationParams(c)

	result, err := h.auditService.GetEntityHistory(c.Context(), entityType, entityID, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
