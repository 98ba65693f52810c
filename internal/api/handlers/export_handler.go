package handlers

import (
	"fmt"

	"freezer-tracker/domain"
	"freezer-tracker/pkg/export"

	"github.com/gofiber/fiber/v2"
)

type (
	ExportHandler interface {
		Download(c *fiber.Ctx) error
	}

	exportHandler struct {
		exportService export.ExportService
	}
)

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandler{exportService: exportService}
}

func (h *exportHandler) Download(c *fiber.Ctx) error {
	content, filename, err := h.exportService.Generate(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedExport, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(content)
}
