package handler

import (
	"greenfood-api/internal/service"
	"greenfood-api/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	uploads         *upload.Store
	log             zerolog.Logger
}

func NewSettingsHandler(settingsService service.SettingsService, uploads *upload.Store, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, uploads: uploads, log: log}
}

// GetQris returns the configured QRIS payment image, if any
// GET /settings/qris
func (h *SettingsHandler) GetQris(c *fiber.Ctx) error {
	image, err := h.settingsService.QrisImage(c.Context())
	if err != nil {
		return internalError(c, h.log, err)
	}

	if image == "" {
		return c.JSON(fiber.Map{"image": nil})
	}
	return c.JSON(fiber.Map{"image": image})
}

// SetQris uploads and stores a new QRIS payment image (admin only)
// POST /settings/qris
func (h *SettingsHandler) SetQris(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "QRIS image is required"})
	}

	image, err := h.uploads.Save(c, file)
	if err != nil {
		return internalError(c, h.log, err)
	}

	if err := h.settingsService.SetQrisImage(c.Context(), image); err != nil {
		return internalError(c, h.log, err)
	}

	return c.JSON(fiber.Map{"image": image})
}
