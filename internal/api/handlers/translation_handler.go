package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/translation"
	"github.com/miriam-legal/backend/pkg/logger"
)

type TranslationHandler struct {
	service *translation.Service
}

func NewTranslationHandler(service *translation.Service) *TranslationHandler {
	return &TranslationHandler{
		service: service,
	}
}

func (h *TranslationHandler) Translate(c *fiber.Ctx) error {
	var req struct {
		Text           string `json:"text"`
		SourceLanguage string `json:"source_language"`
		TargetLanguage string `json:"target_language"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text is required",
		})
	}
	if req.TargetLanguage == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Target language is required",
		})
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = translation.SourceAuto
	}

	result, err := h.service.Translate(c.Context(), req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		logger.Error("Failed to translate text", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

func (h *TranslationHandler) GetTranslations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", translation.DefaultHistoryLimit)

	translations, err := h.service.History(c.Context(), limit)
	if err != nil {
		logger.Error("Failed to list translations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"translations": translations,
	})
}
