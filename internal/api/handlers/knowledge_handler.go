package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/knowledge"
	"github.com/miriam-legal/backend/pkg/logger"
)

type KnowledgeHandler struct {
	service *knowledge.Service
}

func NewKnowledgeHandler(service *knowledge.Service) *KnowledgeHandler {
	return &KnowledgeHandler{
		service: service,
	}
}

func (h *KnowledgeHandler) SearchKnowledge(c *fiber.Ctx) error {
	query := c.Query("q")
	category := c.Query("category")
	lang := c.Query("language")

	laws, err := h.service.Search(c.Context(), query, category, lang)
	if err != nil {
		logger.Error("Failed to search legal knowledge", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"laws": laws,
	})
}
