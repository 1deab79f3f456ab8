package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/chat"
	"github.com/miriam-legal/backend/pkg/logger"
)

type ChatHandler struct {
	assistant *chat.Assistant
}

func NewChatHandler(assistant *chat.Assistant) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
	}
}

func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
		Context   string `json:"context"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	exchange, err := h.assistant.Send(c.Context(), req.Message, req.SessionID, req.Context)
	if err != nil {
		logger.Error("Failed to process chat message", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"response":   exchange.Response,
		"session_id": exchange.SessionID,
		"timestamp":  exchange.Timestamp,
	})
}

func (h *ChatHandler) GetSessionHistory(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	messages, err := h.assistant.History(c.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to get chat history", zap.Error(err), zap.String("session_id", sessionID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"messages": messages,
	})
}
