package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/miriam-legal/backend/internal/storage/models"
	"github.com/miriam-legal/backend/pkg/logger"
)

type StatsStore interface {
	CollectStats(ctx context.Context) (*models.Stats, error)
}

type StatsHandler struct {
	store StatsStore
}

func NewStatsHandler(store StatsStore) *StatsHandler {
	return &StatsHandler{
		store: store,
	}
}

func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.store.CollectStats(c.Context())
	if err != nil {
		logger.Error("Failed to collect stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}
