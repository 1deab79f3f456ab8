package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/miriam-legal/backend/internal/language"
	"github.com/miriam-legal/backend/internal/metrics"
)

// The detector produces no probability; callers get a fixed confidence
// depending on whether detection succeeded.
const (
	detectedConfidence = 0.9
	unknownConfidence  = 0.0
)

type Detector interface {
	Detect(text string) string
}

type LanguageHandler struct {
	detector Detector
}

func NewLanguageHandler(detector Detector) *LanguageHandler {
	return &LanguageHandler{
		detector: detector,
	}
}

func (h *LanguageHandler) DetectLanguage(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
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

	detected := h.detector.Detect(req.Text)

	confidence := detectedConfidence
	if detected == language.Unknown {
		confidence = unknownConfidence
	}

	metrics.LanguageDetections.WithLabelValues(detected).Inc()

	return c.JSON(fiber.Map{
		"detected_language": detected,
		"confidence":        confidence,
	})
}
