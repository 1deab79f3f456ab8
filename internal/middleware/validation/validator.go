package validation

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Paths carrying a "text" field that must respect the length cap.
var textPaths = []string{
	"/api/detect-language",
	"/api/translate",
}

type Config struct {
	MaxTextLength    int
	MaxMessageLength int
	Logger           *zap.Logger
}

// Middleware rejects oversized text payloads before they reach a
// handler. Field-level validation (missing text, missing target
// language) stays in the handlers so their error messages match the
// API contract.
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxTextLength == 0 {
		cfg.MaxTextLength = 50000
	}
	if cfg.MaxMessageLength == 0 {
		cfg.MaxMessageLength = 10000
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost {
			return c.Next()
		}

		path := c.Path()

		if isTextPath(path) {
			var req struct {
				Text string `json:"text"`
			}
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid JSON format",
				})
			}
			if len(req.Text) > cfg.MaxTextLength {
				cfg.Logger.Warn("Oversized text payload rejected",
					zap.String("ip", c.IP()),
					zap.String("path", path),
					zap.Int("length", len(req.Text)),
				)
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Text exceeds maximum length",
				})
			}
		}

		if strings.HasSuffix(path, "/chat") {
			var req struct {
				Message string `json:"message"`
			}
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid JSON format",
				})
			}
			if len(req.Message) > cfg.MaxMessageLength {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Message exceeds maximum length",
				})
			}
		}

		return c.Next()
	}
}

func isTextPath(path string) bool {
	for _, p := range textPaths {
		if path == p {
			return true
		}
	}
	return false
}
