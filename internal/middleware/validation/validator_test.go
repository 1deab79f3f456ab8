package validation

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(Middleware(cfg))
	app.Post("/api/detect-language", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Post("/api/chat", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) int {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAllowsNormalText(t *testing.T) {
	app := newApp(Config{MaxTextLength: 100})

	status := post(t, app, "/api/detect-language", map[string]string{"text": "short text"})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRejectsOversizedText(t *testing.T) {
	app := newApp(Config{MaxTextLength: 10})

	status := post(t, app, "/api/detect-language", map[string]string{
		"text": strings.Repeat("a", 11),
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRejectsOversizedChatMessage(t *testing.T) {
	app := newApp(Config{MaxMessageLength: 10})

	status := post(t, app, "/api/chat", map[string]string{
		"message": strings.Repeat("a", 11),
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
