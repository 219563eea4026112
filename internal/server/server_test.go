package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"presentation-builder-be/internal/config"
	"presentation-builder-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{CorsAllowedOrigins: "*", BodyLimit: 1 << 20}}
}

func TestNewApp_PanicBecomesErrorEnvelope(t *testing.T) {
	app := newApp(testConfig())
	app.Post("/api/generate-files", func(c *fiber.Ctx) error {
		panic("index out of range")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/generate-files", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "index out of range", body["message"])
}

func TestNewApp_ErrorKindsKeepTheirStatus(t *testing.T) {
	app := newApp(testConfig())
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperr.NotFound("File not found: x.pdf")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
