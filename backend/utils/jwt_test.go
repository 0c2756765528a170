package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdeck/backend/config"
)

func extractWith(t *testing.T, cfg *config.Config, token string) (uint, error) {
	t.Helper()

	var userID uint
	var extractErr error

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		userID, extractErr = ExtractUserIDFromToken(c, cfg)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	return userID, extractErr
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := GenerateJWTToken(42, cfg)
	require.NoError(t, err)

	userID, err := extractWith(t, cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	_, err := extractWith(t, cfg, "")
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(42, &config.Config{JWTSecret: "one"})
	require.NoError(t, err)

	_, err = extractWith(t, &config.Config{JWTSecret: "another"}, token)
	assert.Error(t, err)
}
