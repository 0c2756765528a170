package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizdeck/backend/quiz"
)

// parseFor runs parseCriteria against a request with the given query string.
func parseFor(t *testing.T, query string) (quiz.Criteria, error) {
	t.Helper()

	var criteria quiz.Criteria
	var parseErr error

	app := fiber.New()
	app.Get("/results", func(c *fiber.Ctx) error {
		criteria, parseErr = parseCriteria(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/results?"+query, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	return criteria, parseErr
}

func TestParseCriteriaEmpty(t *testing.T) {
	criteria, err := parseFor(t, "")
	require.NoError(t, err)
	assert.Equal(t, quiz.Criteria{}, criteria)
}

func TestParseCriteriaAllFields(t *testing.T) {
	criteria, err := parseFor(t,
		"category=2&user=7&flagged=yes&date_from=2026-03-01&date_to=2026-03-31&search=alice")
	require.NoError(t, err)

	assert.Equal(t, uint(2), criteria.CategoryID)
	assert.Equal(t, uint(7), criteria.UserID)
	assert.Equal(t, "yes", criteria.Flagged)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), criteria.DateFrom)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), criteria.DateTo)
	assert.Equal(t, "alice", criteria.Search)
}

func TestParseCriteriaRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric category", "category=math"},
		{"non-numeric user", "user=alice"},
		{"bad flagged value", "flagged=maybe"},
		{"bad date_from", "date_from=01-03-2026"},
		{"bad date_to", "date_to=yesterday"},
		{"inverted range", "date_from=2026-03-31&date_to=2026-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFor(t, tt.query)
			assert.Error(t, err)
		})
	}
}
