package controllers

import (
	"bytes"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizdeck/backend/config"
	"quizdeck/backend/models"
	"quizdeck/backend/quiz"
	"quizdeck/backend/utils"
)

type ResultsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewResultsController(db *gorm.DB, cfg *config.Config) *ResultsController {
	return &ResultsController{DB: db, Cfg: cfg}
}

// Dashboard returns the authenticated user's aggregate statistics.
func (rc *ResultsController) Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var attempts []models.QuizAttempt
	if err := rc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&attempts).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var categories []models.Category
	if err := rc.DB.Order("name").Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, quiz.AggregateStats(attempts, categories))
}

// History returns the authenticated user's attempts, newest first.
func (rc *ResultsController) History(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var attempts []models.QuizAttempt
	if err := rc.DB.Preload("Category").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&attempts).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(attempts))
	for i := range attempts {
		a := &attempts[i]
		result = append(result, fiber.Map{
			"id":         a.ID,
			"category":   a.Category.Name,
			"score":      a.Score,
			"total":      a.Total,
			"percentage": quiz.Percentage(a.Score, a.Total),
			"timestamp":  a.CreatedAt,
			"is_flagged": a.IsFlagged,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// parseCriteria builds filter criteria from query parameters, rejecting
// malformed values before any data is read.
func parseCriteria(c *fiber.Ctx) (quiz.Criteria, error) {
	var criteria quiz.Criteria

	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return criteria, errors.New("invalid category filter")
		}
		criteria.CategoryID = uint(id)
	}
	if raw := c.Query("user"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return criteria, errors.New("invalid user filter")
		}
		criteria.UserID = uint(id)
	}
	if raw := c.Query("flagged"); raw != "" {
		if raw != "yes" && raw != "no" {
			return criteria, errors.New("flagged filter must be yes or no")
		}
		criteria.Flagged = raw
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return criteria, errors.New("invalid date_from format, use YYYY-MM-DD")
		}
		criteria.DateFrom = from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return criteria, errors.New("invalid date_to format, use YYYY-MM-DD")
		}
		criteria.DateTo = to
	}
	if !criteria.DateFrom.IsZero() && !criteria.DateTo.IsZero() &&
		criteria.DateTo.Before(criteria.DateFrom) {
		return criteria, errors.New("date_to is before date_from")
	}
	criteria.Search = c.Query("search")

	return criteria, nil
}

func (rc *ResultsController) loadFiltered(criteria quiz.Criteria) ([]models.QuizAttempt, error) {
	var attempts []models.QuizAttempt
	err := rc.DB.Preload("User").Preload("Category").
		Order("created_at DESC").Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return quiz.FilterAttempts(attempts, criteria), nil
}

// ListResults returns all attempts matching the query filters, for the
// admin review screen.
func (rc *ResultsController) ListResults(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	attempts, err := rc.loadFiltered(criteria)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(attempts))
	for i := range attempts {
		a := &attempts[i]
		result = append(result, fiber.Map{
			"id":               a.ID,
			"username":         a.User.Username,
			"full_name":        a.User.FullName(),
			"email":            a.User.Email,
			"category":         a.Category.Name,
			"score":            a.Score,
			"total":            a.Total,
			"percentage":       quiz.Percentage(a.Score, a.Total),
			"timestamp":        a.CreatedAt,
			"is_flagged":       a.IsFlagged,
			"tab_switches":     a.TabSwitches,
			"fullscreen_exits": a.FullscreenExits,
			"status":           quiz.SecurityStatus(a),
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// ExportResults streams the filtered attempts as a CSV download.
func (rc *ResultsController) ExportResults(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	attempts, err := rc.loadFiltered(criteria)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var buf bytes.Buffer
	if err := quiz.ExportCSV(&buf, attempts); err != nil {
		return utils.InternalServerError(c, "Could not build export")
	}

	filename := "quiz_results_" + time.Now().Format("20060102_150405") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// setFlag applies an idempotent admin flag override. The underlying
// counters are never touched.
func (rc *ResultsController) setFlag(c *fiber.Ctx, flagged bool) error {
	attemptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid attempt ID")
	}

	var attempt models.QuizAttempt
	if err := rc.DB.First(&attempt, attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Attempt not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if attempt.IsFlagged != flagged {
		attempt.IsFlagged = flagged
		if err := rc.DB.Model(&attempt).Update("is_flagged", flagged).Error; err != nil {
			return utils.InternalServerError(c, "Could not update attempt")
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":         attempt.ID,
		"is_flagged": attempt.IsFlagged,
	})
}

func (rc *ResultsController) FlagAttempt(c *fiber.Ctx) error {
	return rc.setFlag(c, true)
}

func (rc *ResultsController) UnflagAttempt(c *fiber.Ctx) error {
	return rc.setFlag(c, false)
}

func (rc *ResultsController) DeleteAttempt(c *fiber.Ctx) error {
	attemptID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid attempt ID")
	}

	var attempt models.QuizAttempt
	if err := rc.DB.First(&attempt, attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Attempt not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := rc.DB.Delete(&attempt).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete attempt")
	}

	return utils.NoContent(c)
}
