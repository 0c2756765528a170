package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizdeck/backend/config"
	"quizdeck/backend/models"
	"quizdeck/backend/quiz"
	"quizdeck/backend/utils"
)

type QuizController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewQuizController(db *gorm.DB, cfg *config.Config) *QuizController {
	return &QuizController{DB: db, Cfg: cfg}
}

// StartQuiz returns the category's questions in a fresh random order,
// without the correct answers.
func (qc *QuizController) StartQuiz(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var category models.Category
	if err := qc.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var questions []models.Question
	if err := qc.DB.Where("category_id = ?", categoryID).Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	if len(questions) == 0 {
		return utils.BadRequest(c, "Category has no questions yet")
	}

	shuffled := quiz.Shuffle(questions)
	result := make([]fiber.Map, 0, len(shuffled))
	for _, q := range shuffled {
		result = append(result, fiber.Map{
			"id":       q.ID,
			"text":     q.Text,
			"option_a": q.OptionA,
			"option_b": q.OptionB,
			"option_c": q.OptionC,
			"option_d": q.OptionD,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"category":  category.Name,
		"questions": result,
	})
}

type SubmitInput struct {
	Answers         map[string]string `json:"answers"`
	TabSwitches     int               `json:"tab_switches"`
	FullscreenExits int               `json:"fullscreen_exits"`
}

// SubmitQuiz scores the submitted answers, applies the integrity policy and
// records the attempt. The attempt is always recorded, flagged or not.
func (qc *QuizController) SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.TabSwitches < 0 || input.FullscreenExits < 0 {
		return utils.BadRequest(c, "Counters must not be negative")
	}

	answers := make(map[uint]string, len(input.Answers))
	for key, letter := range input.Answers {
		questionID, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return utils.BadRequest(c, "Answer keys must be question IDs")
		}
		answers[uint(questionID)] = letter
	}

	var category models.Category
	if err := qc.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var questions []models.Question
	if err := qc.DB.Where("category_id = ?", categoryID).Find(&questions).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	score, total, results := quiz.Score(questions, answers)

	attempt := models.QuizAttempt{
		UserID:          userID,
		CategoryID:      category.ID,
		Score:           score,
		Total:           total,
		TabSwitches:     input.TabSwitches,
		FullscreenExits: input.FullscreenExits,
		IsFlagged:       quiz.IsFlagged(input.TabSwitches, input.FullscreenExits),
	}

	if err := qc.DB.Create(&attempt).Error; err != nil {
		return utils.InternalServerError(c, "Could not save attempt")
	}

	return utils.Created(c, fiber.Map{
		"attempt_id": attempt.ID,
		"category":   category.Name,
		"score":      score,
		"total":      total,
		"percentage": quiz.Percentage(score, total),
		"is_flagged": attempt.IsFlagged,
		"results":    results,
	})
}
