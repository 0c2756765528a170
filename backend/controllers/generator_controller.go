package controllers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizdeck/backend/config"
	"quizdeck/backend/generator"
	"quizdeck/backend/models"
	"quizdeck/backend/quiz"
	"quizdeck/backend/utils"
)

// QuestionsGenerator produces candidate questions for a topic. Satisfied by
// generator.Client; tests substitute their own.
type QuestionsGenerator func(ctx context.Context, topic string, amount int) ([]generator.GeneratedQuestion, error)

type GeneratorController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Generate QuestionsGenerator
}

func NewGeneratorController(db *gorm.DB, cfg *config.Config, generate QuestionsGenerator) *GeneratorController {
	return &GeneratorController{DB: db, Cfg: cfg, Generate: generate}
}

// GenerateQuestions asks the model for questions about a topic and saves
// the valid ones under the category.
func (gc *GeneratorController) GenerateQuestions(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var input struct {
		Topic  string `json:"topic"`
		Amount int    `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Topic == "" {
		return utils.BadRequest(c, "Topic is required")
	}

	var category models.Category
	if err := gc.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	generated, err := gc.Generate(c.Context(), input.Topic, input.Amount)
	if err != nil {
		return utils.InternalServerError(c, "Question generation failed: "+err.Error())
	}

	saved := 0
	for _, g := range generated {
		letter := quiz.NormalizeLetter(g.CorrectOption)
		if g.QuestionText == "" || letter == "" || g.Options[letter] == "" {
			continue
		}

		question := models.Question{
			CategoryID:    category.ID,
			Text:          g.QuestionText,
			OptionA:       g.Options["A"],
			OptionB:       g.Options["B"],
			OptionC:       g.Options["C"],
			OptionD:       g.Options["D"],
			CorrectOption: letter,
		}
		if err := gc.DB.Create(&question).Error; err != nil {
			return utils.InternalServerError(c, "Could not save generated questions")
		}
		saved++
	}

	return utils.Created(c, fiber.Map{
		"category":  category.Name,
		"generated": len(generated),
		"saved":     saved,
	})
}
