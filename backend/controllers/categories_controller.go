package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizdeck/backend/config"
	"quizdeck/backend/models"
	"quizdeck/backend/utils"
)

type CategoriesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCategoriesController(db *gorm.DB, cfg *config.Config) *CategoriesController {
	return &CategoriesController{DB: db, Cfg: cfg}
}

// ListCategories returns all subject categories with their question counts,
// for the subject selection page.
func (cc *CategoriesController) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := cc.DB.Order("name").Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(categories))
	for _, category := range categories {
		var questionCount int64
		cc.DB.Model(&models.Question{}).Where("category_id = ?", category.ID).Count(&questionCount)

		result = append(result, fiber.Map{
			"id":        category.ID,
			"name":      category.Name,
			"questions": questionCount,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

func (cc *CategoriesController) CreateCategory(c *fiber.Ctx) error {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Category name is required")
	}

	category := models.Category{Name: input.Name}
	if err := cc.DB.Create(&category).Error; err != nil {
		return utils.BadRequest(c, "Category name must be unique")
	}

	return utils.Created(c, category)
}

func (cc *CategoriesController) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var input struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Name == "" {
		return utils.BadRequest(c, "Category name is required")
	}

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	category.Name = input.Name
	if err := cc.DB.Save(&category).Error; err != nil {
		return utils.BadRequest(c, "Category name must be unique")
	}

	return utils.Success(c, fiber.StatusOK, category)
}

// DeleteCategory removes the category; its questions and attempts cascade.
func (cc *CategoriesController) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid category ID")
	}

	var category models.Category
	if err := cc.DB.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Category not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := cc.DB.Select("Questions", "Attempts").Delete(&category).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete category")
	}

	return utils.NoContent(c)
}
