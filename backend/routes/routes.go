package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizdeck/backend/config"
	"quizdeck/backend/controllers"
	"quizdeck/backend/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, generate controllers.QuestionsGenerator) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Subject selection
	categoriesController := controllers.NewCategoriesController(db, cfg)
	app.Get("/api/categories", authMiddleware, categoriesController.ListCategories)

	// Quiz taking
	quizController := controllers.NewQuizController(db, cfg)
	quizzes := app.Group("/api/quiz", authMiddleware)
	quizzes.Get("/:id", quizController.StartQuiz)
	quizzes.Post("/:id/submit", quizController.SubmitQuiz)

	// Own results
	resultsController := controllers.NewResultsController(db, cfg)
	app.Get("/api/dashboard", authMiddleware, resultsController.Dashboard)
	app.Get("/api/history", authMiddleware, resultsController.History)

	// Admin routes for categories and questions
	questionsController := controllers.NewQuestionsController(db, cfg)
	generatorController := controllers.NewGeneratorController(db, cfg, generate)
	adminCategories := app.Group("/api/admin/categories", adminMiddleware)
	adminCategories.Post("/", categoriesController.CreateCategory)
	adminCategories.Put("/:id", categoriesController.UpdateCategory)
	adminCategories.Delete("/:id", categoriesController.DeleteCategory)
	adminCategories.Get("/:id/questions", questionsController.ListQuestions)
	adminCategories.Post("/:id/questions", questionsController.AddQuestion)
	adminCategories.Put("/:id/questions/:questionId", questionsController.UpdateQuestion)
	adminCategories.Delete("/:id/questions/:questionId", questionsController.DeleteQuestion)
	adminCategories.Post("/:id/generate", generatorController.GenerateQuestions)

	// Admin routes for attempt review and export
	adminResults := app.Group("/api/admin/results", adminMiddleware)
	adminResults.Get("/", resultsController.ListResults)
	adminResults.Get("/export", resultsController.ExportResults)
	adminResults.Post("/:id/flag", resultsController.FlagAttempt)
	adminResults.Post("/:id/unflag", resultsController.UnflagAttempt)
	adminResults.Delete("/:id", resultsController.DeleteAttempt)
}
