package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fitledger/internal/ai"
	"fitledger/internal/config"
	"fitledger/internal/crypto"
	"fitledger/internal/database"
	"fitledger/internal/handlers"
	"fitledger/internal/logger"
	"fitledger/internal/mailfetch"
	"fitledger/internal/middleware"
	"fitledger/internal/services"
	"fitledger/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager and run migrations
	dbManager, err := database.NewManager(cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Credential cipher for the stored mailbox password
	cipher, err := crypto.New(cfg.SecretKey)
	if err != nil {
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}

	// Gemini completer is optional; without an API key, suggestion
	// endpoints respond 503.
	var completer ai.Completer
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiCompleter(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		completer = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, suggestions disabled")
	}

	// Initialize services
	db := dbManager.DB()
	expenseService := services.NewExpenseService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewGoalService(db)
	mealService := services.NewMealService(db)
	workoutService := services.NewWorkoutService(db)
	mailSettingsService := services.NewMailSettingsService(db, cipher)
	mailSyncService := services.NewMailSyncService(mailSettingsService, expenseService, mailfetch.NewIMAPFetcher())
	suggestionService := services.NewSuggestionService(db, completer)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	mealHandler := handlers.NewMealHandler(mealService)
	workoutHandler := handlers.NewWorkoutHandler(workoutService)
	mailHandler := handlers.NewMailHandler(mailSettingsService, mailSyncService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	// Register custom request validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/summary", expenseHandler.GetMonthlySummary)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	// Savings goal routes
	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contributions", goalHandler.Contribute)

	// Meal routes
	meals := v1.Group("/meals")
	meals.POST("", mealHandler.CreateMeal)
	meals.GET("", mealHandler.GetMeals)
	meals.GET("/summary", mealHandler.GetDailySummary)
	meals.GET("/:id", mealHandler.GetMeal)
	meals.PUT("/:id", mealHandler.UpdateMeal)
	meals.DELETE("/:id", mealHandler.DeleteMeal)

	// Workout template routes
	workouts := v1.Group("/workouts")
	workouts.POST("", workoutHandler.CreateTemplate)
	workouts.GET("", workoutHandler.GetTemplates)
	workouts.GET("/:id", workoutHandler.GetTemplate)
	workouts.PUT("/:id", workoutHandler.UpdateTemplate)
	workouts.DELETE("/:id", workoutHandler.DeleteTemplate)

	// Mail sync routes
	mail := v1.Group("/mail")
	mail.PUT("/settings", mailHandler.SaveSettings)
	mail.GET("/settings", mailHandler.GetSettings)
	mail.DELETE("/settings", mailHandler.DeleteSettings)
	mail.POST("/sync", mailHandler.Sync)

	// Suggestion routes
	v1.GET("/suggestions/:kind", suggestionHandler.GetSuggestion)

	log.Infof("Starting FitLedger backend server on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
