package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/toolkithub/accounts/internal/config"
	"github.com/toolkithub/accounts/internal/database"
	"github.com/toolkithub/accounts/internal/handlers"
	"github.com/toolkithub/accounts/internal/middleware"
	"github.com/toolkithub/accounts/internal/services"
	"github.com/toolkithub/accounts/internal/types"

	_ "github.com/toolkithub/accounts/docs/api" // Swagger docs
)

// @title ToolkitHub Accounts API
// @version 1.0.0
// @description Account, credit, usage-tracking and tool catalog service for the ToolkitHub frontend
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/toolkithub/accounts

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed configured admin identities into the role store
	if err := database.SeedAdminRoles(db, cfg.AdminIdentities); err != nil {
		log.Fatalf("Failed to seed admin roles: %v", err)
	}

	// Populate the tool catalog once; subsequent starts are no-ops
	if cfg.CatalogAutoInit {
		if _, err := services.InitializeTools(db); err != nil {
			log.Fatalf("Failed to initialize tool catalog: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("accounts")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}
	app.Get("/health", healthHandler.Get)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	accountHandler := &handlers.AccountHandler{DB: db, Cfg: cfg}
	activityHandler := &handlers.ActivityHandler{DB: db}
	catalogHandler := &handlers.CatalogHandler{DB: db}

	authUser := middleware.AuthUser(cfg)
	authAdmin := middleware.AuthAdmin(cfg, db)
	optionalAuth := middleware.OptionalAuth(cfg)

	// Account routes
	account := api.Group("/account")
	account.Get("/profile", authUser, accountHandler.GetOwnProfile)
	account.Post("/profile", authUser, accountHandler.SaveOwnProfile)
	account.Get("/profile/:identity", accountHandler.GetProfile)
	account.Get("/display-name/:identity", accountHandler.GetDisplayName)
	account.Get("/credits", authAdmin, accountHandler.ListCreditBalances)
	account.Post("/credits/consume", authUser, accountHandler.ConsumeCredits)
	account.Get("/credits/:identity", accountHandler.GetCreditBalance)
	account.Post("/credits/:identity", authAdmin, accountHandler.UpdateCredits)
	account.Get("/role", optionalAuth, accountHandler.GetOwnRole)
	account.Get("/role/admin", optionalAuth, accountHandler.IsAdmin)
	account.Post("/role/:identity", authAdmin, accountHandler.AssignRole)

	// Activity routes
	activity := api.Group("/activity")
	activity.Get("/usage", activityHandler.GetAllUsageCounts)
	activity.Get("/usage/:toolId", activityHandler.GetUsageCount)
	activity.Post("/usage/:toolId", optionalAuth, activityHandler.RecordUsage)
	activity.Get("/favorites", authUser, activityHandler.GetFavorites)
	activity.Post("/favorites", authUser, activityHandler.SaveFavorites)
	activity.Get("/preferences", authUser, activityHandler.GetPreferences)
	activity.Post("/preferences", authUser, activityHandler.SavePreferences)
	activity.Get("/search", authUser, activityHandler.GetSearch)
	activity.Post("/search", authUser, activityHandler.AddSearch)

	// Catalog routes
	catalog := api.Group("/catalog")
	catalog.Get("/tools", catalogHandler.GetAllTools)
	catalog.Get("/categories", catalogHandler.GetAllCategories)
	catalog.Post("/categories", authAdmin, catalogHandler.AddCategory)
	catalog.Get("/categories/:id", catalogHandler.GetCategory)
	catalog.Get("/categories/:id/pages", catalogHandler.GetPagesByCategory)
	catalog.Get("/pages", catalogHandler.GetAllPages)
	catalog.Post("/pages", authAdmin, catalogHandler.AddPage)
	catalog.Get("/pages/:id", catalogHandler.GetPage)
	catalog.Post("/initialize", authAdmin, catalogHandler.Initialize)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Authorization and validation failures surface as CustomError
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
