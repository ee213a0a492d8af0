package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"mindtrack/internal/config"
	"mindtrack/internal/handler"
	"mindtrack/internal/middleware"
	"mindtrack/internal/repository"
	"mindtrack/internal/service"
	"mindtrack/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (document upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Extract real IP (for Cloudflare) and User-Agent for audit logging.
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	// Close live streams cleanly on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		services.Hub.Shutdown()
		_ = app.Shutdown()
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)
	authGroup.Get("/verify-email", h.Auth.VerifyEmail)
	authGroup.Post("/resend-verification", h.Auth.ResendVerificationEmail)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/stream", h.Stream.Subscribe)

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)
	users.Post("/assign-role", middleware.RequireRole("admin"), h.User.AssignRole)
	users.Get("/clinicians", middleware.RequireRole("clinician"), h.User.ListClinicians)

	patients := protected.Group("/patients")
	patients.Post("/", middleware.RequireRole("clinician"), h.Patient.Create)
	patients.Get("/", middleware.RequireRole("clinician"), h.Patient.List)
	patients.Get("/search", middleware.RequireRole("clinician"), h.Patient.Search)
	patients.Get("/:patientId", middleware.RequireRole("clinician"), h.Patient.Get)
	patients.Put("/:patientId", middleware.RequireRole("clinician"), h.Patient.Update)
	patients.Delete("/:patientId", middleware.RequireRole("clinician"), h.Patient.Delete)

	patients.Post("/:patientId/logs", h.DailyLog.Create)
	patients.Get("/:patientId/logs", h.DailyLog.List)

	patients.Get("/:patientId/alerts", middleware.RequireRole("clinician"), h.Alert.ListByPatient)
	patients.Get("/:patientId/prescriptions", middleware.RequireRole("clinician"), h.Prescription.ListByPatient)
	patients.Get("/:patientId/consultations", middleware.RequireRole("clinician"), h.Consultation.ListByPatient)
	patients.Post("/:patientId/documents", middleware.RequireRole("clinician"), h.Document.Upload)
	patients.Get("/:patientId/documents", middleware.RequireRole("clinician"), h.Document.ListByPatient)

	logs := protected.Group("/logs")
	logs.Get("/:logId", h.DailyLog.Get)

	alerts := protected.Group("/alerts", middleware.RequireRole("clinician"))
	alerts.Post("/", h.Alert.Create)
	alerts.Get("/", h.Alert.List)
	alerts.Get("/:alertId", h.Alert.Get)
	alerts.Patch("/:alertId/status", h.Alert.UpdateStatus)

	prescriptions := protected.Group("/prescriptions", middleware.RequireRole("clinician"))
	prescriptions.Post("/", h.Prescription.Create)
	prescriptions.Get("/:prescriptionId", h.Prescription.Get)
	prescriptions.Put("/:prescriptionId", h.Prescription.Update)
	prescriptions.Delete("/:prescriptionId", h.Prescription.Delete)

	consultations := protected.Group("/consultations", middleware.RequireRole("clinician"))
	consultations.Post("/", h.Consultation.Create)
	consultations.Get("/", h.Consultation.ListMine)
	consultations.Get("/:consultationId", h.Consultation.Get)
	consultations.Put("/:consultationId", h.Consultation.Update)
	consultations.Delete("/:consultationId", h.Consultation.Cancel)

	documents := protected.Group("/documents", middleware.RequireRole("clinician"))
	documents.Get("/:documentId", h.Document.Get)
	documents.Delete("/:documentId", h.Document.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.GetUnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)

	dashboard := protected.Group("/dashboard", middleware.RequireRole("clinician"))
	dashboard.Get("/stats", h.Dashboard.GetStats)

	audit := protected.Group("/audit", middleware.RequireRole("admin"))
	audit.Get("/recent", h.Audit.GetRecentActivities)
	audit.Get("/:entityType/:entityId", h.Audit.GetEntityHistory)
}
