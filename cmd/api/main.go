package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/bhumicrm/bhumi-api/docs" // Swagger docs
	"github.com/bhumicrm/bhumi-api/internal/config"
	"github.com/bhumicrm/bhumi-api/internal/database"
	"github.com/bhumicrm/bhumi-api/internal/handlers"
	"github.com/bhumicrm/bhumi-api/internal/jobs"
	"github.com/bhumicrm/bhumi-api/internal/middleware"
	"github.com/bhumicrm/bhumi-api/internal/repository"
	"github.com/bhumicrm/bhumi-api/internal/services"
	"github.com/bhumicrm/bhumi-api/internal/storage"
	"github.com/bhumicrm/bhumi-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Bhumi API
// @version 1.0
// @description REST API for the Bhumi colony and plot management system

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" || cfg.FromEmail == "" {
		logger.Warn("Resend email disabled: RESEND_API_KEY or FROM_EMAIL not set")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize report archive storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, store, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, cfg)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Redirect root to swagger
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})

		// Swagger documentation
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				// User management
				admin.POST("/users", h.User.Create)
				admin.DELETE("/users/:user_id", h.User.Delete)
				admin.PUT("/users/:user_id/toggle_status", h.User.ToggleStatus)

				// Colony management
				admin.POST("/colonies", h.Colony.Create)
				admin.PUT("/colonies/:colony_id", h.Colony.Update)
				admin.DELETE("/colonies/:colony_id", h.Colony.Delete)

				// Property management
				admin.POST("/properties", h.Property.Create)
				admin.PUT("/properties/:property_id", h.Property.Update)
				admin.DELETE("/properties/:property_id", h.Property.Delete)

				// Plot management
				admin.POST("/plots", h.Plot.Create)
				admin.PUT("/plots/:plot_id", h.Plot.Update)
				admin.DELETE("/plots/:plot_id", h.Plot.Delete)

				// Kisan payments (ledger entries)
				admin.POST("/kisan_payments", h.KisanPayment.Create)
				admin.PUT("/kisan_payments/:payment_id", h.KisanPayment.Update)
				admin.DELETE("/kisan_payments/:payment_id", h.KisanPayment.Delete)

				// Commission lifecycle (approve, pay, revoke)
				admin.POST("/bookings/:booking_id/commission/approve", h.Commission.Approve)
				admin.POST("/bookings/:booking_id/commission/pay", h.Commission.Pay)
				admin.POST("/bookings/:booking_id/commission/revoke", h.Commission.Revoke)

				// Booking confirmation and cancellation
				admin.POST("/bookings/:booking_id/confirm", h.Booking.Confirm)
				admin.POST("/bookings/:booking_id/cancel", h.Booking.Cancel)

				// Audits and jobs
				admin.GET("/audits", h.Audit.Index)
				admin.GET("/jobs/status", h.Job.Status)
			}

			// Agent + Admin routes (sales and commission work)
			agentAdmin := protected.Group("")
			agentAdmin.Use(middleware.RequireRole("admin", "agent"))
			{
				agentAdmin.GET("/users", h.User.Index)

				// Bookings
				agentAdmin.GET("/bookings", h.Booking.Index)
				agentAdmin.GET("/bookings/:booking_id", h.Booking.Show)
				agentAdmin.POST("/bookings", h.Booking.Create)
				agentAdmin.PUT("/bookings/:booking_id", h.Booking.Update)

				// Derived commissions
				agentAdmin.GET("/commissions", h.Commission.Index)
				agentAdmin.GET("/commissions/summary", h.Commission.Summary)
				agentAdmin.GET("/bookings/:booking_id/commission", h.Commission.Show)

				// Reports
				agentAdmin.GET("/reports/commissions_csv", h.Report.CommissionsCSV)
				agentAdmin.GET("/reports/kisan_ledger_csv", h.Report.KisanLedgerCSV)
				agentAdmin.GET("/reports/booking_slip_pdf", h.Report.BookingSlipPDF)
				agentAdmin.GET("/reports/kisan_payment_slip_pdf", h.Report.KisanPaymentSlipPDF)
				agentAdmin.GET("/reports/colony_statement_pdf", h.Report.ColonyStatementPDF)
				agentAdmin.GET("/reports/colony_export", h.Report.ColonyExport)
			}

			// Read access for all authenticated roles (viewer included)
			protected.GET("/colonies", h.Colony.Index)
			protected.GET("/colonies/:colony_id", h.Colony.Show)
			protected.GET("/colonies/:colony_id/land_summary", h.Colony.LandSummary)
			protected.GET("/colonies/:colony_id/ledger", h.KisanPayment.Ledger)
			protected.GET("/properties", h.Property.Index)
			protected.GET("/properties/:property_id", h.Property.Show)
			protected.GET("/properties/:property_id/land_summary", h.Property.LandSummary)
			protected.GET("/plots", h.Plot.Index)
			protected.GET("/plots/:plot_id", h.Plot.Show)
			protected.GET("/kisan_payments", h.KisanPayment.Index)

			// What-if price calculator (never persists anything)
			protected.POST("/calculator", h.Calculator.Calculate)
			protected.POST("/colonies/:colony_id/calculator", h.Calculator.CalculateForColony)

			// Profile access
			userData := protected.Group("/users/:user_id")
			userData.Use(middleware.RequireAdminAgentOrOwner())
			{
				userData.GET("", h.User.Show)
				userData.GET("/bookings", h.User.Bookings)
			}
			protected.PUT("/users/:user_id", middleware.RequireAdminOrOwner(), h.User.Update)
			protected.PATCH("/users/:user_id/change_password", h.User.ChangePassword)

			// Notifications (users manage their own)
			// Static route first so "mark_all_as_read" is not matched as :notification_id
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", h.Notification.Index)
				notifications.POST("/mark_all_as_read", h.Notification.MarkAllAsRead)
				notifications.POST("/:notification_id/mark_as_read", h.Notification.MarkAsRead)
				notifications.DELETE("/:notification_id", h.Notification.Delete)
			}
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, cfg *config.Config) {
	// Flag stale bookings to admins every hour
	staleAfter := time.Duration(cfg.StaleBookingDays) * 24 * time.Hour
	worker.ScheduleEvery("flag stale bookings", 1*time.Hour, func(ctx context.Context) error {
		flagged, err := svcs.Booking.FlagStale(ctx, staleAfter)
		if err != nil {
			return err
		}
		if flagged > 0 {
			logger.Info("[Job] Flagged stale bookings", "count", flagged)
		}
		return nil
	})

	// Scan colonies for over-allocated land every 6 hours
	worker.ScheduleEvery("over-allocation scan", 6*time.Hour, func(ctx context.Context) error {
		return svcs.Colony.CheckOverAllocation(ctx)
	})

	// Archive the commissions report daily
	worker.ScheduleEvery("archive commissions report", 24*time.Hour, func(ctx context.Context) error {
		path, err := svcs.Archive.ArchiveCommissions(ctx)
		if err != nil {
			return err
		}
		logger.Info("[Job] Archived commissions report", "path", path)
		return nil
	})

	logger.Info("Scheduled recurring jobs")
}
