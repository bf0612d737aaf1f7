package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	_ "github.com/lib/pq"

	"campusevents/config"
	_ "campusevents/docs"
	authadapter "campusevents/internal/adapters/auth"
	emailadapter "campusevents/internal/adapters/email"
	httpdelivery "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title           Campus Events API
// @version         1.0
// @description     Campus event management: event creation with venue reservations, a staff approval workflow, attendance with optional prepayment, and weekly summary reports.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	reservationRepo := postgres.NewReservationRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(bcrypt.DefaultCost)
	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("init mailer", "error", err)
		os.Exit(1)
	}
	renderer := emailadapter.NewTemplateRenderer()

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	authService := services.NewAuthService(userRepo, roleRepo, hasher, issuer, cfg.JWTExpiry)
	eventService := services.NewEventService(eventRepo, reservationRepo, locationRepo, categoryRepo, attendanceRepo, roleRepo, serviceTimeout)
	moderationService := services.NewModerationService(eventRepo, reservationRepo, locationRepo, userRepo, roleRepo, emailService, logger, serviceTimeout)
	attendanceService := services.NewAttendanceService(eventRepo, reservationRepo, attendanceRepo, serviceTimeout)
	reportService := services.NewReportService(reportRepo, roleRepo, serviceTimeout)
	directoryService := services.NewDirectoryService(locationRepo, categoryRepo, reservationRepo, serviceTimeout)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:       controllers.NewAuthController(logger, authService),
		Event:      controllers.NewEventController(logger, eventService),
		Moderation: controllers.NewModerationController(logger, moderationService),
		Attendance: controllers.NewAttendanceController(logger, attendanceService),
		Report:     controllers.NewReportController(logger, reportService),
		Directory:  controllers.NewDirectoryController(logger, directoryService),
	}, verifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
