package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"evhire_backend/internal/auth"
	"evhire_backend/internal/config"
	"evhire_backend/internal/email"
	"evhire_backend/internal/handlers"
	"evhire_backend/internal/logger"
	"evhire_backend/internal/middleware"
	"evhire_backend/internal/models"
	"evhire_backend/internal/questionbank"
	"evhire_backend/internal/repositories"
	"evhire_backend/internal/routes"
	"evhire_backend/internal/services"
	"evhire_backend/internal/validator"
	"evhire_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if err := questionbank.Seed(gormDB); err != nil {
		logger.Fatal("Failed to seed question bank", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	tokenWorker := workers.NewTokenWorker(gormDB, repositories.NewUserRepository())
	tokenWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// AutoMigrate keeps the schema in sync with the model set.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Recruiter{},
		&models.JobPost{},
		&models.JobApplication{},
		&models.VerificationQuestion{},
		&models.QuizScore{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.FromName,
		)
		logger.Info("SMTP email provider configured", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NoopProvider{}
		logger.Warn("SMTP is not configured, decision emails are disabled")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("Redis leaderboard mirror enabled", "addr", cfg.Redis.Addr)
	} else {
		logger.Info("Redis is not configured, leaderboard mirror disabled")
	}

	userRepo := repositories.NewUserRepository()
	recruiterRepo := repositories.NewRecruiterRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	questionRepo := repositories.NewQuestionRepository()
	leaderboardRepo := repositories.NewLeaderboardRepository()

	notifier := services.NewDecisionNotifier(emailProvider)

	authService := services.NewAuthService(userRepo, recruiterRepo)
	userService := services.NewUserService(userRepo, recruiterRepo)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, userRepo, rdb)
	quizService := services.NewQuizService(userRepo, questionRepo, leaderboardService)
	jobService := services.NewJobService(jobRepo, recruiterRepo, notifier)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo)
	adminService := services.NewAdminService(userRepo, notifier)
	statsService := services.NewStatsService(userRepo, recruiterRepo, jobRepo, applicationRepo)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		QuizService:        quizService,
		JobService:         jobService,
		ApplicationService: applicationService,
		AdminService:       adminService,
		StatsService:       statsService,
		LeaderboardService: leaderboardService,
		EmailProvider:      emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:        handlers.NewUserHandler(baseHandler, services.UserService),
		QuizHandler:        handlers.NewQuizHandler(baseHandler, services.QuizService, services.LeaderboardService),
		JobHandler:         handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		AdminHandler:       handlers.NewAdminHandler(baseHandler, services.AdminService, services.JobService, services.UserService, services.StatsService),
		StatsHandler:       handlers.NewStatsHandler(baseHandler, services.StatsService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminPhone := cfg.FirstAdminPhone
	adminPassword := cfg.FirstAdminPassword

	if adminPhone == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_PHONE or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("phone = ?", adminPhone).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "phone", adminPhone)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "phone", adminPhone)

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Phone:              adminPhone,
		PasswordHash:       hashedPassword,
		Role:               models.UserRoleAdmin,
		Name:               "Platform Admin",
		VerificationStatus: models.VerificationVerified,
		VerificationStep:   3,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "userId", newAdmin.ID)
	return nil
}
