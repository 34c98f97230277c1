package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/collegeerp/internal/app/auth"
	appControllers "github.com/yigit/collegeerp/internal/app/controllers"
	appMigrations "github.com/yigit/collegeerp/internal/app/migrations"
	appRepos "github.com/yigit/collegeerp/internal/app/repositories"
	"github.com/yigit/collegeerp/internal/app/repositories/memory"
	appRoutes "github.com/yigit/collegeerp/internal/app/routes"
	appServices "github.com/yigit/collegeerp/internal/app/services"
	"github.com/yigit/collegeerp/internal/config"
	"github.com/yigit/collegeerp/internal/db"
	appMiddleware "github.com/yigit/collegeerp/internal/middleware"
	"github.com/yigit/collegeerp/internal/pkg/logger"
	"github.com/yigit/collegeerp/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService    appServices.StudentService
	AuthService       appServices.AuthService
	FeeService        appServices.FeeService
	AttendanceService appServices.AttendanceService
	ExamService       appServices.ExamService
	AssignmentService appServices.AssignmentService
	Controllers       appRoutes.Controllers
	AccessMiddleware  *appMiddleware.AccessMiddleware
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// Store is the record store chosen by database.driver
type Store struct {
	Repos *appRepos.Repositories
	// Close releases the store; a no-op for the memory driver
	Close func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured record store. For postgres it connects and
// applies the migrations directory.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using the in-memory record store; data is lost on exit")
		return &Store{Repos: memory.NewRepositories(), Close: func() {}}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Str("dir", migrationsDir).Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return &Store{Repos: appRepos.NewRepositories(database.Pool), Close: database.Close}, nil
}

// BuildDependencies initializes services, controllers and the access middleware on
// top of repos. The demo data is seeded when students.seed is set.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	deps.StudentService = appServices.NewStudentService(
		repos.StudentRepository,
		appServices.StudentServiceConfig{EnrollmentAttempts: cfg.Students.EnrollmentAttempts},
		logger.WithComponent(lgr, "students"),
	)
	deps.AuthService = appServices.NewAuthService(repos.IdentityRepository, repos.StudentRepository, logger.WithComponent(lgr, "auth"))
	deps.FeeService = appServices.NewFeeService(
		repos.FeeRepository,
		appServices.FeeServiceConfig{InvoiceBaseURL: cfg.Fees.InvoiceBaseURL},
		logger.WithComponent(lgr, "fees"),
	)
	deps.AttendanceService = appServices.NewAttendanceService(repos.AttendanceRepository, repos.StudentRepository)
	deps.ExamService = appServices.NewExamService(repos.ExamRepository, repos.ResultRepository)
	deps.AssignmentService = appServices.NewAssignmentService(repos.AssignmentRepository, logger.WithComponent(lgr, "assignments"))

	deps.AccessMiddleware = appMiddleware.NewAccessMiddleware(appAuth.NewIdentityPolicy(repos.IdentityRepository), cfg.Auth.Header)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.AuthService, lgr),
		Student:    appControllers.NewStudentController(deps.StudentService, lgr),
		Fee:        appControllers.NewFeeController(deps.FeeService),
		Attendance: appControllers.NewAttendanceController(deps.AttendanceService),
		Exam:       appControllers.NewExamController(deps.ExamService),
		Assignment: appControllers.NewAssignmentController(deps.AssignmentService),
	}

	if cfg.Students.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.CreateDefaultData(ctx, repos, deps.StudentService, deps.FeeService, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AccessMiddleware)
	return router
}
