package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/jsj/linkup/internal/app/controllers"
	appMigrations "github.com/jsj/linkup/internal/app/migrations"
	appRepos "github.com/jsj/linkup/internal/app/repositories"
	appRoutes "github.com/jsj/linkup/internal/app/routes"
	appServices "github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/config"
	"github.com/jsj/linkup/internal/db"
	appMiddleware "github.com/jsj/linkup/internal/middleware"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/session"
	"github.com/jsj/linkup/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Sessions       *session.Store
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer seedCancel()
	if err := seed.CreateDefaultData(seedCtx, dbPool, cfg); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data")
		return nil, err
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware together.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	sessions := session.NewStore(cfg.SessionTTL())
	repos := appRepos.NewRepositories(dbPool)
	services := appServices.NewServices(repos, sessions)

	ctrls := &appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(services.Auth),
		Student:      appControllers.NewStudentController(services.Student),
		Group:        appControllers.NewGroupController(services.Group),
		Link:         appControllers.NewLinkController(services.Link),
		Event:        appControllers.NewEventController(services.Event),
		Class:        appControllers.NewClassController(services.Class),
		Post:         appControllers.NewPostController(services.Post),
		Badge:        appControllers.NewBadgeController(services.Badge),
		Notification: appControllers.NewNotificationController(services.Notification),
		Rating:       appControllers.NewRatingController(services.Rating),
		Catalog:      appControllers.NewCatalogController(services.Catalog),
		Dashboard:    appControllers.NewDashboardController(services.Dashboard),
		Health:       appControllers.NewHealthController(dbPool),
	}

	return &Dependencies{
		Repos:          repos,
		Services:       services,
		Controllers:    ctrls,
		AuthMiddleware: appMiddleware.NewAuthMiddleware(sessions),
		Sessions:       sessions,
		Logger:         lgr,
	}, nil
}

// SetupRouter builds the Gin engine with middleware and routes mounted.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	lgr.Info().Msg("Router configured")
	return router
}
