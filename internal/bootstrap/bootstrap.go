package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/unlockedcoding/catalog/internal/app/controllers"
	appMigrations "github.com/unlockedcoding/catalog/internal/app/migrations"
	appRepos "github.com/unlockedcoding/catalog/internal/app/repositories"
	appRoutes "github.com/unlockedcoding/catalog/internal/app/routes"
	appServices "github.com/unlockedcoding/catalog/internal/app/services"
	"github.com/unlockedcoding/catalog/internal/catalog"
	"github.com/unlockedcoding/catalog/internal/config"
	"github.com/unlockedcoding/catalog/internal/db"
	"github.com/unlockedcoding/catalog/internal/googleauth"
	appMiddleware "github.com/unlockedcoding/catalog/internal/middleware"
	pkgAuth "github.com/unlockedcoding/catalog/internal/pkg/auth"
	"github.com/unlockedcoding/catalog/internal/pkg/helpers"
	"github.com/unlockedcoding/catalog/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store              *catalog.Store
	CatalogService     *appServices.CatalogService
	AuthService        *appServices.AuthService
	CategoryController *appControllers.CategoryController
	CourseController   *appControllers.CourseController
	TeacherController  *appControllers.TeacherController
	BlogController     *appControllers.BlogController
	SiteController     *appControllers.SiteController
	AuthController     *appControllers.AuthController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations. The
// database backs only the sign-in flow; when Google OAuth is not configured
// no connection is made and a nil pool is returned, keeping the catalog
// endpoints independent of Postgres.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if !cfg.GoogleOAuthConfigured() {
		lgr.Info().Msg("Google OAuth not configured, skipping database setup")
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.ApplyDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes the catalog store, repositories, services and
// controllers. dbPool may be nil; the auth service then reports itself
// unavailable instead of failing.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = catalog.NewStore(cfg.Catalog.DataDir)
	deps.CatalogService = appServices.NewCatalogService(deps.Store)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	var userRepo *appRepos.UserRepository
	var googleClient *googleauth.Client
	if dbPool != nil && cfg.GoogleOAuthConfigured() {
		userRepo = appRepos.NewUserRepository(dbPool)
		googleClient = googleauth.NewClient(googleauth.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		})
	}
	deps.AuthService = appServices.NewAuthService(userRepo, googleClient, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CategoryController = appControllers.NewCategoryController(deps.CatalogService)
	deps.CourseController = appControllers.NewCourseController(deps.CatalogService)
	deps.TeacherController = appControllers.NewTeacherController(deps.CatalogService)
	deps.BlogController = appControllers.NewBlogController(deps.CatalogService)
	deps.SiteController = appControllers.NewSiteController(deps.CatalogService)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.Use(appMiddleware.CORS(cfg.Site.BaseURL))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.CategoryController,
		deps.CourseController,
		deps.TeacherController,
		deps.BlogController,
		deps.SiteController,
		deps.AuthController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
