package router

import (
	"github.com/anonto42/tweetbox/backend/internal/handlers"
	"github.com/anonto42/tweetbox/backend/internal/metrics"
	"github.com/anonto42/tweetbox/backend/internal/middleware"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/validators"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New builds the echo instance with middleware, validator, error handler and
// every route wired to pgdb
func New(pgdb *gorm.DB, log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler(log)

	SetupMiddleware(e, log)
	SetupRoutes(e, pgdb, log)
	return e
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, log *zap.Logger) {
	// metrics wraps Recover so panicking requests are counted as 500s
	e.Use(metrics.Middleware())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				log.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	}))
	e.Use(eMiddleware.CORS())
	log.Debug("Global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, log *zap.Logger) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	tweetRepo := repositories.NewPostgresTweetRepository(pgdb)
	mediaRepo := repositories.NewPostgresMediaRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)

	mediaHandler := handlers.NewMediaHandler(mediaRepo)

	// --- Public routes ---
	public := e.Group("/api")
	mediaHandler.RegisterPublicMediaRoutes(public)

	// --- Protected routes (require api-key) ---
	api := e.Group("/api", middleware.APIKeyAuthMiddleware(userRepo))

	mediaHandler.RegisterMediaRoutes(api)

	tweetHandler := handlers.NewTweetHandler(tweetRepo, mediaRepo, log)
	tweetHandler.RegisterTweetRoutes(api)

	feedHandler := handlers.NewFeedHandler(tweetRepo, mediaRepo, likeRepo)
	feedHandler.RegisterFeedRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, tweetRepo)
	likeHandler.RegisterLikeRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(api)

	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	userHandler.RegisterProfileRoutes(api)

	log.Debug("All routes configured")
}
