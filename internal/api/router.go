package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/booklore/booklore/internal/api/handler"
	"github.com/booklore/booklore/internal/api/middleware"
	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
	"github.com/booklore/booklore/internal/core/service"
	mongodb "github.com/booklore/booklore/internal/infrastructure/db/mongo"
	redisdb "github.com/booklore/booklore/internal/infrastructure/db/redis"
	"github.com/booklore/booklore/internal/infrastructure/security"
	"github.com/booklore/booklore/internal/infrastructure/token"
	"github.com/booklore/booklore/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The profiles port is passed in by the caller, which owns the lifecycle of
// the async dispatcher behind it.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	profiles ports.ProfileRepository,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booklore"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := token.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxLoginAttempts, cfg.Throttle.LoginWindow)

	registration := service.NewRegistrationService(users, profiles, hasher, log)
	auth := service.NewAuthService(users, hasher, tokens)
	refresh := service.NewTokenRefreshService(users, tokens)
	accounts := service.NewAccountService(users, log)

	authHandler := handler.NewAuthHandler(registration, auth, refresh, throttle, log)
	accountHandler := handler.NewAccountHandler(accounts)
	requireAuth := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)

	// --- Authenticated routes ---
	e.GET("/me", accountHandler.Me, requireAuth)

	admin := e.Group("/admin", requireAuth, middleware.RBAC(domain.RoleAdmin))
	admin.PATCH("/users/:id/enabled", accountHandler.SetEnabled)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
