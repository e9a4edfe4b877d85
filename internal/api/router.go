package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/factoryops/user-admin-api/internal/api/handler"
	"github.com/factoryops/user-admin-api/internal/api/middleware"
	"github.com/factoryops/user-admin-api/internal/core/domain"
	"github.com/factoryops/user-admin-api/internal/core/service"
	mongostore "github.com/factoryops/user-admin-api/internal/infrastructure/db/mongo"
	redisstore "github.com/factoryops/user-admin-api/internal/infrastructure/db/redis"
	"github.com/factoryops/user-admin-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. Store
// clients are constructed once in main and injected here; nothing is
// re-initialised per request.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("useradmin"))

	// --- Dependencies ---
	identityRepo := mongostore.NewIdentityRepository(db)
	profileRepo := mongostore.NewProfileRepository(db)
	tokenStore := redisstore.NewResetTokenStore(rdb)

	identityService := service.NewIdentityService(identityRepo, tokenStore, cfg.PublicBaseURL, log)
	roleService := service.NewRoleAssigner(identityService, profileRepo, log)
	userService := service.NewUserProvisioner(identityService, profileRepo, log)
	tokenService := service.NewTokenService(identityService, cfg.JWTSecret, 24*time.Hour)

	roleHandler := handler.NewRoleHandler(roleService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(tokenService, identityService)

	// --- Public routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/password/reset", authHandler.ResetPassword)

	// --- Admin operations ---
	admin := e.Group("/v1", middleware.Auth(cfg.JWTSecret))
	admin.POST("/roles/assign", roleHandler.Assign, middleware.RequireAnyClaim(domain.RoleAdmin))
	admin.POST("/users/provision", userHandler.Provision, middleware.RequireAnyClaim(domain.RoleAdmin, domain.RoleOwner))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
