package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cleanmatch/marketplace-api/internal/api/handler"
	"github.com/cleanmatch/marketplace-api/internal/api/middleware"
	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/service"
	"github.com/cleanmatch/marketplace-api/internal/infrastructure/config"
	"github.com/cleanmatch/marketplace-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/cleanmatch/marketplace-api/internal/infrastructure/db/redis"
	"github.com/cleanmatch/marketplace-api/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	offerRepo := postgres.NewOfferRepository(db)
	tokenVersions := redisinfra.NewTokenVersions(rdb)
	directoryCache := redisinfra.NewDirectoryCache(rdb)
	mailer := notify.NewMailer(cfg.Mail.SendgridAPIKey, cfg.Mail.From, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, tokenVersions, mailer, log)
	profileService := service.NewProfileService(userRepo, log)
	offerService := service.NewOfferService(offerRepo, userRepo, log)
	directoryService := service.NewDirectoryService(userRepo, directoryCache, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	offerHandler := handler.NewOfferHandler(offerService)
	directoryHandler := handler.NewDirectoryHandler(directoryService)

	authRequired := middleware.Auth(tokenService, tokenVersions, log)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- Profile routes ---
	e.GET("/profile/me", profileHandler.Me, authRequired)
	e.POST("/profile/cleaner", profileHandler.UpdateCleaner, authRequired, middleware.RequireRole(domain.RoleCleaner))
	e.POST("/profile/customer", profileHandler.UpdateCustomer, authRequired, middleware.RequireRole(domain.RoleCustomer))

	// --- Offer routes (listings are public) ---
	e.POST("/offers", offerHandler.Create, authRequired, middleware.RequireRole(domain.RoleCustomer))
	e.GET("/offers/for-cleaner/:cleanerId", offerHandler.ListForCleaner)
	e.GET("/offers/by-customer/:customerId", offerHandler.ListByCustomer)

	// --- Public directory ---
	e.GET("/cleaners", directoryHandler.Cleaners)
	e.GET("/customers", directoryHandler.Customers)
	e.GET("/users/grouped", directoryHandler.Grouped)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
