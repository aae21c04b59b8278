package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/core-platform/launchpad/docs"
	"github.com/core-platform/launchpad/internal/api/handler"
	"github.com/core-platform/launchpad/internal/api/middleware"
	"github.com/core-platform/launchpad/internal/core/service"
	"github.com/core-platform/launchpad/internal/infrastructure/config"
	"github.com/core-platform/launchpad/internal/infrastructure/db/postgres"
	redisinfra "github.com/core-platform/launchpad/internal/infrastructure/db/redis"
	"github.com/core-platform/launchpad/internal/infrastructure/http/handlers"
	"github.com/core-platform/launchpad/internal/infrastructure/zoho"
)

// NewRouter builds the Echo instance with every route registered.
func NewRouter(cfg *config.Config, db *gorm.DB, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.IsDevelopment())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("launchpad"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	appRepo := postgres.NewAppRepository(db)
	auditRepo := postgres.NewAuditRepository(db)

	auditService := service.NewAuditService(auditRepo, log)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokenService, auditService, log)
	userService := service.NewUserAdminService(userRepo, auditService, log)
	appService := service.NewAppAdminService(appRepo, auditService, log)
	zohoClient := zoho.NewClient(cfg.Zoho.ServiceURL, cfg.Zoho.ForwardAuth, log)
	limiter := redisinfra.NewSlidingWindowLimiter(rdb)

	cookies := handler.CookieConfig{
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
		MaxAge: cfg.JWTExpiry,
	}

	authHandler := handler.NewAuthHandler(authService, cookies)
	userHandler := handler.NewUserHandler(userService)
	appHandler := handler.NewAppHandler(appService)
	auditHandler := handler.NewAuditHandler(auditService)
	metaHandler := handler.NewMetaHandler(cfg.AppVersion, cfg.AppBuild, cfg.AppCommit)
	zohoHandler := handler.NewZohoHandler(zohoClient)
	healthHandler := handlers.NewHealthHandler(db, zohoClient, log)

	session := middleware.Session(tokenService, userRepo)
	loginLimit := middleware.RateLimit(limiter, middleware.LoginScope, middleware.LoginLimit, middleware.LoginWindow, log)
	adminLimit := middleware.RateLimit(limiter, middleware.AdminScope, middleware.AdminLimit, middleware.AdminWindow, log)

	// --- Public routes ---
	e.GET("/api/health", healthHandler.Check)
	e.GET("/api/meta/version", metaHandler.Version)
	e.POST("/api/login", authHandler.Login, loginLimit)

	// --- Session routes ---
	authed := e.Group("/api", session)
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/me", authHandler.Me)
	authed.POST("/change-password", authHandler.ChangePassword)

	zohoGroup := authed.Group("/zoho")
	zohoGroup.GET("/leads", zohoHandler.Leads)
	zohoGroup.GET("/accounts", zohoHandler.Accounts)
	zohoGroup.POST("/create-lead", zohoHandler.CreateLead)

	// --- Admin routes ---
	admin := authed.Group("/admin", middleware.RequireAdmin(), adminLimit)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PATCH("/users/:id", userHandler.Update)
	admin.POST("/users/:id/password", userHandler.SetPassword)

	admin.GET("/apps", appHandler.List)
	admin.POST("/apps", appHandler.Create)
	admin.GET("/apps/:id", appHandler.Get)
	admin.PATCH("/apps/:id", appHandler.Update)
	admin.DELETE("/apps/:id", appHandler.Deactivate)

	admin.GET("/audit", auditHandler.List)

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
