package api

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/acme/user-directory/internal/api/handler"
	"github.com/acme/user-directory/internal/api/middleware"
	"github.com/acme/user-directory/internal/core/ports"
	"github.com/acme/user-directory/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The repository is injected so tests (and a future persistent store) can
// swap it without touching the wiring.
func NewRouter(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, clock clockwork.Clock, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userdir"))

	// --- Dependencies ---
	authService := service.NewAuthService(repo, jwtSecret, tokenTTL, clock, log)
	userService := service.NewUserService(repo, clock, log)
	authHandler := handler.NewAuthHandler(authService, log)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(jwtSecret, clock)

	// --- Unprotected routes ---
	e.GET("/", handler.NewHealthHandler().Root)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout, authMiddleware)

	users := apiGroup.Group("/users", authMiddleware)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}
