package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/staffdir/employee-directory/docs"
	"github.com/staffdir/employee-directory/internal/api/handler"
	"github.com/staffdir/employee-directory/internal/api/middleware"
	"github.com/staffdir/employee-directory/internal/core/domain"
	"github.com/staffdir/employee-directory/internal/core/ports"
	"github.com/staffdir/employee-directory/internal/core/service"
)

// Deps carries the wired dependencies the router needs.
type Deps struct {
	Sessions  ports.SessionService
	Directory ports.DirectoryService
	Redis     *redis.Client // nil when session storage is in-memory
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("directory"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Sessions)
	employeeHandler := handler.NewEmployeeHandler(d.Directory)
	policy := service.NewAccessPolicy(d.Sessions)
	authRequired := middleware.Auth(d.Sessions)

	anyRole := middleware.RBAC(policy, domain.RoleAdmin, domain.RoleManager, domain.RoleUser)
	editors := middleware.RBAC(policy, domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RBAC(policy, domain.RoleAdmin)

	// --- Auth routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/auth/me", authHandler.Me, authRequired)

	// --- Employee routes ---
	// Read access for every role; create/update restricted to admins and
	// managers; delete to admins, mirroring the app's route guards.
	employees := v1.Group("/employees", authRequired)
	employees.GET("", employeeHandler.List, anyRole)
	employees.GET("/:id", employeeHandler.GetByID, anyRole)
	employees.POST("", employeeHandler.Create, editors)
	employees.PATCH("/:id", employeeHandler.Update, editors)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
