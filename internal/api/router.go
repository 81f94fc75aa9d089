package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fedhealth/dashboard-api/internal/api/handler"
	"github.com/fedhealth/dashboard-api/internal/core/service"
	mongodb "github.com/fedhealth/dashboard-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("fedhealth"))

	// --- Dependencies ---
	hospitalRepo := mongodb.NewHospitalRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	metricRepo := mongodb.NewMetricRepository(db)

	dashboardService := service.NewDashboardService(hospitalRepo, metricRepo, logger)
	hospitalService := service.NewHospitalService(hospitalRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler(hospitalRepo)

	// --- Probes & observability ---
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/dashboard/metrics", dashboardHandler.Metrics)
	apiGroup.GET("/dashboard/performance-history", dashboardHandler.History)
	apiGroup.GET("/dashboard/hospital-participation", dashboardHandler.Participation)
	apiGroup.GET("/hospitals", hospitalHandler.List)
	apiGroup.POST("/hospitals", hospitalHandler.Register)
	apiGroup.POST("/users", userHandler.Upsert)

	return e
}
