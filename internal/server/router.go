// Package server assembles the HTTP router shared by cmd/api and tests.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"propcalc/internal/config"
	_ "propcalc/internal/docs" // Import swagger docs
	apperrors "propcalc/internal/errors"
	"propcalc/internal/handlers"
	"propcalc/internal/middleware"
	"propcalc/internal/ratelimit"
	"propcalc/internal/services"
	"propcalc/internal/validator"
)

// NewRouter builds the Gin engine with the middleware chain and all routes.
// Calculator routes and every live frame are throttled by limiter; health and
// docs are not. X-Forwarded-For is only honoured from cfg.TrustedProxies.
func NewRouter(cfg *config.Config, calculatorService services.CalculatorServicer, limiter ratelimit.Limiter) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
	liveHandler := handlers.NewLiveHandler(calculatorService, limiter, cfg.CORSAllowedOrigin)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", handlers.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/health", handlers.Health)

	calc := v1.Group("/calculator")
	calc.Use(middleware.RateLimit(limiter))
	calc.GET("/assumptions", calculatorHandler.GetAssumptions)
	calc.POST("/roi", calculatorHandler.CalculateROI)
	calc.POST("/roi/form", calculatorHandler.CalculateROIForm)
	calc.POST("/scenarios", calculatorHandler.CompareScenarios)
	calc.GET("/live", liveHandler.Serve)

	return router, nil
}
