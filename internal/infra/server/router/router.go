// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/controller"
	"github.com/alumni-portal/backoffice/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	donationController *controller.DonationController
	reportController   *controller.ReportController
	settingsController *controller.SettingsController
	exportRateLimiter  *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	donationController *controller.DonationController,
	reportController *controller.ReportController,
	settingsController *controller.SettingsController,
	exportRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		donationController: donationController,
		reportController:   reportController,
		settingsController: settingsController,
		exportRateLimiter:  exportRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	donations := v1.Group("/donations")
	{
		donations.GET("", r.donationController.List)
		donations.POST("", r.donationController.Create)
		donations.POST("/archive/resync", r.donationController.ResyncArchive)
		donations.GET("/:id", r.donationController.Get)
		donations.PATCH("/:id", r.donationController.Update)
		donations.DELETE("/:id", r.donationController.Delete)
		donations.PATCH("/:id/visibility", r.donationController.ToggleVisibility)
	}

	reports := v1.Group("/reports/donations")
	{
		reports.GET("", r.reportController.Generate)

		// Export routes are rate limited per client IP
		exports := reports.Group("")
		exports.Use(r.exportRateLimiter.Middleware())
		{
			exports.GET("/export/detailed", r.reportController.ExportDetailed)
			exports.GET("/export/summary", r.reportController.ExportSummary)
			exports.GET("/export/document", r.reportController.ExportDocument)
			exports.POST("/email", r.reportController.Email)
		}
	}

	settings := v1.Group("/settings")
	{
		settings.GET("/signatory", r.settingsController.GetSignatory)
		settings.PUT("/signatory", r.settingsController.UpdateSignatory)
	}
}
