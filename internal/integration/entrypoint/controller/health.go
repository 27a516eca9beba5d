// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    HealthChecker
	redisHealthChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Settings  string `json:"settings"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker, redisHealthChecker HealthChecker) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		redisHealthChecker: redisHealthChecker,
	}
}

// Check handles GET /health requests.
// The status is "degraded" when the donation store is unreachable, since no report can be produced.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  connectionStatus(h.dbHealthChecker),
		Settings:  connectionStatus(h.redisHealthChecker),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if response.Database != "connected" {
		response.Status = "degraded"
	}

	c.JSON(http.StatusOK, response)
}

func connectionStatus(check HealthChecker) string {
	if check != nil && check() {
		return "connected"
	}
	return "disconnected"
}
