package httpserver

import (
	"github.com/gin-gonic/gin"

	"relationship-os/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Relationship OS API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "relationship-os"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports readiness. The database must be reachable before the
// server can serve traffic.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.postgresDB.PingContext(c.Request.Context()); err != nil {
		srv.l.Errorf(c.Request.Context(), "httpserver.readyCheck ping: %v", err)
		c.JSON(503, gin.H{
			"status":  "not ready",
			"service": ServiceName,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
