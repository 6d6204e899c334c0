package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
)

// RegisterRoutes maps the client event beacon route.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/analytics")
	{
		events.POST("/events", mw.Auth(), mw.BetaGate(), h.TrackEvent)
	}
}

// RegisterAdminRoutes maps the admin summary route.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	admin := rg.Group("/analytics")
	{
		admin.GET("/summary", mw.AdminKey(), h.Summary)
	}
}
