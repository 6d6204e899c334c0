package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	fb := rg.Group("/feedback")
	{
		fb.POST("", mw.Auth(), mw.BetaGate(), h.Submit)
	}
}

// RegisterAdminRoutes maps the admin-only review endpoint.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	fb := rg.Group("/feedback")
	{
		fb.GET("", mw.AdminKey(), h.List)
	}
}
