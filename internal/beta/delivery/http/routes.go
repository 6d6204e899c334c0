package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
)

// RegisterRoutes maps admin whitelist routes. All routes require the admin key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	entries := rg.Group("/beta")
	{
		entries.POST("", mw.AdminKey(), h.Add)
		entries.GET("", mw.AdminKey(), h.List)
		entries.DELETE("/:email", mw.AdminKey(), h.Remove)
	}
}
