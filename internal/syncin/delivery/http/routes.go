package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sync := rg.Group("/sync")
	{
		sync.POST("/push", mw.Auth(), mw.BetaGate(), h.Push)
		sync.POST("/transcribe", mw.Auth(), mw.BetaGate(), h.Transcribe)
	}
}

// RegisterAdminRoutes maps the admin-only batch audit endpoint.
func RegisterAdminRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sync := rg.Group("/sync")
	{
		sync.GET("/batches", mw.AdminKey(), h.ListBatches)
	}
}
