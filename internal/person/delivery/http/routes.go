package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	persons := rg.Group("/persons")
	{
		persons.POST("", mw.Auth(), mw.BetaGate(), h.Create)
		persons.GET("", mw.Auth(), mw.BetaGate(), h.List)
		persons.GET("/search", mw.Auth(), mw.BetaGate(), h.Search)
		persons.GET("/:id", mw.Auth(), mw.BetaGate(), h.Detail)
		persons.PUT("/:id", mw.Auth(), mw.BetaGate(), h.Update)
		persons.DELETE("/:id", mw.Auth(), mw.BetaGate(), h.Delete)
	}

	// Lookup alias for sync agents resolving contacts before a push.
	rg.GET("/sync/person", mw.Auth(), mw.BetaGate(), h.Search)
}
