package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	interactions := rg.Group("/interactions")
	{
		interactions.POST("", mw.Auth(), mw.BetaGate(), h.Create)
		interactions.GET("", mw.Auth(), mw.BetaGate(), h.List)
		interactions.GET("/:id", mw.Auth(), mw.BetaGate(), h.Detail)
		interactions.PUT("/:id", mw.Auth(), mw.BetaGate(), h.UpdateFord)
		interactions.DELETE("/:id", mw.Auth(), mw.BetaGate(), h.Delete)
		interactions.POST("/:id/follow-up", mw.Auth(), mw.BetaGate(), h.SuggestFollowUp)
	}
}
