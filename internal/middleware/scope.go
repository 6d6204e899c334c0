package middleware

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/model"
)

// scopeKey is the gin context key the Auth middleware stores the scope under.
const scopeKey = "auth_scope"

// GetScope extracts the authenticated scope from the gin context.
// Returns ok=false when no Auth middleware ran on the route.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, exists := c.Get(scopeKey)
	if !exists {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func setScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}
