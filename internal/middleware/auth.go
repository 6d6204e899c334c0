package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"relationship-os/internal/model"
	"relationship-os/pkg/response"
)

// Identity headers set by the fronting auth layer. Session handling lives
// outside this service.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderAdminKey  = "X-Admin-Key"
)

// Auth requires an authenticated identity and stores the scope on the context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		setScope(c, model.Scope{
			UserID: userID,
			Email:  c.GetHeader(HeaderUserEmail),
			Role:   model.RoleUser,
		})
		c.Next()
	}
}

// BetaGate rejects users whose email is not on the beta whitelist. A no-op
// when the beta gate is disabled in config. Decisions are cached with a TTL.
func (m Middleware) BetaGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.config.Beta.Enabled {
			c.Next()
			return
		}

		sc, ok := GetScope(c)
		if !ok || sc.Email == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		allowed, cached := m.betaCache.Get(sc.Email)
		if !cached {
			var err error
			allowed, err = m.betaUC.Check(c.Request.Context(), sc.Email)
			if err != nil {
				m.l.Errorf(c.Request.Context(), "middleware.BetaGate check: %v", err)
				// Fail closed: an unverifiable email does not pass the gate.
				allowed = false
			} else {
				m.betaCache.Add(sc.Email, allowed)
			}
		}

		if !allowed {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminKey requires the configured admin key header and stores an admin scope.
// The comparison is constant time so response timing leaks nothing about the key.
func (m Middleware) AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if m.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		setScope(c, model.Scope{
			UserID: c.GetHeader(HeaderUserID),
			Email:  c.GetHeader(HeaderUserEmail),
			Role:   model.RoleAdmin,
		})
		c.Next()
	}
}
