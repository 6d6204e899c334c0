package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/beta"
	"relationship-os/pkg/log"
)

// Handler is the public interface for the beta HTTP delivery layer.
type Handler interface {
	Add(c *gin.Context)
	List(c *gin.Context)
	Remove(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc beta.UseCase
}

// New creates a new HTTP handler for the beta domain.
func New(l log.Logger, uc beta.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
