package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/analytics"
	"relationship-os/pkg/log"
)

// Handler is the public interface for the analytics HTTP delivery layer.
type Handler interface {
	TrackEvent(c *gin.Context)
	Summary(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New creates a new HTTP handler for the analytics domain.
func New(l log.Logger, uc analytics.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
