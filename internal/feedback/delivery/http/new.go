package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/feedback"
	"relationship-os/pkg/log"
)

// Handler is the public interface for the feedback HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc feedback.UseCase
}

// New creates a new HTTP handler for the feedback domain.
func New(l log.Logger, uc feedback.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
