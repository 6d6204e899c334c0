package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/interaction"
	"relationship-os/pkg/log"
)

// Handler is the public interface for the interaction HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	UpdateFord(c *gin.Context)
	Delete(c *gin.Context)
	SuggestFollowUp(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc interaction.UseCase
}

// New creates a new HTTP handler for the interaction domain.
func New(l log.Logger, uc interaction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
