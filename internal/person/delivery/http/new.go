package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/internal/person"
	"relationship-os/pkg/log"
)

// Handler is the public interface for the person HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Search(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc person.UseCase
}

// New creates a new HTTP handler for the person domain.
func New(l log.Logger, uc person.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
