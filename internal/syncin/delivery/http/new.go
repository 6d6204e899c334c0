package http

import (
	"github.com/gin-gonic/gin"

	"relationship-os/config"
	"relationship-os/internal/syncin"
	"relationship-os/pkg/log"
)

// Handler is the public interface for the sync ingestion HTTP delivery layer.
type Handler interface {
	Push(c *gin.Context)
	Transcribe(c *gin.Context)
	ListBatches(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        syncin.UseCase
	cfg       config.SyncConfig
	validator *syncin.SecurityValidator
}

// New creates a new HTTP handler for the sync ingestion domain.
func New(l log.Logger, uc syncin.UseCase, cfg config.SyncConfig) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
		validator: syncin.NewSecurityValidator(syncin.SecurityConfig{
			Secret:          cfg.Secret,
			AllowedIPs:      cfg.AllowedIPs,
			RateLimitPerMin: cfg.RateLimitPerMin,
		}),
	}
}
