package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"relationship-os/config"
	"relationship-os/internal/beta"
	"relationship-os/pkg/log"
)

// betaCacheSize bounds the whitelist decision cache.
const betaCacheSize = 1000

type Middleware struct {
	l        log.Logger
	config   *config.Config
	adminKey string

	betaUC beta.UseCase
	// betaCache memoizes whitelist decisions per email so the gate does not
	// hit the database on every request.
	betaCache *expirable.LRU[string, bool]
}

func New(l log.Logger, cfg *config.Config, betaUC beta.UseCase) Middleware {
	ttl, err := time.ParseDuration(cfg.Beta.CacheTTL)
	if err != nil || ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return Middleware{
		l:         l,
		config:    cfg,
		adminKey:  cfg.Admin.APIKey,
		betaUC:    betaUC,
		betaCache: expirable.NewLRU[string, bool](betaCacheSize, nil, ttl),
	}
}
