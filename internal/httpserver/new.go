package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	appConfig "relationship-os/config"
	"relationship-os/internal/dateinfer"
	"relationship-os/pkg/datemath"
	"relationship-os/pkg/gcalendar"
	"relationship-os/pkg/llmprovider"
	"relationship-os/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	cfg        *appConfig.Config
	postgresDB *sql.DB

	// Shared services, wired into domains in mapHandlers. llm, inferrer and
	// calendar may be nil when not configured.
	llm      *llmprovider.Manager
	inferrer *dateinfer.Engine
	dateMath *datemath.Parser
	calendar *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AppConfig  *appConfig.Config
	PostgresDB *sql.DB

	LLM      *llmprovider.Manager
	Inferrer *dateinfer.Engine
	DateMath *datemath.Parser
	Calendar *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		postgresDB:  cfg.PostgresDB,
		llm:         cfg.LLM,
		inferrer:    cfg.Inferrer,
		dateMath:    cfg.DateMath,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
