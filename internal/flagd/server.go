package flagd

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tanklash/flagwire/internal/config"
	"github.com/tanklash/flagwire/internal/flags"
	"github.com/tanklash/flagwire/internal/observability"
)

// ServiceConfig configures one flagd diagnostic server.
type ServiceConfig struct {
	Addr        string
	CorsOrigins []string
	// FlagFile optionally points at a TOML file of custom flag type
	// definitions registered at startup.
	FlagFile string
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Addr: ":9030",
	}
}

// Server exposes a read-only HTTP view of one flag registry. The
// registry itself assumes a single writer, so the server takes the
// writer role at startup and guards later reads with its own lock, as
// the registry contract requires of callers.
type Server struct {
	mu       sync.RWMutex
	registry *flags.Registry

	addr    string
	router  *gin.Engine
	started time.Time
	logger  zerolog.Logger
}

// NewServer builds the registry, loads custom definitions when
// configured, and wires routes.
func NewServer(cfg ServiceConfig, logger zerolog.Logger) (*Server, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("flagd: listen addr is required")
	}

	registry := flags.NewRegistry()
	if cfg.FlagFile != "" {
		defs, err := config.LoadFlagTypes(cfg.FlagFile)
		if err != nil {
			return nil, err
		}
		for _, ft := range defs {
			if _, err := registry.RegisterCustom(ft); err != nil {
				return nil, fmt.Errorf("flagd: register %q: %w", ft.Abbrev, err)
			}
			logger.Info().Str("abbrev", ft.Abbrev).Str("name", ft.Name).Msg("custom flag type registered")
		}
		observability.SetCustomTypeCount(len(registry.CustomFlags()))
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.RequestMetricsMiddleware())
	if len(cfg.CorsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	s := &Server{
		registry: registry,
		addr:     addr,
		router:   router,
		started:  time.Now(),
		logger:   logger,
	}
	s.registerRoutes()
	return s, nil
}

// Run blocks serving HTTP on the configured address.
func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.addr).Msg("flagd listening")
	return s.router.Run(s.addr)
}

// Handler exposes the route tree for tests.
func (s *Server) Handler() *gin.Engine {
	return s.router
}
