package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "kitchen-voice-assistant/internal/assistant/delivery/http"
	"kitchen-voice-assistant/internal/middleware"
	"kitchen-voice-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Assistant domain
	assistantHandler assistantHTTP.Handler
	middleware       middleware.Middleware

	// Executor channel
	wsHandler interface {
		HandleWS(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AssistantHandler assistantHTTP.Handler
	Middleware       middleware.Middleware

	WSHandler interface {
		HandleWS(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		assistantHandler: cfg.AssistantHandler,
		middleware:       cfg.Middleware,
		wsHandler:        cfg.WSHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
