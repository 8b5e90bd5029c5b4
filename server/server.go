// Package server wraps a Gin engine in an HTTP server with graceful
// shutdown and the standard middleware stack.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mfrancor/characters-api/logger"
	"github.com/mfrancor/characters-api/server/middleware"
)

// Server is an HTTP server backed by Gin.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     Config
	log        *logger.Logger
}

// New creates a new Server. No middleware is applied yet; call
// ApplyMiddleware after construction.
func New(cfg Config, log *logger.Logger) *Server {
	// Set Gin mode based on global zerolog level.
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// h2c allows HTTP/2 cleartext clients on the same port.
	h2s := &http2.Server{IdleTimeout: 120 * time.Second}
	handler := h2c.NewHandler(engine, h2s)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		engine:     engine,
		config:     cfg,
		log:        log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// ApplyMiddleware applies the standard middleware stack: recovery,
// request-ID, CORS, and request logging.
func (s *Server) ApplyMiddleware() {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.CORS(s.config.CORS))
	s.engine.Use(middleware.RequestLogger())
}

// Start binds the port and begins serving. It returns once the listener is
// bound; serving continues in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
