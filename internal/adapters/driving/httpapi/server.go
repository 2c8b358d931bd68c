// Package httpapi provides the HTTP interface for IntelliDoc.
// Sessions are cookie-based: the first request receives a temporary
// user and every document is scoped to that user.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driving"
	"github.com/intellidoc-labs/intellidoc/internal/logger"
)

// Default server configuration.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8080

	readTimeout     = 15 * time.Second
	writeTimeout    = 5 * time.Minute // summarisation can take a while
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 5 * time.Second

	// maxUploadBytes caps multipart uploads at 32 MiB.
	maxUploadBytes = 32 << 20
)

// Config holds server configuration.
type Config struct {
	// Host is the listen address (default: 127.0.0.1).
	Host string

	// Port is the listen port (default: 8080).
	Port int
}

// Server serves the IntelliDoc HTTP API.
type Server struct {
	router   *gin.Engine
	http     *http.Server
	sessions *sessionMiddleware

	documents driving.DocumentService
	summaries driving.SummaryService
	questions driving.QAService
}

// NewServer creates a new HTTP server over the given services.
func NewServer(
	cfg Config,
	documents driving.DocumentService,
	summaries driving.SummaryService,
	questions driving.QAService,
	sessions driving.SessionService,
) *Server {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = maxUploadBytes

	s := &Server{
		router:    router,
		sessions:  &sessionMiddleware{service: sessions},
		documents: documents,
		summaries: summaries,
		questions: questions,
	}
	s.registerRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s
}

// registerRoutes wires the API surface.
func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api", s.sessions.Handle())
	{
		api.POST("/documents", s.handleUpload)
		api.GET("/documents", s.handleList)
		api.GET("/documents/:id", s.handleGet)
		api.DELETE("/documents/:id", s.handleDelete)
		api.POST("/documents/:id/summary", s.handleSummarise)
		api.POST("/documents/:id/questions", s.handleAsk)
		api.GET("/documents/:id/questions", s.handleHistory)
	}
}

// Handler returns the underlying HTTP handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

// Run starts the server and blocks until the context is cancelled or
// the listener fails. Shutdown is graceful within shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
