// Package server exposes the calculators as a JSON HTTP API.
//
// Routes:
//
//	GET  /health
//	POST /v1/lp          production optimization
//	POST /v1/eoq         economic order quantity
//	POST /v1/mm1         M/M/1 queue
//	POST /v1/breakeven   break-even point
//	GET  <metrics path>  Prometheus metrics
//
// Handlers share no mutable state; every request builds and discards its
// own problem.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/indumath/indumath/internal/config"
)

const requestIDHeader = "X-Request-ID"

// Server wires the handlers into a gin engine.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	router *gin.Engine
}

// New builds a server. A nil logger falls back to slog.Default().
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())
	r.GET("/health", s.handleHealth)
	r.GET(cfg.Server.MetricsPath, gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	RegisterRoutes(v1, NewHandlers(cfg, logger))

	s.router = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server: listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("server: shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// requestID tags each request with an id, reusing the caller's if present.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("server: request",
			slog.String("request_id", c.GetString("request_id")),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}
