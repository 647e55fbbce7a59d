package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"todo-user-service/internal/config"
)

// Server wraps the HTTP server that exposes the API
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance serving handler on the configured port
func New(cfg *config.Config, l *zap.Logger, handler http.Handler) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   NewHTTPServer(handler, ":"+cfg.App.Port),
	}
}

// Start listens and serves until the server is shut down. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	s.Logger.Info("HTTP server listening", zap.String("address", s.HTTP.Addr))

	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}

// NewHTTPServer applies the server timeouts to handler
func NewHTTPServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// WithSignal returns a copy of ctx that is done on SIGINT or SIGTERM.
// Call stop to restore default signal handling.
func WithSignal(ctx context.Context) (_ context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}
