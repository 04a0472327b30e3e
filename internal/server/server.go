// Package server serves the ledger over HTTP: a dashboard page, a JSON API
// and a websocket feed of ledger snapshots.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server is the web front end over a Ledger.
type Server struct {
	ledger  *ledger.Ledger
	cfg     config.ServerConfig
	logger  *zap.Logger
	limiter *RateLimiter
	hub     *hub
	handler http.Handler

	server    *http.Server
	closeOnce sync.Once
}

// NewServer wires routes and middleware and starts the websocket hub.
// Call Close (or let Start return) to release its goroutines.
func NewServer(l *ledger.Ledger, cfg config.ServerConfig, logger *zap.Logger) *Server {
	logger = logging.OrNop(logger).Named("server")

	s := &Server{
		ledger:  l,
		cfg:     cfg,
		logger:  logger,
		limiter: NewRateLimiter(cfg.RateLimit, cfg.Burst),
	}
	s.hub = newHub(l, logger)
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.hub.handleWS)

	mux.HandleFunc("GET /api/records", s.handleRecords)
	mux.HandleFunc("GET /api/efficiency", s.handleEfficiency)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/monthly", s.handleMonthly)

	mux.Handle("POST /api/add_record", withRateLimit(s.limiter, http.HandlerFunc(s.handleAddRecord)))
	mux.Handle("DELETE /api/delete_record/{index}", withRateLimit(s.limiter, http.HandlerFunc(s.handleDeleteRecord)))

	return withRequestID(withAccessLog(s.logger, mux))
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves on the configured address until ctx is cancelled, then shuts
// down gracefully. It returns nil on a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	defer s.Close()

	s.server = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		s.hub.close()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

// Close stops the websocket hub and the rate limiter.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		s.hub.close()
		s.limiter.Close()
	})
}
