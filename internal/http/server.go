// Package http provides the HTTP server for the mock Responses API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yungtweek/responses-mock/internal/logger"
)

// Server wraps an http.Server and its listen address.
//
// It is intentionally small/simple because this project is a benchmark/mock
// tool, not a production service framework.
type Server struct {
	addr       string
	httpServer *http.Server
}

// NewServer creates the HTTP server for the mock Responses API at the given
// address. Example addr: "0.0.0.0:8000".
func NewServer(addr string, svc *MockResponsesService) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/responses", svc.CreateResponse)
	mux.HandleFunc("GET /v1/models", svc.ListModels)
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Middleware chain: outermost listed first.
	handler := Chain(mux,
		RecoveryMiddleware,
		RequestIDMiddleware,
		LoggingMiddleware([]string{"/healthz", "/metrics"}),
	)

	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:        addr,
			Handler:     handler,
			ReadTimeout: 15 * time.Second,
			// No WriteTimeout: simulated latency has no fixed upper bound.
			IdleTimeout: 60 * time.Second,
		},
	}
}

// Run starts listening on the configured address and serves until Shutdown.
// This call blocks until the server stops or returns an error.
func (s *Server) Run() error {
	logger.Log.Infow("[http] starting server", "addr", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Errorw("[http] server stopped with error", "err", err)
		return err
	}

	logger.Log.Info("[http] server stopped gracefully")
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Log.Infow("[http] graceful shutdown", "addr", s.addr)
	return s.httpServer.Shutdown(ctx)
}

// handleHealthz is a liveness probe -- returns 200 if the process is running.
func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
