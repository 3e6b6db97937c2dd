// Package server exposes the latest scan and pulse reports over HTTP. Thin
// JSON plumbing only; every number it serves was computed elsewhere.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"VortexEdge/internal/model"
)

// ReportSource supplies the most recent scan and pulse snapshots. Nil means
// no pass has completed yet.
type ReportSource interface {
	LatestScan() *model.ScanReport
	LatestPulse() *model.PulseReport
}

// Server is the HTTP API.
type Server struct {
	source ReportSource
	http   *http.Server
}

// New builds the router and the underlying http.Server.
func New(addr string, source ReportSource) *Server {
	s := &Server{source: source}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Get("/api/scanner", s.handleScanner)
	r.Get("/api/market-pulse", s.handlePulse)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.http.Addr).Msg("http server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleScanner(w http.ResponseWriter, r *http.Request) {
	report := s.source.LatestScan()
	if report == nil {
		writeError(w, http.StatusServiceUnavailable, "no scan completed yet")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePulse(w http.ResponseWriter, r *http.Request) {
	report := s.source.LatestPulse()
	if report == nil {
		writeError(w, http.StatusServiceUnavailable, "no pulse snapshot yet")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger logs each request with zerolog instead of chi's stdlib
// logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("http request")
	})
}
