// Package server provides the HTTP API for the skill gap analyzer.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jonathan/skillgap-analyzer/internal/ats"
	"github.com/jonathan/skillgap-analyzer/internal/config"
	"github.com/jonathan/skillgap-analyzer/internal/db"
	"github.com/jonathan/skillgap-analyzer/internal/pipeline"
	"github.com/jonathan/skillgap-analyzer/internal/server/middleware"
	"github.com/jonathan/skillgap-analyzer/internal/server/ratelimit"
	"github.com/jonathan/skillgap-analyzer/internal/vocabulary"
)

// Config holds the server configuration.
type Config struct {
	Addr     string
	Pipeline *pipeline.Pipeline
	Vocab    *vocabulary.Vocabulary

	// Database is optional; without it the history endpoints return 503.
	Database *db.DB

	JWT    *config.JWTConfig
	APIKey *config.APIKeyConfig

	// RateLimit is optional; nil falls back to environment configuration.
	RateLimit *ratelimit.Config
}

// Server is the HTTP server for the analyzer API.
type Server struct {
	addr        string
	pipeline    *pipeline.Pipeline
	scorer      *ats.Scorer
	vocab       *vocabulary.Vocabulary
	database    *db.DB
	jwtService  *JWTService
	apiKeys     *config.APIKeyConfig
	rateLimiter *ratelimit.Limiter
	httpServer  *http.Server
}

// New creates a server from the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Pipeline == nil {
		return nil, errors.New("pipeline is required")
	}
	if cfg.Vocab == nil {
		return nil, errors.New("vocabulary is required")
	}
	if cfg.APIKey == nil {
		return nil, errors.New("API key configuration is required")
	}

	jwtService, err := NewJWTService(cfg.JWT)
	if err != nil {
		return nil, err
	}

	rateLimitConfig := cfg.RateLimit
	if rateLimitConfig == nil {
		rateLimitConfig = ratelimit.LoadConfig()
	}

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		addr:        addr,
		pipeline:    cfg.Pipeline,
		scorer:      ats.NewScorer(),
		vocab:       cfg.Vocab,
		database:    cfg.Database,
		jwtService:  jwtService,
		apiKeys:     cfg.APIKey,
		rateLimiter: ratelimit.NewLimiter(rateLimitConfig),
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler builds the full middleware-wrapped route handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/token", s.handleToken)

	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("POST /v1/analyze", authed(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("POST /v1/ats", authed(http.HandlerFunc(s.handleATS)))
	mux.Handle("GET /v1/analyses", authed(http.HandlerFunc(s.handleListAnalyses)))
	mux.Handle("GET /v1/analyses/{id}", authed(http.HandlerFunc(s.handleGetAnalysis)))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Printf("Server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.database != nil {
		status["history"] = "enabled"
	} else {
		status["history"] = "disabled"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// withCORS adds permissive CORS headers and answers preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit enforces per-client token bucket limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID identifies the client by IP, honoring X-Forwarded-For
// from a fronting proxy.
func extractClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
