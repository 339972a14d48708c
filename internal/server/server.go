// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/resumelab/resume-analyzer/internal/config"
	"github.com/resumelab/resume-analyzer/internal/db"
	"github.com/resumelab/resume-analyzer/internal/fetch"
	"github.com/resumelab/resume-analyzer/internal/server/middleware"
	"github.com/resumelab/resume-analyzer/internal/server/ratelimit"
	"github.com/resumelab/resume-analyzer/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB satisfies it;
// tests substitute an in-memory fake.
type Store interface {
	SaveResume(ctx context.Context, userID uuid.UUID, fileName, fileType, originalText string, profile *types.CandidateProfile) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	ListResumes(ctx context.Context, filters db.ResumeFilters) ([]db.ResumeSummary, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

// JobFetcher retrieves a job description's text from a URL.
type JobFetcher interface {
	FetchJobDescription(ctx context.Context, url string) (string, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	store          Store
	database       *db.DB
	fetcher        JobFetcher
	rateLimiter    *ratelimit.Limiter
	jwtService     *JWTService
	userService    *UserService
	authHandler    *AuthHandler
	maxUploadBytes int64
}

// Config holds server configuration
type Config struct {
	Addr           string
	DatabaseURL    string
	MaxUploadBytes int64
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database and ensure schema
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = config.DefaultMaxUploadBytes
	}

	s := &Server{
		store:          database,
		database:       database,
		fetcher:        fetch.NewClient(nil),
		maxUploadBytes: maxUpload,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux. Resume routes require a valid bearer token;
// auth and health routes are open.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	api := http.NewServeMux()
	api.HandleFunc("POST /api/resumes/upload", s.handleUploadResume)
	api.HandleFunc("GET /api/resumes", s.handleListResumes)
	api.HandleFunc("GET /api/resumes/{id}", s.handleGetResume)
	api.HandleFunc("DELETE /api/resumes/{id}", s.handleDeleteResume)
	api.HandleFunc("POST /api/resumes/{id}/ats-analysis", s.handleATSAnalysis)
	api.HandleFunc("POST /api/resumes/{id}/match", s.handleSkillMatch)
	api.HandleFunc("PUT /auth/password", s.handleUpdatePassword)

	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(api)
	mux.Handle("/api/", authed)
	mux.Handle("PUT /auth/password", authed)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword handles password update requests for the
// authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; behind a trusted proxy,
// X-Forwarded-For handling would go here.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
