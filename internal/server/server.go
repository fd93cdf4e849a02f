package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/suggest"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	sessions    *editor.Registry
	suggestions suggest.Source
	exporter    *rendering.Exporter
	validator   *validator.Validate
	llmClient   llm.Client
}

// Deps are the collaborators of a Server. Zero values get working defaults
// except Store, Passwords and JWT, which are required.
type Deps struct {
	Store       Store
	Passwords   *config.PasswordConfig
	JWT         *JWTService
	Limiter     *ratelimit.Limiter
	Sessions    *editor.Registry
	Suggestions suggest.Source
	Exporter    *rendering.Exporter
	LLM         llm.Client
}

// New connects to the database and builds a server from cfg.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	deps := Deps{
		Store:     database,
		Passwords: passwordConfig,
		JWT:       NewJWTService(jwtConfig),
		Limiter:   ratelimit.NewLimiter(ratelimit.LoadConfig()),
		Sessions:  editor.NewRegistry(cfg.Sessions.TTL),
		Exporter:  &rendering.Exporter{},
	}

	if !cfg.Rendering.DisablePDF {
		pdf := rendering.NewChromePDF(cfg.Rendering.ChromePath, cfg.Rendering.PDFTimeout)
		pdf.Verbose = cfg.Verbose
		deps.Exporter.PDF = pdf
	}

	deps.Suggestions = suggest.Static{}
	if cfg.Suggestions.Provider == config.ProviderGemini {
		llmConfig := llm.DefaultConfig()
		if cfg.Suggestions.Model != "" {
			llmConfig = llmConfig.WithModel(llm.TierLite, cfg.Suggestions.Model)
		}
		client, err := llm.NewClient(ctx, llmConfig, cfg.Suggestions.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		deps.LLM = client
		deps.Suggestions = suggest.Fallback{
			Primary:   suggest.NewLLM(client, llm.TierLite),
			Secondary: suggest.Static{},
		}
	}

	s := NewWithDeps(deps)
	s.httpServer.Addr = fmt.Sprintf(":%d", cfg.Server.Port)
	s.sessions.StartCleanup(cfg.Sessions.CleanupInterval)
	return s, nil
}

// NewWithDeps builds a server around existing collaborators.
func NewWithDeps(deps Deps) *Server {
	s := &Server{
		store:       deps.Store,
		jwtService:  deps.JWT,
		rateLimiter: deps.Limiter,
		sessions:    deps.Sessions,
		suggestions: deps.Suggestions,
		exporter:    deps.Exporter,
		llmClient:   deps.LLM,
		validator:   validator.New(),
	}
	if s.rateLimiter == nil {
		s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{Enabled: false})
	}
	if s.sessions == nil {
		s.sessions = editor.NewRegistry(0)
	}
	if s.suggestions == nil {
		s.suggestions = suggest.Static{}
	}
	if s.exporter == nil {
		s.exporter = &rendering.Exporter{}
	}
	s.authHandler = NewAuthHandler(NewUserService(deps.Store, deps.Passwords), deps.JWT)

	s.httpServer = &http.Server{
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export drives a browser
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	protected := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, auth(h))
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	protected("PUT /auth/password", s.authHandler.UpdatePassword)
	protected("GET /auth/profile", s.authHandler.Profile)
	protected("PUT /auth/profile", s.authHandler.UpdateProfile)

	// Stored résumés
	protected("GET /resumes", s.handleListResumes)
	protected("POST /resumes", s.handleCreateResume)
	protected("GET /resumes/{id}", s.handleGetResume)
	protected("PUT /resumes/{id}", s.handleUpdateResume)
	protected("DELETE /resumes/{id}", s.handleDeleteResume)
	protected("GET /resumes/{id}/preview", s.handlePreviewResume)
	protected("GET /resumes/{id}/export", s.handleExportResume)

	// Editing sessions
	protected("POST /sessions", s.handleOpenSession)
	protected("GET /sessions/{id}", s.handleGetSession)
	protected("DELETE /sessions/{id}", s.handleCloseSession)
	protected("PATCH /sessions/{id}/fields", s.handleEditField)
	protected("POST /sessions/{id}/items", s.handleAddItem)
	protected("DELETE /sessions/{id}/items/{section}/{index}", s.handleRemoveItem)
	protected("PUT /sessions/{id}/template", s.handleSetTemplate)
	protected("PUT /sessions/{id}/section", s.handleSetSection)
	protected("POST /sessions/{id}/suggestions", s.handleSuggest)
	protected("POST /sessions/{id}/suggestions/apply", s.handleApplySuggestion)
	protected("GET /sessions/{id}/preview", s.handlePreviewSession)
	protected("GET /sessions/{id}/export", s.handleExportSession)
	protected("POST /sessions/{id}/save", s.handleSaveSession)

	// Dashboard
	protected("GET /dashboard/stats", s.handleDashboardStats)
	protected("GET /dashboard/tasks", s.handleListTasks)
	protected("POST /dashboard/tasks", s.handleCreateTask)
	protected("PUT /dashboard/tasks/{id}", s.handleUpdateTask)
	protected("DELETE /dashboard/tasks/{id}", s.handleDeleteTask)

	return mux
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.Close()
	log.Println("Server stopped")
	return nil
}

// Close releases background goroutines and connections.
func (s *Server) Close() {
	s.sessions.Stop()
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("[server] failed to close LLM client: %v", err)
		}
	}
	if s.store != nil {
		s.store.Close()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
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
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
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

// handleHealth reports the server and database status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		log.Printf("[server] health check failed: %v", err)
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// extractClientID returns the client IP from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
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
	response := map[string]any{
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
