package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"codeberg.org/snonux/kotrans/internal/cache"
	"codeberg.org/snonux/kotrans/internal/engine"
	"codeberg.org/snonux/kotrans/internal/hover"
)

const (
	// DefaultAddr binds to loopback only.
	DefaultAddr = "127.0.0.1:7341"

	defaultTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 1 << 20

	codeInvalidInput = "invalid_input"
)

// ErrInvalidInput is returned for request bodies that are not a JSON object
// with the expected string fields.
var ErrInvalidInput = errors.New("invalid input")

// Translator is the part of the translation service served over HTTP.
type Translator interface {
	TranslateDetailed(ctx context.Context, text string) engine.Result
	TranslateWithStrategy(ctx context.Context, text, strategyName string) engine.Result
	TranslateComment(ctx context.Context, line string) engine.Result
	Strategies() []string
	AvailableStrategies(text string) []string
	ClearCache() int
	CacheStatus() cache.Status
	CachedTranslations() map[string]string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHover enables the hover endpoint.
func WithHover(provider *hover.Provider) Option {
	return func(s *Server) {
		s.hover = provider
	}
}

// WithClock replaces the time source used by the health endpoint.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// Server serves translation requests.
type Server struct {
	translator Translator
	hover      *hover.Provider
	logger     *zap.Logger
	now        func() time.Time
	started    time.Time
	router     chi.Router
}

// New creates a server around translator.
func New(translator Translator, opts ...Option) *Server {
	s := &Server{
		translator: translator,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultTimeout))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, http.StatusNotFound, "route_not_found", fmt.Sprintf("no route for %s", req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, req, http.StatusMethodNotAllowed, "method_not_allowed",
			fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/healthz", s.health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/translate", s.translate)
		r.Post("/translate/comment", s.translateComment)
		r.Post("/hover", s.hoverAt)
		r.Get("/strategies", s.strategies)
		r.Get("/cache", s.cacheStatus)
		r.Delete("/cache", s.clearCache)
	})

	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

type translateRequest struct {
	Text     *string `json:"text"`
	Strategy *string `json:"strategy,omitempty"`
}

type hoverRequest struct {
	Document *string        `json:"document"`
	Position hover.Position `json:"position"`
}

type hoverResponse struct {
	Found bool         `json:"found"`
	Hover *hover.Hover `json:"hover,omitempty"`
}

type strategiesResponse struct {
	Strategies []string `json:"strategies"`
	Available  []string `json:"available,omitempty"`
}

type cacheResponse struct {
	cache.Status
	Entries map[string]string `json:"entries"`
}

type clearResponse struct {
	Removed int `json:"removed"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	now := s.now()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    now.Sub(s.started).String(),
		"timestamp": now.UTC().Format(time.RFC3339),
	})
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Text == nil {
		writeInvalid(w, r, "text is required")
		return
	}

	var result engine.Result
	if req.Strategy != nil && *req.Strategy != "" {
		result = s.translator.TranslateWithStrategy(r.Context(), *req.Text, *req.Strategy)
	} else {
		result = s.translator.TranslateDetailed(r.Context(), *req.Text)
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) translateComment(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Text == nil {
		writeInvalid(w, r, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, s.translator.TranslateComment(r.Context(), *req.Text))
}

func (s *Server) hoverAt(w http.ResponseWriter, r *http.Request) {
	if s.hover == nil {
		writeError(w, r, http.StatusNotFound, "hover_disabled", "hover is not enabled")
		return
	}

	var req hoverRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Document == nil {
		writeInvalid(w, r, "document is required")
		return
	}

	h, ok := s.hover.ProvideHover(r.Context(), *req.Document, req.Position)
	writeJSON(w, http.StatusOK, hoverResponse{Found: ok, Hover: h})
}

func (s *Server) strategies(w http.ResponseWriter, r *http.Request) {
	resp := strategiesResponse{Strategies: s.translator.Strategies()}
	if text := r.URL.Query().Get("text"); text != "" {
		resp.Available = s.translator.AvailableStrategies(text)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) cacheStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, cacheResponse{
		Status:  s.translator.CacheStatus(),
		Entries: s.translator.CachedTranslations(),
	})
}

func (s *Server) clearCache(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, clearResponse{Removed: s.translator.ClearCache()})
}

// decode reads a JSON body into dst and writes a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeInvalid(w, r, decodeMessage(err))
		return false
	}
	return true
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)
	}
	if errors.Is(err, io.EOF) {
		return "request body is empty"
	}
	return "request body must be a JSON object"
}

func writeInvalid(w http.ResponseWriter, r *http.Request, message string) {
	writeError(w, r, http.StatusBadRequest, codeInvalidInput, fmt.Sprintf("%v: %s", ErrInvalidInput, message))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	payload := map[string]any{
		"error":   code,
		"message": message,
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		payload["requestId"] = id
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// requestLogger logs one line per request once the response is written.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			s.logger.Info("request completed",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)))
		}()

		next.ServeHTTP(ww, r)
	})
}
