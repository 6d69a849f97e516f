// Copyright 2025 Talentsift Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/talentsift/talentsift/catalog"
	"github.com/talentsift/talentsift/query"
)

const (
	// DefaultAddr is the default listen address.
	DefaultAddr = ":8501"

	// defaultMaxResults bounds how many recommendations one response carries.
	defaultMaxResults = 10

	// minQueryLength is the shortest accepted effective query.
	minQueryLength = 3

	shutdownTimeout = 10 * time.Second
)

// ErrEngineRequired is returned when a recommendation engine is not provided.
var ErrEngineRequired = errors.New("recommendation engine required")

// Recommender is the part of the query engine the server needs.
type Recommender interface {
	ProcessQuery(ctx context.Context, queryText string, maxResults int) (*query.Recommendation, error)
}

// PageTextFunc fetches readable text from a job posting URL.
type PageTextFunc func(ctx context.Context, pageURL string) (string, error)

// Server serves the recommendation API and dashboard.
type Server struct {
	engine     Recommender
	pageText   PageTextFunc
	validate   *validator.Validate
	maxResults int
	logger     *slog.Logger
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
// Default is DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.httpServer.Addr = addr
	}
}

// WithMaxResults sets the per-response recommendation cap.
func WithMaxResults(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithPageText overrides how job posting URLs are fetched.
// Default is catalog.PageText.
func WithPageText(fn PageTextFunc) Option {
	return func(s *Server) {
		if fn != nil {
			s.pageText = fn
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a server around the given engine.
func New(engine Recommender, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Server{
		engine:     engine,
		pageText:   catalog.PageText,
		validate:   validator.New(),
		maxResults: defaultMaxResults,
		logger:     slog.Default().With("component", "server"),
		httpServer: &http.Server{
			Addr:              DefaultAddr,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.httpServer.Handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	return corsMiddleware(mux)
}

// Run listens until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "API is live",
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	queryText := strings.TrimSpace(req.Query)
	if req.URL != "" {
		pageText, err := s.pageText(r.Context(), req.URL)
		if err != nil {
			s.logger.Error("url extraction failed", "url", req.URL, "err", err)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("URL error: %v", err))
			return
		}
		if queryText == "" {
			queryText = pageText
		} else {
			queryText = queryText + " " + pageText
		}
	}

	if err := s.validate.Var(queryText, fmt.Sprintf("required,min=%d", minQueryLength)); err != nil {
		writeError(w, http.StatusBadRequest, "Query must be at least 3 characters long.")
		return
	}

	rec, err := s.engine.ProcessQuery(r.Context(), queryText, s.maxResults)
	if err != nil {
		s.logger.Error("recommendation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(rec.Results) == 0 {
		writeError(w, http.StatusNotFound, "No relevant assessments found")
		return
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Recommendations: newAssessmentViews(rec.Results),
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
