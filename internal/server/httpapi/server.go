// Package httpapi exposes the JSON/HTTP surface of the server. Handlers are
// thin: they decode requests, delegate to the services layer, and map
// sentinel errors to status codes. No authorization logic lives here.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/avolkov/quizdeck/internal/logging"
	"github.com/avolkov/quizdeck/internal/server/services"
)

type Server struct {
	address   string
	mux       *http.ServeMux
	logger    logging.Logger
	users     *services.UserService
	tests     *services.TestService
	questions *services.QuestionService
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TestService, qs *services.QuestionService) *Server {
	s := &Server{
		address:   address,
		mux:       http.NewServeMux(),
		logger:    l.With("module", "httpapi"),
		users:     us,
		tests:     ts,
		questions: qs,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /auth/login", s.handleLogin)
	s.mux.HandleFunc("GET /auth/me", s.handleMe)

	s.mux.HandleFunc("POST /tests", s.handleCreateTest)
	s.mux.HandleFunc("GET /tests", s.handleListTests)
	s.mux.HandleFunc("GET /tests/{test_id}", s.handleGetTest)
	s.mux.HandleFunc("PUT /tests/{test_id}", s.handleUpdateTest)
	s.mux.HandleFunc("DELETE /tests/{test_id}", s.handleDeleteTest)

	s.mux.HandleFunc("POST /tests/{test_id}/questions", s.handleCreateQuestion)
	s.mux.HandleFunc("GET /tests/{test_id}/questions", s.handleListQuestions)
	s.mux.HandleFunc("GET /tests/{test_id}/questions/{question_id}", s.handleGetQuestionForTest)
	s.mux.HandleFunc("GET /questions/{question_id}", s.handleGetQuestion)
	s.mux.HandleFunc("GET /questions/{question_id}/public", s.handleGetQuestionPublic)
	s.mux.HandleFunc("PUT /questions/{question_id}", s.handleUpdateQuestion)
	s.mux.HandleFunc("DELETE /questions/{question_id}", s.handleDeleteQuestion)
}

// Handler returns the route table; used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
