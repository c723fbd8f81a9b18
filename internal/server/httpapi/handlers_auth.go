package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/avolkov/quizdeck/internal/common"
	"github.com/avolkov/quizdeck/internal/server/models"
)

// bearerToken extracts the token from the Authorization header. An absent or
// malformed header returns an empty string, which fails token validation
// downstream like any other malformed token.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimPrefix(h, prefix)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx := r.Context()

	user, err := s.users.Register(ctx, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		s.logger.Warn(ctx, "registration failed", "error", err.Error())
		writeError(w, err)
		return
	}

	// Registration implies login: a fresh token is returned right away.
	token, err := s.users.Login(ctx, user.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "post-registration login failed", "error", err.Error())
		writeError(w, err)
		return
	}

	s.logger.Info(ctx, "registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx := r.Context()

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// Profile fields come from the registry, not from token claims.
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, err := s.users.ValidateToken(bearerToken(r))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", common.ErrUnauthenticated, err))
		return
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}
