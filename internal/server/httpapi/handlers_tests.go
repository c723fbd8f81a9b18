package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/quizdeck/internal/common"
)

func (s *Server) handleCreateTest(w http.ResponseWriter, r *http.Request) {
	var req testRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx := r.Context()

	test, err := s.tests.Create(ctx, bearerToken(r), req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(ctx, "test created", "test_id", test.ID, "user_id", test.UserID)
	writeJSON(w, http.StatusCreated, toTestResponse(test))
}

func (s *Server) handleListTests(w http.ResponseWriter, r *http.Request) {
	list, total, err := s.tests.List(r.Context(), bearerToken(r))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := testListResponse{Tests: make([]testResponse, 0, len(list)), Total: total}
	for _, t := range list {
		resp.Tests = append(resp.Tests, toTestResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "test_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	test, err := s.tests.Get(r.Context(), bearerToken(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTestResponse(test))
}

func (s *Server) handleUpdateTest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "test_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	var req testRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	test, err := s.tests.Update(r.Context(), bearerToken(r), id, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTestResponse(test))
}

func (s *Server) handleDeleteTest(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "test_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	ctx := r.Context()

	if err := s.tests.Delete(ctx, bearerToken(r), id); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(ctx, "test deleted", "test_id", id)
	w.WriteHeader(http.StatusNoContent)
}
