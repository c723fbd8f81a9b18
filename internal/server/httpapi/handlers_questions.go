package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/quizdeck/internal/common"
)

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	testID, err := pathID(r, "test_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx := r.Context()

	q, err := s.questions.Create(ctx, bearerToken(r), testID, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(ctx, "question created", "question_id", q.ID, "test_id", testID)
	writeJSON(w, http.StatusCreated, toQuestionResponse(q))
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	testID, err := pathID(r, "test_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	list, total, err := s.questions.ListByTest(r.Context(), bearerToken(r), testID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := questionListResponse{Questions: make([]questionResponse, 0, len(list)), Total: total}
	for _, q := range list {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "question_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	q, err := s.questions.Get(r.Context(), bearerToken(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// handleGetQuestionPublic serves the answer-hidden view. Authorization is
// identical to the full read; only the response shape changes.
func (s *Server) handleGetQuestionPublic(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "question_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	q, err := s.questions.Get(r.Context(), bearerToken(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionPublicResponse(q))
}

func (s *Server) handleGetQuestionForTest(w http.ResponseWriter, r *http.Request) {
	testID, err := pathID(r, "test_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}
	id, err := pathID(r, "question_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	q, err := s.questions.GetForTest(r.Context(), bearerToken(r), testID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "question_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	q, err := s.questions.Update(r.Context(), bearerToken(r), id, req.toInput())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "question_id")
	if err != nil {
		writeError(w, common.ErrNotFound)
		return
	}

	ctx := r.Context()

	if err := s.questions.Delete(ctx, bearerToken(r), id); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(ctx, "question deleted", "question_id", id)
	w.WriteHeader(http.StatusNoContent)
}
