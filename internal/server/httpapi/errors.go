package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkov/quizdeck/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps sentinel errors to HTTP status codes. The response body
// carries only the stable sentinel text, never internal detail.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: publicMessage(err)})
	case errors.Is(err, common.ErrPermissionDenied):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: common.ErrPermissionDenied.Error()})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: common.ErrNotFound.Error()})
	case errors.Is(err, common.ErrDuplicateEmail),
		errors.Is(err, common.ErrInvalidRole),
		errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, common.ErrInvalidAnswer):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: common.ErrInternal.Error()})
	}
}

// publicMessage keeps 401 bodies generic: token failures all read as
// "unauthenticated", credential failures keep their deliberately vague text.
func publicMessage(err error) string {
	if errors.Is(err, common.ErrInvalidCredentials) {
		return common.ErrInvalidCredentials.Error()
	}
	return common.ErrUnauthenticated.Error()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
