package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"inkwell/app/apperrors"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps the failure taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 and gets logged.
func sendError(w http.ResponseWriter, err error) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Reason})
	case errors.Is(err, apperrors.ErrNotFound):
		sendJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		sendJSON(w, http.StatusForbidden, map[string]string{"error": "permission denied"})
	case errors.Is(err, apperrors.ErrInvalidToken):
		sendJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid auth token"})
	default:
		slog.Error("request failed", "error", err)
		sendJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.Validation("invalid id %q", raw)
	}
	return uint(id), nil
}

// queryInt parses an integer query parameter, falling back when absent or
// malformed.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
