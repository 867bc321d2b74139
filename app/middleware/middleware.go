package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"inkwell/app/models"
)

type contextKey int

const principalKey contextKey = iota

// PrincipalResolver maps a bearer token to a principal.
type PrincipalResolver interface {
	ResolvePrincipal(token string) (models.Principal, error)
}

// PrincipalFrom extracts the principal attached by Authenticate. Without the
// middleware the anonymous principal comes back.
func PrincipalFrom(r *http.Request) models.Principal {
	if p, ok := r.Context().Value(principalKey).(models.Principal); ok {
		return p
	}
	return models.Anonymous()
}

// WithPrincipal attaches a principal to the request. Exposed for tests.
func WithPrincipal(r *http.Request, p models.Principal) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, p))
}

// Authenticate resolves the Authorization header to a principal. No header
// means anonymous; a present but invalid token is rejected outright.
func Authenticate(resolver PrincipalResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, WithPrincipal(r, models.Anonymous()))
				return
			}
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "invalid auth header")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			principal, err := resolver.ResolvePrincipal(token)
			if err != nil {
				unauthorized(w, "invalid auth token")
				return
			}
			next.ServeHTTP(w, WithPrincipal(r, principal))
		})
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !PrincipalFrom(r).Authenticated {
			unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logger logs method, path, status and duration for each request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}

// Recoverer recovers from handler panics and responds 500.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic in handler", "error", err, "path", r.URL.Path)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// ContentTypeJSON sets the JSON content type for API routes.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
