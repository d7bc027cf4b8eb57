package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtcdev/invaccess/internal/domain"
)

type contextKey int

const sessionContextKey contextKey = iota

// withSession resolves the bearer token to a live session before the
// handler runs. Missing or stale tokens get a 401.
func (s *Server) withSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
			return
		}
		session, err := s.auth.SessionFromToken(token)
		if err != nil {
			s.writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next(w, r.WithContext(ctx))
	}
}

// withAdmin is withSession plus a role check. The role is re-read from
// the session on every request, so a non-admin can never reach an
// admin handler by replaying an old URL.
func (s *Server) withAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.withSession(func(w http.ResponseWriter, r *http.Request) {
		if sessionFrom(r).Role != domain.RoleAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next(w, r)
	})
}

// sessionFrom returns the session stored by withSession. Only call it
// from handlers registered behind that middleware.
func sessionFrom(r *http.Request) *domain.Session {
	return r.Context().Value(sessionContextKey).(*domain.Session)
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
