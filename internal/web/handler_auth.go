package web

import (
	"net/http"

	"github.com/dtcdev/invaccess/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token       string      `json:"token"`
	Email       string      `json:"email"`
	DisplayName string      `json:"displayName"`
	Role        domain.Role `json:"role"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	session, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// Logout drops the session and its in-flight wizard, so a fresh login
// always starts from the dashboard.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := sessionFrom(r).Token
	s.booking.DropWizard(token)
	s.auth.Logout(token)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionResponse(sessionFrom(r)))
}

func toSessionResponse(session *domain.Session) sessionResponse {
	return sessionResponse{
		Token:       session.Token,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		Role:        session.Role,
	}
}
