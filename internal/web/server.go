// Package web exposes the booking and inventory services as a JSON
// API. All state-changing wizard routes operate on the caller's own
// session; admin-only routes check the role on every request.
package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dtcdev/invaccess/internal/service"
)

type Server struct {
	auth      *service.AuthService
	booking   *service.BookingService
	inventory *service.InventoryService
	mux       *http.ServeMux
	logger    *slog.Logger
}

func NewServer(auth *service.AuthService, booking *service.BookingService, inventory *service.InventoryService, logger *slog.Logger) *Server {
	s := &Server{
		auth:      auth,
		booking:   booking,
		inventory: inventory,
		mux:       http.NewServeMux(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /auth/logout", s.withSession(s.handleLogout))
	s.mux.HandleFunc("GET /auth/session", s.withSession(s.handleSession))

	s.mux.HandleFunc("GET /catalog", s.withSession(s.handleCatalog))
	s.mux.HandleFunc("GET /catalog/meta", s.withSession(s.handleCatalogMeta))
	s.mux.HandleFunc("GET /appointments", s.withSession(s.handleListAppointments))
	s.mux.HandleFunc("GET /appointments/stats", s.withSession(s.handleStats))

	s.mux.HandleFunc("POST /wizard/start", s.withSession(s.handleWizardStart))
	s.mux.HandleFunc("GET /wizard", s.withSession(s.handleWizard))
	s.mux.HandleFunc("POST /wizard/next", s.withSession(s.handleWizardNext))
	s.mux.HandleFunc("POST /wizard/previous", s.withSession(s.handleWizardPrevious))
	s.mux.HandleFunc("POST /wizard/cancel", s.withSession(s.handleWizardCancel))
	s.mux.HandleFunc("PUT /wizard/form", s.withSession(s.handleWizardForm))
	s.mux.HandleFunc("POST /wizard/items/{id}", s.withSession(s.handleWizardToggleItem))
	s.mux.HandleFunc("POST /wizard/submit", s.withSession(s.handleWizardSubmit))
	s.mux.HandleFunc("POST /wizard/another", s.withSession(s.handleWizardAnother))
	s.mux.HandleFunc("POST /item-requests", s.withSession(s.handleCreateItemRequest))
	s.mux.HandleFunc("GET /item-requests", s.withAdmin(s.handleListItemRequests))

	s.mux.HandleFunc("GET /items", s.withSession(s.handleListItems))
	s.mux.HandleFunc("POST /items", s.withAdmin(s.handleAddItem))
	s.mux.HandleFunc("GET /items/scan", s.withSession(s.handleScanQR))
	s.mux.HandleFunc("POST /items/{id}/borrow", s.withSession(s.handleBorrow))
	s.mux.HandleFunc("GET /transactions", s.withSession(s.handleListTransactions))
	s.mux.HandleFunc("POST /transactions/{id}/return", s.withSession(s.handleReturn))
	s.mux.HandleFunc("GET /inventory/summary", s.withAdmin(s.handleSummary))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
