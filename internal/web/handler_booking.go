package web

import (
	"net/http"
	"strconv"

	"github.com/dtcdev/invaccess/internal/booking"
	"github.com/dtcdev/invaccess/internal/domain"
)

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := s.booking.Catalog(r.Context(), q.Get("q"), q.Get("category"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleCatalogMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.booking.Meta())
}

func (s *Server) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	status := domain.AppointmentStatus(r.URL.Query().Get("status"))
	appts, err := s.booking.ListAppointments(r.Context(), status)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appts)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.booking.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type wizardStartRequest struct {
	ItemID int64 `json:"itemId"`
}

func (s *Server) handleWizardStart(w http.ResponseWriter, r *http.Request) {
	var req wizardStartRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	state, err := s.booking.StartWizard(r.Context(), sessionFrom(r).Token, req.ItemID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleWizard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.booking.Wizard(sessionFrom(r).Token))
}

func (s *Server) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	state, err := s.booking.Advance(sessionFrom(r).Token)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleWizardPrevious(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.booking.Retreat(sessionFrom(r).Token))
}

func (s *Server) handleWizardCancel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.booking.CancelWizard(sessionFrom(r).Token))
}

func (s *Server) handleWizardForm(w http.ResponseWriter, r *http.Request) {
	var form booking.Form
	if err := decodeJSON(r, &form); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, s.booking.UpdateForm(sessionFrom(r).Token, form))
}

func (s *Server) handleWizardToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseID(r)
	if err != nil {
		s.writeBadRequest(w, "invalid item id")
		return
	}

	state, err := s.booking.ToggleItem(r.Context(), sessionFrom(r).Token, itemID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	appt, err := s.booking.Submit(r.Context(), sessionFrom(r).Token)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appt)
}

func (s *Server) handleWizardAnother(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.booking.BookAnother(sessionFrom(r).Token))
}

type itemRequestRequest struct {
	Description string `json:"description"`
}

// Item requests are attributed to whoever is logged in.
func (s *Server) handleCreateItemRequest(w http.ResponseWriter, r *http.Request) {
	var req itemRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.booking.CreateItemRequest(r.Context(), req.Description, sessionFrom(r).DisplayName)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListItemRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.booking.ListItemRequests(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reqs)
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
